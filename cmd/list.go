package cmd

import (
	"bytes"

	"github.com/df07/go-scene-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Directory searched by the list command when none is given
const defaultSceneDir = "scenes"

// List scene files found in a directory.
func ListScenes(ctx *cli.Context) error {
	if _, err := setupLogging(ctx); err != nil {
		return err
	}

	dir := defaultSceneDir
	if ctx.NArg() > 0 {
		dir = ctx.Args().First()
	}

	scenes, err := scene.ListSceneFiles(dir)
	if err != nil {
		return err
	}
	if len(scenes) == 0 {
		logger.Noticef("no %s files found in %s", scene.SceneFileExt, dir)
		return nil
	}

	logger.Noticef("scenes in %s\n%s", dir, sceneTable(scenes))
	return nil
}

func sceneTable(scenes []scene.SceneInfo) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Group", "Name", "Description", "File"})
	for _, s := range scenes {
		table.Append([]string{s.Group, s.Name, s.Description, s.FilePath})
	}
	table.Render()
	return buf.String()
}
