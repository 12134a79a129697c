package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/df07/go-scene-raytracer/pkg/loaders"
	"github.com/df07/go-scene-raytracer/pkg/scene"
)

// Scene argument selecting the built-in demo scene
const builtinDemo = "builtin:demo"

// loadScene resolves a scene argument to a validated scene
func loadScene(name string) (*scene.Scene, error) {
	var (
		sc  *scene.Scene
		err error
	)

	switch {
	case name == "":
		return nil, errors.New("missing scene file argument")
	case name == builtinDemo:
		sc, err = scene.NewDemoScene(loaders.DefaultWidth, loaders.DefaultHeight)
	case strings.HasPrefix(name, "builtin:"):
		return nil, fmt.Errorf("unknown built-in scene %q", strings.TrimPrefix(name, "builtin:"))
	default:
		sc, err = loaders.LoadScene(name)
	}
	if err != nil {
		return nil, err
	}

	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return sc, nil
}
