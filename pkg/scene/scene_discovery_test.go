package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"two-spheres", "Two Spheres"},
		{"scene_7", "Scene 7"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestParseSceneMetadata(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected SceneInfo
	}{
		{
			name: "complete_metadata.scene",
			content: `# Scene: Two Spheres
# Description: Spheres under a shared transform
# Group: Examples

size 640 480
camera 0 0 5 0 0 0 0 1 0 45`,
			expected: SceneInfo{
				ID:          "file:complete_metadata",
				Name:        "Two Spheres",
				Description: "Spheres under a shared transform",
				Group:       "Examples",
			},
		},
		{
			name:    "no_metadata.scene",
			content: `size 640 480`,
			expected: SceneInfo{
				ID:    "file:no_metadata",
				Name:  "No Metadata",
				Group: "Scene Files",
			},
		},
	}

	dir := t.TempDir()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name)
			if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
				t.Fatal(err)
			}

			info, err := ParseSceneMetadata(path)
			if err != nil {
				t.Fatalf("ParseSceneMetadata failed: %v", err)
			}
			tc.expected.FilePath = path
			if info != tc.expected {
				t.Errorf("got %+v, want %+v", info, tc.expected)
			}
		})
	}
}

func TestListSceneFiles(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.scene":   "# Scene: Beta\nsize 1 1",
		"a.scene":   "# Scene: Alpha\nsize 1 1",
		"notes.txt": "# Scene: Ignored",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	scenes, err := ListSceneFiles(dir)
	if err != nil {
		t.Fatalf("ListSceneFiles failed: %v", err)
	}
	if len(scenes) != 2 {
		t.Fatalf("Expected 2 scenes, got %d", len(scenes))
	}
	if scenes[0].Name != "Alpha" || scenes[1].Name != "Beta" {
		t.Errorf("Expected sorted names, got %q, %q", scenes[0].Name, scenes[1].Name)
	}

	missing, err := ListSceneFiles(filepath.Join(dir, "nope"))
	if err != nil || len(missing) != 0 {
		t.Errorf("Missing directory should yield empty list, got %v, %v", missing, err)
	}
}
