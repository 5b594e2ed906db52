package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-mirror-raytracer/pkg/geometry"
)

func TestTitleCase(t *testing.T) {
	got := make(map[string]string)
	for _, in := range []string{"two-mirrors", "mesh_phong", "my-custom-scene", "simple", "UPPER-case", "a--b", ""} {
		got[in] = titleCase(in)
	}
	want := map[string]string{
		"two-mirrors":     "Two Mirrors",
		"mesh_phong":      "Mesh Phong",
		"my-custom-scene": "My Custom Scene",
		"simple":          "Simple",
		"UPPER-case":      "Upper Case",
		"a--b":            "A B",
		"":                "",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("titleCase mismatch (-want +got):\n%s", diff)
	}
}

func writeSceneFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func TestParseSceneMetadata(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		name     string
		content  string
		expected SceneInfo
	}{
		{
			name: "complete_metadata.sce",
			content: `# Scene: Mirrors
# Variant: Deep
# Description: Two facing mirrors
# Group: Reflections

depth 10
`,
			expected: SceneInfo{
				ID:          "sce:complete_metadata",
				Name:        "Mirrors",
				DisplayName: "Mirrors - Deep",
				Description: "Two facing mirrors",
				Group:       "Reflections",
				Type:        "sce",
				Variant:     "Deep",
			},
		},
		{
			name: "partial_metadata.sce",
			content: `# Scene: Cylinders
# Description: Tubes on a floor
depth 1`,
			expected: SceneInfo{
				ID:          "sce:partial_metadata",
				Name:        "Cylinders",
				DisplayName: "Cylinders",
				Description: "Tubes on a floor",
				Group:       "Scene Files",
				Type:        "sce",
			},
		},
		{
			name:    "no_metadata.sce",
			content: "depth 1\n# Scene: ignored after the header\n",
			expected: SceneInfo{
				ID:          "sce:no_metadata",
				Name:        "No Metadata",
				DisplayName: "No Metadata",
				Group:       "Scene Files",
				Type:        "sce",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeSceneFile(t, dir, tc.name, tc.content)

			result, err := ParseSceneMetadata(path)
			if err != nil {
				t.Fatalf("ParseSceneMetadata() error: %v", err)
			}

			tc.expected.FilePath = path
			if diff := cmp.Diff(tc.expected, result); diff != "" {
				t.Errorf("ParseSceneMetadata() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListSceneFiles(t *testing.T) {
	dir := t.TempDir()
	writeSceneFile(t, dir, "b.sce", "# Scene: Beta\n")
	writeSceneFile(t, dir, "a.sce", "# Scene: Alpha\n")
	writeSceneFile(t, dir, "notes.txt", "# Scene: Ignored\n")

	scenes, err := ListSceneFiles(dir)
	if err != nil {
		t.Fatalf("ListSceneFiles() error: %v", err)
	}

	var names []string
	for _, s := range scenes {
		names = append(names, s.DisplayName)
	}
	if diff := cmp.Diff([]string{"Alpha", "Beta"}, names); diff != "" {
		t.Errorf("Scene names mismatch (-want +got):\n%s", diff)
	}
}

func TestListSceneFiles_MissingDirectory(t *testing.T) {
	scenes, err := ListSceneFiles(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Errorf("ListSceneFiles() error: %v", err)
	}
	if scenes == nil || len(scenes) != 0 {
		t.Errorf("Expected an empty, non-nil list, got %v", scenes)
	}
}

func TestListAllScenes(t *testing.T) {
	dir := t.TempDir()
	writeSceneFile(t, dir, "walls.sce", "# Scene: Walls\n# Group: Reflections\n")
	writeSceneFile(t, dir, "plain.sce", "depth 0\n")

	groups, err := ListAllScenes(dir)
	if err != nil {
		t.Fatalf("ListAllScenes() error: %v", err)
	}

	var groupNames []string
	for _, g := range groups {
		groupNames = append(groupNames, g.Name)
	}
	if diff := cmp.Diff([]string{"Built-in Scenes", "Reflections", "Scene Files"}, groupNames); diff != "" {
		t.Fatalf("Group names mismatch (-want +got):\n%s", diff)
	}

	sceneIDs := make(map[string]bool)
	for _, s := range groups[0].Scenes {
		sceneIDs[s.ID] = true
	}
	for _, expectedID := range []string{"spheres", "cylinders", "mirror", "combo"} {
		if !sceneIDs[expectedID] {
			t.Errorf("Missing expected built-in scene: %s", expectedID)
		}
	}
}

func TestListSceneFiles_Bundled(t *testing.T) {
	scenes, err := ListSceneFiles(filepath.Join("..", "..", "scenes"))
	if err != nil {
		t.Fatalf("ListSceneFiles() error: %v", err)
	}
	if len(scenes) < 2 {
		t.Fatalf("Expected the bundled scene files, got %d", len(scenes))
	}
	for _, info := range scenes {
		t.Run(info.ID, func(t *testing.T) {
			s, err := NewSCEScene(info.FilePath, geometry.CameraConfig{Width: 8, Height: 6})
			if err != nil {
				t.Fatalf("NewSCEScene(%s) error: %v", info.FilePath, err)
			}
			if len(s.Shapes) == 0 || len(s.Lights) == 0 {
				t.Errorf("Expected shapes and lights, got %d and %d", len(s.Shapes), len(s.Lights))
			}
		})
	}
}
