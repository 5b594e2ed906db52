package scene

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/golang/glog"
	"golang.org/x/xerrors"
)

const builtInGroup = "Built-in Scenes"

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string // Unique identifier
	Name        string // Scene name
	DisplayName string // Display name including the variant
	Description string // Optional description
	Group       string // Grouping category
	Type        string // "builtin" or "sce"
	FilePath    string // Path to the scene file (sce type only)
	Variant     string // Variant name (optional)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string
	Scenes []SceneInfo
}

// ListSceneFiles returns the metadata of every .sce file in dir, ordered by
// display name. A missing directory yields an empty list. Files whose
// header cannot be read are skipped with a warning.
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []SceneInfo{}, nil
	}
	if err != nil {
		return nil, xerrors.Errorf("while scanning scenes directory %s: %w", dir, err)
	}

	scenes := make([]SceneInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".sce" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		info, err := ParseSceneMetadata(path)
		if err != nil {
			glog.Warningf("skipping %s: %v", path, err)
			continue
		}
		scenes = append(scenes, info)
	}

	sort.SliceStable(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes, nil
}

// headerFields maps metadata keys to the SceneInfo field they set
var headerFields = map[string]func(*SceneInfo, string){
	"Scene":       func(s *SceneInfo, v string) { s.Name = v },
	"Variant":     func(s *SceneInfo, v string) { s.Variant = v },
	"Description": func(s *SceneInfo, v string) { s.Description = v },
	"Group":       func(s *SceneInfo, v string) { s.Group = v },
}

// ParseSceneMetadata reads the leading comment block of a scene file for
// "# Key: value" headers (Scene, Variant, Description, Group). Names
// default to the title-cased file name.
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	base := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	info := SceneInfo{
		ID:       "sce:" + base,
		Name:     titleCase(base),
		Group:    "Scene Files",
		Type:     "sce",
		FilePath: filePath,
	}

	file, err := os.Open(filePath)
	if err != nil {
		return info, xerrors.Errorf("while opening %s: %w", filePath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		comment, ok := strings.CutPrefix(line, "#")
		if !ok {
			break
		}
		key, value, ok := strings.Cut(comment, ":")
		if set, known := headerFields[strings.TrimSpace(key)]; ok && known {
			set(&info, strings.TrimSpace(value))
		}
	}

	info.DisplayName = info.Name
	if info.Variant != "" {
		info.DisplayName += " - " + info.Variant
	}
	return info, scanner.Err()
}

// ListAllScenes returns both built-in scenes and the scene files in dir,
// grouped by category with the built-in group first
func ListAllScenes(dir string) ([]SceneGroup, error) {
	var allScenes []SceneInfo
	for _, b := range builtInScenes {
		allScenes = append(allScenes, SceneInfo{
			ID:          b.name,
			Name:        titleCase(b.name),
			DisplayName: titleCase(b.name),
			Description: b.description,
			Group:       builtInGroup,
			Type:        "builtin",
		})
	}

	files, err := ListSceneFiles(dir)
	if err != nil {
		return nil, xerrors.Errorf("while listing scene files: %w", err)
	}
	allScenes = append(allScenes, files...)

	groupMap := make(map[string][]SceneInfo)
	var groupNames []string
	for _, s := range allScenes {
		if _, seen := groupMap[s.Group]; !seen && s.Group != builtInGroup {
			groupNames = append(groupNames, s.Group)
		}
		groupMap[s.Group] = append(groupMap[s.Group], s)
	}
	sort.Strings(groupNames)

	groups := []SceneGroup{{Name: builtInGroup, Scenes: groupMap[builtInGroup]}}
	for _, name := range groupNames {
		groups = append(groups, SceneGroup{Name: name, Scenes: groupMap[name]})
	}
	return groups, nil
}

// titleCase turns a file name like "two-mirrors" into "Two Mirrors"
func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
