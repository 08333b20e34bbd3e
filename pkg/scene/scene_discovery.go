package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Name passed to CreateScene
	DisplayName string `json:"displayName"` // Human readable name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to JSON file (json type only)
}

// ScenesDirs are the directories searched for JSON scene files
var ScenesDirs = []string{"scenes", "../scenes"}

var builtinScenes = []struct {
	info   SceneInfo
	create func() *Scene
}{
	{
		info: SceneInfo{
			ID:          "default",
			DisplayName: "Default Scene",
			Description: "Gray diffuse sphere resting on a large ground sphere",
			Type:        "builtin",
		},
		create: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "materials",
			DisplayName: "Materials",
			Description: "Glass, diffuse and metal spheres on a diffuse ground",
			Type:        "builtin",
		},
		create: NewMaterialsScene,
	},
	{
		info: SceneInfo{
			ID:          "empty",
			DisplayName: "Empty",
			Description: "Sky gradient only",
			Type:        "builtin",
		},
		create: NewEmptyScene,
	},
}

// CreateScene builds a scene by name. Names ending in .json are loaded from
// disk; "json:<name>" looks the file up in the scenes directory.
func CreateScene(name string) (*Scene, error) {
	if strings.HasSuffix(strings.ToLower(name), ".json") {
		return LoadScene(name)
	}

	if fileName, ok := strings.CutPrefix(name, "json:"); ok {
		dir := findScenesDir()
		if dir == "" {
			return nil, fmt.Errorf("%w: no scenes directory found for %q", core.ErrInvalidConfiguration, name)
		}
		return LoadScene(filepath.Join(dir, fileName+".json"))
	}

	for _, builtin := range builtinScenes {
		if builtin.info.ID == name {
			return builtin.create(), nil
		}
	}
	return nil, fmt.Errorf("%w: unknown scene %q", core.ErrInvalidConfiguration, name)
}

// ListScenes returns the built-in scenes followed by any JSON scenes found in
// the scenes directory, sorted by display name
func ListScenes() ([]SceneInfo, error) {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, builtin := range builtinScenes {
		scenes = append(scenes, builtin.info)
	}

	jsonScenes, err := ListJSONScenes()
	if err != nil {
		return nil, err
	}
	return append(scenes, jsonScenes...), nil
}

// ListJSONScenes scans the scenes directory for *.json scene files
func ListJSONScenes() ([]SceneInfo, error) {
	scenesDir := findScenesDir()
	if scenesDir == "" {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(scenesDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %v", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		nameWithoutExt := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
		scenes = append(scenes, SceneInfo{
			ID:          "json:" + nameWithoutExt,
			DisplayName: titleCase(nameWithoutExt),
			Type:        "json",
			FilePath:    filePath,
		})
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

func findScenesDir() string {
	for _, path := range ScenesDirs {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path
		}
	}
	return ""
}

// titleCase converts a filename-style string to title case
// e.g., "three-spheres" -> "Three Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
