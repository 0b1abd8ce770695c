package simulation

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SceneEntry represents a loadable scene file in the data directory
type SceneEntry struct {
	Name string // Display name (file name without extension)
	Path string // Path including the data directory
}

// ScanScenes lists the scene configs in dataPath. Only .json, .yaml and .yml
// files are considered; subdirectories and hidden files are skipped.
func ScanScenes(dataPath string) ([]SceneEntry, error) {
	entries, err := os.ReadDir(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	var scenes []SceneEntry
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		ext := strings.ToLower(filepath.Ext(name))
		switch ext {
		case ".json", ".yaml", ".yml":
		default:
			continue
		}

		scenes = append(scenes, SceneEntry{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(dataPath, name),
		})
	}

	sort.Slice(scenes, func(i, j int) bool { return scenes[i].Name < scenes[j].Name })
	return scenes, nil
}
