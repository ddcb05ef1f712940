package bfconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"bf.cue",
	".bf.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {

	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	paths := findConfigFiles(dirs)
	if len(paths) > 0 {
		logger.Debug("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}

func findConfigFiles(dirs []string) (paths []string) {
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if stat, err := os.Stat(path); err == nil && !stat.IsDir() {
				paths = append(paths, path)
			}
		}
	}
	return
}
