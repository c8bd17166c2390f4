package bfconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/logs"
	"github.com/samber/lo"
)

//go:embed schema.cue
var schema string

var configFlag = cmds.Collect[string]("-config", "read settings from a .cue or .toml file")

var filenames = []string{
	"taibf.cue",
	".taibf.cue",
	"taibf.toml",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {

	// explicit files first, then working dir, user config dir, system wide
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	candidates := lo.FlatMap(dirs, func(dir string, _ int) []string {
		return lo.Map(filenames, func(name string, _ int) string {
			return filepath.Join(dir, name)
		})
	})
	paths := append(
		lo.Uniq(*configFlag),
		lo.Filter(candidates, func(path string, _ int) bool {
			_, err := os.Stat(path)
			return err == nil
		})...,
	)

	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}
