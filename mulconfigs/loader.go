package mulconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/mulscan/cmds"
	"github.com/reusee/mulscan/configs"
	"github.com/reusee/mulscan/logs"
)

//go:embed schema.cue
var schema string

var configFileFlag = cmds.Var[string]("-config")

// ConfigsLoader looks for mulscan.cue in the working directory, the user config directory and /etc, in that precedence.
// A file named by -config comes first.
func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	if *configFileFlag != "" {
		paths = append(paths, *configFileFlag)
	}

	filenames := []string{
		"mulscan.cue",
		".mulscan.cue",
	}

	// working directory
	workingDir, err := os.Getwd()
	if err == nil {
		for _, filename := range filenames {
			path := filepath.Join(workingDir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	// user config dir
	configDir, err := os.UserConfigDir()
	if err == nil {
		for _, filename := range filenames {
			path := filepath.Join(configDir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	// system wide dir
	for _, filename := range filenames {
		path := filepath.Join("/etc", filename)
		if _, err := os.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}

	return configs.NewLoader(paths, schema)
}
