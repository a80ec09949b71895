package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mkessler/startlayout/pkg/errors"
)

// defaultConfigName is looked up in the working directory when --config
// is not given.
const defaultConfigName = "startlayout.toml"

// Config is the optional tool configuration file. Command-line flags win
// over file values.
//
//	width = 6
//	override_options = 'LayoutCustomizationRestrictionType="OnlySpecifiedGroups"'
//	exclude = ["Administrative Tools"]
//	catalog = "apps.toml"
//	output = "C:\\Layouts\\startlayout.xml"
//
//	[apply]
//	mode = "machine"
//	mount = "C:\\Mount\\Profile"
type Config struct {
	Width           int      `toml:"width"`
	OverrideOptions string   `toml:"override_options"`
	Exclude         []string `toml:"exclude"`
	Catalog         string   `toml:"catalog"`
	Output          string   `toml:"output"`

	Apply ApplyConfig `toml:"apply"`
}

// ApplyConfig holds defaults for the apply command.
type ApplyConfig struct {
	Mode  string `toml:"mode"`
	Mount string `toml:"mount"`
}

// loadConfig reads the configuration file. An explicit path must exist; the
// default path is optional and silently yields a zero config when absent.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigName
	}

	var cfg Config
	if _, err := os.Stat(path); err != nil {
		if !explicit && os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config file %s", path)
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config file %s", path)
	}
	return cfg, nil
}
