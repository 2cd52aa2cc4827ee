package config

import (
	"path/filepath"
	"strings"

	"github.com/kjeldgaard/qbitctl/internal/domain"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// DefaultHost is used when neither the command line nor the config file
// set a host.
const DefaultHost = "http://127.0.0.1:8080"

var (
	// CfgFile is the --config flag value.
	CfgFile string

	// Overrides collects the global command line flags.
	Overrides domain.Overrides
)

// Load reads the config file at path, or searches ./qbitctl.toml and
// $HOME/.config/qbitctl/qbitctl.toml when path is empty. Loading never
// fails: a missing, unreadable or malformed file yields a zero
// FileConfig and resolution falls through to defaults.
func Load(path string) domain.FileConfig {
	v := viper.New()
	v.SetConfigType("toml")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("qbitctl")
		v.AddConfigPath(".")

		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "qbitctl"))
		}
	}

	var fileConfig domain.FileConfig

	if err := v.ReadInConfig(); err != nil {
		return domain.FileConfig{}
	}

	if err := v.Unmarshal(&fileConfig); err != nil {
		return domain.FileConfig{}
	}

	return fileConfig
}

// Resolve merges command line overrides, file config and built-in
// defaults into the effective settings. Per field the first present
// value wins: flag, then file, then default. Resolution is total and
// never fails.
func Resolve(overrides domain.Overrides, fileConfig domain.FileConfig) domain.Settings {
	settings := domain.Settings{
		Host:            DefaultHost,
		DefaultSavePath: fileConfig.DefaultSavePath,
		DryRun:          overrides.DryRun,
		Verbose:         overrides.Verbose,
	}

	if fileConfig.Qbit.Host != "" {
		settings.Host = fileConfig.Qbit.Host
	}
	if overrides.Host != "" {
		settings.Host = overrides.Host
	}

	// strip trailing slashes so URL joining stays consistent
	settings.Host = strings.TrimRight(settings.Host, "/")

	settings.Username = fileConfig.Qbit.Username
	if overrides.Username != "" {
		settings.Username = overrides.Username
	}

	settings.Password = fileConfig.Qbit.Password
	if overrides.Password != "" {
		settings.Password = overrides.Password
	}

	return settings
}
