package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ZebulonRouseFrantzich/mambastrap/internal/platform"
)

// EnvPrefix is the prefix for environment variable answers, for example
// MAMBASTRAP_ROOT_PREFIX.
const EnvPrefix = "MAMBASTRAP"

// Viper keys for the four answers.
const (
	KeyRootPrefix = "root_prefix"
	KeyInitShell  = "init_shell"
	KeyShell      = "shell"
	KeyBinPath    = "bin_path"
)

// flagKeys maps command line flag names to viper keys.
var flagKeys = map[string]string{
	"root-prefix": KeyRootPrefix,
	"init-shell":  KeyInitShell,
	"shell":       KeyShell,
	"bin-path":    KeyBinPath,
}

// NewViper builds a viper instance reading answers from configFile (YAML,
// TOML or JSON, optional), MAMBASTRAP_* environment variables and any of
// the answer flags present in flags.
func NewViper(configFile string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	return v, nil
}

// ViperCollector answers the questions from a viper instance without
// prompting. Missing keys count as empty answers.
type ViperCollector struct {
	v *viper.Viper
}

// NewViperCollector wraps v. A nil v uses a fresh instance with only
// environment variables bound.
func NewViperCollector(v *viper.Viper) *ViperCollector {
	if v == nil {
		v = viper.New()
		v.SetEnvPrefix(EnvPrefix)
		v.AutomaticEnv()
	}
	return &ViperCollector{v: v}
}

// RootPrefix implements Collector.
func (c *ViperCollector) RootPrefix() (string, error) {
	return ParseRootPrefix(c.v.GetString(KeyRootPrefix)), nil
}

// InitShell implements Collector. Native booleans from config files and the
// strings "true" and "false" from the environment are accepted as well as
// the usual y/n answers.
func (c *ViperCollector) InitShell() (bool, error) {
	switch val := c.v.Get(KeyInitShell).(type) {
	case bool:
		return val, nil
	case nil:
		return ParseInitShell("")
	default:
		answer := c.v.GetString(KeyInitShell)
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return ParseInitShell(answer)
	}
}

// AskForShell implements Collector.
func (c *ViperCollector) AskForShell() (string, error) {
	return ParseShell(c.v.GetString(KeyShell))
}

// BinPath implements Collector.
func (c *ViperCollector) BinPath(p platform.Platform) (string, error) {
	return ParseBinPath(c.v.GetString(KeyBinPath), p), nil
}
