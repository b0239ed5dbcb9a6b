// SPDX-License-Identifier: MIT

// Package config loads walkthrough parameters with viper.
//
// Precedence, lowest to highest: built-in defaults, TOML config file,
// QSVT_* environment variables, command-line flags bound by the caller.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/katalvlaran/qsvt/walkthrough"
)

const (
	// EnvPrefix prefixes every environment override (QSVT_DEGREE, QSVT_DOMAIN_LOW, ...).
	EnvPrefix = "QSVT"
	// FileName is the config file searched for when no path is given.
	FileName = "qsvt.toml"

	DefaultFilePermissions = 0644
)

// ErrConfigExists is returned by Write when the target file already exists.
var ErrConfigExists = errors.New("config: file already exists")

// SetDefaults registers every key of walkthrough.DefaultConfig on v.
func SetDefaults(v *viper.Viper) {
	d := walkthrough.DefaultConfig()
	v.SetDefault("theta", d.Theta)
	v.SetDefault("eigenvalues", d.Eigenvalues)
	v.SetDefault("powers", d.Powers)
	v.SetDefault("domain_low", d.DomainLow)
	v.SetDefault("degree", d.Degree)
	v.SetDefault("fit_samples", d.FitSamples)
	v.SetDefault("plot_points", d.PlotPoints)
	v.SetDefault("alphas", d.Alphas)
	v.SetDefault("sweep_degrees", d.SweepDegrees)
	v.SetDefault("sweep_domains", d.SweepDomains)
	v.SetDefault("tolerance", d.Tolerance)
	v.SetDefault("backend", d.Backend)
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	return v
}

// ReadFile merges the TOML file at path into v. An empty path searches the
// working directory and ~/.qsvt for FileName; finding nothing is not an error.
// It returns the file actually used, or "".
func ReadFile(v *viper.Viper, path string) (string, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return "", errors.WithHint(
				errors.Wrapf(err, "failed to read config file %s", path),
				"create one with: qsvt config init "+path,
			)
		}
		return path, nil
	}

	for _, dir := range searchDirs() {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		v.SetConfigFile(candidate)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return "", errors.Wrapf(err, "failed to read config file %s", candidate)
		}
		return candidate, nil
	}

	return "", nil
}

// Unmarshal decodes v into a validated walkthrough.Config.
func Unmarshal(v *viper.Viper) (walkthrough.Config, error) {
	var cfg walkthrough.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return walkthrough.Config{}, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return walkthrough.Config{}, err
	}

	return cfg, nil
}

// Load is New, ReadFile and Unmarshal in one step.
func Load(path string) (walkthrough.Config, error) {
	v := New()
	if _, err := ReadFile(v, path); err != nil {
		return walkthrough.Config{}, err
	}

	return Unmarshal(v)
}

// Marshal encodes cfg as TOML.
func Marshal(cfg walkthrough.Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal config to TOML")
	}

	return data, nil
}

// Write stores cfg at path as TOML, creating parent directories. An existing
// file is only replaced when overwrite is set.
func Write(path string, cfg walkthrough.Config, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.WithHint(
				errors.Wrapf(ErrConfigExists, "%s", path),
				"pass --force to overwrite",
			)
		}
	}
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return errors.Wrapf(err, "failed to create %s", dir)
		}
	}
	header := []byte("# qsvt walkthrough configuration\n")
	if err := os.WriteFile(path, append(header, data...), DefaultFilePermissions); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	return nil
}

func searchDirs() []string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".qsvt"))
	}

	return dirs
}
