// Package config parses the handful of options this repository's loader
// and CLI recognize, either from a "key=value,key=value" string (the
// same shape as the teacher's UCI "setoption name <k> value <v>"
// handling, flattened to one line) or from a YAML file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the options the evaluator loader and CLI understand.
// Field names match the YAML keys; SetOptions below maps the
// case-insensitive "key=value" spelling onto the same fields.
type Config struct {
	EvalFile        string `yaml:"evalFile"`
	EvalSaveDir     string `yaml:"evalSaveDir"`
	SkipLoadingEval bool   `yaml:"skipLoadingEval"`
}

// Default returns the default configuration: no file set, saves go to
// the current directory, loading is not skipped.
func Default() Config {
	return Config{EvalSaveDir: "."}
}

// Load reads a YAML configuration file. A missing file is not an error;
// Load returns Default() in that case, mirroring the teacher's
// preferences-with-defaults pattern.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// SetOptions applies a "key=value,key=value" string on top of cfg,
// matching keys case-insensitively the way handleSetOption switches on
// a lowercased option name. Unknown keys are reported, not ignored.
func (cfg *Config) SetOptions(options string) error {
	if strings.TrimSpace(options) == "" {
		return nil
	}
	for _, pair := range strings.Split(options, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("config: malformed option %q, expected key=value", pair)
		}
		if err := cfg.setOne(strings.ToLower(strings.TrimSpace(k)), strings.TrimSpace(v)); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *Config) setOne(key, value string) error {
	switch key {
	case "evalfile":
		cfg.EvalFile = value
	case "evalsavedir":
		cfg.EvalSaveDir = value
	case "skiploadingeval":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("config: skipLoadingEval expects a bool, got %q: %w", value, err)
		}
		cfg.SkipLoadingEval = b
	default:
		return fmt.Errorf("config: unknown option %q", key)
	}
	return nil
}
