package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML configuration file at path and returns a validated PowersConfig. A
// directory gets DefaultFileName appended.
func Load(path string) (*PowersConfig, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = path + string(os.PathSeparator) + DefaultFileName
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: open %q", path)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, errors.Wrapf(err, "config: parse %q", path)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r and validates the result.
func LoadFromReader(r io.Reader) (*PowersConfig, error) {
	cfg := &PowersConfig{
		LogLevel: LogInfo,
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, errors.Wrap(err, "config: decode yaml")
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate lists every problem with cfg in one error.
func Validate(cfg *PowersConfig) error {
	var problems []string

	if cfg.AtLevel < MinLevel || cfg.AtLevel > MaxLevel {
		problems = append(problems, fmt.Sprintf("at_level %d must be between %d and %d (inclusive)", cfg.AtLevel, MinLevel, MaxLevel))
	}
	if cfg.InputPath == "" {
		problems = append(problems, "input_path is required")
	}
	if !cfg.LogLevel.IsValid() {
		problems = append(problems, fmt.Sprintf("log_level %q is invalid; valid values: debug, info, warn, error", cfg.LogLevel))
	}
	for _, list := range []struct {
		key   string
		names []string
	}{
		{"power_categories", cfg.PowerCategories},
		{"global_categories", cfg.GlobalCategories},
		{"filter_powersets", cfg.FilterPowerSets},
	} {
		for i, name := range list.names {
			if strings.TrimSpace(name) == "" {
				problems = append(problems, fmt.Sprintf("%s[%d] is empty", list.key, i))
			}
		}
	}

	if len(problems) > 0 {
		return errors.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}
