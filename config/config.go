package config

import (
	"log/slog"
	"path/filepath"

	"github.com/samber/lo"

	"powers-dict/model"
)

const (
	DefaultFileName = "PowersConfig.yaml"
	MinLevel        = 1
	MaxLevel        = 50
)

type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

func (l LogLevel) IsValid() bool {
	return lo.Contains([]LogLevel{LogDebug, LogInfo, LogWarn, LogError}, l)
}

// Level maps to slog, anything unknown is info.
func (l LogLevel) Level() slog.Level {
	switch l {
	case LogDebug:
		return slog.LevelDebug
	case LogWarn:
		return slog.LevelWarn
	case LogError:
		return slog.LevelError
	}
	return slog.LevelInfo
}

// PowersConfig says where the bins are and which part of the graph to keep.
type PowersConfig struct {
	// Issue and Source are free text describing where the bins came from.
	Issue    string   `yaml:"issue"`
	Source   string   `yaml:"source"`
	AtLevel  int      `yaml:"at_level"`
	LogLevel LogLevel `yaml:"log_level"`
	// InputPath is the directory holding the extracted .bin files.
	InputPath string `yaml:"input_path"`
	// PowerCategories are the top-level categories, empty keeps all of them.
	PowerCategories []string `yaml:"power_categories"`
	// GlobalCategories are attached to every archetype.
	GlobalCategories []string `yaml:"global_categories"`
	// FilterPowerSets drops power sets whose name contains any of these.
	FilterPowerSets []string `yaml:"filter_powersets"`
}

func (c *PowersConfig) JoinToInputPath(name string) string {
	return filepath.Join(c.InputPath, name)
}

func (c *PowersConfig) PowerCategoryKeys() []model.NameKey {
	return toNameKeys(c.PowerCategories)
}

func (c *PowersConfig) GlobalCategoryKeys() []model.NameKey {
	return toNameKeys(c.GlobalCategories)
}

func toNameKeys(names []string) []model.NameKey {
	return lo.Map(
		names,
		func(name string, _ int) model.NameKey {
			return model.NewNameKey(name)
		},
	)
}
