// Package config resolves widget attributes from a YAML file into a
// showmore.Config. Bad attribute values never reach the widget: they are
// logged and replaced by defaults here.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/marcus/showmore/internal/logger"
	"github.com/marcus/showmore/internal/showmore"
)

// Attributes mirrors the attribute file. Nil fields were absent.
type Attributes struct {
	MaxTextLength *int    `yaml:"maxTextLength"`
	ShowMoreColor *string `yaml:"showMoreColor"`
	ShowMoreText  *string `yaml:"showMoreText"`
	ShowLessText  *string `yaml:"showLessText"`
	ExpandText    *bool   `yaml:"expandText"`
}

// Resolve applies defaults to every absent or unusable attribute.
func (a Attributes) Resolve() showmore.Config {
	cfg := showmore.DefaultConfig()

	if a.MaxTextLength != nil {
		cfg.MaxLength = *a.MaxTextLength
	}

	if a.ShowMoreColor != nil && *a.ShowMoreColor != "" {
		c, err := ParseColor(*a.ShowMoreColor)
		if err != nil {
			logger.Warn("falling back to default affix color", "value", *a.ShowMoreColor, "error", err)
		} else {
			cfg.AffixColor = c
		}
	}

	// Each label falls back to its own default.
	if a.ShowMoreText != nil && *a.ShowMoreText != "" {
		cfg.MoreLabel = *a.ShowMoreText
	}
	if a.ShowLessText != nil && *a.ShowLessText != "" {
		cfg.LessLabel = *a.ShowLessText
	}

	if a.ExpandText != nil {
		cfg.Expanded = *a.ExpandText
	}
	return cfg
}

// Parse decodes an attribute document and resolves it.
func Parse(data []byte) (showmore.Config, error) {
	var a Attributes
	if err := yaml.Unmarshal(data, &a); err != nil {
		return showmore.DefaultConfig(), fmt.Errorf("parsing attributes: %w", err)
	}
	return a.Resolve(), nil
}

// Load reads the attribute file at path. A missing file is not an error and
// yields the defaults.
func Load(path string) (showmore.Config, error) {
	if path == "" {
		return showmore.DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Debug("attribute file not found, using defaults", "path", path)
		return showmore.DefaultConfig(), nil
	}
	if err != nil {
		return showmore.DefaultConfig(), fmt.Errorf("reading %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	logger.Info("loaded attributes", "path", path, "maxLength", cfg.MaxLength, "expanded", cfg.Expanded)
	return cfg, nil
}
