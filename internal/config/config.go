// Package config resolves lvpath settings from defaults, an optional YAML
// file, LVPATH_* environment variables and command-line overrides, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is named explicitly.
const DefaultPath = "lvpath.yaml"

// Environment variable names.
const (
	EnvNodes       = "LVPATH_NODES"
	EnvEdges       = "LVPATH_EDGES"
	EnvLogLevel    = "LVPATH_LOG_LEVEL"
	EnvLogFormat   = "LVPATH_LOG_FORMAT"
	EnvAlgorithm   = "LVPATH_ALGORITHM"
	EnvLabelPolicy = "LVPATH_LABEL_POLICY"
	EnvDOT         = "LVPATH_DOT"
)

var validate = validator.New()

// Config holds all settings of a run.
type Config struct {
	Nodes       string `yaml:"nodes" validate:"required"`
	Edges       string `yaml:"edges" validate:"required"`
	Algorithm   string `yaml:"algorithm" validate:"oneof=bfs dijkstra"`
	LabelPolicy string `yaml:"label_policy" validate:"oneof=last-wins first-wins reject"`
	LogLevel    string `yaml:"log_level" validate:"oneof=trace debug info warn warning error fatal panic"`
	LogFormat   string `yaml:"log_format" validate:"oneof=text json"`
	DOT         bool   `yaml:"dot"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Nodes:       "nodes.txt",
		Edges:       "edges.txt",
		Algorithm:   "bfs",
		LabelPolicy: "last-wins",
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// Override mutates a Config after file and environment values are applied.
// The CLI uses it for flags the user set explicitly.
type Override func(*Config)

// Load resolves the configuration.
//
// path names a YAML file. When explicit is false a missing file is ignored,
// otherwise it is an error. The result is validated after all overrides.
func Load(path string, explicit bool, overrides ...Override) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	for _, o := range overrides {
		o(cfg)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings against their constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q (got %q)", fe.Field(), fe.Tag(), fmt.Sprint(fe.Value())))
			}
			return fmt.Errorf("config validation: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("config validation: %w", err)
	}

	return nil
}

func (c *Config) normalize() {
	c.Algorithm = strings.ToLower(strings.TrimSpace(c.Algorithm))
	c.LabelPolicy = strings.ToLower(strings.TrimSpace(c.LabelPolicy))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
}

func applyEnv(c *Config) error {
	setFromEnv(EnvNodes, &c.Nodes)
	setFromEnv(EnvEdges, &c.Edges)
	setFromEnv(EnvLogLevel, &c.LogLevel)
	setFromEnv(EnvLogFormat, &c.LogFormat)
	setFromEnv(EnvAlgorithm, &c.Algorithm)
	setFromEnv(EnvLabelPolicy, &c.LabelPolicy)

	if v := os.Getenv(EnvDOT); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s must be a boolean, got %q", EnvDOT, v)
		}
		c.DOT = b
	}

	return nil
}

func setFromEnv(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
