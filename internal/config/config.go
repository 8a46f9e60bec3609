package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/pascal-triangle/internal/model"
)

// DefaultRows is the number of rows printed when nothing else is configured.
const DefaultRows = 10

// Config holds the settings that control a single run.
type Config struct {
	// Rows is the number of triangle rows to build. Must not be negative.
	Rows int `json:"rows" yaml:"rows"`

	// JSON selects JSON output instead of plain text rows.
	JSON bool `json:"json" yaml:"json"`
}

// Default returns the settings used when no config file is given.
func Default() Config {
	return Config{Rows: DefaultRows}
}

// Validate checks that the settings can be used to build a triangle.
func (c Config) Validate() error {
	if c.Rows < 0 {
		return model.NewCLIError(model.ExitInvalidArgument,
			fmt.Sprintf("rows must not be negative, got %d", c.Rows))
	}
	return nil
}

// IsYAML reports whether path names a YAML file, judged by its extension.
func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// Load reads the config file at path and layers it over Default.
//
// Returns a CLIError with ExitConfigNotFound if the file does not exist,
// ExitConfigInvalid if it cannot be parsed, and ExitInvalidArgument if the
// parsed values fail Validate.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, model.WrapCLIError(
				model.ExitConfigNotFound,
				fmt.Sprintf("config file not found: %s", path),
				err,
			)
		}
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data, IsYAML(path))
	if err != nil {
		return Config{}, model.WrapCLIError(
			model.ExitConfigInvalid,
			fmt.Sprintf("failed to parse config file %s", path),
			err,
		)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes config data over Default. When isYAML is false the data is
// treated as JSONC: comments and trailing commas are stripped first.
// An empty document yields Default.
func Parse(data []byte, isYAML bool) (Config, error) {
	cfg := Default()

	if isYAML {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("invalid YAML: %w", err)
		}
		return cfg, nil
	}

	cleanJSON := jsonc.ToJSON(data)
	if len(strings.TrimSpace(string(cleanJSON))) == 0 {
		return cfg, nil
	}
	if err := json.Unmarshal(cleanJSON, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}
	return cfg, nil
}
