// Package config holds the settings of the routedoc command. They can come
// from a JSON, YAML or HCL file and from command line flags.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/yaml.v3"

	"github.com/Aman-s12345/go-routedoc/internal/errors"
	"github.com/Aman-s12345/go-routedoc/internal/logging"
	"github.com/Aman-s12345/go-routedoc/internal/paramtable"
)

const (
	ModeDoclets = "doclets"
	ModeOpenAPI = "openapi"

	FormatYAML = "yaml"
	FormatJSON = "json"

	LogFormatText = "text"
	LogFormatJSON = "json"
)

type Config struct {
	InputPath        string `json:"input_path" yaml:"input_path" hcl:"input_path,optional"`
	OutputPath       string `json:"output_path" yaml:"output_path" hcl:"output_path,optional"`
	OutputFormat     string `json:"output_format" yaml:"output_format" hcl:"output_format,optional"`
	Mode             string `json:"mode" yaml:"mode" hcl:"mode,optional"`
	TableFormat      string `json:"table_format" yaml:"table_format" hcl:"table_format,optional"`
	ServerURL        string `json:"server_url" yaml:"server_url" hcl:"server_url,optional"`
	Title            string `json:"title" yaml:"title" hcl:"title,optional"`
	Version          string `json:"version" yaml:"version" hcl:"version,optional"`
	Description      string `json:"description" yaml:"description" hcl:"description,optional"`
	Workers          int    `json:"workers" yaml:"workers" hcl:"workers,optional"`
	AllowUnknownTags bool   `json:"allow_unknown_tags" yaml:"allow_unknown_tags" hcl:"allow_unknown_tags,optional"`
	LogLevel         string `json:"log_level" yaml:"log_level" hcl:"log_level,optional"`
	LogFormat        string `json:"log_format" yaml:"log_format" hcl:"log_format,optional"`
	LogTimestamps    bool   `json:"log_timestamps" yaml:"log_timestamps" hcl:"log_timestamps,optional"`
}

func Default() Config {
	return Config{
		InputPath:    "doclets.yaml",
		OutputPath:   "openapi.yaml",
		OutputFormat: FormatYAML,
		Mode:         ModeOpenAPI,
		TableFormat:  paramtable.FormatHTML,
		ServerURL:    "http://localhost:3000",
		Title:        "API Server",
		Version:      "1.0.0",
		LogLevel:     "info",
		LogFormat:    LogFormatText,
	}
}

// Load reads the config file at path. The format follows the extension:
// .json, .yaml/.yml or .hcl. Settings the file leaves out keep their
// defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, errors.KindInternal, "failed to read config file %s", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&cfg)
	case ".hcl":
		err = hclsimple.Decode(filepath.Base(path), data, nil, &cfg)
	default:
		return Config{}, errors.Errorf(errors.KindValidation, "unsupported config file %q (use .json, .yaml, .yml or .hcl)", path)
	}
	if err != nil {
		return Config{}, errors.Attr(errors.Wrap(err, errors.KindValidation, "failed to parse config file"), "path", path)
	}

	cfg.fillDefaults()
	return cfg, nil
}

// fillDefaults replaces empty string settings with their defaults.
func (c *Config) fillDefaults() {
	def := Default()
	orDefault(&c.InputPath, def.InputPath)
	orDefault(&c.OutputPath, def.OutputPath)
	orDefault(&c.OutputFormat, def.OutputFormat)
	orDefault(&c.Mode, def.Mode)
	orDefault(&c.TableFormat, def.TableFormat)
	orDefault(&c.Title, def.Title)
	orDefault(&c.Version, def.Version)
	orDefault(&c.LogLevel, def.LogLevel)
	orDefault(&c.LogFormat, def.LogFormat)
}

func orDefault(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

// Logging returns the process logger settings.
func (c Config) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.LogLevel
	cfg.JSON = c.LogFormat == LogFormatJSON
	cfg.Timestamps = c.LogTimestamps
	return cfg
}

// Validate checks the enumerated settings. A zero worker count means one
// worker per CPU.
func (c Config) Validate() error {
	if c.InputPath == "" {
		return errors.New(errors.KindValidation, "input path is required")
	}
	if c.OutputFormat != FormatYAML && c.OutputFormat != FormatJSON {
		return errors.Errorf(errors.KindValidation, "unsupported format: %s (supported: json, yaml)", c.OutputFormat)
	}
	if c.Mode != ModeDoclets && c.Mode != ModeOpenAPI {
		return errors.Errorf(errors.KindValidation, "unsupported mode: %s (supported: doclets, openapi)", c.Mode)
	}
	if !slices.Contains(paramtable.Formats(), c.TableFormat) {
		return errors.Errorf(errors.KindValidation, "unsupported table format: %s (supported: %s)",
			c.TableFormat, strings.Join(paramtable.Formats(), ", "))
	}
	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		return errors.Errorf(errors.KindValidation, "unsupported log format: %s (supported: text, json)", c.LogFormat)
	}
	if c.Workers < 0 {
		return errors.Errorf(errors.KindValidation, "workers must not be negative, got %d", c.Workers)
	}
	return nil
}
