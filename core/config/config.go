// File: config.go
// Title: Text Profile Configuration
// Description: Loads text profiles from TOML and YAML files or strings. The
//              format is detected from the file extension, missing keys keep
//              their defaults, environment variables with a prefix override
//              file values and the result is validated before use.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mterror "github.com/msto63/mtext/core/error"
	mterrors "github.com/msto63/mtext/core/errors"
	mtlog "github.com/msto63/mtext/core/log"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Alnum modes accepted in text.alnum
const (
	AlnumStrict = "strict"
	AlnumCompat = "compat"
)

// DefaultEnvPrefix is the environment prefix used by Load
const DefaultEnvPrefix = "MTEXT"

// Profile holds the settings a text container can be configured with
type Profile struct {
	Text TextSection `toml:"text" yaml:"text"`
	Log  LogSection  `toml:"log" yaml:"log"`

	source string
	format Format
}

// TextSection configures text behaviour
type TextSection struct {
	Alnum string `toml:"alnum" yaml:"alnum"`
}

// LogSection configures the logger attached to text values
type LogSection struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
	Name   string `toml:"name" yaml:"name"`
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format // File format (default: auto-detect)
	EnvPrefix string // Environment variable prefix (empty disables overrides)
}

// Default returns the built-in profile
func Default() *Profile {
	return &Profile{
		Text: TextSection{Alnum: AlnumStrict},
		Log: LogSection{
			Level:  mtlog.DefaultLevel().String(),
			Format: mtlog.FormatJSON.String(),
			Name:   "mtext",
		},
		format: FormatAuto,
	}
}

// Load loads a profile from a file, applying MTEXT_* environment overrides
func Load(filePath string) (*Profile, error) {
	return LoadWithOptions(filePath, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: DefaultEnvPrefix,
	})
}

// LoadWithOptions loads a profile from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Profile, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, mterrors.NewErrorBuilder(mterrors.ModuleConfig).
			Operation("load").
			Message("config file path cannot be empty").
			Code(mterror.CodeInvalidConfig).
			Build()
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, mterrors.NotFound(mterrors.ModuleConfig, "load", filePath).
				WithDetail("filePath", filePath)
		}
		return nil, mterrors.ConfigError(mterrors.ModuleConfig, "load", err, "failed to read config file").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	profile, err := parseProfile(content, format)
	if err != nil {
		if mtErr, ok := mterror.As(err); ok {
			mtErr.WithDetail("filePath", filePath)
		}
		return nil, err
	}
	profile.source = filePath

	if options.EnvPrefix != "" {
		profile.applyEnv(options.EnvPrefix)
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}

// LoadFromString parses a profile from content without environment overrides
func LoadFromString(content string, format Format) (*Profile, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	profile, err := parseProfile([]byte(content), format)
	if err != nil {
		return nil, err
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}

// FromEnv returns the default profile with environment overrides applied
func FromEnv(prefix string) (*Profile, error) {
	profile := Default()
	profile.applyEnv(prefix)

	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}

// detectFormat detects the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseProfile decodes content over the defaults and rejects unknown keys
func parseProfile(content []byte, format Format) (*Profile, error) {
	profile := Default()
	profile.format = format

	switch format {
	case FormatTOML:
		meta, err := toml.Decode(string(content), profile)
		if err != nil {
			return nil, mterrors.ConfigError(mterrors.ModuleConfig, "parse", err, "TOML parse error").
				WithDetail("format", format.String())
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, key := range undecoded {
				keys[i] = key.String()
			}
			sort.Strings(keys)
			return nil, mterrors.InvalidConfig(mterrors.ModuleConfig, keys[0], nil, "unknown configuration key").
				WithDetail("unknown_keys", keys)
		}

	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		if err := decoder.Decode(profile); err != nil && !errors.Is(err, io.EOF) {
			return nil, mterrors.ConfigError(mterrors.ModuleConfig, "parse", err, "YAML parse error").
				WithDetail("format", format.String())
		}

	default:
		return nil, mterrors.NewErrorBuilder(mterrors.ModuleConfig).
			Operation("parse").
			Messagef("unsupported format: %s", format).
			Code(mterror.CodeInvalidConfig).
			Detail("format", format.String()).
			Build()
	}

	return profile, nil
}

// applyEnv overrides profile values from PREFIX_SECTION_KEY variables
func (p *Profile) applyEnv(prefix string) {
	targets := map[string]*string{
		"text.alnum": &p.Text.Alnum,
		"log.level":  &p.Log.Level,
		"log.format": &p.Log.Format,
		"log.name":   &p.Log.Name,
	}
	for key, target := range targets {
		if value, ok := os.LookupEnv(formatEnvKey(prefix, key)); ok && value != "" {
			*target = value
		}
	}
}

// formatEnvKey converts a config key to environment variable format
func formatEnvKey(prefix, key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if prefix == "" {
		return envKey
	}
	return strings.ToUpper(prefix) + "_" + envKey
}

// Validate checks every value of the profile
func (p *Profile) Validate() error {
	switch strings.ToLower(strings.TrimSpace(p.Text.Alnum)) {
	case AlnumStrict, AlnumCompat:
	default:
		return mterrors.InvalidConfig(mterrors.ModuleConfig, "text.alnum", p.Text.Alnum,
			"must be \"strict\" or \"compat\"")
	}

	if _, err := mtlog.ParseLevel(p.Log.Level); err != nil {
		return mterrors.InvalidConfig(mterrors.ModuleConfig, "log.level", p.Log.Level, err.Error())
	}
	if _, err := mtlog.ParseFormat(p.Log.Format); err != nil {
		return mterrors.InvalidConfig(mterrors.ModuleConfig, "log.format", p.Log.Format, err.Error())
	}
	return nil
}

// AlnumMode returns the normalized text.alnum value
func (p *Profile) AlnumMode() string {
	return strings.ToLower(strings.TrimSpace(p.Text.Alnum))
}

// NewLogger builds a logger from the log section writing to output
func (p *Profile) NewLogger(output io.Writer) (*mtlog.Logger, error) {
	level, err := mtlog.ParseLevel(p.Log.Level)
	if err != nil {
		return nil, mterrors.InvalidConfig(mterrors.ModuleConfig, "log.level", p.Log.Level, err.Error())
	}
	format, err := mtlog.ParseFormat(p.Log.Format)
	if err != nil {
		return nil, mterrors.InvalidConfig(mterrors.ModuleConfig, "log.format", p.Log.Format, err.Error())
	}

	return mtlog.NewWithConfig(mtlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   p.Log.Name,
	}), nil
}

// Source returns the file the profile was loaded from, if any
func (p *Profile) Source() string {
	return p.source
}

// Format returns the format the profile was parsed from
func (p *Profile) Format() Format {
	return p.format
}
