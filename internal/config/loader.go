// Package config loads a modal configuration from YAML, TOML or JSON files.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/stagehand/internal/defaults"
	"github.com/alexisbeaulieu97/stagehand/internal/options"
	stagehanderrors "github.com/alexisbeaulieu97/stagehand/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Format identifies a supported configuration file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath infers the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", stagehanderrors.NewUnrecognizedOptionError("config format", filepath.Ext(path), []string{".yaml", ".yml", ".toml", ".json"})
	}
}

// Load reads path, decodes it according to its extension and validates the result.
func Load(path string) (options.Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return options.Config{}, stagehanderrors.NewParseError(path, 0, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return options.Config{}, stagehanderrors.NewParseError(path, 0, err)
	}

	return Decode(path, format, data)
}

// Decode parses data in the given format. Keys that are absent keep their
// baseline value; an absent primaryColor takes the theme's own brand color.
// Unknown keys are rejected.
func Decode(name string, format Format, data []byte) (options.Config, error) {
	cfg := defaults.Baseline()
	cfg.PrimaryColor = ""

	var err error
	switch format {
	case FormatYAML:
		err = decodeYAML(data, &cfg)
	case FormatTOML:
		err = decodeTOML(data, &cfg)
	case FormatJSON:
		err = decodeJSON(data, &cfg)
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return options.Config{}, stagehanderrors.NewParseError(name, extractLine(err), err)
	}

	if cfg.PrimaryColor == "" {
		cfg.PrimaryColor = defaults.PrimaryColorFor(cfg.Theme)
	}

	if err := cfg.Validate(); err != nil {
		return options.Config{}, err
	}
	return cfg, nil
}

func decodeYAML(data []byte, cfg *options.Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func decodeTOML(data []byte, cfg *options.Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func decodeJSON(data []byte, cfg *options.Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// Encode writes cfg in the given format.
func Encode(w io.Writer, format Format, cfg options.Config) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(cfg)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	var tomlErr toml.ParseError
	if errors.As(err, &tomlErr) {
		return tomlErr.Position.Line
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
