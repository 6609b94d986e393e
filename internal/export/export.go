// Package export serializes a commit prompt configuration for external prompt engines.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/s0ders/cz-config/czconfig"
)

// Write encodes cfg to w in the given format.
func Write(w io.Writer, cfg czconfig.Config, format Format) error {
	switch format {
	case JSON:
		return writeJSON(w, cfg)
	case YAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(cfg); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}

		if err := encoder.Close(); err != nil {
			return fmt.Errorf("flushing YAML: %w", err)
		}

		return nil
	case TOML:
		if err := toml.NewEncoder(w).Encode(cfg); err != nil {
			return fmt.Errorf("encoding TOML: %w", err)
		}
		return nil
	case JS:
		return writeJS(w, cfg)
	default:
		return fmt.Errorf("unsupported export format %d", format)
	}
}

func writeJSON(w io.Writer, cfg czconfig.Config) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	return nil
}

// JSON is a valid JavaScript expression, so the module body is the JSON document itself.
func writeJS(w io.Writer, cfg czconfig.Config) error {
	var buf bytes.Buffer
	if err := writeJSON(&buf, cfg); err != nil {
		return err
	}

	body := bytes.TrimRight(buf.Bytes(), "\n")

	if _, err := fmt.Fprintf(w, "module.exports = %s;\n", body); err != nil {
		return fmt.Errorf("writing JS module: %w", err)
	}

	return nil
}
