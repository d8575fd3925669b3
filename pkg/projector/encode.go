// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package projector

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"text/template"

	"gopkg.in/yaml.v3"
)

// Format of the encoded configuration
type Format string

const (
	// FormatJSON encodes the configuration as indented JSON
	FormatJSON Format = "json"
	// FormatYAML encodes the configuration as YAML
	FormatYAML Format = "yaml"
	// FormatJS encodes the configuration as a CommonJS module
	FormatJS Format = "js"
)

// Formats lists the supported formats
var Formats = []Format{FormatJS, FormatJSON, FormatYAML}

//go:embed templates/config.js.tmpl
var templatesFS embed.FS

var jsTemplate = template.Must(template.ParseFS(templatesFS, "templates/config.js.tmpl"))

// ParseFormat returns the Format with the given name
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format '%s'. Must be one of %v", name, Formats)
}

// Ext is the file extension of the format
func (f Format) Ext() string {
	return string(f)
}

// Encode serializes the configuration. Source names the site descriptor
// in the header of generated modules.
func Encode(cfg *Config, format Format, source string) ([]byte, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJS:
		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		data := struct {
			Source string
			Config string
		}{
			Source: source,
			Config: string(out),
		}
		if err := jsTemplate.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("failed to render %s template: %w", format, err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown format '%s'", format)
	}
}
