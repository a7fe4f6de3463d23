package templated

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition declares one renderer variant.
type Definition struct {
	Name         string `json:"name" yaml:"name"`
	Description  string `json:"description,omitempty" yaml:"description,omitempty"`
	RunCommand   string `json:"run_command" yaml:"run_command"`
	Dependencies string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	// Source records the file the definition was read from, if any.
	Source string `json:"-" yaml:"-"`
}

// Document is the root of a definition file.
type Document struct {
	Variants []Definition `json:"variants" yaml:"variants"`
}

// Parse decodes a definition file. The extension of path selects the decoder;
// unknown extensions try JSON first and fall back to YAML.
func Parse(data []byte, path string) (Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("templated: file %s is empty", path)
	}

	var doc Document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("templated: parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("templated: parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			if yamlErr := yaml.Unmarshal(data, &doc); yamlErr != nil {
				return Document{}, fmt.Errorf("templated: parse %s: invalid JSON or YAML", path)
			}
		}
	}

	if len(doc.Variants) == 0 {
		return Document{}, fmt.Errorf("templated: file %s defines no variants", path)
	}
	for i := range doc.Variants {
		doc.Variants[i].Source = path
	}
	return doc, nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
