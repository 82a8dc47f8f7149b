// Package yaml exports a parsed section store as a YAML document, for
// interop with tools that do not speak the native format and for
// debugging dumps of what a load actually produced.
package yaml

import (
	"errors"
	"fmt"

	cfg "github.com/0xalexb/hjarta-cfg"

	"github.com/goccy/go-yaml"
)

// ErrNoSections is returned when the store holds no sections.
var ErrNoSections = errors.New("no sections to export")

// document mirrors one section in the exported YAML.
type document struct {
	Inheritances []string          `yaml:"inheritances,omitempty"`
	Attributes   []string          `yaml:"attributes,omitempty"`
	Values       map[string]string `yaml:"values,omitempty"`
}

// Export marshals the parser's section store. Each section becomes a
// mapping with its inheritances, attributes and values; empty lists are
// omitted. Array values stay as their comma-joined string, exactly as
// stored.
func Export(parser *cfg.Parser) ([]byte, error) {
	sections := parser.Sections()
	if len(sections) == 0 {
		return nil, ErrNoSections
	}

	out := make(map[string]document, len(sections))

	for name, section := range sections {
		out[name] = document{
			Inheritances: section.Inheritances,
			Attributes:   section.Attributes,
			Values:       section.Values,
		}
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return data, nil
}
