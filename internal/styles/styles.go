// Package styles maps semantic style names to the concrete CSS classes
// emitted for them.
package styles

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Semantic names referenced by the homepage components.
const (
	HeroBanner = "heroBanner"
	Buttons    = "buttons"
	Features   = "features"
	FeatureSvg = "featureSvg"
)

//go:embed manifest.yaml
var manifestYAML []byte

// Manifest is an immutable name → class lookup.
type Manifest struct {
	classes map[string]string
}

var defaultManifest = mustParse(manifestYAML)

// Default returns the manifest embedded with the site.
func Default() *Manifest {
	return defaultManifest
}

func mustParse(data []byte) *Manifest {
	m, err := Parse(data)
	if err != nil {
		panic(fmt.Errorf("failed to parse style manifest: %w", err))
	}
	return m
}

// Parse decodes a YAML mapping of semantic names to class names.
func Parse(data []byte) (*Manifest, error) {
	var classes map[string]string
	if err := yaml.Unmarshal(data, &classes); err != nil {
		return nil, err
	}
	for name, class := range classes {
		if strings.TrimSpace(class) == "" {
			return nil, fmt.Errorf("style %q has an empty class", name)
		}
		if strings.ContainsAny(class, " \t\n") {
			return nil, fmt.Errorf("style %q maps to more than one class: %q", name, class)
		}
	}
	if classes == nil {
		classes = map[string]string{}
	}
	return &Manifest{classes: classes}, nil
}

// Class returns the class for name, or "" when the name is not defined.
func (m *Manifest) Class(name string) string {
	return m.classes[name]
}

// Names returns the defined semantic names, sorted.
func (m *Manifest) Names() []string {
	names := make([]string, 0, len(m.classes))
	for name := range m.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Require returns an error listing every name that is not defined.
func (m *Manifest) Require(names ...string) error {
	var errs []error
	for _, name := range names {
		if _, ok := m.classes[name]; !ok {
			errs = append(errs, fmt.Errorf("style %q is not defined", name))
		}
	}
	return errors.Join(errs...)
}
