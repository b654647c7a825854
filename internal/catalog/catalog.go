// Package catalog describes the example routines: their names, titles and
// which one the process runs. The catalog is embedded at build time; nothing
// is read from flags, the environment or disk.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

var (
	ErrEmptyCatalog     = errors.New("catalog has no examples")
	ErrDuplicateExample = errors.New("duplicate example name")
	ErrUnknownDefault   = errors.New("default example not in catalog")
)

// Entry is one example routine.
type Entry struct {
	Name   string   `yaml:"name"`
	Title  string   `yaml:"title"`
	Topics []string `yaml:"topics"`
	Links  []string `yaml:"links"`
}

// Catalog is the decoded catalog.yaml.
type Catalog struct {
	Default  string  `yaml:"default"`
	LogLevel string  `yaml:"log_level"`
	Examples []Entry `yaml:"examples"`
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(embedded)
}

// Parse decodes and validates a catalog document. Unknown keys are errors.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks names are present and unique, the default exists and the
// log level is one zap understands.
func (c *Catalog) Validate() error {
	if len(c.Examples) == 0 {
		return ErrEmptyCatalog
	}
	seen := make(map[string]struct{}, len(c.Examples))
	for i, e := range c.Examples {
		if e.Name == "" {
			return fmt.Errorf("example #%d: missing name", i)
		}
		if _, dup := seen[e.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateExample, e.Name)
		}
		seen[e.Name] = struct{}{}
	}
	if _, ok := seen[c.Default]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDefault, c.Default)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level; empty means info.
func (c *Catalog) Level() (zapcore.Level, error) {
	if c.LogLevel == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

// Lookup finds an entry by name.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	for _, e := range c.Examples {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Names lists example names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Examples))
	for i, e := range c.Examples {
		names[i] = e.Name
	}
	return names
}
