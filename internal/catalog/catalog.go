package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyName indicates a species row without a name.
	ErrEmptyName = errors.New("species name is empty")
	// ErrDuplicateSpecies indicates two rows share a name.
	ErrDuplicateSpecies = errors.New("duplicate species")
	// ErrInvalidLength indicates an unrecognized length class.
	ErrInvalidLength = errors.New("invalid length class")
)

// Catalog is an immutable, ordered list of species templates.
type Catalog struct {
	templates []SpeciesTemplate
	index     map[string]int
}

// New validates and copies templates into a Catalog, keeping their order.
func New(templates ...SpeciesTemplate) (*Catalog, error) {
	c := &Catalog{
		templates: make([]SpeciesTemplate, 0, len(templates)),
		index:     make(map[string]int, len(templates)),
	}
	for i, t := range templates {
		t.Name = strings.TrimSpace(t.Name)
		if t.Name == "" {
			return nil, fmt.Errorf("row %d: %w", i+1, ErrEmptyName)
		}
		if _, exists := c.index[t.Name]; exists {
			return nil, fmt.Errorf("row %d: %w: %s", i+1, ErrDuplicateSpecies, t.Name)
		}
		t.Color = strings.TrimSpace(t.Color)
		t.Texture = strings.TrimSpace(t.Texture)
		t.Shape = strings.TrimSpace(t.Shape)
		t.Habitat = strings.TrimSpace(t.Habitat)
		length, err := ParseLengthClass(string(t.Length))
		if err != nil {
			return nil, fmt.Errorf("row %d (%s): %w", i+1, t.Name, err)
		}
		t.Length = length
		c.index[t.Name] = len(c.templates)
		c.templates = append(c.templates, t)
	}
	return c, nil
}

// MustNew is New for static tables; it panics on invalid input.
func MustNew(templates ...SpeciesTemplate) *Catalog {
	c, err := New(templates...)
	if err != nil {
		panic(err)
	}
	return c
}

// All returns the templates in catalog order. The slice is a copy.
func (c *Catalog) All() []SpeciesTemplate {
	if c == nil {
		return nil
	}
	out := make([]SpeciesTemplate, len(c.templates))
	copy(out, c.templates)
	return out
}

// Len returns the number of species.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.templates)
}

// Lookup finds a species by exact name.
func (c *Catalog) Lookup(name string) (SpeciesTemplate, bool) {
	if c == nil {
		return SpeciesTemplate{}, false
	}
	i, ok := c.index[name]
	if !ok {
		return SpeciesTemplate{}, false
	}
	return c.templates[i], true
}

// Names returns species names in catalog order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.templates))
	for i, t := range c.templates {
		names[i] = t.Name
	}
	return names
}

// Values returns the distinct values templates expect for attr, in the order
// they first appear.
func (c *Catalog) Values(attr Attribute) []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var values []string
	for _, t := range c.templates {
		value, ok := t.Expect(attr)
		if !ok {
			continue
		}
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		values = append(values, value)
	}
	return values
}
