package catalog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// fileRow is one [[species]] table. Missing or empty keys mean unspecified.
type fileRow struct {
	Name    string `toml:"name"`
	Color   string `toml:"color"`
	Texture string `toml:"texture"`
	Shape   string `toml:"shape"`
	Habitat string `toml:"habitat"`
	Length  string `toml:"length"`
}

type fileDocument struct {
	Species []fileRow `toml:"species"`
}

const fileHeader = "# algaid species catalog. Row order decides ties between equally good matches.\n# An empty or missing attribute is not considered when scoring that species.\n\n"

// Read decodes a TOML catalog document.
func Read(r io.Reader) (*Catalog, error) {
	var doc fileDocument
	decoder := toml.NewDecoder(r).DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	templates := make([]SpeciesTemplate, 0, len(doc.Species))
	for _, row := range doc.Species {
		templates = append(templates, SpeciesTemplate{
			Name:    row.Name,
			Color:   row.Color,
			Texture: row.Texture,
			Shape:   row.Shape,
			Habitat: row.Habitat,
			Length:  LengthClass(row.Length),
		})
	}
	return New(templates...)
}

// Load reads a TOML catalog file from disk.
func Load(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer file.Close()
	c, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Write encodes c as a TOML document, one [[species]] table per row.
func Write(w io.Writer, c *Catalog) error {
	doc := fileDocument{Species: make([]fileRow, 0, c.Len())}
	for _, t := range c.All() {
		doc.Species = append(doc.Species, fileRow{
			Name:    t.Name,
			Color:   t.Color,
			Texture: t.Texture,
			Shape:   t.Shape,
			Habitat: t.Habitat,
			Length:  string(t.Length),
		})
	}
	if _, err := io.WriteString(w, fileHeader); err != nil {
		return fmt.Errorf("write catalog header: %w", err)
	}
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return nil
}

// Save writes c to path, creating parent directories as needed.
func Save(path string, c *Catalog) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create catalog directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create catalog file: %w", err)
	}
	if err := Write(file, c); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
