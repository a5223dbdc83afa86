package maze

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// document is the on-disk YAML shape of a maze.
type document struct {
	Name        string  `yaml:"name"`
	Horizontal  [][]int `yaml:"horizontal"`
	Vertical    [][]int `yaml:"vertical"`
	Source      *int    `yaml:"source"`
	Destination *int    `yaml:"destination"`
}

// Decode reads a single YAML maze document from r.
// Unknown keys are rejected. Missing endpoints keep the defaults of New.
func Decode(r io.Reader) (*Maze, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing maze: %w", ErrEmptyMaze)
		}
		return nil, fmt.Errorf("parsing maze: %w", err)
	}

	return doc.build()
}

// Load reads and parses a YAML maze file. The file name, without its
// extension, names the maze when the document does not.
func Load(path string) (*Maze, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading maze file: %w", err)
	}

	m, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return m, nil
}

// build validates the document and converts it into a Maze.
func (d *document) build() (*Maze, error) {
	m, err := New(d.Horizontal, d.Vertical)
	if err != nil {
		return nil, err
	}
	m.Name = d.Name

	source, destination := m.Source(), m.Destination()
	if d.Source != nil {
		source = *d.Source
	}
	if d.Destination != nil {
		destination = *d.Destination
	}
	if err = m.SetEndpoints(source, destination); err != nil {
		return nil, err
	}

	return m, nil
}
