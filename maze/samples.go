package maze

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed samples/*.yaml
var samples embed.FS

// SampleNames lists the bundled mazes in lexical order.
func SampleNames() ([]string, error) {
	entries, err := fs.ReadDir(samples, "samples")
	if err != nil {
		return nil, fmt.Errorf("maze: listing samples: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)

	return names, nil
}

// Sample returns a fresh copy of the bundled maze called name.
// Returns ErrUnknownSample if no such maze is bundled.
func Sample(name string) (*Maze, error) {
	f, err := samples.Open(path.Join("samples", name+".yaml"))
	if err != nil {
		names, listErr := SampleNames()
		if listErr != nil {
			return nil, listErr
		}
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownSample, name, strings.Join(names, ", "))
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("sample %q: %w", name, err)
	}
	if m.Name == "" {
		m.Name = name
	}

	return m, nil
}
