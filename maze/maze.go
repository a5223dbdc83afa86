package maze

import (
	"fmt"

	"github.com/katalvlaran/mazesolver/core"
)

// New builds a Maze from its two wall matrices.
//
// vertical fixes the height (its row count) and the width (its row length + 1);
// horizontal must then have Height-1 rows of Width entries. The inputs are
// deep-copied. Endpoints default to the top-left cell and the bottom-right cell.
//
// Returns ErrEmptyMaze if vertical has no rows, ErrNonRectangular if either
// matrix is ragged, ErrDimensionMismatch if the matrices disagree.
// Complexity: O(W×H) time and memory.
func New(horizontal, vertical [][]int) (*Maze, error) {
	if len(vertical) == 0 {
		return nil, ErrEmptyMaze
	}
	if err := checkRectangular("vertical", vertical); err != nil {
		return nil, err
	}
	if err := checkRectangular("horizontal", horizontal); err != nil {
		return nil, err
	}

	h, w := len(vertical), len(vertical[0])+1
	if len(horizontal) != h-1 {
		return nil, fmt.Errorf("%w: horizontal has %d rows, want %d", ErrDimensionMismatch, len(horizontal), h-1)
	}
	if len(horizontal) > 0 && len(horizontal[0]) != w {
		return nil, fmt.Errorf("%w: horizontal rows have %d entries, want %d", ErrDimensionMismatch, len(horizontal[0]), w)
	}

	return &Maze{
		Width:       w,
		Height:      h,
		horizontal:  deepCopy(horizontal),
		vertical:    deepCopy(vertical),
		source:      0,
		destination: w*h - 1,
	}, nil
}

// checkRectangular rejects a matrix whose rows differ in length.
func checkRectangular(name string, m [][]int) error {
	for i, row := range m {
		if len(row) != len(m[0]) {
			return fmt.Errorf("%w: %s row %d has %d entries, row 0 has %d", ErrNonRectangular, name, i, len(row), len(m[0]))
		}
	}

	return nil
}

// deepCopy prevents external mutation of the wall matrices.
func deepCopy(m [][]int) [][]int {
	out := make([][]int, len(m))
	for i := range m {
		out[i] = append([]int(nil), m[i]...)
	}

	return out
}

// CellCount returns Width×Height, the vertex count of the maze graph.
func (m *Maze) CellCount() int {
	return m.Width * m.Height
}

// InBounds reports whether (row,col) lies within the maze.
// Complexity: O(1).
func (m *Maze) InBounds(row, col int) bool {
	return row >= 0 && row < m.Height && col >= 0 && col < m.Width
}

// Index maps (row,col) to a row‑major index: row*Width + col.
// Complexity: O(1).
func (m *Maze) Index(row, col int) int {
	return row*m.Width + col
}

// Coordinate converts a row‑major index back to its Cell.
// Complexity: O(1).
func (m *Maze) Coordinate(idx int) Cell {
	return Cell{Row: idx / m.Width, Col: idx % m.Width}
}

// WallBelow reports whether a wall separates (row,col) from the cell below.
// The outer boundary always counts as a wall.
func (m *Maze) WallBelow(row, col int) bool {
	if !m.InBounds(row, col) || row == m.Height-1 {
		return true
	}

	return m.horizontal[row][col] != 0
}

// WallRight reports whether a wall separates (row,col) from the cell on its right.
// The outer boundary always counts as a wall.
func (m *Maze) WallRight(row, col int) bool {
	if !m.InBounds(row, col) || col == m.Width-1 {
		return true
	}

	return m.vertical[row][col] != 0
}

// Source returns the index of the start cell.
func (m *Maze) Source() int { return m.source }

// Destination returns the index of the goal cell.
func (m *Maze) Destination() int { return m.destination }

// SetEndpoints replaces the start and goal cells.
// Returns ErrEndpointOutOfRange if either index is outside [0, CellCount()).
func (m *Maze) SetEndpoints(source, destination int) error {
	n := m.CellCount()
	if source < 0 || source >= n {
		return fmt.Errorf("%w: source %d not in [0, %d)", ErrEndpointOutOfRange, source, n)
	}
	if destination < 0 || destination >= n {
		return fmt.Errorf("%w: destination %d not in [0, %d)", ErrEndpointOutOfRange, destination, n)
	}
	m.source, m.destination = source, destination

	return nil
}

// Graph converts the maze into an undirected *core.Graph with one vertex per
// cell. Every open horizontal wall links a cell to the one below it, then
// every open vertical wall links a cell to the one on its right; this
// insertion order fixes the neighbor order the searches see.
// Complexity: O(W×H).
func (m *Maze) Graph() (*core.Graph, error) {
	g, err := core.NewGraph(m.CellCount())
	if err != nil {
		return nil, err
	}
	for row := 0; row < m.Height-1; row++ {
		for col := 0; col < m.Width; col++ {
			if m.horizontal[row][col] != 0 {
				continue
			}
			if err = g.AddEdge(m.Index(row, col), m.Index(row+1, col)); err != nil {
				return nil, fmt.Errorf("maze: linking %v downward: %w", Cell{row, col}, err)
			}
		}
	}
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width-1; col++ {
			if m.vertical[row][col] != 0 {
				continue
			}
			if err = g.AddEdge(m.Index(row, col), m.Index(row, col+1)); err != nil {
				return nil, fmt.Errorf("maze: linking %v rightward: %w", Cell{row, col}, err)
			}
		}
	}

	return g, nil
}

// Cells maps the vertices of a search result to maze cells.
// A NotFound result yields nil.
func (m *Maze) Cells(res core.Result) []Cell {
	path := res.Path()
	if path == nil {
		return nil
	}
	cells := make([]Cell, len(path))
	for i, v := range path {
		cells[i] = m.Coordinate(v)
	}

	return cells
}
