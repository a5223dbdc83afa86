package maze

import "fmt"

// Cell addresses a maze cell by row and column, both zero-based.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Maze is a rectangular grid of cells separated by optional walls.
// It is immutable once built, apart from its endpoints.
//
// horizontal[i][j] != 0 is a wall below cell (i,j); its shape is (Height-1)×Width.
// vertical[i][j] != 0 is a wall right of cell (i,j); its shape is Height×(Width-1).
// Cells are numbered row-major: index = row*Width + col.
type Maze struct {
	Name          string
	Width, Height int

	horizontal [][]int
	vertical   [][]int

	source      int
	destination int
}
