// Package maze models a rectangular maze as two wall matrices and turns it
// into an undirected *core.Graph for the bfs and dfs searches.
//
// What:
//
//   - Maze holds Height×Width cells numbered row-major (row*Width + col).
//   - horizontal[i][j] == 0 opens cell (i,j) to the cell below it.
//   - vertical[i][j] == 0 opens cell (i,j) to the cell on its right.
//   - Graph() adds all downward links first, then all rightward links.
//   - Cells() maps a search Result back to (row,col) coordinates.
//   - Decode/Load read a maze from YAML; Sample serves the bundled mazes.
//
// Complexity:
//
//   - New, Graph: O(W×H) time and memory.
//   - Index, Coordinate, InBounds: O(1).
//
// YAML format:
//
//	name: small             # optional, defaults to the file name
//	source: 0               # optional, defaults to 0
//	destination: 24         # optional, defaults to W×H-1
//	horizontal:
//	  - [0, 1, 1, 0, 0]
//	  ...
//	vertical:
//	  - [1, 0, 0, 0]
//	  ...
//
// Errors:
//
//   - ErrEmptyMaze: vertical has no rows.
//   - ErrNonRectangular: a wall matrix has rows of differing lengths.
//   - ErrDimensionMismatch: horizontal is not (H-1)×W for the H×(W-1) vertical.
//   - ErrEndpointOutOfRange: source or destination outside [0, W×H).
//   - ErrUnknownSample: Sample was given a name that is not bundled.
package maze
