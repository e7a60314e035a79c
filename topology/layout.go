// SPDX-License-Identifier: MIT
// Package: hexboard/topology
//
// layout.go — conversion between row-major tile ids and (row, col).

package topology

import "fmt"

// TilePosition returns the row and column of tile t in the 3-4-5-4-3 layout.
// Returns ErrOutOfRange if t is not a valid tile id.
// Complexity: O(len(RowSizes)).
func TilePosition(t int) (row, col int, err error) {
	if t < 0 || t >= TileCount {
		return 0, 0, fmt.Errorf("%w: tile %d (want 0..%d)", ErrOutOfRange, t, TileCount-1)
	}
	for row = 0; row < len(RowSizes); row++ {
		if t < RowSizes[row] {
			return row, t, nil
		}
		t -= RowSizes[row]
	}

	// unreachable: RowSizes sums to TileCount
	return 0, 0, fmt.Errorf("%w: tile %d", ErrOutOfRange, t)
}

// TileAt returns the id of the tile at (row, col).
// Returns ErrOutOfRange if the coordinates fall outside the layout.
// Complexity: O(len(RowSizes)).
func TileAt(row, col int) (int, error) {
	if row < 0 || row >= len(RowSizes) || col < 0 || col >= RowSizes[row] {
		return 0, fmt.Errorf("%w: tile position (%d,%d)", ErrOutOfRange, row, col)
	}
	id := col
	for r := 0; r < row; r++ {
		id += RowSizes[r]
	}

	return id, nil
}
