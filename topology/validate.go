// SPDX-License-Identifier: MIT
// Package: hexboard/topology
//
// validate.go — consistency self-check for adjacency tables.
//
// Contract:
//   • Validate never panics, whatever the table holds.
//   • Every violation found is reported; the result is errors.Join of them.
//   • Each reported error wraps exactly one sentinel, so callers branch with
//     errors.Is(err, ErrAsymmetric) and so on.
//   • Shape violations stop the check early: later stages index by id and
//     assume every id is in range.

package topology

import (
	"errors"
	"fmt"
	"slices"
)

// Validate checks t for shape, symmetry, incidence, hexagon closure and
// connectivity. It returns nil for a consistent table.
// Complexity: O(V + E + T·E) with T tiles; trivial for one board.
func (t Table) Validate() error {
	if errs := t.checkShape(); len(errs) > 0 {
		return errors.Join(errs...)
	}

	var errs []error
	errs = append(errs, t.checkSymmetry()...)
	errs = append(errs, t.checkIncidence()...)
	errs = append(errs, t.checkHexagons()...)
	errs = append(errs, t.checkConnected()...)

	return errors.Join(errs...)
}

// Validate checks the canonical board. See Table.Validate.
func Validate() error {
	return canonical.Validate()
}

func (t Table) checkShape() []error {
	var errs []error
	sizes := []struct {
		name      string
		got, want int
	}{
		{"vertex→vertices", len(t.VertexVertices), VertexCount},
		{"vertex→edges", len(t.VertexEdges), VertexCount},
		{"edge→vertices", len(t.EdgeVertices), EdgeCount},
		{"edge→edges", len(t.EdgeEdges), EdgeCount},
		{"tile→vertices", len(t.TileVertices), TileCount},
		{"tile→edges", len(t.TileEdges), TileCount},
	}
	for _, s := range sizes {
		if s.got != s.want {
			errs = append(errs, fmt.Errorf("%w: %s has %d entries, want %d", ErrShape, s.name, s.got, s.want))
		}
	}
	if len(errs) > 0 {
		return errs
	}

	for v, nbrs := range t.VertexVertices {
		errs = append(errs, checkList("vertex", v, "vertex", nbrs, true)...)
	}
	for v, inc := range t.VertexEdges {
		errs = append(errs, checkList("vertex", v, "edge", inc, false)...)
	}
	for e, ends := range t.EdgeVertices {
		errs = append(errs, checkList("edge", e, "vertex", ends[:], false)...)
	}
	for e, nbrs := range t.EdgeEdges {
		errs = append(errs, checkList("edge", e, "edge", nbrs, true)...)
	}
	for tile, corners := range t.TileVertices {
		errs = append(errs, checkList("tile", tile, "vertex", corners[:], false)...)
	}
	for tile, sides := range t.TileEdges {
		errs = append(errs, checkList("tile", tile, "edge", sides[:], false)...)
	}

	return errs
}

// checkList validates one adjacency list of owner kind/id pointing at ids of
// kind ref. When self is set the relation is kind→kind and the owner must not
// appear in its own list.
func checkList(kind string, id int, ref string, list []int, self bool) []error {
	limit := VertexCount
	switch ref {
	case "edge":
		limit = EdgeCount
	case "tile":
		limit = TileCount
	}

	var errs []error
	seen := make(map[int]struct{}, len(list))
	for _, x := range list {
		if x < 0 || x >= limit {
			errs = append(errs, fmt.Errorf("%w: %s %d lists %s %d (want 0..%d)", ErrShape, kind, id, ref, x, limit-1))
			continue
		}
		if _, dup := seen[x]; dup {
			errs = append(errs, fmt.Errorf("%w: %s %d lists %s %d twice", ErrShape, kind, id, ref, x))
		}
		seen[x] = struct{}{}
		if self && x == id {
			errs = append(errs, fmt.Errorf("%w: %s %d lists itself", ErrShape, kind, id))
		}
	}

	return errs
}

func (t Table) checkSymmetry() []error {
	var errs []error
	for v, nbrs := range t.VertexVertices {
		for _, u := range nbrs {
			if !slices.Contains(t.VertexVertices[u], v) {
				errs = append(errs, fmt.Errorf("%w: vertex %d lists vertex %d, not the reverse", ErrAsymmetric, v, u))
			}
		}
	}
	for e, nbrs := range t.EdgeEdges {
		for _, f := range nbrs {
			if !slices.Contains(t.EdgeEdges[f], e) {
				errs = append(errs, fmt.Errorf("%w: edge %d lists edge %d, not the reverse", ErrAsymmetric, e, f))
			}
		}
	}

	return errs
}

func (t Table) checkIncidence() []error {
	var errs []error

	// vertex → edge must agree with edge → vertex in both directions.
	for v, inc := range t.VertexEdges {
		for _, e := range inc {
			if !slices.Contains(t.EdgeVertices[e][:], v) {
				errs = append(errs, fmt.Errorf("%w: vertex %d lists edge %d, which does not end at it", ErrCrossMismatch, v, e))
			}
		}
	}
	for e, ends := range t.EdgeVertices {
		a, b := ends[0], ends[1]
		for _, v := range ends {
			if !slices.Contains(t.VertexEdges[v], e) {
				errs = append(errs, fmt.Errorf("%w: edge %d ends at vertex %d, which does not list it", ErrCrossMismatch, e, v))
			}
		}
		if !slices.Contains(t.VertexVertices[a], b) {
			errs = append(errs, fmt.Errorf("%w: edge %d joins vertices %d and %d, which are not neighbours", ErrCrossMismatch, e, a, b))
		}

		// edge neighbours are the other edges at either endpoint.
		want := make([]int, 0, 4)
		for _, v := range ends {
			for _, f := range t.VertexEdges[v] {
				if f != e && !slices.Contains(want, f) {
					want = append(want, f)
				}
			}
		}
		if !sameSet(want, t.EdgeEdges[e]) {
			errs = append(errs, fmt.Errorf("%w: edge %d lists edges %v, endpoints imply %v", ErrCrossMismatch, e, sorted(t.EdgeEdges[e]), sorted(want)))
		}
	}

	// vertex neighbours are the far ends of the incident edges.
	for v, inc := range t.VertexEdges {
		want := make([]int, 0, len(inc))
		for _, e := range inc {
			ends := t.EdgeVertices[e]
			switch v {
			case ends[0]:
				want = append(want, ends[1])
			case ends[1]:
				want = append(want, ends[0])
			}
		}
		if !sameSet(want, t.VertexVertices[v]) {
			errs = append(errs, fmt.Errorf("%w: vertex %d lists vertices %v, edges imply %v", ErrCrossMismatch, v, sorted(t.VertexVertices[v]), sorted(want)))
		}
	}

	return errs
}

func (t Table) checkHexagons() []error {
	var errs []error
	for tile := range t.TileVertices {
		corners := t.TileVertices[tile][:]
		sides := t.TileEdges[tile][:]

		// the sides must be exactly the edges with both ends on the corners.
		inner := make([]int, 0, TileSides)
		for e, ends := range t.EdgeVertices {
			if slices.Contains(corners, ends[0]) && slices.Contains(corners, ends[1]) {
				inner = append(inner, e)
			}
		}
		if !sameSet(inner, sides) {
			errs = append(errs, fmt.Errorf("%w: tile %d lists edges %v, corners enclose %v", ErrOpenHexagon, tile, sorted(sides), inner))
		}

		// every corner touches exactly two sides.
		for _, v := range corners {
			n := 0
			for _, e := range sides {
				if slices.Contains(t.EdgeVertices[e][:], v) {
					n++
				}
			}
			if n != 2 {
				errs = append(errs, fmt.Errorf("%w: tile %d corner %d touches %d sides, want 2", ErrOpenHexagon, tile, v, n))
			}
		}
	}

	return errs
}

func (t Table) checkConnected() []error {
	w, err := t.Reachable(0)
	if err != nil {
		return []error{fmt.Errorf("%w: %w", ErrDisconnected, err)}
	}
	if len(w.Order) == len(t.VertexVertices) {
		return nil
	}
	missing := make([]int, 0, len(t.VertexVertices)-len(w.Order))
	for v := range t.VertexVertices {
		if !w.Visited(v) {
			missing = append(missing, v)
		}
	}

	return []error{fmt.Errorf("%w: vertices %v unreachable from 0", ErrDisconnected, missing)}
}

// sameSet reports whether a and b hold the same ids, ignoring order.
func sameSet(a, b []int) bool {
	return slices.Equal(sorted(a), sorted(b))
}

func sorted(a []int) []int {
	out := slices.Clone(a)
	slices.Sort(out)
	return out
}
