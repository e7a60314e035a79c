// SPDX-License-Identifier: MIT
// Package: hexboard/topology
//
// walk.go — breadth-first reachability over the vertex graph.
//
// The walker mirrors a classic queue-driven BFS: seed the start vertex,
// dequeue, record, enqueue unseen neighbours that pass the filter and the
// depth limit. Neighbour order follows the table order, so results are
// deterministic for a given Table.

package topology

import "fmt"

// WalkOption configures Reachable via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type WalkOption func(*walkOptions)

type walkOptions struct {
	// maxDepth, if > 0, stops exploring beyond this many hops. 0 means no limit.
	maxDepth int

	// filter reports whether the step from → to may be taken.
	filter func(from, to int) bool

	// err records the first invalid option.
	err error
}

func defaultWalkOptions() walkOptions {
	return walkOptions{
		filter: func(_, _ int) bool { return true },
	}
}

// WithMaxDepth limits the walk to vertices at most d hops from the start.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) WalkOption {
	return func(o *walkOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: max depth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.maxDepth = d
	}
}

// WithFilter skips the step from → to whenever fn returns false.
// A nil fn is ignored.
func WithFilter(fn func(from, to int) bool) WalkOption {
	return func(o *walkOptions) {
		if fn != nil {
			o.filter = fn
		}
	}
}

// Walk is the result of Reachable.
type Walk struct {
	// Order lists visited vertices in BFS order, the start first.
	Order []int

	// Depth maps each visited vertex to its hop count from the start.
	Depth map[int]int

	// Parent maps each visited vertex except the start to its predecessor.
	Parent map[int]int
}

// Visited reports whether v was reached.
func (w *Walk) Visited(v int) bool {
	_, ok := w.Depth[v]
	return ok
}

// Reachable walks the vertex graph of t breadth-first from start.
// Returns ErrOutOfRange for a bad start and ErrOptionViolation for bad options.
// Neighbour ids outside the table are skipped, so Reachable is safe on
// malformed tables.
// Complexity: O(V + E).
func (t Table) Reachable(start int, opts ...WalkOption) (*Walk, error) {
	o := defaultWalkOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := len(t.VertexVertices)
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start vertex %d (want 0..%d)", ErrOutOfRange, start, n-1)
	}

	w := &Walk{
		Order:  make([]int, 0, n),
		Depth:  make(map[int]int, n),
		Parent: make(map[int]int, n),
	}
	queue := make([]int, 0, n)
	queue = append(queue, start)
	w.Depth[start] = 0

	var cur int
	for len(queue) > 0 {
		cur, queue = queue[0], queue[1:]
		w.Order = append(w.Order, cur)
		if o.maxDepth > 0 && w.Depth[cur] >= o.maxDepth {
			continue
		}
		for _, nbr := range t.VertexVertices[cur] {
			if nbr < 0 || nbr >= n || w.Visited(nbr) || !o.filter(cur, nbr) {
				continue
			}
			w.Depth[nbr] = w.Depth[cur] + 1
			w.Parent[nbr] = cur
			queue = append(queue, nbr)
		}
	}

	return w, nil
}

// Reachable walks the canonical board from start. See Table.Reachable.
func Reachable(start int, opts ...WalkOption) (*Walk, error) {
	return canonical.Reachable(start, opts...)
}
