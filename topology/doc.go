// Package topology holds the fixed adjacency data of the 19-tile hexagonal
// board and the tools to check it.
//
// The board has three entity kinds addressed by dense integer ids:
//
//	tiles     0..18   row-major over rows of 3, 4, 5, 4, 3
//	vertices  0..53   corners where up to three tiles meet
//	edges     0..71   sides joining two adjacent vertices
//
// The lists were drawn by hand from the physical board. Six tables describe
// the graph:
//
//	vertex → vertices   (2 or 3 per vertex)
//	vertex → edges      (2 or 3 per vertex)
//	edge   → vertices   (exactly 2)
//	edge   → edges      (2 to 4, the edges sharing an endpoint)
//	tile   → vertices   (6)
//	tile   → edges      (6)
//
// Table.Validate reports every violation of:
//
//   - symmetry: u lists v ⇔ v lists u (vertex↔vertex, edge↔edge)
//   - incidence: vertex↔edge lists agree with edge endpoints, and the
//     neighbour lists equal what the incidence lists imply
//   - closure: every tile's six edges are exactly the edges whose two
//     endpoints lie among its six vertices, each vertex touching two of them
//   - connectivity: every vertex is reachable from vertex 0
//
// Validate is meant for tests and operator tooling. Board construction reads
// the tables directly and never re-validates them.
//
// Accessors (VertexVertices, EdgeEdges, …) return copies, so callers cannot
// corrupt the shared data.
//
// Errors:
//
//	ErrOutOfRange      - id outside the declared range.
//	ErrShape           - table sizes, id ranges, duplicates or self references.
//	ErrAsymmetric      - a neighbour relation is listed in one direction only.
//	ErrCrossMismatch   - vertex/edge incidence disagrees across tables.
//	ErrOpenHexagon     - a tile's vertices and edges do not close.
//	ErrDisconnected    - some vertex cannot be reached from vertex 0.
//	ErrOptionViolation - a walk option carried a meaningless value.
package topology
