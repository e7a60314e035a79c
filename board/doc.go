// Package board owns one game board: its 19 tiles, 54 vertices and 72 edges,
// the random resource/number layout, and the placement rules for
// settlements, cities and roads.
//
// A Board is the only owner of its entities. Callers address them by integer
// id and receive value copies (Tile, Vertex, Edge), never pointers into the
// board.
//
// Construction:
//
//	b := board.New(board.WithSeed(42), board.WithLogger(log))
//
// New shuffles the layout immediately. Initialize reshuffles and clears all
// ownership; without WithSeed or WithRand the seed is drawn from crypto/rand.
//
// Placement rules:
//
//   - Settlement: vertex unowned, every neighbouring vertex unowned (the
//     distance rule), and outside the setup phase at least one incident
//     road owned by the player.
//   - Road: edge unowned, and one endpoint holds the player's settlement or
//     city, or another edge at either endpoint is the player's road.
//   - City: the vertex holds the player's settlement.
//
// Illegal placements are ordinary outcomes of play: PlaceSettlement,
// PlaceRoad and UpgradeSettlement return false and leave the board
// untouched. The matching Can* methods return the reason as a sentinel
// error for display. Lookups with an id outside the board return an error
// wrapping ErrInvalidIndex.
//
// Ownership is monotonic: nothing clears an owner, and a settlement turns
// into a city at most once.
//
// Resource distribution walks tiles → corners: for every tile whose number
// matches the dice, each corner owned by the player yields 1 of the tile's
// resource for a settlement and 2 for a city. The desert never yields.
//
// Concurrency: every Board guards its state with one sync.RWMutex, so a
// single board may be shared between goroutines. Compound rule checks run
// under the same lock as the mutation they guard.
//
// Errors:
//
//	ErrInvalidIndex  - id outside 0..N-1 on a lookup (wrapped by
//	                   ErrTileIndex, ErrVertexIndex, ErrEdgeIndex).
//	ErrUnknownVertex - placement on a vertex id the board does not have.
//	ErrUnknownEdge   - placement on an edge id the board does not have.
//	ErrNoPlayer      - empty player id.
//	ErrOccupied      - vertex or edge already owned.
//	ErrDistanceRule  - a neighbouring vertex is owned.
//	ErrNotConnected  - no road or structure of the player touches the target.
//	ErrNotOwner      - upgrade of a vertex the player does not own.
//	ErrNotSettlement - upgrade of a vertex that is not a settlement.
//	ErrUnknownResource, ErrUnknownStructure - parse failures.
package board
