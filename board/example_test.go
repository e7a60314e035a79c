package board_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hexboard/board"
)

// ExampleBoard_PlaceSettlement walks through the setup-phase rules.
func ExampleBoard_PlaceSettlement() {
	b := board.New(board.WithSeed(1))

	fmt.Println(b.PlaceSettlement(0, "alice", true))  // empty corner
	fmt.Println(b.PlaceSettlement(0, "alice", true))  // occupied
	fmt.Println(b.PlaceSettlement(1, "alice", true))  // next to vertex 0
	fmt.Println(b.PlaceSettlement(9, "alice", false)) // no road yet

	err := b.CanPlaceSettlement(1, "alice", true)
	fmt.Println(errors.Is(err, board.ErrDistanceRule))

	// Output:
	// true
	// false
	// false
	// false
	// true
}

// ExampleBoard_PlaceRoad shows that a road must touch the player's pieces.
func ExampleBoard_PlaceRoad() {
	b := board.New(board.WithSeed(1))
	b.PlaceSettlement(0, "alice", true)

	fmt.Println(b.PlaceRoad(0, "alice"))
	fmt.Println(b.PlaceRoad(9, "alice"))
	fmt.Println(b.Holdings("alice").Roads)

	// Output:
	// true
	// false
	// [0]
}

// ExampleBoard_Tile shows the bounds-checked lookup.
func ExampleBoard_Tile() {
	b := board.New(board.WithSeed(1))

	_, err := b.Tile(20)
	fmt.Println(err)
	fmt.Println(errors.Is(err, board.ErrInvalidIndex))

	t, err := b.Tile(18)
	fmt.Println(t.ID, t.Row, t.Col, err)

	// Output:
	// board: invalid index: tile 20 (want 0..18)
	// true
	// 18 4 2 <nil>
}
