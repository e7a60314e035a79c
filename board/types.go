// SPDX-License-Identifier: MIT
// Package: hexboard/board
//
// types.go — entity types, closed enumerations and sentinel errors.

package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/hexboard/topology"
)

// Sentinel errors for lookups.
var (
	// ErrInvalidIndex indicates an id outside the board's declared range.
	ErrInvalidIndex = errors.New("board: invalid index")

	// ErrTileIndex indicates an invalid tile id. Wraps ErrInvalidIndex.
	ErrTileIndex = fmt.Errorf("%w: tile", ErrInvalidIndex)

	// ErrVertexIndex indicates an invalid vertex id. Wraps ErrInvalidIndex.
	ErrVertexIndex = fmt.Errorf("%w: vertex", ErrInvalidIndex)

	// ErrEdgeIndex indicates an invalid edge id. Wraps ErrInvalidIndex.
	ErrEdgeIndex = fmt.Errorf("%w: edge", ErrInvalidIndex)
)

// Sentinel reasons for rejected placements.
var (
	ErrUnknownVertex = errors.New("board: unknown vertex")
	ErrUnknownEdge   = errors.New("board: unknown edge")
	ErrNoPlayer      = errors.New("board: empty player id")
	ErrOccupied      = errors.New("board: location already occupied")
	ErrDistanceRule  = errors.New("board: adjacent vertex is occupied")
	ErrNotConnected  = errors.New("board: not connected to the player's roads or buildings")
	ErrNotOwner      = errors.New("board: vertex not owned by player")
	ErrNotSettlement = errors.New("board: vertex does not hold a settlement")
)

// Sentinel errors for parsing enumerations.
var (
	ErrUnknownResource  = errors.New("board: unknown resource")
	ErrUnknownStructure = errors.New("board: unknown structure")
)

// PlayerID identifies the owner of a vertex or edge. The empty id means
// "no owner" and is never accepted by a mutation.
type PlayerID string

// NoPlayer is the owner of unclaimed vertices and edges.
const NoPlayer PlayerID = ""

// Resource is the kind of goods a tile produces.
type Resource uint8

const (
	Desert Resource = iota // produces nothing
	Wool
	Brick
	Grain
	Lumber
	Ore
)

// Resources lists every producing resource in declaration order.
var Resources = [...]Resource{Wool, Brick, Grain, Lumber, Ore}

var resourceNames = [...]string{
	Desert: "desert",
	Wool:   "wool",
	Brick:  "brick",
	Grain:  "grain",
	Lumber: "lumber",
	Ore:    "ore",
}

func (r Resource) String() string {
	if int(r) < len(resourceNames) {
		return resourceNames[r]
	}
	return fmt.Sprintf("Resource(%d)", uint8(r))
}

// ParseResource maps a case-insensitive name to its Resource.
func ParseResource(s string) (Resource, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for r, n := range resourceNames {
		if n == name {
			return Resource(r), nil
		}
	}
	return Desert, fmt.Errorf("%w: %q", ErrUnknownResource, s)
}

// Structure is what stands on a vertex.
type Structure uint8

const (
	None Structure = iota
	Settlement
	City
)

var structureNames = [...]string{
	None:       "none",
	Settlement: "settlement",
	City:       "city",
}

func (s Structure) String() string {
	if int(s) < len(structureNames) {
		return structureNames[s]
	}
	return fmt.Sprintf("Structure(%d)", uint8(s))
}

// ParseStructure maps a case-insensitive name to its Structure.
func ParseStructure(s string) (Structure, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for st, n := range structureNames {
		if n == name {
			return Structure(st), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownStructure, s)
}

// Yield counts resources by kind: produced by a roll, or the cost of a build.
type Yield map[Resource]int

// Total returns the sum of all counts.
func (y Yield) Total() int {
	n := 0
	for _, c := range y {
		n += c
	}
	return n
}

// Tile is one hexagonal cell. Tiles never change after Initialize.
type Tile struct {
	// ID is the row-major tile id, 0..18.
	ID int

	// Row and Col locate the tile in the 3-4-5-4-3 layout.
	Row, Col int

	// Resource is what the tile produces.
	Resource Resource

	// Number is the dice value that activates the tile. The desert carries
	// DesertNumber and never activates.
	Number int

	// Vertices and Edges are the tile's corners and sides.
	Vertices [topology.TileSides]int
	Edges    [topology.TileSides]int
}

// Vertex is a corner where a settlement or city may stand.
type Vertex struct {
	ID        int
	Owner     PlayerID
	Structure Structure

	// Vertices lists the neighbouring corners; Edges the incident sides.
	Vertices []int
	Edges    []int
}

// Occupied reports whether the vertex has an owner.
func (v Vertex) Occupied() bool { return v.Owner != NoPlayer }

// IsSettlement reports whether the vertex holds a settlement.
func (v Vertex) IsSettlement() bool { return v.Structure == Settlement }

// IsCity reports whether the vertex holds a city.
func (v Vertex) IsCity() bool { return v.Structure == City }

// Edge is a side where a road may run.
type Edge struct {
	ID    int
	Owner PlayerID

	// Vertices holds the two endpoints; Edges the sides sharing one of them.
	Vertices [2]int
	Edges    []int
}

// Occupied reports whether the edge has an owner.
func (e Edge) Occupied() bool { return e.Owner != NoPlayer }

// Holdings lists the pieces one player has on the board, ids ascending.
type Holdings struct {
	Settlements []int
	Cities      []int
	Roads       []int
}
