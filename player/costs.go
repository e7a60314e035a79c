package player

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/hexboard/board"
)

// ErrUnknownBuild indicates a build name ParseBuild does not recognize.
var ErrUnknownBuild = errors.New("player: unknown build")

// Build is something a player can buy.
type Build uint8

const (
	Road Build = iota
	Settlement
	City
	DevelopmentCard
)

var buildNames = [...]string{
	Road:            "road",
	Settlement:      "settlement",
	City:            "city",
	DevelopmentCard: "development-card",
}

func (b Build) String() string {
	if int(b) < len(buildNames) {
		return buildNames[b]
	}
	return fmt.Sprintf("Build(%d)", uint8(b))
}

// ParseBuild maps a case-insensitive name to its Build. Underscores and
// spaces are accepted in place of the hyphen.
func ParseBuild(s string) (Build, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer("_", "-", " ", "-").Replace(name)
	for b, n := range buildNames {
		if n == name {
			return Build(b), nil
		}
	}
	return Road, fmt.Errorf("%w: %q", ErrUnknownBuild, s)
}

var costs = [...]board.Yield{
	Road:            {board.Brick: 1, board.Lumber: 1},
	Settlement:      {board.Brick: 1, board.Lumber: 1, board.Wool: 1, board.Grain: 1},
	City:            {board.Ore: 3, board.Grain: 2},
	DevelopmentCard: {board.Ore: 1, board.Wool: 1, board.Grain: 1},
}

// Cost returns a fresh copy of the price of b. Unknown builds cost nothing.
func Cost(b Build) board.Yield {
	out := board.Yield{}
	if int(b) >= len(costs) {
		return out
	}
	for r, n := range costs[b] {
		out[r] = n
	}
	return out
}
