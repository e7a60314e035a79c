// SPDX-License-Identifier: MIT
// Package: hexboard/board
//
// resources.go — dice-driven resource production.

package board

import "go.uber.org/zap"

// Dice bounds for a two-die roll.
const (
	MinRoll = 2
	MaxRoll = 12
)

// Receiver accepts produced resources. player.Hand implements it.
type Receiver interface {
	AddResource(res Resource, amount int)
}

// Production returns what player earns from a roll of dice: one unit per
// settlement and two per city on every corner of every activated tile.
// Credits from the same tile add up. The desert and rolls outside 2..12
// produce nothing.
// Complexity: O(T·6).
func (b *Board) Production(player PlayerID, dice int) Yield {
	y := Yield{}
	if player == NoPlayer || dice < MinRoll || dice > MaxRoll {
		return y
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	for i := range b.tiles {
		t := &b.tiles[i]
		if t.Resource == Desert || t.Number != dice {
			continue
		}
		for _, vid := range t.Vertices {
			v := &b.vertices[vid]
			if v.Owner != player {
				continue
			}
			switch v.Structure {
			case Settlement:
				y[t.Resource]++
			case City:
				y[t.Resource] += 2
			}
		}
	}

	return y
}

// GiveResources credits to with player's production for dice and returns
// it. Resources are credited in the order of Resources; kinds with a zero
// count are skipped. A nil receiver only computes the yield.
func (b *Board) GiveResources(player PlayerID, dice int, to Receiver) Yield {
	y := b.Production(player, dice)
	if to != nil {
		for _, r := range Resources {
			if n := y[r]; n > 0 {
				to.AddResource(r, n)
			}
		}
	}
	b.log.Debug("resources produced",
		zap.Stringer("board", b.ID()),
		zap.String("player", string(player)),
		zap.Int("dice", dice),
		zap.Int("total", y.Total()),
	)

	return y
}
