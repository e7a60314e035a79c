// Package player keeps a player's resource hand and the price list of
// things a player can build.
//
// A Hand satisfies board.Receiver, so a roll credits it directly:
//
//	h := player.NewHand("alice")
//	b.GiveResources("alice", dice, h)
//	if err := h.Pay(player.Settlement); err != nil { ... }
//
// Pay is all-or-nothing: a hand that cannot cover a cost is left untouched
// and the returned error wraps ErrInsufficient. Hands are safe for
// concurrent use.
//
// Errors:
//   - ErrInsufficient: the hand lacks a resource a build needs.
//   - ErrUnknownBuild: ParseBuild got a name it does not know.
package player
