package player

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/katalvlaran/hexboard/board"
)

// ErrInsufficient indicates a hand cannot cover a cost.
var ErrInsufficient = errors.New("player: insufficient resources")

// Hand counts the resources one player holds.
type Hand struct {
	mu     sync.RWMutex
	id     board.PlayerID
	counts [board.Ore + 1]int
}

// HandOption customizes a new Hand.
type HandOption func(*Hand)

// WithStarting seeds the hand with y. Panics on a negative count.
func WithStarting(y board.Yield) HandOption {
	for r, n := range y {
		if n < 0 {
			panic(fmt.Sprintf("player: WithStarting(%s: %d)", r, n))
		}
	}
	return func(h *Hand) {
		for r, n := range y {
			h.add(r, n)
		}
	}
}

// NewHand returns an empty hand for id.
func NewHand(id board.PlayerID, opts ...HandOption) *Hand {
	h := &Hand{id: id}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ID returns the owner of the hand.
func (h *Hand) ID() board.PlayerID { return h.id }

// AddResource credits n units of res. Desert, unknown kinds and
// non-positive amounts are ignored.
func (h *Hand) AddResource(res board.Resource, n int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.add(res, n)
}

func (h *Hand) add(res board.Resource, n int) {
	if res == board.Desert || int(res) >= len(h.counts) || n <= 0 {
		return
	}
	h.counts[res] += n
}

// Count returns how many units of res the hand holds.
func (h *Hand) Count(res board.Resource) int {
	if int(res) >= len(h.counts) {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.counts[res]
}

// Total returns the number of cards in the hand.
func (h *Hand) Total() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := 0
	for _, c := range h.counts {
		n += c
	}
	return n
}

// Snapshot returns the non-zero counts.
func (h *Hand) Snapshot() board.Yield {
	h.mu.RLock()
	defer h.mu.RUnlock()

	y := board.Yield{}
	for _, r := range board.Resources {
		if c := h.counts[r]; c > 0 {
			y[r] = c
		}
	}
	return y
}

// CanAfford reports whether the hand covers the cost of b.
func (h *Hand) CanAfford(b Build) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.shortfall(Cost(b)) == nil
}

// Pay deducts the cost of b. If any resource falls short nothing is
// deducted and the error wraps ErrInsufficient.
func (h *Hand) Pay(b Build) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	cost := Cost(b)
	if err := h.shortfall(cost); err != nil {
		return fmt.Errorf("player %s: %s: %w", h.id, b, err)
	}
	for r, n := range cost {
		h.counts[r] -= n
	}
	return nil
}

// shortfall reports the first resource, in board.Resources order, the hand
// lacks for cost.
func (h *Hand) shortfall(cost board.Yield) error {
	for _, r := range board.Resources {
		if need := cost[r]; h.counts[r] < need {
			return fmt.Errorf("%w: need %d %s, have %d", ErrInsufficient, need, r, h.counts[r])
		}
	}
	return nil
}

// String lists the non-zero counts in board.Resources order, e.g.
// "brick=1 ore=3", or "empty".
func (h *Hand) String() string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var parts []string
	for _, r := range board.Resources {
		if c := h.counts[r]; c > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", r, c))
		}
	}
	if len(parts) == 0 {
		return "empty"
	}
	return strings.Join(parts, " ")
}
