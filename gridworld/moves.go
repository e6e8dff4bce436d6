package gridworld

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// MoveSet is an ordered, duplicate-free list of allowed cardinal offsets.
// The order is the tie-break seed among equal-priority successors.
type MoveSet struct {
	offsets []Offset
}

// NewMoveSet validates and stores offsets in the given order.
// Returns ErrEmptyMoveSet, ErrInvalidMove for a zero or non-unit offset,
// or ErrDuplicateMove.
func NewMoveSet(offsets ...Offset) (MoveSet, error) {
	if len(offsets) == 0 {
		return MoveSet{}, ErrEmptyMoveSet
	}
	seen := mapset.New[Offset]()
	out := make([]Offset, 0, len(offsets))
	for _, o := range offsets {
		if !o.IsCardinal() {
			return MoveSet{}, fmt.Errorf("%w: %v", ErrInvalidMove, o)
		}
		if seen.Has(o) {
			return MoveSet{}, fmt.Errorf("%w: %s", ErrDuplicateMove, o.Name())
		}
		seen.Put(o)
		out = append(out, o)
	}
	return MoveSet{offsets: out}, nil
}

// Cardinal returns all four directions in the default order
// left, down, right, up.
func Cardinal() MoveSet {
	return MoveSet{offsets: []Offset{Left, Down, Right, Up}}
}

// ParseMoves builds a MoveSet from direction names such as
// "right", "left", "up", "down" (case-insensitive).
func ParseMoves(names ...string) (MoveSet, error) {
	offsets := make([]Offset, 0, len(names))
	for _, n := range names {
		switch strings.ToLower(strings.TrimSpace(n)) {
		case "right":
			offsets = append(offsets, Right)
		case "left":
			offsets = append(offsets, Left)
		case "up":
			offsets = append(offsets, Up)
		case "down":
			offsets = append(offsets, Down)
		default:
			return MoveSet{}, fmt.Errorf("%w: %q", ErrUnknownMove, n)
		}
	}
	return NewMoveSet(offsets...)
}

// Offsets returns a copy of the offsets in order.
func (m MoveSet) Offsets() []Offset {
	out := make([]Offset, len(m.offsets))
	copy(out, m.offsets)
	return out
}

// Len returns the number of moves.
func (m MoveSet) Len() int { return len(m.offsets) }

// Contains reports whether o is an allowed move.
func (m MoveSet) Contains(o Offset) bool {
	for _, x := range m.offsets {
		if x == o {
			return true
		}
	}
	return false
}

// Names returns the direction names in order.
func (m MoveSet) Names() []string {
	out := make([]string, len(m.offsets))
	for i, o := range m.offsets {
		out[i] = o.Name()
	}
	return out
}
