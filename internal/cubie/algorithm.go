package cubie

import (
	"fmt"
	"strings"
)

// Algorithm is a pair of move sequences: the normal side and the inverse
// side, the standard FMC representation of a partial solution built up
// from both ends of a scramble (NISS). Append and the cancellation rules
// below track both sides independently.
type Algorithm struct {
	Normal  []Move
	Inverse []Move
}

// IsEmpty reports whether both sides are empty.
func (a Algorithm) IsEmpty() bool {
	return len(a.Normal) == 0 && len(a.Inverse) == 0
}

// Len returns the total move count across both sides.
func (a Algorithm) Len() int {
	return len(a.Normal) + len(a.Inverse)
}

// Append adds a move to the normal or inverse side, applying the standard
// same-face cancellation/combination rule: a move canceling the last move
// on that side is removed; a move sharing a face with the last move is
// combined into a single turn (quarter+quarter=half, quarter+half=quarter
// the other way, etc.); a move separated from the last same-face move only
// by moves on the opposite face skips through those to combine with it.
func (a Algorithm) Append(m Move, onInverse bool) Algorithm {
	side := a.Normal
	if onInverse {
		side = a.Inverse
	}
	newSide := appendMove(side, m)
	out := a
	if onInverse {
		out.Inverse = newSide
	} else {
		out.Normal = newSide
	}
	return out
}

func appendMove(side []Move, m Move) []Move {
	newSide := make([]Move, len(side))
	copy(newSide, side)

	cancels := false
	for i := len(newSide) - 1; i >= 0; i-- {
		last := newSide[i]
		if last.Face == m.Face.Opposite() && last.Face != m.Face {
			continue
		}
		if last == m.Inverse() {
			cancels = true
			newSide = append(newSide[:i], newSide[i+1:]...)
			break
		} else if last.Face == m.Face {
			cancels = true
			switch {
			case last.Turns == 2:
				newSide[i] = m.Inverse()
			case m.Turns == 2:
				newSide[i] = last.Inverse()
			default:
				newSide[i] = Move{Face: m.Face, Turns: 2}
			}
			break
		} else {
			break
		}
	}
	if !cancels {
		newSide = append(newSide, m)
	}
	return newSide
}

// Merge appends every move of other onto a, normal side to normal side and
// inverse side to inverse side, applying cancellation at each step.
func (a Algorithm) Merge(other Algorithm) Algorithm {
	out := a
	for _, m := range other.Normal {
		out = out.Append(m, false)
	}
	for _, m := range other.Inverse {
		out = out.Append(m, true)
	}
	return out
}

// Inverted returns the group inverse of the whole algorithm as a
// normal-side sequence: the inverse side's moves, each inverted, in their
// own order, followed by the normal side reversed with each move
// inverted. Applying a and then a.Inverted() restores the starting cube.
func (a Algorithm) Inverted() Algorithm {
	normal := make([]Move, 0, len(a.Normal)+len(a.Inverse))
	for _, m := range a.Inverse {
		normal = append(normal, m.Inverse())
	}
	return Algorithm{Normal: append(normal, reverseInverse(a.Normal)...)}
}

func reverseInverse(moves []Move) []Move {
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}

// OnInverse swaps which side is considered "normal", without touching move
// order or inverting moves: what was being solved on the inverse scramble
// is now the primary view.
func (a Algorithm) OnInverse() Algorithm {
	return Algorithm{Normal: a.Inverse, Inverse: a.Normal}
}

// ApplyAlgorithm applies the algorithm to a cube: normal moves in order, then
// inverse moves in reverse (since the inverse side is conceptually solved
// from the other end).
func (c *Cube) ApplyAlgorithm(a Algorithm) {
	c.ApplyMoves(a.Normal)
	for i := len(a.Inverse) - 1; i >= 0; i-- {
		c.Apply(a.Inverse[i])
	}
}

// String renders the algorithm as "normal (inverse)" WCA-style notation.
func (a Algorithm) String() string {
	n := movesString(a.Normal)
	i := movesString(a.Inverse)
	switch {
	case n == "" && i == "":
		return ""
	case i == "":
		return n
	case n == "":
		return fmt.Sprintf("(%s)", i)
	default:
		return fmt.Sprintf("%s (%s)", n, i)
	}
}

func movesString(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = MoveString(m)
	}
	return strings.Join(parts, " ")
}

// MoveString renders a single move in WCA notation (R, R', R2, x, x', x2).
func MoveString(m Move) string {
	s := m.Face.String()
	switch m.Turns {
	case 2:
		return s + "2"
	case 3:
		return s + "'"
	default:
		return s
	}
}
