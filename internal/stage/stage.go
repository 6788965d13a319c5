// Package stage classifies a cube against each FMC milestone: whether the
// milestone already holds, whether it is reachable from the current
// state, a short label for the specific case at hand, and which facelets
// are worth drawing attention to on a rendered diagram.
package stage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/behrlich/fmc-cube/internal/cubie"
)

// ErrInvalidStage is the sentinel wrapped when a (kind, variant) pair
// from the external query surface doesn't name a real stage.
var ErrInvalidStage = errors.New("invalid stage")

// ErrUnsupportedSolve is the sentinel for stages that never attach an
// automated solver: Scrambled (nothing to search for) and Insertions
// (no step-by-step insertion search is implemented).
var ErrUnsupportedSolve = errors.New("stage does not support solve")

// Kind names one of the milestones a cube can be classified against.
type Kind int

const (
	Scrambled Kind = iota
	EO
	DR
	HTR
	FR
	Slice
	Finish
	Insertions
)

func (k Kind) String() string {
	switch k {
	case Scrambled:
		return "scrambled"
	case EO:
		return "eo"
	case DR:
		return "dr"
	case HTR:
		return "htr"
	case FR:
		return "fr"
	case Slice:
		return "slice"
	case Finish:
		return "finish"
	case Insertions:
		return "insertions"
	}
	return "?"
}

// ParseKind parses the CLI/web step-name tokens into a Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "scrambled":
		return Scrambled, true
	case "eo":
		return EO, true
	case "dr":
		return DR, true
	case "htr":
		return HTR, true
	case "fr", "frls":
		return FR, true
	case "slice", "finls":
		return Slice, true
	case "finish", "fin":
		return Finish, true
	case "insertions":
		return Insertions, true
	}
	return 0, false
}

// Classifier answers the questions a single stage/axis variant supports.
// Every stage in this package implements it once per axis it has a
// variant for; Scrambled, Finish and Insertions only ever have a single,
// axis-less variant, by convention keyed under cubie.AxisUD.
type Classifier interface {
	Kind() Kind
	Axis() cubie.Axis
	IsSolved(c cubie.Cube) bool
	IsEligible(c cubie.Cube) bool
	CaseName(c cubie.Cube) string
	// EdgeVisibility reports the visibility flags for one sticker (facelet
	// 0 or 1) of the edge at pos.
	EdgeVisibility(c cubie.Cube, pos, facelet int) cubie.Visibility
	// CornerVisibility reports the visibility flags for one sticker
	// (facelet 0, 1 or 2) of the corner at pos.
	CornerVisibility(c cubie.Cube, pos, facelet int) cubie.Visibility
}

// For returns the classifier for kind/axis, or nil if kind is not a known
// Kind. Scrambled, Finish and Insertions return a classifier for any axis.
func For(kind Kind, axis cubie.Axis) Classifier {
	switch kind {
	case Scrambled:
		return scrambledClassifier{}
	case EO:
		return eoClassifier{axis: axis}
	case DR:
		return drClassifier{axis: axis}
	case HTR:
		return htrClassifier{axis: axis}
	case FR:
		return frClassifier{axis: axis}
	case Slice:
		return sliceClassifier{axis: axis}
	case Finish:
		return finishClassifier{}
	case Insertions:
		return insertionsClassifier{}
	}
	return nil
}

// CaseIdentity is the search deduplicator's key for a solved candidate:
// distinct from CaseName (a short human label many different cube states
// share), it must distinguish any two cube states that aren't actually
// the same position. For every stage but HTR this is just the cube's raw
// piece layout; HTR additionally folds in U2 D2 (or its axis-rotated
// equivalent), a no-op on HTR's own reduced-group naming, by keying on
// whichever of {identity, U2 D2} produces the lexicographically smaller
// signature - so two solutions differing only by that no-op land on the
// same case rather than being reported as distinct.
func CaseIdentity(cls Classifier, c cubie.Cube) string {
	sig := rawSignature(c)
	if cls.Kind() != HTR {
		return sig
	}
	alt := c.Clone()
	alt.ApplyMoves(u2d2Moves(cls.Axis()))
	if altSig := rawSignature(alt); altSig < sig {
		return altSig
	}
	return sig
}

func u2d2Moves(axis cubie.Axis) []cubie.Move {
	switch axis {
	case cubie.AxisFB:
		return []cubie.Move{{Face: cubie.FaceF, Turns: 2}, {Face: cubie.FaceB, Turns: 2}}
	case cubie.AxisRL:
		return []cubie.Move{{Face: cubie.FaceR, Turns: 2}, {Face: cubie.FaceL, Turns: 2}}
	default:
		return []cubie.Move{{Face: cubie.FaceU, Turns: 2}, {Face: cubie.FaceD, Turns: 2}}
	}
}

func rawSignature(c cubie.Cube) string {
	var b strings.Builder
	for _, co := range c.Corners {
		fmt.Fprintf(&b, "%d.%d|", co.ID, co.Orientation)
	}
	for _, e := range c.Edges {
		ud, fb, rl := 0, 0, 0
		if e.OrientedUD {
			ud = 1
		}
		if e.OrientedFB {
			fb = 1
		}
		if e.OrientedRL {
			rl = 1
		}
		fmt.Fprintf(&b, "%d.%d%d%d|", e.ID, ud, fb, rl)
	}
	return b.String()
}
