package stage

import (
	"fmt"

	"github.com/behrlich/fmc-cube/internal/cubie"
	"github.com/behrlich/fmc-cube/internal/coord"
)

// htrMaxQT bounds the 0-1 BFS search for quarter-turns-to-HTR; real HTR
// cases resolve in well under this, so hitting the cap signals a cube
// that was never actually DR-solved.
const htrMaxQT = 8

// htrClassifier is Half-Turn Reduction. All three axis variants reorient
// a clone onto the UD axis and evaluate the same quarter-turn search,
// rather than special-casing any one axis as a pure alias of another.
type htrClassifier struct {
	axis cubie.Axis
}

func (h htrClassifier) Kind() Kind       { return HTR }
func (h htrClassifier) Axis() cubie.Axis { return h.axis }

func (h htrClassifier) IsEligible(c cubie.Cube) bool {
	return (drClassifier{axis: h.axis}).IsSolved(c)
}

func (h htrClassifier) IsSolved(c cubie.Cube) bool {
	if !h.IsEligible(c) {
		return false
	}
	v := c.ViewFromAxis(h.axis)
	qt, ok := coord.QuarterTurnsToHTR(v, htrMaxQT)
	return ok && qt == 0
}

// CaseName produces the HTR subset label: bad-corner count, a letter
// classifying the misplaced edges' cycle structure, then bad-edge count
// (e.g. "0b4", "4a2") - a single cycle touching every misplaced edge gets
// "a", two cycles of equal length get "b", anything else (including no
// misplaced edges) gets "c".
func (h htrClassifier) CaseName(c cubie.Cube) string {
	if !h.IsEligible(c) {
		return ""
	}
	v := c.ViewFromAxis(h.axis)
	badCorners := 0
	for i, co := range v.Corners {
		if co.ID != uint8(i) {
			badCorners++
		}
	}
	var badEdges []int
	for i, e := range v.Edges {
		if e.ID != uint8(i) {
			badEdges = append(badEdges, i)
		}
	}
	return fmt.Sprintf("%d%s%d", badCorners, edgeCycleLetter(v, badEdges), len(badEdges))
}

// edgeCycleLetter classifies the permutation cycle structure among the
// misplaced edges of v (already reoriented onto the UD axis).
func edgeCycleLetter(v cubie.Cube, badPositions []int) string {
	if len(badPositions) == 0 {
		return "c"
	}
	visited := map[int]bool{}
	var cycleLens []int
	for _, start := range badPositions {
		if visited[start] {
			continue
		}
		length := 0
		for pos := start; !visited[pos]; pos = int(v.Edges[pos].ID) {
			visited[pos] = true
			length++
		}
		cycleLens = append(cycleLens, length)
	}
	if len(cycleLens) == 1 {
		return "a"
	}
	if len(cycleLens) == 2 && cycleLens[0] == cycleLens[1] {
		return "b"
	}
	return "c"
}

// nextAxis cycles UD -> FB -> RL -> UD, used to pick a secondary axis
// for HTR visibility.
func nextAxis(axis cubie.Axis) cubie.Axis {
	switch axis {
	case cubie.AxisUD:
		return cubie.AxisFB
	case cubie.AxisFB:
		return cubie.AxisRL
	default:
		return cubie.AxisUD
	}
}

// cornerFarSide reports whether id's home slot lies on the axis's "far"
// side - the D layer for UD, the B layer for FB, the L layer for RL - the
// side HTR_D marks on a corner, as opposed to TOP_COLOR for the near side.
func cornerFarSide(axis cubie.Axis, id uint8) bool {
	switch axis {
	case cubie.AxisFB:
		switch id {
		case cubie.CornerULB, cubie.CornerUBR, cubie.CornerDLB, cubie.CornerDBR:
			return true
		}
		return false
	case cubie.AxisRL:
		switch id {
		case cubie.CornerUFL, cubie.CornerULB, cubie.CornerDFL, cubie.CornerDLB:
			return true
		}
		return false
	default:
		return cubie.CornerLayer(id) == 1
	}
}

// EdgeVisibility marks BAD_PIECE on a misoriented edge; BAD_FACE further
// marks whichever facelet is NOT the one that would show h.axis's colour
// at rest (the complementary sticker is the one sitting in the wrong
// place once the piece is flipped).
func (h htrClassifier) EdgeVisibility(c cubie.Cube, pos, facelet int) cubie.Visibility {
	if c.Edges[pos].EdgeOrientedFor(h.axis) {
		return cubie.VisibilityAny
	}
	v := cubie.VisibilityBadPiece
	ef := cubie.EdgeFaceletsFor(h.axis)[pos]
	if !ef.Shows || int(ef.Facelet) != facelet {
		v |= cubie.VisibilityBadFace
	}
	return v
}

// CornerVisibility layers the HTR_D/TOP_COLOR annotation onto whichever
// facelet shows h.axis's colour, and tracks the residual orientation
// along the next axis in the UD->FB->RL cycle the same way DR does,
// marking BAD_FACE on whichever facelet isn't the axis-colour one.
func (h htrClassifier) CornerVisibility(c cubie.Cube, pos, facelet int) cubie.Visibility {
	co := c.Corners[pos]
	v := cubie.VisibilityAny
	axisFacelet := int(cubie.CornerFaceletFor(h.axis, pos))
	if facelet == axisFacelet {
		if cornerFarSide(h.axis, co.ID) {
			v |= cubie.VisibilityHTRD
		} else {
			v |= cubie.VisibilityTopColor
		}
	}
	if cubie.CornerOrientationFor(pos, co.Orientation, nextAxis(h.axis)) != 0 {
		v |= cubie.VisibilityBadPiece
		if facelet != axisFacelet {
			v |= cubie.VisibilityBadFace
		}
	}
	return v
}
