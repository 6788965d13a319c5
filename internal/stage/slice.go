package stage

import (
	"fmt"

	"github.com/behrlich/fmc-cube/internal/cubie"
)

// sliceClassifier is "Finish Leave-Slice": every corner home and every
// edge outside the axis's own slice home, leaving only that slice's four
// edges (commonly finished off with a single slice move). UD leaves
// edges 4-7, FB leaves 0/2/8/10, RL leaves 1/3/9/11.
type sliceClassifier struct {
	axis cubie.Axis
}

func (s sliceClassifier) Kind() Kind       { return Slice }
func (s sliceClassifier) Axis() cubie.Axis { return s.axis }

func (s sliceClassifier) sliceSlots() [4]int {
	switch s.axis {
	case cubie.AxisFB:
		return [4]int{0, 2, 8, 10}
	case cubie.AxisRL:
		return [4]int{1, 3, 9, 11}
	default:
		return [4]int{4, 5, 6, 7}
	}
}

func (s sliceClassifier) inSlice(pos int) bool {
	for _, p := range s.sliceSlots() {
		if p == pos {
			return true
		}
	}
	return false
}

func (s sliceClassifier) IsEligible(c cubie.Cube) bool {
	return (htrClassifier{axis: s.axis}).IsSolved(c)
}

func (s sliceClassifier) IsSolved(c cubie.Cube) bool {
	for i, co := range c.Corners {
		if co.ID != uint8(i) {
			return false
		}
	}
	for pos, e := range c.Edges {
		if s.inSlice(pos) {
			continue
		}
		if e.ID != uint8(pos) {
			return false
		}
	}
	return true
}

func (s sliceClassifier) CaseName(c cubie.Cube) string {
	badEdges, badCorners := 0, 0
	for pos, e := range c.Edges {
		if s.inSlice(pos) {
			continue
		}
		if e.ID != uint8(pos) {
			badEdges++
		}
	}
	for i, co := range c.Corners {
		if co.ID != uint8(i) {
			badCorners++
		}
	}
	return fmt.Sprintf("%dc%de", badCorners, badEdges)
}

func (s sliceClassifier) EdgeVisibility(c cubie.Cube, pos, facelet int) cubie.Visibility {
	if s.inSlice(pos) {
		return cubie.VisibilityAny
	}
	return cubie.VisibilityBadFace | cubie.VisibilityBadPiece
}

func (s sliceClassifier) CornerVisibility(c cubie.Cube, pos, facelet int) cubie.Visibility {
	return cubie.VisibilityBadFace | cubie.VisibilityBadPiece
}
