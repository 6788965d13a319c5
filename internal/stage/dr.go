package stage

import (
	"fmt"

	"github.com/behrlich/fmc-cube/internal/cubie"
)

// drClassifier is Domino Reduction: corners oriented and edges oriented
// on the two axes other than its own, with the four slice edges of its
// axis restricted to that slice. The UD variant evaluates the cube
// directly; for FB/RL, IsSolved and CaseName reorient a clone with
// ViewFromAxis and reuse the UD checks, while IsEligible and the
// visibility methods read their own axis's fields directly.
type drClassifier struct {
	axis cubie.Axis
}

func (d drClassifier) Kind() Kind       { return DR }
func (d drClassifier) Axis() cubie.Axis { return d.axis }

func (d drClassifier) IsSolved(c cubie.Cube) bool {
	v := c.ViewFromAxis(d.axis)
	if v.CountBadEdgesFB() != 0 || v.CountBadEdgesRL() != 0 || v.CountBadCorners() != 0 {
		return false
	}
	for pos := 4; pos <= 7; pos++ {
		if v.Edges[pos].ID < 4 || v.Edges[pos].ID > 7 {
			return false
		}
	}
	return true
}

// otherAxes returns the two reference axes that aren't axis, in UD-FB-RL
// cyclic order starting from the one after axis.
func otherAxes(axis cubie.Axis) (cubie.Axis, cubie.Axis) {
	switch axis {
	case cubie.AxisUD:
		return cubie.AxisFB, cubie.AxisRL
	case cubie.AxisFB:
		return cubie.AxisRL, cubie.AxisUD
	default:
		return cubie.AxisUD, cubie.AxisFB
	}
}

func (d drClassifier) IsEligible(c cubie.Cube) bool {
	a, b := otherAxes(d.axis)
	return c.CountBadEdgesFor(a) == 0 || c.CountBadEdgesFor(b) == 0
}

func (d drClassifier) CaseName(c cubie.Cube) string {
	v := c.ViewFromAxis(d.axis)
	badCorners := v.CountBadCorners()
	badEdges := v.CountBadEdgesFB() + v.CountBadEdgesRL()
	return fmt.Sprintf("%dc%de", badCorners, badEdges)
}

// EdgeVisibility marks BAD_PIECE when the edge is bad on either of the two
// axes other than d.axis. BAD_FACE further narrows that to a single
// facelet: for the four edges in d.axis's own slice (which don't show
// d.axis's colour at all), it's the facelet showing whichever of the two
// other axes the edge is still good on; for every other edge, it's the
// facelet showing d.axis's own colour.
func (d drClassifier) EdgeVisibility(c cubie.Cube, pos, facelet int) cubie.Visibility {
	e := c.Edges[pos]
	a, b := otherAxes(d.axis)
	badA := !e.EdgeOrientedFor(a)
	badB := !e.EdgeOrientedFor(b)
	if !badA && !badB {
		return cubie.VisibilityAny
	}
	v := cubie.VisibilityBadPiece
	axis, ok := cubie.EdgeFaceletAxis(pos, facelet)
	if !ok {
		return v
	}
	if cubie.EdgeFaceletsFor(d.axis)[pos].Shows {
		if axis == d.axis {
			v |= cubie.VisibilityBadFace
		}
	} else if (axis == a && !badA) || (axis == b && !badB) {
		v |= cubie.VisibilityBadFace
	}
	return v
}

func (d drClassifier) CornerVisibility(c cubie.Cube, pos, facelet int) cubie.Visibility {
	co := c.Corners[pos]
	if cubie.CornerOrientationFor(pos, co.Orientation, d.axis) == 0 {
		return cubie.VisibilityAny
	}
	v := cubie.VisibilityBadPiece
	if int(cubie.CornerFaceletFor(d.axis, pos)) == facelet {
		v |= cubie.VisibilityBadFace
	}
	return v
}
