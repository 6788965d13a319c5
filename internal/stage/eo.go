package stage

import (
	"fmt"

	"github.com/behrlich/fmc-cube/internal/cubie"
)

// eoClassifier is EO for whichever axis it's built with - edge
// orientation has no prerequisite and is always eligible. The three
// axis variants differ only in which of the three orientation flags
// they read.
type eoClassifier struct {
	axis cubie.Axis
}

func (e eoClassifier) Kind() Kind        { return EO }
func (e eoClassifier) Axis() cubie.Axis  { return e.axis }
func (e eoClassifier) IsEligible(cubie.Cube) bool { return true }

func (e eoClassifier) IsSolved(c cubie.Cube) bool {
	return c.CountBadEdgesFor(e.axis) == 0
}

func (e eoClassifier) CaseName(c cubie.Cube) string {
	return fmt.Sprintf("%de", c.CountBadEdgesFor(e.axis))
}

// EdgeVisibility marks a bad edge BAD_FACE|BAD_PIECE on every facelet; a
// good edge stays ANY regardless of which facelet is asked about.
func (e eoClassifier) EdgeVisibility(c cubie.Cube, pos, facelet int) cubie.Visibility {
	if c.Edges[pos].EdgeOrientedFor(e.axis) {
		return cubie.VisibilityAny
	}
	return cubie.VisibilityBadFace | cubie.VisibilityBadPiece
}

func (e eoClassifier) CornerVisibility(cubie.Cube, int, int) cubie.Visibility {
	return cubie.VisibilityAny
}
