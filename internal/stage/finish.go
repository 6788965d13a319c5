package stage

import (
	"fmt"

	"github.com/behrlich/fmc-cube/internal/cubie"
)

// finishClassifier is the fully-solved cube. It has no axis variants -
// Axis always reports cubie.AxisUD, a placeholder, since nothing reads it.
type finishClassifier struct{}

func (finishClassifier) Kind() Kind           { return Finish }
func (finishClassifier) Axis() cubie.Axis     { return cubie.AxisUD }
func (finishClassifier) IsEligible(cubie.Cube) bool { return true }

func (finishClassifier) IsSolved(c cubie.Cube) bool {
	return c.IsSolved()
}

func (finishClassifier) CaseName(c cubie.Cube) string {
	badCorners, badEdges := 0, 0
	for i, co := range c.Corners {
		if co.ID != uint8(i) {
			badCorners++
		}
	}
	for i, e := range c.Edges {
		if e.ID != uint8(i) {
			badEdges++
		}
	}
	var cs, es string
	if badCorners > 0 {
		cs = fmt.Sprintf("%dc", badCorners)
	}
	if badEdges > 0 {
		es = fmt.Sprintf("%de", badEdges)
	}
	return cs + es
}

// EdgeVisibility and CornerVisibility mark every sticker BAD_PIECE|BAD_FACE
// unconditionally: unlike every earlier stage, Finish has no "already
// fine, leave it alone" subset of pieces - reaching a solved cube from
// here can move any piece, so every facelet is drawn as live.
func (finishClassifier) EdgeVisibility(c cubie.Cube, pos, facelet int) cubie.Visibility {
	return cubie.VisibilityBadPiece | cubie.VisibilityBadFace
}

func (finishClassifier) CornerVisibility(c cubie.Cube, pos, facelet int) cubie.Visibility {
	return cubie.VisibilityBadPiece | cubie.VisibilityBadFace
}
