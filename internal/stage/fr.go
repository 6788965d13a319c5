package stage

import (
	"fmt"

	"github.com/behrlich/fmc-cube/internal/coord"
	"github.com/behrlich/fmc-cube/internal/cubie"
)

// frClassifier is Floppy Reduction: every piece
// outside the axis's own slice must be either home or swapped with its
// slice-opposite, so the slice itself can be fixed with a single slice
// turn. UD leaves the E slice open, FB the S slice, RL the M slice -
// exactly the three EdgeOpposite*/CornerOpposite* tables already defined
// in cubie/facelets.go.
type frClassifier struct {
	axis cubie.Axis
}

func (f frClassifier) Kind() Kind       { return FR }
func (f frClassifier) Axis() cubie.Axis { return f.axis }

func (f frClassifier) edgeOpposite() [12]uint8 {
	switch f.axis {
	case cubie.AxisFB:
		return cubie.EdgeOppositeSSlice
	case cubie.AxisRL:
		return cubie.EdgeOppositeMSlice
	default:
		return cubie.EdgeOppositeESlice
	}
}

func (f frClassifier) cornerOpposite() [8]uint8 {
	switch f.axis {
	case cubie.AxisFB:
		return cubie.CornerOppositeSSlice
	case cubie.AxisRL:
		return cubie.CornerOppositeMSlice
	default:
		return cubie.CornerOppositeESlice
	}
}

func (f frClassifier) IsEligible(c cubie.Cube) bool {
	return (htrClassifier{axis: f.axis}).IsSolved(c)
}

func (f frClassifier) IsSolved(c cubie.Cube) bool {
	return coord.FRBadEdgeCount(c, f.edgeOpposite()) == 0 && coord.FRBadCornerCount(c, f.cornerOpposite()) == 0
}

// cornerPermParity reports the parity of the corner identity permutation:
// true for odd.
func cornerPermParity(c cubie.Cube) bool {
	var ids [8]int
	for i, co := range c.Corners {
		ids[i] = int(co.ID)
	}
	inversions := 0
	for i := 0; i < 8; i++ {
		for j := i + 1; j < 8; j++ {
			if ids[i] > ids[j] {
				inversions++
			}
		}
	}
	return inversions%2 == 1
}

func (f frClassifier) CaseName(c cubie.Cube) string {
	badCorners := coord.FRBadCornerCount(c, f.cornerOpposite())
	parity := cornerPermParity(c)

	var cornerCase string
	switch {
	case badCorners == 0 && parity:
		cornerCase = "0c3"
	case badCorners == 0:
		cornerCase = "0c0"
	case badCorners == 3 && parity:
		cornerCase = "4c1"
	case badCorners == 3:
		cornerCase = "4c2"
	case parity:
		cornerCase = "6c1"
	default:
		cornerCase = "6c2"
	}
	badEdges := coord.FRBadEdgeCount(c, f.edgeOpposite())
	return fmt.Sprintf("%s %de", cornerCase, badEdges)
}

func (f frClassifier) EdgeVisibility(c cubie.Cube, pos, facelet int) cubie.Visibility {
	opp := f.edgeOpposite()
	e := c.Edges[pos]
	if uint8(pos) != opp[pos] && e.ID != uint8(pos) && e.ID != opp[pos] {
		return cubie.VisibilityBadPiece
	}
	return cubie.VisibilityAny
}

// orbitCorners names the two corner slots FR visibility actually reports
// on: the pair whose slice-relative swap is the one degree of freedom FR
// leaves behind. Every other corner is already pinned by HTR and stays
// VisibilityAny regardless of its state.
func (f frClassifier) orbitCorners() (int, int) {
	switch f.axis {
	case cubie.AxisFB:
		return cubie.CornerUFL, cubie.CornerULB
	case cubie.AxisRL:
		return cubie.CornerULB, cubie.CornerUBR
	default:
		return cubie.CornerULB, cubie.CornerDFL
	}
}

func (f frClassifier) CornerVisibility(c cubie.Cube, pos, facelet int) cubie.Visibility {
	a, b := f.orbitCorners()
	if pos != a && pos != b {
		return cubie.VisibilityAny
	}
	opp := f.cornerOpposite()
	co := c.Corners[pos]
	if co.ID != uint8(pos) && co.ID != opp[pos] {
		return cubie.VisibilityBadPiece
	}
	return cubie.VisibilityAny
}
