package stage

import "github.com/behrlich/fmc-cube/internal/cubie"

// scrambledClassifier is the pipeline's starting point: always eligible,
// solved only for the identity cube, carrying no case or visibility
// information of its own.
type scrambledClassifier struct{}

func (scrambledClassifier) Kind() Kind             { return Scrambled }
func (scrambledClassifier) Axis() cubie.Axis       { return cubie.AxisUD }
func (scrambledClassifier) IsEligible(cubie.Cube) bool { return true }
func (scrambledClassifier) IsSolved(c cubie.Cube) bool { return c.IsSolved() }
func (scrambledClassifier) CaseName(cubie.Cube) string { return "" }

func (scrambledClassifier) EdgeVisibility(cubie.Cube, int, int) cubie.Visibility {
	return cubie.VisibilityAny
}

func (scrambledClassifier) CornerVisibility(cubie.Cube, int, int) cubie.Visibility {
	return cubie.VisibilityAny
}
