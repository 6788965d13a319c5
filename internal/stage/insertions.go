package stage

import "github.com/behrlich/fmc-cube/internal/cubie"

// insertionsClassifier mirrors Finish for every query it answers - it
// names the post-skeleton insertion phase of a solve, which shares
// Finish's target state but (per ErrNoSolver in the search package) has
// no automated solver of its own.
type insertionsClassifier struct{}

func (insertionsClassifier) Kind() Kind       { return Insertions }
func (insertionsClassifier) Axis() cubie.Axis { return cubie.AxisUD }

func (insertionsClassifier) IsEligible(c cubie.Cube) bool {
	return finishClassifier{}.IsEligible(c)
}

func (insertionsClassifier) IsSolved(c cubie.Cube) bool {
	return finishClassifier{}.IsSolved(c)
}

func (insertionsClassifier) CaseName(c cubie.Cube) string {
	return finishClassifier{}.CaseName(c)
}

func (insertionsClassifier) EdgeVisibility(c cubie.Cube, pos, facelet int) cubie.Visibility {
	return finishClassifier{}.EdgeVisibility(c, pos, facelet)
}

func (insertionsClassifier) CornerVisibility(c cubie.Cube, pos, facelet int) cubie.Visibility {
	return finishClassifier{}.CornerVisibility(c, pos, facelet)
}
