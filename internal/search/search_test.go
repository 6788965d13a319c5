package search

import (
	"errors"
	"testing"

	"github.com/behrlich/fmc-cube/internal/cubie"
	"github.com/behrlich/fmc-cube/internal/stage"
)

func mustMoves(t *testing.T, s string) cubie.Cube {
	t.Helper()
	moves, err := cubie.ParseMoves(s)
	if err != nil {
		t.Fatalf("ParseMoves(%q): %v", s, err)
	}
	return cubie.FromMoves(moves)
}

func TestFindRejectsUnsupportedStages(t *testing.T) {
	c := cubie.Solved()
	for _, kind := range []stage.Kind{stage.Scrambled, stage.Insertions} {
		_, err := Find(c, stage.For(kind, cubie.AxisUD), 1, Options{})
		if !errors.Is(err, stage.ErrUnsupportedSolve) {
			t.Errorf("Find(%s) error = %v, want ErrUnsupportedSolve", kind, err)
		}
	}
}

func TestFindSolvesAlreadySolvedCubeWithEmptyAlgorithm(t *testing.T) {
	c := cubie.Solved()
	cls := stage.For(stage.EO, cubie.AxisUD)
	algs, err := Find(c, cls, 1, Options{MaxDepth: 3})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(algs) != 1 || !algs[0].IsEmpty() {
		t.Fatalf("expected a single empty algorithm, got %v", algs)
	}
}

func TestFindReturnsASolutionThatActuallySolvesTheCube(t *testing.T) {
	c := mustMoves(t, "R U F")
	cls := stage.For(stage.EO, cubie.AxisUD)
	algs, err := Find(c, cls, 1, Options{MaxDepth: 6})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(algs) == 0 {
		t.Fatal("expected at least one solution")
	}
	cand := c.Clone()
	cand.ApplyAlgorithm(algs[0])
	if !cls.IsSolved(cand) {
		t.Fatalf("returned algorithm %s does not solve EO-UD", algs[0].String())
	}
}

func TestFindReturnsSolutionsInNonDecreasingLength(t *testing.T) {
	c := mustMoves(t, "R U F L")
	cls := stage.For(stage.EO, cubie.AxisUD)
	algs, err := Find(c, cls, 3, Options{MaxDepth: 8, DedupCases: false})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	for i := 1; i < len(algs); i++ {
		if algs[i].Len() < algs[i-1].Len() {
			t.Fatalf("solution %d (len %d) shorter than solution %d (len %d)", i, algs[i].Len(), i-1, algs[i-1].Len())
		}
	}
}

func TestFindDedupCasesProducesDistinctCaseIdentities(t *testing.T) {
	c := mustMoves(t, "R U F L D2")
	cls := stage.For(stage.EO, cubie.AxisUD)
	algs, err := Find(c, cls, 5, Options{MaxDepth: 8, DedupCases: true})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	seen := map[string]bool{}
	for _, a := range algs {
		cand := c.Clone()
		cand.ApplyAlgorithm(a)
		id := stage.CaseIdentity(cls, cand)
		if seen[id] {
			t.Fatalf("duplicate case identity among deduplicated results for %s", a.String())
		}
		seen[id] = true
	}
}

func TestFindCanonicalExcludesTrailingPrimeMoves(t *testing.T) {
	c := mustMoves(t, "R U F")
	cls := stage.For(stage.EO, cubie.AxisUD)
	algs, err := Find(c, cls, 5, Options{MaxDepth: 8, RequireCanonical: true})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	for _, a := range algs {
		last := a.Normal
		if len(a.Inverse) > 0 {
			last = a.Inverse
		}
		if len(last) == 0 {
			continue
		}
		if last[len(last)-1].Turns == 3 {
			t.Fatalf("canonical-form algorithm %s ends in a prime move", a.String())
		}
	}
}

func TestFindNoSolutionWithinDepthReturnsSentinel(t *testing.T) {
	c := mustMoves(t, "R U F D2 L2 B2 R2 U2")
	cls := stage.For(stage.EO, cubie.AxisUD)
	_, err := Find(c, cls, 1, Options{MaxDepth: 1})
	if !errors.Is(err, ErrNoSolutionsFound) {
		t.Fatalf("Find with depth 1 on a heavily scrambled cube: got %v, want ErrNoSolutionsFound", err)
	}
}

func TestBoundForReturnsNilForUnboundedStages(t *testing.T) {
	for _, kind := range []stage.Kind{stage.HTR, stage.FR, stage.Slice, stage.Finish} {
		if b := BoundFor(kind, cubie.AxisUD); b != nil {
			t.Errorf("BoundFor(%s) should be nil, got non-nil", kind)
		}
	}
}

func TestMovesForRestrictsGeneratorPastDR(t *testing.T) {
	for _, m := range MovesFor(stage.HTR, cubie.AxisUD) {
		if (m.Face == cubie.FaceR || m.Face == cubie.FaceL || m.Face == cubie.FaceF || m.Face == cubie.FaceB) && m.Turns != 2 {
			t.Errorf("HTR generator should only use half turns off-axis, got %s", cubie.MoveString(m))
		}
	}
	for _, kind := range []stage.Kind{stage.FR, stage.Slice, stage.Finish} {
		for _, m := range MovesFor(kind, cubie.AxisUD) {
			if m.Turns != 2 {
				t.Errorf("%s generator should be half-turns-only, got turns=%d", kind, m.Turns)
			}
		}
	}
	if len(MovesFor(stage.EO, cubie.AxisUD)) != 18 {
		t.Error("EO should still search the full 18-move set")
	}
}

func TestFindSolvesFinishWithinHalfTurnGenerator(t *testing.T) {
	c := mustMoves(t, "U2 D2 F2 B2 R2 L2")
	cls := stage.For(stage.Finish, cubie.AxisUD)
	algs, err := Find(c, cls, 1, Options{MaxDepth: 8})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	cand := c.Clone()
	cand.ApplyAlgorithm(algs[0])
	if !cls.IsSolved(cand) {
		t.Fatalf("returned algorithm %s does not solve Finish", algs[0].String())
	}
	for _, m := range algs[0].Normal {
		if m.Turns != 2 {
			t.Fatalf("Finish search returned a non-half-turn move %s", cubie.MoveString(m))
		}
	}
}

func TestBoundForEOAndDRIsZeroOnSolvedCube(t *testing.T) {
	for _, kind := range []stage.Kind{stage.EO, stage.DR} {
		b := BoundFor(kind, cubie.AxisUD)
		if b == nil {
			t.Fatalf("BoundFor(%s, UD) should not be nil", kind)
		}
		if got := b(cubie.Solved()); got != 0 {
			t.Errorf("BoundFor(%s)(solved) = %d, want 0", kind, got)
		}
	}
}
