package coord

import (
	"testing"

	"github.com/behrlich/fmc-cube/internal/cubie"
)

func TestDRIndexZeroOnSolvedCube(t *testing.T) {
	if got := DRIndex(cubie.Solved()); got != 0 {
		t.Fatalf("DRIndex(Solved()) = %d, want 0", got)
	}
}

func TestDRBoundZeroOnSolvedCube(t *testing.T) {
	if got := DRBound(cubie.Solved()); got != 0 {
		t.Fatalf("DRBound(Solved()) = %d, want 0", got)
	}
}

func TestDRBoundPositiveAfterATwist(t *testing.T) {
	c := cubie.Solved()
	c.Apply(cubie.Move{Face: cubie.FaceR, Turns: 1})
	if got := DRBound(c); got <= 0 {
		t.Fatalf("DRBound after a single R move = %d, want > 0", got)
	}
}

func TestDRBoundIsAdmissible(t *testing.T) {
	// A single move can decrease the true distance to DR by at most one,
	// so the bound can never increase by more than one move's worth after
	// applying a single move, and the distance to a DR-solved cube after
	// one move must be at least DRBound(start)-1.
	c := cubie.Solved()
	before := DRBound(c)
	c.Apply(cubie.Move{Face: cubie.FaceF, Turns: 1})
	after := DRBound(c)
	if after > before+1 {
		t.Fatalf("DRBound grew by more than one move's worth: before=%d after=%d", before, after)
	}
}

func TestEOBoundZeroOnSolvedCube(t *testing.T) {
	if got := EOBound(cubie.Solved()); got != 0 {
		t.Fatalf("EOBound(Solved()) = %d, want 0", got)
	}
}

func TestEOBoundScalesWithBadEdges(t *testing.T) {
	c := cubie.Solved()
	c.Apply(cubie.Move{Face: cubie.FaceR, Turns: 1})
	bad := c.CountBadEdgesUD()
	want := (bad + 3) / 4
	if got := EOBound(c); got != want {
		t.Fatalf("EOBound = %d, want %d (ceil(%d/4))", got, want, bad)
	}
}

func TestQuarterTurnsToHTRZeroWhenAlreadySolved(t *testing.T) {
	qt, ok := QuarterTurnsToHTR(cubie.Solved(), 4)
	if !ok || qt != 0 {
		t.Fatalf("QuarterTurnsToHTR(Solved()) = (%d, %v), want (0, true)", qt, ok)
	}
}

func TestQuarterTurnsToHTRFindsOneMoveFix(t *testing.T) {
	c := cubie.Solved()
	c.Apply(cubie.Move{Face: cubie.FaceU, Turns: 1})
	qt, ok := QuarterTurnsToHTR(c, 4)
	if !ok {
		t.Fatal("expected a solution within 4 quarter turns")
	}
	if qt != 1 {
		t.Fatalf("QuarterTurnsToHTR after a single U turn = %d, want 1", qt)
	}
}

func TestBuildAssignsZeroToStartAndReachesNeighbors(t *testing.T) {
	space := Space{
		Size:  DRCoordSize,
		Index: DRIndex,
		Moves: AllMoves,
	}
	table := Build(space)
	if table.Distance(DRIndex(cubie.Solved())) != 0 {
		t.Fatal("solved coordinate must have distance 0")
	}
	c := cubie.Solved()
	c.Apply(cubie.Move{Face: cubie.FaceR, Turns: 1})
	if table.Distance(DRIndex(c)) == 0 {
		t.Fatal("a cube one R turn from solved should not have distance 0 in the DR table")
	}
}

func TestGetCachesAcrossCalls(t *testing.T) {
	calls := 0
	build := func() Table {
		calls++
		return Table{0, 1, 2}
	}
	t1 := Get("test-table-key", build)
	t2 := Get("test-table-key", build)
	if calls != 1 {
		t.Fatalf("build function called %d times, want 1", calls)
	}
	if len(t1) != len(t2) {
		t.Fatal("Get should return the same cached table on repeated calls")
	}
}

func TestDistanceOutOfRangeIsZero(t *testing.T) {
	table := Table{0, 1, 2}
	if got := table.Distance(-1); got != 0 {
		t.Fatalf("Distance(-1) = %d, want 0", got)
	}
	if got := table.Distance(100); got != 0 {
		t.Fatalf("Distance(100) = %d, want 0", got)
	}
}
