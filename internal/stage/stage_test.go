package stage

import (
	"testing"

	"github.com/behrlich/fmc-cube/internal/cubie"
)

func scramble(t *testing.T, s string) cubie.Cube {
	t.Helper()
	moves, err := cubie.ParseMoves(s)
	if err != nil {
		t.Fatalf("ParseMoves(%q): %v", s, err)
	}
	return cubie.FromMoves(moves)
}

func TestForReturnsAllKindAxisCombinations(t *testing.T) {
	kinds := []Kind{Scrambled, EO, DR, HTR, FR, Slice, Finish, Insertions}
	for _, k := range kinds {
		cls := For(k, cubie.AxisUD)
		if cls == nil {
			t.Errorf("For(%s, UD) returned nil", k)
			continue
		}
		if cls.Kind() != k {
			t.Errorf("For(%s, UD).Kind() = %s", k, cls.Kind())
		}
	}
}

func TestParseKindRoundTrips(t *testing.T) {
	for _, k := range []Kind{Scrambled, EO, DR, HTR, FR, Slice, Finish, Insertions} {
		parsed, ok := ParseKind(k.String())
		if !ok {
			t.Errorf("ParseKind(%q) failed", k.String())
			continue
		}
		if parsed != k {
			t.Errorf("ParseKind(%q) = %s, want %s", k.String(), parsed, k)
		}
	}
}

func TestParseKindRejectsUnknown(t *testing.T) {
	if _, ok := ParseKind("not-a-stage"); ok {
		t.Fatal("ParseKind should reject an unrecognized token")
	}
}

func TestScrambledClassifier(t *testing.T) {
	cls := For(Scrambled, cubie.AxisUD)
	if !cls.IsSolved(cubie.Solved()) {
		t.Error("scrambled stage should report solved on the identity cube")
	}
	if cls.IsSolved(scramble(t, "R U F")) {
		t.Error("scrambled stage should not report solved after a scramble")
	}
	if !cls.IsEligible(scramble(t, "R U F")) {
		t.Error("scrambled stage is always eligible")
	}
}

func TestEOIsAlwaysEligible(t *testing.T) {
	cls := For(EO, cubie.AxisUD)
	if !cls.IsEligible(scramble(t, "R U F B2 L D2")) {
		t.Error("EO has no prerequisite and should always be eligible")
	}
}

func TestEOSolvedOnIdentity(t *testing.T) {
	for _, axis := range []cubie.Axis{cubie.AxisUD, cubie.AxisFB, cubie.AxisRL} {
		cls := For(EO, axis)
		if !cls.IsSolved(cubie.Solved()) {
			t.Errorf("EO/%s should be solved on the identity cube", axis)
		}
	}
}

func TestEOSolvedAfterUDPreservingMoves(t *testing.T) {
	// U/D/R2/L2/F2/B2 never break UD edge orientation.
	cls := For(EO, cubie.AxisUD)
	c := scramble(t, "U R2 D' L2 F2 B2 U2")
	if !cls.IsSolved(c) {
		t.Error("EO-UD should survive a scramble built only from EO-preserving moves")
	}
}

func TestDREligibleRequiresATransverseEOAxis(t *testing.T) {
	cls := For(DR, cubie.AxisUD)
	// A scramble built purely from U/D/R2/L2/F2/B2 keeps every edge
	// oriented on both the FB and RL axes, so DR-UD stays eligible.
	c := scramble(t, "U2 D2 R2 L2 F2 B2")
	if !cls.IsEligible(c) {
		t.Error("DR-UD should be eligible when FB or RL edge orientation already holds")
	}
}

func TestDRSolvedOnIdentity(t *testing.T) {
	for _, axis := range []cubie.Axis{cubie.AxisUD, cubie.AxisFB, cubie.AxisRL} {
		cls := For(DR, axis)
		if !cls.IsSolved(cubie.Solved()) {
			t.Errorf("DR/%s should be solved on the identity cube", axis)
		}
	}
}

func TestHTRIneligibleWithoutDR(t *testing.T) {
	cls := For(HTR, cubie.AxisUD)
	c := scramble(t, "R U F")
	if cls.IsEligible(c) {
		t.Error("HTR should not be eligible on a cube that isn't DR-solved")
	}
}

func TestHTRSolvedOnIdentity(t *testing.T) {
	cls := For(HTR, cubie.AxisUD)
	if !cls.IsSolved(cubie.Solved()) {
		t.Error("HTR should be solved on the identity cube")
	}
}

func TestFRIneligibleWithoutHTR(t *testing.T) {
	cls := For(FR, cubie.AxisUD)
	c := scramble(t, "R U F")
	if cls.IsEligible(c) {
		t.Error("FR should not be eligible on a cube that isn't HTR-solved")
	}
}

func TestFRSolvedOnIdentity(t *testing.T) {
	cls := For(FR, cubie.AxisUD)
	if !cls.IsSolved(cubie.Solved()) {
		t.Error("FR should be solved on the identity cube")
	}
}

func TestSliceSolvedOnIdentity(t *testing.T) {
	cls := For(Slice, cubie.AxisUD)
	if !cls.IsSolved(cubie.Solved()) {
		t.Error("Slice should be solved on the identity cube")
	}
}

func TestFinishSolvedOnlyOnIdentity(t *testing.T) {
	cls := For(Finish, cubie.AxisUD)
	if !cls.IsSolved(cubie.Solved()) {
		t.Error("Finish should be solved on the identity cube")
	}
	if cls.IsSolved(scramble(t, "R U F")) {
		t.Error("Finish should not be solved after a scramble")
	}
}

func TestInsertionsMirrorsFinishEligibility(t *testing.T) {
	cls := For(Insertions, cubie.AxisUD)
	c := scramble(t, "R U F")
	if cls.IsEligible(c) != For(Finish, cubie.AxisUD).IsEligible(c) {
		t.Error("Insertions eligibility should mirror Finish eligibility")
	}
}

func TestEdgeVisibilityAnyOnSolvedCube(t *testing.T) {
	cls := For(EO, cubie.AxisUD)
	c := cubie.Solved()
	for pos := 0; pos < 12; pos++ {
		for facelet := 0; facelet < 2; facelet++ {
			if v := cls.EdgeVisibility(c, pos, facelet); v != cubie.VisibilityAny {
				t.Errorf("edge %d facelet %d visibility on a solved cube = %v, want VisibilityAny", pos, facelet, v)
			}
		}
	}
}

func TestEOFBVisibilityMarksBadFaceOnMisorientedEdge(t *testing.T) {
	cls := For(EO, cubie.AxisFB)
	c := scramble(t, "R U F")
	var sawBadFace bool
	var badCount int
	for pos := 0; pos < 12; pos++ {
		v := cls.EdgeVisibility(c, pos, 0) | cls.EdgeVisibility(c, pos, 1)
		if v.Has(cubie.VisibilityBadFace) {
			sawBadFace = true
		}
		if v.Has(cubie.VisibilityBadPiece) {
			badCount++
		}
	}
	if !sawBadFace {
		t.Error("EO-FB edge visibility after R U F should set BAD_FACE on at least one edge")
	}
	if badCount < 2 {
		t.Errorf("EO-FB after R U F should mark several edges bad, got %d", badCount)
	}
}

func TestHTRUDVisibilityMarksBadFaceOnMisorientedEdge(t *testing.T) {
	cls := For(HTR, cubie.AxisUD)
	c := scramble(t, "R U F")
	if v := cls.EdgeVisibility(c, 0, 0) | cls.EdgeVisibility(c, 0, 1); !v.Has(cubie.VisibilityBadFace) {
		t.Errorf("HTR-UD edge 0 visibility after R U F = %v, want BAD_FACE set", v)
	}
	var sawHTRD, sawTopColor bool
	for pos := 0; pos < 8; pos++ {
		v := cls.CornerVisibility(c, pos, 0) | cls.CornerVisibility(c, pos, 1) | cls.CornerVisibility(c, pos, 2)
		if v.Has(cubie.VisibilityHTRD) {
			sawHTRD = true
		}
		if v.Has(cubie.VisibilityTopColor) {
			sawTopColor = true
		}
	}
	if !sawHTRD || !sawTopColor {
		t.Error("HTR-UD corner visibility should surface both HTR_D and TOP_COLOR across the eight corners")
	}
}

func TestCaseIdentityDistinguishesDifferentStatesWithSameCaseName(t *testing.T) {
	cls := For(EO, cubie.AxisUD)
	a := scramble(t, "R")
	b := scramble(t, "L")
	if cls.CaseName(a) != cls.CaseName(b) {
		t.Skip("R and L no longer share an EO-UD case name; nothing to distinguish")
	}
	if CaseIdentity(cls, a) == CaseIdentity(cls, b) {
		t.Error("CaseIdentity should distinguish two different cube states sharing a case name")
	}
}

func TestCaseIdentityHTRFoldsInU2D2(t *testing.T) {
	cls := For(HTR, cubie.AxisUD)
	solved := cubie.Solved()
	u2d2 := scramble(t, "U2 D2")
	if CaseIdentity(cls, solved) != CaseIdentity(cls, u2d2) {
		t.Error("HTR case identity should treat a cube and its U2 D2 image as the same case")
	}
}
