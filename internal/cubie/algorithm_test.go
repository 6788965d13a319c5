package cubie

import "testing"

func TestAppendCancelsInverse(t *testing.T) {
	var a Algorithm
	a = a.Append(Move{Face: FaceR, Turns: 1}, false)
	a = a.Append(Move{Face: FaceR, Turns: 3}, false)
	if !a.IsEmpty() {
		t.Fatalf("R R' should cancel to empty, got %s", a.String())
	}
}

func TestAppendCombinesSameFace(t *testing.T) {
	var a Algorithm
	a = a.Append(Move{Face: FaceR, Turns: 1}, false)
	a = a.Append(Move{Face: FaceR, Turns: 1}, false)
	if a.Len() != 1 || a.Normal[0].Turns != 2 {
		t.Fatalf("R R should combine into R2, got %s", a.String())
	}
}

func TestAppendSkipsThroughOppositeFace(t *testing.T) {
	var a Algorithm
	a = a.Append(Move{Face: FaceR, Turns: 1}, false)
	a = a.Append(Move{Face: FaceL, Turns: 1}, false)
	a = a.Append(Move{Face: FaceR, Turns: 3}, false)
	if a.Len() != 1 || a.Normal[0].Face != FaceL {
		t.Fatalf("R L R' should reduce to L, got %s", a.String())
	}
}

func TestAppendDoesNotSkipThroughSameFace(t *testing.T) {
	var a Algorithm
	a = a.Append(Move{Face: FaceR, Turns: 1}, false)
	a = a.Append(Move{Face: FaceU, Turns: 1}, false)
	a = a.Append(Move{Face: FaceR, Turns: 3}, false)
	if a.Len() != 3 {
		t.Fatalf("R U R' shares no cancelable face and should stay length 3, got %s", a.String())
	}
}

func TestAppendTracksBothSidesIndependently(t *testing.T) {
	var a Algorithm
	a = a.Append(Move{Face: FaceR, Turns: 1}, false)
	a = a.Append(Move{Face: FaceU, Turns: 1}, true)
	if len(a.Normal) != 1 || len(a.Inverse) != 1 {
		t.Fatalf("appends on different sides must not interact, got normal=%v inverse=%v", a.Normal, a.Inverse)
	}
}

func TestApplyAlgorithmMatchesManualInverse(t *testing.T) {
	alg, err := ParseAlgorithm("R U (D' F)")
	if err != nil {
		t.Fatalf("ParseAlgorithm: %v", err)
	}
	c := Solved()
	c.ApplyAlgorithm(alg)

	want := Solved()
	want.ApplyMoves(alg.Normal)
	want.Apply(Move{Face: FaceF, Turns: 1})
	want.Apply(Move{Face: FaceD, Turns: 3})
	if c != want {
		t.Fatal("ApplyAlgorithm should apply normal moves then inverse-side moves in reverse order")
	}
}

func TestInvertedIsTrueGroupInverseOfApply(t *testing.T) {
	alg, err := ParseAlgorithm("R U (D' F2 L)")
	if err != nil {
		t.Fatalf("ParseAlgorithm: %v", err)
	}
	start, err := ParseMoves("B2 L D")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	x := FromMoves(start)

	y := x
	y.ApplyAlgorithm(alg)
	y.ApplyAlgorithm(alg.Inverted())
	if y != x {
		t.Fatal("applying alg then alg.Inverted() should return to the starting state")
	}
}

func TestInvertedReversesAndInverts(t *testing.T) {
	alg := Algorithm{Normal: []Move{{Face: FaceR, Turns: 1}, {Face: FaceU, Turns: 2}}}
	inv := alg.Inverted()
	want := []Move{{Face: FaceU, Turns: 2}, {Face: FaceR, Turns: 3}}
	if len(inv.Normal) != len(want) {
		t.Fatalf("got %v, want %v", inv.Normal, want)
	}
	for i := range want {
		if inv.Normal[i] != want[i] {
			t.Fatalf("got %v, want %v", inv.Normal, want)
		}
	}
}

func TestOnInverseSwapsSides(t *testing.T) {
	alg := Algorithm{Normal: []Move{{Face: FaceR, Turns: 1}}, Inverse: []Move{{Face: FaceU, Turns: 1}}}
	swapped := alg.OnInverse()
	if len(swapped.Normal) != 1 || swapped.Normal[0].Face != FaceU {
		t.Fatalf("OnInverse should move the inverse side into Normal, got %v", swapped.Normal)
	}
	if len(swapped.Inverse) != 1 || swapped.Inverse[0].Face != FaceR {
		t.Fatalf("OnInverse should move the normal side into Inverse, got %v", swapped.Inverse)
	}
}

func TestMoveStringFormatting(t *testing.T) {
	cases := map[Move]string{
		{Face: FaceR, Turns: 1}: "R",
		{Face: FaceR, Turns: 2}: "R2",
		{Face: FaceR, Turns: 3}: "R'",
	}
	for m, want := range cases {
		if got := MoveString(m); got != want {
			t.Errorf("MoveString(%+v) = %q, want %q", m, got, want)
		}
	}
}
