package cubie

// Face identifies one of the six quarter-turnable faces, plus the three
// whole-cube reorientations used to delegate an FB/RL stage variant to its
// UD implementation.
type Face uint8

const (
	FaceU Face = iota
	FaceD
	FaceF
	FaceB
	FaceR
	FaceL
	AxisX // whole-cube rotation about the R/L axis
	AxisY // whole-cube rotation about the U/D axis
	AxisZ // whole-cube rotation about the F/B axis
)

func (f Face) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceD:
		return "D"
	case FaceF:
		return "F"
	case FaceB:
		return "B"
	case FaceR:
		return "R"
	case FaceL:
		return "L"
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// Opposite returns the face on the other side of the same axis. Rotations
// (AxisX/Y/Z) have no opposite and return themselves.
func (f Face) Opposite() Face {
	switch f {
	case FaceU:
		return FaceD
	case FaceD:
		return FaceU
	case FaceF:
		return FaceB
	case FaceB:
		return FaceF
	case FaceR:
		return FaceL
	case FaceL:
		return FaceR
	default:
		return f
	}
}

// Move is a quarter, half, or counter-quarter turn of a single face.
// Turns counts quarter-turns clockwise: 1 = CW, 2 = half, 3 = CCW.
type Move struct {
	Face  Face
	Turns int
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	return Move{Face: m.Face, Turns: (4 - m.Turns) % 4}
}

// quarterTurn describes the effect of one clockwise quarter turn of a face
// (or whole-cube rotation) on corner/edge slots. perm[i] == i means the
// slot is untouched; otherwise newSlot[i] = old[perm[i]].
type quarterTurn struct {
	cornerPerm  [8]int
	cornerTwist [8]uint8 // added mod 3, only meaningful where cornerPerm[i] != i
	edgePerm    [12]int
	flipUD      bool
	flipFB      bool
	flipRL      bool
}

var quarterTurns = map[Face]quarterTurn{
	FaceU: {
		cornerPerm: [8]int{3, 0, 1, 2, 4, 5, 6, 7},
		edgePerm:   [12]int{3, 0, 1, 2, 4, 5, 6, 7, 8, 9, 10, 11},
		flipFB:     true,
		flipRL:     true,
	},
	FaceD: {
		cornerPerm: [8]int{0, 1, 2, 3, 5, 6, 7, 4},
		edgePerm:   [12]int{0, 1, 2, 3, 4, 5, 6, 7, 9, 10, 11, 8},
		flipFB:     true,
		flipRL:     true,
	},
	FaceF: {
		cornerPerm:  [8]int{1, 5, 2, 3, 0, 4, 6, 7},
		cornerTwist: cornerTwistAt(map[int]uint8{0: 2, 1: 1, 4: 1, 5: 2}),
		edgePerm:    [12]int{0, 5, 2, 3, 1, 9, 6, 7, 8, 4, 10, 11},
		flipUD:      true,
		flipRL:      true,
	},
	FaceB: {
		cornerPerm:  [8]int{0, 1, 3, 7, 4, 5, 2, 6},
		cornerTwist: cornerTwistAt(map[int]uint8{2: 2, 3: 1, 6: 1, 7: 2}),
		edgePerm:    [12]int{0, 1, 2, 7, 4, 5, 3, 11, 8, 9, 10, 6},
		flipUD:      true,
		flipRL:      true,
	},
	FaceR: {
		cornerPerm:  [8]int{4, 1, 2, 0, 7, 5, 6, 3},
		cornerTwist: cornerTwistAt(map[int]uint8{0: 2, 3: 1, 4: 1, 7: 2}),
		edgePerm:    [12]int{4, 1, 2, 3, 8, 5, 6, 0, 7, 9, 10, 11},
		flipUD:      true,
		flipFB:      true,
	},
	FaceL: {
		cornerPerm:  [8]int{0, 2, 6, 3, 4, 1, 5, 7},
		cornerTwist: cornerTwistAt(map[int]uint8{1: 2, 2: 1, 5: 1, 6: 2}),
		edgePerm:    [12]int{0, 1, 6, 3, 4, 2, 10, 7, 8, 9, 5, 11},
		flipUD:      true,
		flipFB:      true,
	},
	AxisX: {
		cornerPerm:  [8]int{4, 2, 6, 0, 7, 1, 5, 3},
		cornerTwist: cornerTwistAt(map[int]uint8{0: 2, 1: 2, 2: 1, 3: 1, 4: 1, 5: 1, 6: 2, 7: 2}),
		edgePerm:    [12]int{4, 9, 6, 1, 8, 2, 10, 0, 7, 11, 5, 3},
		flipUD:      true,
		flipFB:      true,
	},
	AxisY: {
		cornerPerm:  [8]int{3, 0, 1, 2, 7, 4, 5, 6},
		cornerTwist: [8]uint8{},
		edgePerm:    [12]int{3, 0, 1, 2, 7, 4, 5, 6, 11, 8, 9, 10},
		flipFB:      true,
		flipRL:      true,
	},
	AxisZ: {
		cornerPerm:  [8]int{1, 5, 3, 7, 0, 4, 2, 6},
		cornerTwist: cornerTwistAt(map[int]uint8{0: 2, 1: 1, 2: 2, 3: 1, 4: 1, 5: 2, 6: 1, 7: 2}),
		edgePerm:    [12]int{2, 5, 10, 7, 1, 9, 3, 11, 0, 4, 8, 6},
		flipUD:      true,
		flipRL:      true,
	},
}

func cornerTwistAt(deltas map[int]uint8) [8]uint8 {
	var t [8]uint8
	for i, d := range deltas {
		t[i] = d
	}
	return t
}

// applyQuarter applies one clockwise quarter turn in place.
func (c *Cube) applyQuarter(q quarterTurn) {
	var newCorners [8]Corner
	for i := 0; i < 8; i++ {
		src := q.cornerPerm[i]
		nc := c.Corners[src]
		if src != i {
			nc.Orientation = (nc.Orientation + q.cornerTwist[i]) % 3
		}
		newCorners[i] = nc
	}
	c.Corners = newCorners

	var newEdges [12]Edge
	for i := 0; i < 12; i++ {
		src := q.edgePerm[i]
		ne := c.Edges[src]
		if src != i {
			if q.flipUD {
				ne.OrientedUD = !ne.OrientedUD
			}
			if q.flipFB {
				ne.OrientedFB = !ne.OrientedFB
			}
			if q.flipRL {
				ne.OrientedRL = !ne.OrientedRL
			}
		}
		newEdges[i] = ne
	}
	c.Edges = newEdges
}

// Apply applies a single move (quarter, half, or counter-quarter) in place.
func (c *Cube) Apply(m Move) {
	q := quarterTurns[m.Face]
	turns := m.Turns % 4
	for i := 0; i < turns; i++ {
		c.applyQuarter(q)
	}
}

// ApplyMoves applies a sequence of moves in order, in place.
func (c *Cube) ApplyMoves(moves []Move) {
	for _, m := range moves {
		c.Apply(m)
	}
}

// Transform applies a whole-cube reorientation (AxisX/Y/Z, with turns 1-3)
// in place. Stage variants for the FB/RL axes are implemented by
// transforming a clone and delegating to the UD implementation.
func (c *Cube) Transform(axis Face, turns int) {
	c.Apply(Move{Face: axis, Turns: turns})
}

// FromMoves builds a cube by applying moves to the solved state.
func FromMoves(moves []Move) Cube {
	c := Solved()
	c.ApplyMoves(moves)
	return c
}
