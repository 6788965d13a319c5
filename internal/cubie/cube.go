// Package cubie implements the bit-level 3x3x3 cube model the FMC engine
// reasons over: 8 corners and 12 edges, each carrying an identity and an
// orientation, independent of any facelet/sticker rendering.
//
// Corner identity layout: bit 2 selects the U/D layer (0=U, 1=D); corners
// 0-3 sit in the U layer, 4-7 in the D layer, column-aligned (corner i and
// corner i+4 share an R/L/F/B edge pair). Edge identity layout: 0-3 are the
// U layer, 4-7 are the E slice, 8-11 are the D layer.
package cubie

// Corner holds a corner cubie's identity and its twist relative to the U/D
// axis: 0 means the U/D-facing sticker is correctly oriented, 1 and 2 are
// the two twisted states.
type Corner struct {
	ID          uint8
	Orientation uint8
}

// Edge holds an edge cubie's identity and three orientation flags, one per
// axis. At most two are independent; the third follows from cube geometry,
// but all three are tracked explicitly since stages query each directly.
type Edge struct {
	ID         uint8
	OrientedUD bool
	OrientedFB bool
	OrientedRL bool
}

// Cube is the full cubie-level state: 8 corners, 12 edges.
type Cube struct {
	Corners [8]Corner
	Edges   [12]Edge
}

// Solved returns a cube in the identity state.
func Solved() Cube {
	var c Cube
	for i := range c.Corners {
		c.Corners[i] = Corner{ID: uint8(i), Orientation: 0}
	}
	for i := range c.Edges {
		c.Edges[i] = Edge{ID: uint8(i), OrientedUD: true, OrientedFB: true, OrientedRL: true}
	}
	return c
}

// IsSolved reports whether every piece sits in its home slot with no twist.
func (c Cube) IsSolved() bool {
	for i, corner := range c.Corners {
		if corner.ID != uint8(i) || corner.Orientation != 0 {
			return false
		}
	}
	for i, edge := range c.Edges {
		if edge.ID != uint8(i) || !edge.OrientedUD {
			return false
		}
	}
	return true
}

// Clone returns an independent copy; Cube is a value type so this is just
// for readability at call sites that want to signal intent.
func (c Cube) Clone() Cube {
	return c
}

// EdgePairs returns the (id, orientation) observer pairs spec'd for the
// external interface, where orientation is 0 if the edge is UD-oriented and
// 1 otherwise.
func (c Cube) EdgePairs() [12][2]uint8 {
	var out [12][2]uint8
	for i, e := range c.Edges {
		o := uint8(0)
		if !e.OrientedUD {
			o = 1
		}
		out[i] = [2]uint8{e.ID, o}
	}
	return out
}

// CornerPairs returns the (id, orientation) observer pairs.
func (c Cube) CornerPairs() [8][2]uint8 {
	var out [8][2]uint8
	for i, co := range c.Corners {
		out[i] = [2]uint8{co.ID, co.Orientation}
	}
	return out
}

func (c Cube) countBadEdges(oriented func(Edge) bool) int {
	n := 0
	for _, e := range c.Edges {
		if !oriented(e) {
			n++
		}
	}
	return n
}

// CountBadEdgesUD returns the number of edges misoriented relative to U/D.
func (c Cube) CountBadEdgesUD() int { return c.countBadEdges(func(e Edge) bool { return e.OrientedUD }) }

// CountBadEdgesFB returns the number of edges misoriented relative to F/B.
func (c Cube) CountBadEdgesFB() int { return c.countBadEdges(func(e Edge) bool { return e.OrientedFB }) }

// CountBadEdgesRL returns the number of edges misoriented relative to R/L.
func (c Cube) CountBadEdgesRL() int { return c.countBadEdges(func(e Edge) bool { return e.OrientedRL }) }

// CountBadCorners returns the number of corners with nonzero twist.
func (c Cube) CountBadCorners() int {
	n := 0
	for _, co := range c.Corners {
		if co.Orientation != 0 {
			n++
		}
	}
	return n
}

// Invert returns the group inverse of c: the cube state that, composed
// with c, yields Solved(). Since a cube state is a permutation-plus-
// orientation, this is the standard permutation-inverse-with-twist-
// negation: the corner that ends up at slot i comes from wherever slot
// i's current occupant is headed.
func (c Cube) Invert() Cube {
	var out Cube
	for i, co := range c.Corners {
		out.Corners[co.ID] = Corner{ID: uint8(i), Orientation: (3 - co.Orientation) % 3}
	}
	for i, e := range c.Edges {
		out.Edges[e.ID] = Edge{ID: uint8(i), OrientedUD: e.OrientedUD, OrientedFB: e.OrientedFB, OrientedRL: e.OrientedRL}
	}
	return out
}
