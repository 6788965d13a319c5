package coord

import "github.com/behrlich/fmc-cube/internal/cubie"

// AllMoves is the full 18-move generator set used to build the DR pruning
// table from the solved cube.
var AllMoves = buildAllMoves()

func buildAllMoves() []cubie.Move {
	faces := []cubie.Face{cubie.FaceU, cubie.FaceD, cubie.FaceF, cubie.FaceB, cubie.FaceR, cubie.FaceL}
	var moves []cubie.Move
	for _, f := range faces {
		for _, t := range []int{1, 2, 3} {
			moves = append(moves, cubie.Move{Face: f, Turns: t})
		}
	}
	return moves
}

// drMoves is <U, D, R2, L2, F2, B2>, the generator set that preserves a
// domino-reduced cube: quarter turns of U/D plus half turns everywhere
// else. HTR's remaining distance is measured in quarter turns of this
// set, since half turns are "free" once DR holds.
var drMoves = []cubie.Move{
	{Face: cubie.FaceU, Turns: 1}, {Face: cubie.FaceU, Turns: 2}, {Face: cubie.FaceU, Turns: 3},
	{Face: cubie.FaceD, Turns: 1}, {Face: cubie.FaceD, Turns: 2}, {Face: cubie.FaceD, Turns: 3},
	{Face: cubie.FaceR, Turns: 2}, {Face: cubie.FaceL, Turns: 2},
	{Face: cubie.FaceF, Turns: 2}, {Face: cubie.FaceB, Turns: 2},
}

func drMoveCost(m cubie.Move) int {
	if (m.Face == cubie.FaceU || m.Face == cubie.FaceD) && m.Turns != 2 {
		return 1
	}
	return 0
}

// choose returns the binomial coefficient n-choose-k, or 0 when k is out
// of range.
func choose(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}

// rankCombination returns the combinatorial-number-system rank of the
// subset marked true in occupied: the standard bijection from a k-subset
// of {0,...,n-1} to an integer in [0, C(n,k)), used here to encode which
// slots currently hold E-slice pieces.
func rankCombination(occupied []bool) int {
	var positions []int
	for i, v := range occupied {
		if v {
			positions = append(positions, i)
		}
	}
	rank := 0
	for i, p := range positions {
		rank += choose(p, i+1)
	}
	return rank
}

// isESliceID reports whether id is one of the edge identities whose home
// slot is the E slice (FR, FL, BL, BR in our own slot order, IDs 4-7).
func isESliceID(id uint8) bool { return id >= 4 && id <= 7 }

// CornerOrientationIndex packs the first seven corners' UD-relative
// twist digits into a base-3 integer; the eighth corner's twist is
// determined by the invariant that all eight sum to 0 mod 3.
func CornerOrientationIndex(c cubie.Cube) int {
	idx := 0
	pow := 1
	for i := 0; i < 7; i++ {
		idx += int(c.Corners[i].Orientation) * pow
		pow *= 3
	}
	return idx
}

// EdgeSliceIndex ranks which four of the twelve edge slots currently hold
// an E-slice piece. The E-slice slots are ranked first, so the solved
// placement ranks 0.
func EdgeSliceIndex(c cubie.Cube) int {
	order := [12]int{4, 5, 6, 7, 0, 1, 2, 3, 8, 9, 10, 11}
	occupied := make([]bool, 12)
	for i, pos := range order {
		occupied[i] = isESliceID(c.Edges[pos].ID)
	}
	return rankCombination(occupied)
}

// DRCoordSize is the size of the combined corner-orientation/slice-index
// coordinate space: 3^7 orientation digits times C(12,4) slice
// placements.
const DRCoordSize = 2187 * 495

// DRIndex is the UD-relative DR coordinate. Stages in the FB/RL
// orientation call this on a cube already reoriented with
// Cube.ViewFromAxis.
func DRIndex(c cubie.Cube) int {
	return CornerOrientationIndex(c)*495 + EdgeSliceIndex(c)
}

// DRTable returns the process-wide DR pruning table, building it on first
// use via a full breadth-first search from the solved cube.
func DRTable() Table {
	return Get("dr-ud", func() Table {
		return Build(Space{Size: DRCoordSize, Index: DRIndex, Moves: AllMoves})
	})
}

// DRBound is the search.Options.Bound heuristic for a DR-UD search: the
// DR coordinate's precomputed BFS distance is read off the shared table.
// It does no reorientation itself; search.BoundFor reorients FB/RL
// variants with Cube.ViewFromAxis before calling it.
func DRBound(c cubie.Cube) int {
	return DRTable().Distance(DRIndex(c))
}

// EOBound is the admissible (if loose) EO-UD heuristic: each move flips
// at most four edges, so at least ceil(badEdges/4) moves remain.
func EOBound(c cubie.Cube) int {
	bad := c.CountBadEdgesUD()
	return (bad + 3) / 4
}

// QuarterTurnsToHTR runs a 0-1 breadth-first search (Dijkstra with a
// deque, since every edge weight is 0 or 1) outward from c using the
// DR-preserving generator set, looking for the nearest fully-solved
// permutation reachable without spending more than maxQT quarter turns
// of U/D. Half turns of any face are free moves in this metric - HTR is
// exactly the statement that some bounded number of U/D quarter turns,
// mixed freely with half turns, finishes the permutation.
//
// The search is run per query rather than against a precomputed table:
// unlike the DR coordinate space, the reachable (corner, edge)
// permutation space here is large enough that precomputing it whole
// isn't worth it when the search only ever needs one cube's distance at
// a time.
func QuarterTurnsToHTR(c cubie.Cube, maxQT int) (int, bool) {
	type node struct {
		cube cubie.Cube
		cost int
	}
	visited := map[[20]uint8]bool{}
	sig := func(c cubie.Cube) [20]uint8 {
		var s [20]uint8
		for i, co := range c.Corners {
			s[i] = co.ID
		}
		for i, e := range c.Edges {
			s[8+i] = e.ID
		}
		return s
	}

	start := node{cube: c, cost: 0}
	visited[sig(c)] = true
	deque := []node{start}

	const maxNodes = 200000
	explored := 0
	for len(deque) > 0 {
		n := deque[0]
		deque = deque[1:]

		if isPermutationSolved(n.cube) {
			return n.cost, true
		}
		if n.cost >= maxQT {
			continue
		}
		explored++
		if explored > maxNodes {
			break
		}
		for _, m := range drMoves {
			next := n.cube.Clone()
			next.Apply(m)
			s := sig(next)
			if visited[s] {
				continue
			}
			visited[s] = true
			child := node{cube: next, cost: n.cost + drMoveCost(m)}
			// Every U/D quarter turn is an odd corner permutation, so all
			// paths to a state share one cost parity and the first cost
			// seen for the solved permutation is already the nearest.
			if isPermutationSolved(next) {
				return child.cost, true
			}
			if drMoveCost(m) == 0 {
				deque = append([]node{child}, deque...)
			} else {
				deque = append(deque, child)
			}
		}
	}
	return 0, false
}

func isPermutationSolved(c cubie.Cube) bool {
	for i, co := range c.Corners {
		if co.ID != uint8(i) {
			return false
		}
	}
	for i, e := range c.Edges {
		if e.ID != uint8(i) {
			return false
		}
	}
	return true
}

// FRBadEdgeCount counts edges outside the axis's own open slice that are
// neither home nor swapped with their E/S/M-slice opposite - the FR
// "needs more than a slice move" signal used by both its is_solved test
// and its search heuristic. opposite self-maps exactly the four edge
// positions lying in the open slice plane, so opposite[id] == id (edge
// identities and home positions share the same numbering) is how an
// edge's own-slice membership is read off the same table regardless of
// which axis's opposite table was passed in.
func FRBadEdgeCount(c cubie.Cube, opposite [12]uint8) int {
	n := 0
	for pos, e := range c.Edges {
		if opposite[e.ID] == e.ID {
			continue
		}
		if e.ID != uint8(pos) && e.ID != opposite[pos] {
			n++
		}
	}
	return n
}

// FRBadCornerCount counts corners that are neither home nor swapped with
// their slice-opposite, the corner half of the same FR signal.
func FRBadCornerCount(c cubie.Cube, opposite [8]uint8) int {
	n := 0
	for pos, co := range c.Corners {
		if co.ID != uint8(pos) && co.ID != opposite[pos] {
			n++
		}
	}
	return n
}
