// Package search implements the iterative-deepening solver shared by
// every stage: given a cube and a stage.Classifier, it enumerates short
// algorithms that bring the classifier's IsSolved condition to true,
// honoring a NISS policy, a canonical-form filter, and a per-case
// deduplication filter.
package search

import (
	"errors"
	"fmt"

	"github.com/behrlich/fmc-cube/internal/coord"
	"github.com/behrlich/fmc-cube/internal/cubie"
	"github.com/behrlich/fmc-cube/internal/stage"
)

// ErrNoSolutionsFound is returned when the depth bound is exhausted
// without reaching the target condition.
var ErrNoSolutionsFound = errors.New("no solutions found")

// ErrNoSolver is an alias for stage.ErrUnsupportedSolve, kept so older
// call sites that checked search.ErrNoSolver directly still match.
var ErrNoSolver = stage.ErrUnsupportedSolve

// NissPolicy controls whether and how the search may build its algorithm
// against the scramble's inverse instead of the scramble itself.
type NissPolicy int

const (
	// NissNever searches the normal scramble only.
	NissNever NissPolicy = iota
	// NissBefore allows one switch from normal to inverse, never back.
	NissBefore
	// NissAlways allows switching freely between normal and inverse at
	// every move.
	NissAlways
)

// Options configures a single Find call.
type Options struct {
	MaxDepth         int
	Niss             NissPolicy
	RequireCanonical bool
	DedupCases       bool
	RawBudget        int
	// Bound, when set, lower-bounds the quarter/half-turn distance from
	// a cube to the stage's target subgroup - the admissible heuristic
	// an IDA* search gates node expansion with.
	// It is only consulted on the pure-normal-side search path (no
	// inverse/NISS moves played yet), since the pruning tables index a
	// single cube coordinate and the inverse side's contribution isn't
	// known until the whole algorithm is assembled.
	Bound func(cubie.Cube) int
}

// DefaultRawBudget caps a single Find call: the search gives up after
// this many raw (pre-dedup) candidates even if it hasn't produced count
// solutions yet.
const DefaultRawBudget = 10000

// BoundFor returns the admissible pruning heuristic wired up for kind on
// the given axis, or nil if no coordinate bound is implemented for that
// stage (the search simply runs unpruned, as it always has). EO and DR
// are the two stages with a cheap enough coordinate to make an IDA*
// bound worth computing per node; HTR/FR/Slice/Finish get no bound and
// run unpruned over the restricted generator set that MovesFor returns.
func BoundFor(kind stage.Kind, axis cubie.Axis) func(cubie.Cube) int {
	var base func(cubie.Cube) int
	switch kind {
	case stage.EO:
		base = coord.EOBound
	case stage.DR:
		base = coord.DRBound
	default:
		return nil
	}
	if axis == cubie.AxisUD {
		return base
	}
	return func(c cubie.Cube) int {
		return base(c.ViewFromAxis(axis))
	}
}

var allFaces = []cubie.Face{cubie.FaceU, cubie.FaceD, cubie.FaceF, cubie.FaceB, cubie.FaceR, cubie.FaceL}

var allMoves = buildAllMoves()

func buildAllMoves() []cubie.Move {
	var moves []cubie.Move
	for _, f := range allFaces {
		for _, t := range []int{1, 2, 3} {
			moves = append(moves, cubie.Move{Face: f, Turns: t})
		}
	}
	return moves
}

var halfTurnMoves = buildHalfTurnMoves()

func buildHalfTurnMoves() []cubie.Move {
	var moves []cubie.Move
	for _, f := range allFaces {
		moves = append(moves, cubie.Move{Face: f, Turns: 2})
	}
	return moves
}

func axisFaces(axis cubie.Axis) (cubie.Face, cubie.Face) {
	switch axis {
	case cubie.AxisFB:
		return cubie.FaceF, cubie.FaceB
	case cubie.AxisRL:
		return cubie.FaceR, cubie.FaceL
	default:
		return cubie.FaceU, cubie.FaceD
	}
}

// htrMoves is the DR-preserving generator for axis: quarter and half
// turns of axis's own two faces, half turns of the remaining four -
// <U,D,R2,L2,F2,B2> for axis UD. It's the same generator set
// internal/coord's drMoves uses to measure distance to HTR, so a search
// actually hunting for an HTR algorithm explores exactly the moves that
// keep the cube domino-reduced along the way.
func htrMoves(axis cubie.Axis) []cubie.Move {
	a, b := axisFaces(axis)
	var moves []cubie.Move
	for _, t := range []int{1, 2, 3} {
		moves = append(moves, cubie.Move{Face: a, Turns: t})
		moves = append(moves, cubie.Move{Face: b, Turns: t})
	}
	for _, f := range allFaces {
		if f == a || f == b {
			continue
		}
		moves = append(moves, cubie.Move{Face: f, Turns: 2})
	}
	return moves
}

// MovesFor returns the move generator a search over kind/axis should
// explore: the full 18-move set below HTR, the DR-preserving generator
// while searching for HTR itself, and half-turns-only once HTR already
// holds - FR, Slice and Finish are all solvable (and stay within their
// own reduced group) using nothing finer than a half turn of any face.
func MovesFor(kind stage.Kind, axis cubie.Axis) []cubie.Move {
	switch kind {
	case stage.HTR:
		return htrMoves(axis)
	case stage.FR, stage.Slice, stage.Finish:
		return halfTurnMoves
	default:
		return allMoves
	}
}

func axisOf(f cubie.Face) cubie.Face {
	switch f {
	case cubie.FaceD:
		return cubie.FaceU
	case cubie.FaceB:
		return cubie.FaceF
	case cubie.FaceL:
		return cubie.FaceR
	default:
		return f
	}
}

// faceRank gives U/D, F/B, R/L a fixed order within their axis so the
// search only ever explores opposite-face pairs in one order (e.g. U
// before D, never D before U), pruning the duplicate permutations that
// commuting opposite-face moves would otherwise produce.
func faceRank(f cubie.Face) int {
	switch f {
	case cubie.FaceU:
		return 0
	case cubie.FaceD:
		return 1
	case cubie.FaceF:
		return 0
	case cubie.FaceB:
		return 1
	case cubie.FaceR:
		return 0
	case cubie.FaceL:
		return 1
	}
	return 0
}

type side struct {
	moves    []cubie.Move
	lastFace cubie.Face
	hasLast  bool
}

func (s side) canFollow(f cubie.Face) bool {
	if !s.hasLast {
		return true
	}
	if axisOf(f) == axisOf(s.lastFace) {
		if f == s.lastFace {
			return false
		}
		if f == s.lastFace.Opposite() && faceRank(f) < faceRank(s.lastFace) {
			return false
		}
	}
	return true
}

func (s side) append(m cubie.Move) side {
	return side{moves: append(append([]cubie.Move{}, s.moves...), m), lastFace: m.Face, hasLast: true}
}

type searcher struct {
	start    cubie.Cube
	cls      stage.Classifier
	opts     Options
	moves    []cubie.Move
	explored int
	found    []cubie.Algorithm
	seen     map[string]bool
}

// Find enumerates up to count algorithms solving cls against start,
// cheapest first, stopping early once count have been found or the raw
// candidate budget is spent.
func Find(start cubie.Cube, cls stage.Classifier, count int, opts Options) ([]cubie.Algorithm, error) {
	if cls.Kind() == stage.Scrambled || cls.Kind() == stage.Insertions {
		return nil, fmt.Errorf("%w: %s", stage.ErrUnsupportedSolve, cls.Kind())
	}
	if opts.RawBudget <= 0 {
		opts.RawBudget = DefaultRawBudget
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = 12
	}

	s := &searcher{start: start, cls: cls, opts: opts, moves: MovesFor(cls.Kind(), cls.Axis()), seen: map[string]bool{}}
	for depth := 0; depth <= opts.MaxDepth; depth++ {
		s.dfs(side{}, side{}, start, depth, count)
		if len(s.found) >= count || s.explored >= opts.RawBudget {
			break
		}
	}
	if len(s.found) == 0 {
		return nil, ErrNoSolutionsFound
	}
	if len(s.found) > count {
		s.found = s.found[:count]
	}
	return s.found, nil
}

// dfs explores one IDA* node. normalCube is the cube reached by applying
// normal's moves, in order, to the search's start cube - a well-defined
// running state regardless of depth, since the normal side only ever
// grows forward. It is the pruning-bound query point; once the inverse
// side has played any move the combined algorithm's effect depends on
// the final reversal too, so the bound is skipped from that point on.
func (s *searcher) dfs(normal, inverse side, normalCube cubie.Cube, remaining int, count int) {
	if len(s.found) >= count || s.explored >= s.opts.RawBudget {
		return
	}
	if remaining == 0 {
		s.tryAccept(normal, inverse)
		return
	}
	if s.opts.Bound != nil && len(inverse.moves) == 0 {
		if s.opts.Bound(normalCube) > remaining {
			return
		}
	}

	allowNormal := true
	allowInverse := s.opts.Niss != NissNever
	if s.opts.Niss == NissBefore && len(inverse.moves) > 0 {
		allowNormal = false
	}

	if allowNormal {
		for _, m := range s.moves {
			if !normal.canFollow(m.Face) {
				continue
			}
			next := normalCube.Clone()
			next.Apply(m)
			s.dfs(normal.append(m), inverse, next, remaining-1, count)
			if len(s.found) >= count || s.explored >= s.opts.RawBudget {
				return
			}
		}
	}
	if allowInverse {
		for _, m := range s.moves {
			if !inverse.canFollow(m.Face) {
				continue
			}
			s.dfs(normal, inverse.append(m), normalCube, remaining-1, count)
			if len(s.found) >= count || s.explored >= s.opts.RawBudget {
				return
			}
		}
	}
}

func (s *searcher) tryAccept(normal, inverse side) {
	s.explored++
	if s.opts.RequireCanonical {
		if n := len(inverse.moves); n > 0 && inverse.moves[n-1].Turns == 3 {
			return
		}
		if n := len(normal.moves); n > 0 && normal.moves[n-1].Turns == 3 {
			return
		}
	}

	alg := cubie.Algorithm{Normal: normal.moves, Inverse: inverse.moves}
	cand := s.start.Clone()
	cand.ApplyAlgorithm(alg)
	if !s.cls.IsSolved(cand) {
		return
	}

	if s.opts.DedupCases {
		key := stage.CaseIdentity(s.cls, cand)
		if s.seen[key] {
			return
		}
		s.seen[key] = true
	}
	s.found = append(s.found, alg)
}
