// Package coord implements the integer coordinates each stage classifier
// is built on and the BFS-generated pruning tables the search engine uses
// to lower-bound the remaining distance to a stage's target subgroup.
//
// Pruning tables are process-wide, generated once per (name) key and
// read-shared afterwards via a compute-or-wait registry keyed by name,
// so concurrent callers block on the same build rather than racing to
// run it twice.
package coord

import (
	"sync"

	"github.com/behrlich/fmc-cube/internal/cubie"
)

// Table is a precomputed lower bound, in moves of the Space's generator
// set (a half turn counts as one move), from every coordinate value back
// to coordinate zero.
type Table []uint8

// unreached marks a coordinate slot the BFS frontier hasn't visited yet.
const unreached = 0xFF

// Space describes a coordinate: how big it is, how to read it off a cube,
// and which moves the BFS should expand with. Move transitions are
// computed by applying the move to a representative cube for each newly
// discovered coordinate value rather than precomputed move tables - the
// BFS only ever holds one live cube per coordinate, so this stays cheap
// even though Size can be in the hundreds of thousands.
type Space struct {
	Size  int
	Index func(cubie.Cube) int
	Moves []cubie.Move
}

// Build runs a breadth-first search outward from the solved cube,
// assigning each newly-reached coordinate value the current frontier
// depth. A coordinate is only ever expanded from the first representative
// cube that reaches it - valid because every coordinate used here is a
// well-defined function of the *coset*, so the successor coordinate under
// a move does not depend on which representative of the coset produced
// it.
func Build(space Space) Table {
	table := make(Table, space.Size)
	for i := range table {
		table[i] = unreached
	}

	start := cubie.Solved()
	startIdx := space.Index(start)
	table[startIdx] = 0

	frontier := []cubie.Cube{start}
	remaining := space.Size - 1
	for depth := uint8(1); len(frontier) > 0 && remaining > 0; depth++ {
		var next []cubie.Cube
		for _, c := range frontier {
			for _, m := range space.Moves {
				c2 := c.Clone()
				c2.Apply(m)
				idx := space.Index(c2)
				if table[idx] == unreached {
					table[idx] = depth
					remaining--
					next = append(next, c2)
				}
			}
		}
		frontier = next
	}
	return table
}

// Distance returns the pruning bound for coordinate idx, or 0 if idx was
// never reached (treated as already solved - callers only query indices
// their own Index function can produce).
func (t Table) Distance(idx int) int {
	if idx < 0 || idx >= len(t) || t[idx] == unreached {
		return 0
	}
	return int(t[idx])
}

// registry is the compute-or-wait store keyed by a stage/variant name.
var (
	registryMu sync.Mutex
	registry   = map[string]*tableSlot{}
)

type tableSlot struct {
	once  sync.Once
	table Table
}

// Get returns the named pruning table, building it on the first call and
// sharing the built table with every subsequent caller (including
// concurrent ones, which block on the same sync.Once rather than racing
// to build it twice).
func Get(name string, build func() Table) Table {
	registryMu.Lock()
	slot, ok := registry[name]
	if !ok {
		slot = &tableSlot{}
		registry[name] = slot
	}
	registryMu.Unlock()

	slot.once.Do(func() {
		slot.table = build()
	})
	return slot.table
}
