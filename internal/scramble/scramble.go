// Package scramble generates FMC scrambles by solving a random cube
// through EO, DR, HTR and Finish and inverting the solution.
package scramble

import (
	"math/rand"

	"github.com/behrlich/fmc-cube/internal/cubie"
	"github.com/behrlich/fmc-cube/internal/search"
	"github.com/behrlich/fmc-cube/internal/stage"
)

// stepLimit caps how many candidate algorithms each stage of the chain
// may examine before giving up on finding a short one.
const stepLimit = 100

// randomWalkLength is how long a random walk RandomCube takes to reach a
// cube that is, for practical purposes, uniformly scrambled.
const randomWalkLength = 60

// Generate produces a scramble algorithm: a uniformly-random cube,
// solved through EO/DR/HTR/Finish, with the solution inverted so
// applying it to a solved cube reproduces the same scrambled state.
func Generate(rng *rand.Rand) (cubie.Algorithm, error) {
	cube := cubie.RandomCube(rng, randomWalkLength)

	solution := cubie.Algorithm{}
	current := cube

	chain := []stage.Kind{stage.EO, stage.DR, stage.HTR, stage.Finish}
	for _, kind := range chain {
		cls := stage.For(kind, cubie.AxisUD)
		if cls.IsSolved(current) {
			continue
		}
		algs, err := search.Find(current, cls, 1, search.Options{
			MaxDepth:         10,
			Niss:             search.NissNever,
			RequireCanonical: kind != stage.Finish,
			RawBudget:        stepLimit,
			Bound:            search.BoundFor(kind, cubie.AxisUD),
		})
		if err != nil {
			return cubie.Algorithm{}, err
		}
		step := algs[0]
		solution = solution.Merge(step)
		current.ApplyAlgorithm(step)
	}

	return solution.Inverted(), nil
}
