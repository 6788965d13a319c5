// Package pipeline validates and builds the ordered chain of stages an
// FMC solve walks through: EO, then DR, then HTR, then a choice of FR,
// Slice, or Finish.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/behrlich/fmc-cube/internal/cubie"
	"github.com/behrlich/fmc-cube/internal/search"
	"github.com/behrlich/fmc-cube/internal/stage"
)

// ErrBadStageConfig is the sentinel wrapped when a requested stage chain
// is not reachable from the cube's current stage - skipping a
// prerequisite, jumping into the middle of the chain, or re-requesting a
// stage already passed.
var ErrBadStageConfig = errors.New("bad stage config")

// order gives each stage kind its position in the EO -> DR -> HTR chain;
// FR, Slice and Finish all sit at the terminal rung, any one of them
// reachable once HTR holds.
var order = map[stage.Kind]int{
	stage.Scrambled:  -1,
	stage.EO:         0,
	stage.DR:         1,
	stage.HTR:        2,
	stage.FR:         3,
	stage.Slice:      3,
	stage.Finish:     3,
	stage.Insertions: 4,
}

// Step is one requested stage in a chain, e.g. "solve DR then HTR".
type Step struct {
	Kind stage.Kind
}

// Validate checks that requesting steps while currently at active makes
// sense, rejecting three shapes of bad request: jumping into the middle
// of the chain from scratch, skipping a prerequisite, or re-requesting a
// stage already passed.
func Validate(active stage.Kind, steps []Step) error {
	if len(steps) == 0 {
		return fmt.Errorf("%w: no steps provided", ErrBadStageConfig)
	}
	target := steps[0].Kind

	if active == stage.Scrambled && order[target] > order[stage.EO] {
		return fmt.Errorf("%w: cannot jump to %s", ErrBadStageConfig, target)
	}
	if order[active] < order[target]-1 && order[target] >= order[stage.DR] {
		return fmt.Errorf("%w: must solve %s before %s", ErrBadStageConfig, prerequisiteOf(target), target)
	}
	if order[active] >= order[target] && target != stage.Insertions {
		return fmt.Errorf("%w: already in %s", ErrBadStageConfig, target)
	}
	if target == stage.Insertions && active == stage.Insertions {
		return fmt.Errorf("%w: already in %s", ErrBadStageConfig, target)
	}
	return nil
}

// prerequisiteOf names the single stage that must hold immediately
// before target in the chain.
func prerequisiteOf(target stage.Kind) stage.Kind {
	switch target {
	case stage.DR:
		return stage.EO
	case stage.HTR:
		return stage.DR
	case stage.FR, stage.Slice, stage.Finish:
		return stage.HTR
	}
	return stage.Scrambled
}

// Chain is a validated sequence of stages to solve in order.
type Chain struct {
	Steps []Step
}

// Build validates steps against active and, on success, returns the
// Chain ready to hand to the search engine one stage at a time.
func Build(active stage.Kind, steps []Step) (Chain, error) {
	if err := Validate(active, steps); err != nil {
		return Chain{}, err
	}
	return Chain{Steps: steps}, nil
}

// PrerequisitesFor returns, in order, every stage that must be solved
// before target: EO before DR; EO then DR before HTR; EO, DR and HTR
// before FR/Slice/Finish. Scrambled and EO have none.
func PrerequisitesFor(target stage.Kind) []stage.Kind {
	var chain []stage.Kind
	for k := prerequisiteOf(target); k != stage.Scrambled; k = prerequisiteOf(k) {
		chain = append([]stage.Kind{k}, chain...)
	}
	return chain
}

// Drive is the Multi-Stage Driver from §4.4 step 1: it solves every
// prerequisite of target, axis-matched, one accepted algorithm per stage
// (step_limit=1), applying each as it goes, so the caller can run
// target's own search against the result instead of an unprepared cube.
// A prerequisite already solved is skipped rather than re-searched.
func Drive(c cubie.Cube, target stage.Kind, axis cubie.Axis) (cubie.Cube, cubie.Algorithm, error) {
	current := c
	solution := cubie.Algorithm{}
	for _, kind := range PrerequisitesFor(target) {
		cls := stage.For(kind, axis)
		if cls.IsSolved(current) {
			continue
		}
		algs, err := search.Find(current, cls, 1, search.Options{
			Niss:             search.NissNever,
			RequireCanonical: true,
			DedupCases:       true,
			Bound:            search.BoundFor(kind, axis),
		})
		if err != nil {
			return current, solution, fmt.Errorf("prerequisite %s: %w", kind, err)
		}
		step := algs[0]
		solution = solution.Merge(step)
		current.ApplyAlgorithm(step)
	}
	return current, solution, nil
}
