package pipeline

import (
	"errors"
	"testing"

	"github.com/behrlich/fmc-cube/internal/stage"
)

func TestValidateRejectsEmptySteps(t *testing.T) {
	err := Validate(stage.Scrambled, nil)
	if !errors.Is(err, ErrBadStageConfig) {
		t.Fatalf("empty steps: got %v, want ErrBadStageConfig", err)
	}
}

func TestValidateAllowsScrambledToEO(t *testing.T) {
	if err := Validate(stage.Scrambled, []Step{{Kind: stage.EO}}); err != nil {
		t.Fatalf("Scrambled -> EO should be valid, got %v", err)
	}
}

func TestValidateRejectsJumpingPastEOFromScratch(t *testing.T) {
	err := Validate(stage.Scrambled, []Step{{Kind: stage.DR}})
	if !errors.Is(err, ErrBadStageConfig) {
		t.Fatalf("Scrambled -> DR should be rejected, got %v", err)
	}
}

func TestValidateAllowsEOToDR(t *testing.T) {
	if err := Validate(stage.EO, []Step{{Kind: stage.DR}}); err != nil {
		t.Fatalf("EO -> DR should be valid, got %v", err)
	}
}

func TestValidateRejectsSkippingDR(t *testing.T) {
	err := Validate(stage.EO, []Step{{Kind: stage.HTR}})
	if !errors.Is(err, ErrBadStageConfig) {
		t.Fatalf("EO -> HTR should be rejected for skipping DR, got %v", err)
	}
}

func TestValidateRejectsReRequestingAPassedStage(t *testing.T) {
	err := Validate(stage.DR, []Step{{Kind: stage.EO}})
	if !errors.Is(err, ErrBadStageConfig) {
		t.Fatalf("DR -> EO should be rejected as already passed, got %v", err)
	}
}

func TestValidateAllowsHTRToAnyTerminalStage(t *testing.T) {
	for _, target := range []stage.Kind{stage.FR, stage.Slice, stage.Finish} {
		if err := Validate(stage.HTR, []Step{{Kind: target}}); err != nil {
			t.Errorf("HTR -> %s should be valid, got %v", target, err)
		}
	}
}

func TestBuildReturnsChainOnSuccess(t *testing.T) {
	steps := []Step{{Kind: stage.DR}}
	chain, err := Build(stage.EO, steps)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(chain.Steps) != 1 || chain.Steps[0].Kind != stage.DR {
		t.Fatalf("unexpected chain: %+v", chain)
	}
}

func TestBuildPropagatesValidationError(t *testing.T) {
	_, err := Build(stage.Scrambled, []Step{{Kind: stage.HTR}})
	if !errors.Is(err, ErrBadStageConfig) {
		t.Fatalf("Build should propagate the validation error, got %v", err)
	}
}
