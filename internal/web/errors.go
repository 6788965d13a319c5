package web

import (
	"fmt"

	"github.com/behrlich/fmc-cube/internal/stage"
)

func errUnknownKind(kind string) error {
	return fmt.Errorf("%w: unknown stage kind %q", stage.ErrInvalidStage, kind)
}

func errUnknownVariant(variant string) error {
	return fmt.Errorf("%w: unknown stage variant %q", stage.ErrInvalidStage, variant)
}
