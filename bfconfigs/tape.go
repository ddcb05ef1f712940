package bfconfigs

import (
	"errors"
	"fmt"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/vars"
)

const (
	defaultTapeSize   = 30000
	defaultTapeGrowth = 1000
)

// TapeSize is the initial number of tape cells.
type TapeSize int

// TapeGrowth is the number of cells appended when the data cursor moves past the tape end.
type TapeGrowth int

var (
	tapeSizeFlag   = cmds.Var[int]("-tape-size")
	tapeGrowthFlag = cmds.Var[int]("-tape-growth")
)

func (Module) TapeSize(
	loader configs.Loader,
	env Env,
) TapeSize {
	return TapeSize(positive("tape size", vars.FirstNonZero(
		*tapeSizeFlag,
		env.TapeSize,
		first(loader, "tape_size"),
		defaultTapeSize,
	)))
}

func (Module) TapeGrowth(
	loader configs.Loader,
	env Env,
) TapeGrowth {
	return TapeGrowth(positive("tape growth", vars.FirstNonZero(
		*tapeGrowthFlag,
		env.TapeGrowth,
		first(loader, "tape_growth"),
		defaultTapeGrowth,
	)))
}

func first(loader configs.Loader, path string) int {
	var n int
	if err := loader.AssignFirst(path, &n); err != nil && !errors.Is(err, configs.ErrValueNotFound) {
		panic(&Error{
			Err: fmt.Errorf("config %s: %w", path, err),
		})
	}
	return n
}

func positive(what string, n int) int {
	if n <= 0 {
		panic(&Error{
			Err: fmt.Errorf("%s must be positive, got %d", what, n),
		})
	}
	return n
}
