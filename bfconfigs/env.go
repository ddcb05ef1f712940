package bfconfigs

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds overrides read from environment variables.
type Env struct {
	TapeSize   int `env:"BF_TAPE_SIZE"`
	TapeGrowth int `env:"BF_TAPE_GROWTH"`
}

func (Module) Env() Env {
	var ret Env
	if err := env.Parse(&ret); err != nil {
		panic(&Error{
			Err: fmt.Errorf("parse env: %w", err),
		})
	}
	return ret
}
