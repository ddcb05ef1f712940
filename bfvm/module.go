package bfvm

import (
	"context"
	"io"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
	Logs    logs.Module
}

func (Module) Config(
	tapeSize bfconfigs.TapeSize,
	tapeGrowth bfconfigs.TapeGrowth,
) Config {
	return Config{
		TapeSize:   int(tapeSize),
		TapeGrowth: int(tapeGrowth),
	}
}

// HaltHook is called with the machine of a run that stopped on a runtime error.
type HaltHook func(ctx context.Context, m *Machine, err error)

func (Module) HaltHook(
	mode modes.Mode,
	logger logs.Logger,
) HaltHook {
	return func(ctx context.Context, m *Machine, err error) {
		if mode != modes.ModeDevelopment {
			return
		}
		logger.InfoContext(ctx, "halted machine",
			"ip", m.IP,
			"dp", m.DP,
			"cell", m.Cell(),
			"tape_len", len(m.Tape),
			"discarded_output", len(m.Output),
		)
	}
}

// Execute loads and runs one program in its own log span.
type Execute func(ctx context.Context, name string, source string, input io.Reader) (*Result, error)

func (Module) Execute(
	config Config,
	logger logs.Logger,
	newSpan logs.NewSpan,
	onHalt HaltHook,
) Execute {
	return func(ctx context.Context, name string, source string, input io.Reader) (*Result, error) {
		ctx, _ = newSpan(ctx, "")
		logger := logger.With("program", name)

		program, err := Load(source)
		if err != nil {
			logger.DebugContext(ctx, "load program", "error", err)
			return nil, logs.WrapSpan(ctx, err)
		}
		logger.DebugContext(ctx, "program loaded",
			"source_len", len(source),
			"instructions", len(program.Code),
		)

		m := NewMachine(program, input, config)
		if err := m.Run(); err != nil {
			logger.DebugContext(ctx, "run program",
				"error", err,
				"steps", m.Steps,
			)
			onHalt(ctx, m, err)
			return nil, logs.WrapSpan(ctx, err)
		}

		result := m.Result()
		if result.InputExhausted > 0 {
			logger.DebugContext(ctx, "input exhausted",
				"reads", result.Reads,
				"zero_reads", result.InputExhausted,
			)
		}
		logger.DebugContext(ctx, "program done",
			"steps", result.Steps,
			"output_len", len(m.Output),
			"tape_len", result.TapeLen,
		)
		return result, nil
	}
}
