package debugs

import (
	"context"
	"fmt"

	"github.com/reusee/bf/logs"
	"go.starlark.net/starlark"
)

// Inspect evaluates a starlark expression over globals and returns its printed form.
type Inspect func(ctx context.Context, expr string, globals map[string]any) (string, error)

func (Module) Inspect(
	logger logs.Logger,
) Inspect {
	return func(ctx context.Context, expr string, globals map[string]any) (string, error) {
		thread := &starlark.Thread{
			Name: "inspect",
		}
		value, err := starlark.EvalOptions(fileOptions, thread, "<inspect>", expr, toStringDict(globals))
		if err != nil {
			return "", fmt.Errorf("inspect %q: %w", expr, err)
		}
		logger.DebugContext(ctx, "inspect",
			"expr", expr,
			"value", value.String(),
		)
		return value.String(), nil
	}
}
