package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
)

var (
	fileFlag    = cmds.Var[string]("-file")
	dumpFlag    = cmds.Var[string]("-dump")
	inspectFlag = cmds.Collect[string]("-inspect")
	tapFlag     = cmds.Switch("-tap")
)

type Module struct {
	dscope.Module
	VM     bfvm.Module
	Debugs debugs.Module
}

func main() {
	cmds.Execute(os.Args[1:])

	if *fileFlag == "" {
		fmt.Fprintln(os.Stderr, "Error: -file <program.bf> is required")
		os.Exit(2)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	options := haltOptions{
		dumpPath: *dumpFlag,
		inspect:  *inspectFlag,
		tap:      *tapFlag,
	}

	os.Exit(run(context.Background(), scope, *fileFlag, options, os.Stdin, os.Stdout, os.Stderr))
}

// haltOptions selects what to do with the machine of a failed run.
type haltOptions struct {
	dumpPath string
	inspect  []string
	tap      bool
}

func run(
	ctx context.Context,
	scope dscope.Scope,
	path string,
	options haltOptions,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
) (code int) {
	source, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(stderr, "Error: File '%s' not found\n", path)
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 2
	}

	if err := checkConfig(scope); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	scope = scope.Fork(
		func(
			logger logs.Logger,
			inspect debugs.Inspect,
			tap debugs.Tap,
		) bfvm.HaltHook {
			return func(ctx context.Context, m *bfvm.Machine, err error) {
				onHalt(ctx, options, m, err, logger, inspect, tap, stderr)
			}
		},
	)

	scope.Call(func(
		execute bfvm.Execute,
	) {
		result, err := execute(ctx, path, string(source), stdin)
		if err != nil {
			var vmErr bfvm.Error
			if errors.As(err, &vmErr) {
				err = vmErr
			}
			fmt.Fprintf(stderr, "Error: %v\n", err)
			code = 1
			return
		}
		if _, err := io.WriteString(stdout, result.Output); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			code = 1
		}
	})

	return
}

// checkConfig resolves the machine config, turning invalid flag, env or file values into an error.
func checkConfig(scope dscope.Scope) (err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if e, ok := p.(error); ok {
			var configErr *bfconfigs.Error
			if errors.As(e, &configErr) {
				err = configErr
				return
			}
		}
		panic(p)
	}()
	scope.Call(func(
		config bfvm.Config,
	) {
	})
	return nil
}

func onHalt(
	ctx context.Context,
	options haltOptions,
	m *bfvm.Machine,
	haltErr error,
	logger logs.Logger,
	inspect debugs.Inspect,
	tap debugs.Tap,
	stderr io.Writer,
) {

	if options.dumpPath != "" {
		if err := dump(options.dumpPath, m); err != nil {
			logger.ErrorContext(ctx, "dump machine", "error", err, "path", options.dumpPath)
		} else {
			logger.InfoContext(ctx, "machine dumped", "path", options.dumpPath)
		}
	}

	for _, expr := range options.inspect {
		value, err := inspect(ctx, expr, m.Globals())
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", expr, err)
			continue
		}
		fmt.Fprintf(stderr, "%s = %s\n", expr, value)
	}

	if options.tap {
		tap(ctx, haltErr.Error(), m.Globals())
	}

}

func dump(path string, m *bfvm.Machine) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = e
		}
	}()
	return m.Snapshot(f)
}
