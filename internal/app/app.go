// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"alnqc/internal/cli"
	"alnqc/internal/config"
	"alnqc/internal/pipeline"
	"alnqc/internal/writers"
)

// RunContext parses argv, scores every input file, and writes reports to
// stdout. Exit codes: 0 success; 1 at least one unit of work failed (the
// rest are still reported); 2 usage error; 3 I/O or write error; 130
// interrupted. A broken pipe downstream is a clean exit.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	var (
		ran       bool
		anyFailed bool
	)
	root := cli.NewRootCmd(func(ctx context.Context, opts cli.Options) error {
		ran = true
		return score(ctx, opts, outw, &anyFailed)
	})
	root.SetArgs(argv)
	root.SetOut(outw)
	root.SetErr(stderr)

	err := root.ExecuteContext(parent)
	if ferr := outw.Flush(); err == nil {
		err = ferr
	}

	switch {
	case writers.IsBrokenPipe(err):
		return 0
	case err == nil && anyFailed:
		return 1
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	case errors.Is(err, cli.ErrUsage) || !ran:
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	default:
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
}

// Run is the background-context convenience wrapper.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// score resolves parameters, then fans the files out over the worker pool
// while a single writer goroutine renders results.
func score(parent context.Context, opts cli.Options, out io.Writer, anyFailed *bool) error {
	params, err := config.Load(opts.Config, opts.Overrides)
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}

	thr := opts.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	in, writeErr := writers.StartReportWriter(out, opts.Output, opts.Sort, opts.Header, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	perr := pipeline.ForEachReport(ctx,
		pipeline.Config{Threads: thr, Params: params},
		opts.Files,
		func(r pipeline.Result) error {
			if r.Err != nil {
				*anyFailed = true
			}
			select {
			case in <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})

	close(in)
	if werr := <-writeErr; werr != nil {
		return werr
	}
	return perr
}
