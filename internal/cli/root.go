// internal/cli/root.go

// Package cli builds the cobra command surface for alnqc.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"alnqc-core/align"
	"alnqc/internal/version"
	"alnqc/internal/writers"
)

// ErrUsage marks validation failures that should exit with the usage code.
var ErrUsage = errors.New("invalid usage")

// Options carries everything one scoring invocation needs.
type Options struct {
	Files     []string
	Config    string
	Output    string
	Threads   int
	Sort      bool
	Header    bool // true unless --no-header
	Overrides align.Overrides
}

// RunFunc executes one scoring invocation.
type RunFunc func(ctx context.Context, opts Options) error

// NewRootCmd wires flags, validation, and run into the root command.
// Scoring-parameter flags become Overrides only when explicitly set, so the
// settings-file layer keeps control of everything the user did not type.
func NewRootCmd(run RunFunc) *cobra.Command {
	var (
		opts     Options
		noHeader bool
		params   = align.DefaultParams()
	)
	cmd := &cobra.Command{
		Use:   "alnqc [flags] alignment.fasta ...",
		Short: "score the quality of multiple sequence alignments",
		Long: `alnqc scores already-aligned FASTA files: pairwise identity and
similarity under an affine gap model, column conservation, a consensus
sequence, and a qualitative grade per file. It does not align sequences.

Each input file is scored independently; a bad file yields a failure row
and exit code 1 while its siblings are still reported.`,
		Version:       version.Version,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Files = args
			opts.Header = !noHeader
			fl := cmd.Flags()
			if fl.Changed("match") {
				opts.Overrides.Match = &params.Match
			}
			if fl.Changed("mismatch") {
				opts.Overrides.Mismatch = &params.Mismatch
			}
			if fl.Changed("gap-open") {
				opts.Overrides.GapOpen = &params.GapOpen
			}
			if fl.Changed("gap-extend") {
				opts.Overrides.GapExtend = &params.GapExtend
			}
			if !writers.Known(opts.Output) {
				return fmt.Errorf("%w: invalid --output %q (one of: %s)",
					ErrUsage, opts.Output, strings.Join(writers.Formats(), " | "))
			}
			if opts.Threads < 0 {
				return fmt.Errorf("%w: --threads must be >= 0", ErrUsage)
			}
			return run(cmd.Context(), opts)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&opts.Config, "config", "c", "", "YAML settings file with scoring parameters")
	fl.StringVarP(&opts.Output, "output", "o", "text", "output format: text | pairs | json")
	fl.IntVarP(&opts.Threads, "threads", "t", 0, "worker threads (0 = all CPUs)")
	fl.BoolVar(&opts.Sort, "sort", false, "emit reports in input order")
	fl.BoolVar(&noHeader, "no-header", false, "suppress header line in text/pairs output")
	fl.Float64Var(&params.Match, "match", params.Match, "score for a matching column")
	fl.Float64Var(&params.Mismatch, "mismatch", params.Mismatch, "penalty for a mismatching column")
	fl.Float64Var(&params.GapOpen, "gap-open", params.GapOpen, "penalty for opening a gap run")
	fl.Float64Var(&params.GapExtend, "gap-extend", params.GapExtend, "penalty for extending a gap run")

	return cmd
}
