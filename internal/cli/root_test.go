package cli

import (
	"context"
	"errors"
	"io"
	"testing"
)

func execute(t *testing.T, args []string) (Options, bool, error) {
	t.Helper()
	var (
		got Options
		ran bool
	)
	cmd := NewRootCmd(func(_ context.Context, opts Options) error {
		got = opts
		ran = true
		return nil
	})
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return got, ran, err
}

func TestRootCmdDefaults(t *testing.T) {
	opts, ran, err := execute(t, []string{"aln.fa"})
	if err != nil || !ran {
		t.Fatalf("execute: ran=%v err=%v", ran, err)
	}
	if len(opts.Files) != 1 || opts.Files[0] != "aln.fa" {
		t.Errorf("files = %v", opts.Files)
	}
	if opts.Output != "text" || opts.Threads != 0 || !opts.Header || opts.Sort {
		t.Errorf("defaults wrong: %+v", opts)
	}
	o := opts.Overrides
	if o.Match != nil || o.Mismatch != nil || o.GapOpen != nil || o.GapExtend != nil {
		t.Errorf("untouched flags must not become overrides: %+v", o)
	}
}

func TestRootCmdExplicitScoringFlags(t *testing.T) {
	opts, _, err := execute(t, []string{"--match", "5", "--gap-extend", "-1", "a.fa", "b.fa"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if opts.Overrides.Match == nil || *opts.Overrides.Match != 5 {
		t.Errorf("match override missing: %+v", opts.Overrides)
	}
	if opts.Overrides.GapExtend == nil || *opts.Overrides.GapExtend != -1 {
		t.Errorf("gap-extend override missing: %+v", opts.Overrides)
	}
	if opts.Overrides.Mismatch != nil || opts.Overrides.GapOpen != nil {
		t.Errorf("unset flags must stay nil: %+v", opts.Overrides)
	}
	if len(opts.Files) != 2 {
		t.Errorf("files = %v", opts.Files)
	}
}

func TestRootCmdNoHeader(t *testing.T) {
	opts, _, err := execute(t, []string{"--no-header", "a.fa"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if opts.Header {
		t.Error("--no-header must clear Header")
	}
}

func TestRootCmdInvalidOutput(t *testing.T) {
	_, ran, err := execute(t, []string{"-o", "yaml", "a.fa"})
	if ran {
		t.Fatal("run must not be called on invalid output")
	}
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
}

func TestRootCmdNegativeThreads(t *testing.T) {
	_, _, err := execute(t, []string{"--threads", "-2", "a.fa"})
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
}

func TestRootCmdRequiresFiles(t *testing.T) {
	_, ran, err := execute(t, []string{})
	if ran || err == nil {
		t.Fatalf("expected argument error, ran=%v err=%v", ran, err)
	}
}
