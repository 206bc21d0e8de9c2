package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/goforj/godump"
	"github.com/loyston500/micron/internal/diag"
	"github.com/loyston500/micron/internal/logio"
)

func main() {
	var (
		timeout      time.Duration
		trace        bool
		slotLimit    int
		maxCallDepth int
		dumpTokens   bool
		dumpAST      bool
		dumpState    bool
		compileOnly  bool
	)
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.IntVar(&slotLimit, "slot-limit", 0, "limit the number of distinct slots (0 = unbounded)")
	flag.IntVar(&maxCallDepth, "max-call-depth", 0, "limit f: nesting depth (0 = unbounded)")
	flag.BoolVar(&dumpTokens, "dump-tokens", false, "pretty-print the token stream before running")
	flag.BoolVar(&dumpAST, "dump-ast", false, "pretty-print the parsed program before running")
	flag.BoolVar(&dumpState, "dump", false, "pretty-print VM state after the run")
	flag.BoolVar(&compileOnly, "compile-only", false, "lex and parse, but do not run")
	flag.Parse()

	var log logio.Logger
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	args := flag.Args()
	if len(args) != 1 {
		log.Errorf("usage: micron <path>")
		return
	}
	path := args[0]

	src, err := os.ReadFile(path)
	if err != nil {
		log.Errorf("%v", err)
		return
	}

	toks, err := lex(string(src))
	if err != nil {
		reportSourceError(&log, path, string(src), err.(*lexError).Offset, err)
		return
	}
	if dumpTokens {
		godump.Dump(toks)
	}

	prog, err := parse(toks)
	if err != nil {
		reportSourceError(&log, path, string(src), err.(*parseError).Offset, err)
		return
	}
	if dumpAST {
		godump.Dump(prog)
	}

	if compileOnly {
		return
	}

	opts := []VMOption{
		WithProgram(prog),
		WithInput(os.Stdin),
		WithOutput(os.Stdout),
	}
	if trace {
		opts = append(opts,
			WithLogf(log.Leveledf("TRACE")),
			WithTee(&logio.Writer{Logf: log.Leveledf("OUT")}),
		)
	}
	if slotLimit != 0 {
		opts = append(opts, WithSlotLimit(slotLimit))
	}
	if maxCallDepth != 0 {
		opts = append(opts, WithMaxCallDepth(maxCallDepth))
	}
	vm := New(opts...)

	ctx := context.Background()
	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	runErr := vm.Run(ctx)

	if dumpState {
		vmDumper{vm: vm, out: os.Stderr}.dump()
	}

	if runErr != nil {
		log.Errorf("%+v", runErr)
	}
}

func reportSourceError(log *logio.Logger, path, src string, offset int, err error) {
	source := diag.NewSource(path, src)
	log.Errorf("%v", source.Render(offset, err.Error()))
}
