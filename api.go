package main

import (
	"context"
	"errors"
	"io"

	"github.com/loyston500/micron/internal/panicerr"
)

// New constructs a VM, applying default then given options. A Program must
// be supplied via WithProgram before Run is called.
func New(opts ...VMOption) *VM {
	vm := newVM()
	vm.applyOptions(opts...)
	return vm
}

// Run executes vm.program to completion. Host-level halts (panics) and
// plain errors are both folded into a single error return; a nil return
// means the program ran to normal completion, including via $ or a
// top-level r:.
func (vm *VM) Run(ctx context.Context) error {
	err := panicerr.Recover("VM", func() error {
		return vm.run(ctx)
	})
	if err == nil {
		return nil
	}
	var halted haltError
	if errors.As(err, &halted) {
		err = halted.error
	}
	return err
}

func WithInput(r io.Reader) VMOption { return withInput(r) }
func WithOutput(w io.Writer) VMOption { return withOutput(w) }
func WithTee(w io.Writer) VMOption { return withTee(w) }
func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }
func WithSlotLimit(limit int) VMOption { return withSlotLimit(limit) }
func WithMaxCallDepth(n int) VMOption  { return withMaxCallDepth(n) }
func WithProgram(prog *Program) VMOption { return programOption{prog} }

type programOption struct{ prog *Program }

func (o programOption) apply(vm *VM) { vm.program = o.prog }
