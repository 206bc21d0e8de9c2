package main

import (
	"context"

	"github.com/loyston500/micron/internal/slotstore"
)

// VM holds all state for one Micron program run: the compiled program, the
// slot store, and the call/catch stacks. A VM is used for exactly one Run.
type VM struct {
	Core

	program *Program
	slots   *slotstore.Store[Value]

	callStack  []int
	catchStack []catchFrame

	// nextIP is the successor index of the top-level instruction currently
	// being evaluated; f: pushes this value onto callStack.
	nextIP int

	maxCallDepth int
	ctx          context.Context
}

type catchFrame struct {
	label          string
	savedCallDepth int
}

func newVM() *VM {
	vm := &VM{slots: slotstore.New[Value]()}
	return vm
}

func (vm *VM) load(key int) Value {
	v, ok := vm.slots.Get(key)
	if !ok {
		return None
	}
	return v
}

func (vm *VM) store(key int, v Value) {
	if err := vm.slots.Set(key, v); err != nil {
		vm.halt(err)
	}
}
