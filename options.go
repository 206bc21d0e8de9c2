package main

import (
	"bytes"
	"io"
	"io/ioutil"

	"github.com/loyston500/micron/internal/flushio"
	"github.com/loyston500/micron/internal/runeio"
)

// VMOption configures a VM at construction time, using the
// functional-options idiom.
type VMOption interface{ apply(vm *VM) }

var defaultOptions = []VMOption{
	withInput(bytes.NewReader(nil)),
	withOutput(ioutil.Discard),
}

func (vm *VM) applyOptions(opts ...VMOption) {
	for _, opt := range defaultOptions {
		if opt != nil {
			opt.apply(vm)
		}
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(vm)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) { vm.logfn = logfn }

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type slotLimitOption int
type maxCallDepthOption int

func withInput(r io.Reader) inputOption           { return inputOption{r} }
func withOutput(w io.Writer) outputOption         { return outputOption{w} }
func withTee(w io.Writer) teeOption               { return teeOption{w} }
func withSlotLimit(limit int) slotLimitOption     { return slotLimitOption(limit) }
func withMaxCallDepth(n int) maxCallDepthOption   { return maxCallDepthOption(n) }

func (i inputOption) apply(vm *VM) { vm.in = runeio.NewReader(i.Reader) }

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.WriteFlushers(vm.out, flushio.NewWriteFlusher(o.Writer))
}

func (lim slotLimitOption) apply(vm *VM) {
	if vm.slots == nil {
		return
	}
	vm.slots.Limit = int(lim)
}

func (n maxCallDepthOption) apply(vm *VM) { vm.maxCallDepth = int(n) }
