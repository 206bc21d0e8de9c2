package main

import (
	"fmt"
	"io"
)

// vmDumper renders a VM's runtime state for the -dump CLI flag: the slot
// store contents and both stacks.
type vmDumper struct {
	vm  *VM
	out io.Writer
}

func (dump vmDumper) dump() {
	fmt.Fprintf(dump.out, "# VM Dump\n")
	dump.dumpSlots()
	dump.dumpCallStack()
	dump.dumpCatchStack()
}

func (dump vmDumper) dumpSlots() {
	fmt.Fprintf(dump.out, "  slots:\n")
	for _, k := range dump.vm.slots.Keys() {
		v, _ := dump.vm.slots.Get(k)
		fmt.Fprintf(dump.out, "    %v = %v(%v)\n", k, v.Kind(), v.Text())
	}
}

func (dump vmDumper) dumpCallStack() {
	fmt.Fprintf(dump.out, "  call stack: %v\n", dump.vm.callStack)
}

func (dump vmDumper) dumpCatchStack() {
	fmt.Fprintf(dump.out, "  catch stack:\n")
	for _, f := range dump.vm.catchStack {
		fmt.Fprintf(dump.out, "    label=%q savedCallDepth=%v\n", f.label, f.savedCallDepth)
	}
}
