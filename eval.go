package main

import "context"

// ctrlKind tags the abort signal an evaluation step surfaces to its caller.
// ctrlNone means "no abort; take the returned Value normally."
type ctrlKind int

const (
	ctrlNone ctrlKind = iota
	ctrlJump
	ctrlReturn
	ctrlError
	ctrlExit
)

// ctrl is the nonlocal control-flow signal threaded through argument and
// call-tree evaluation: j:, r:, a raised error, and $ each abort the
// enclosing call tree by returning a non-ctrlNone ctrl instead of a Value.
type ctrl struct {
	kind   ctrlKind
	jumpTo int
	retVal Value
	err    *RuntimeError
}

func ctrlErr(err *RuntimeError) ctrl { return ctrl{kind: ctrlError, err: err} }

// run drives the top-level instruction pointer from 0 until the program
// halts (end of instructions, $, or a top-level r: with an empty call
// stack), or an error escapes uncaught.
func (vm *VM) run(ctx context.Context) error {
	vm.ctx = ctx
	_, c := vm.runLoop(0, 0)
	if err := vm.out.Flush(); err != nil {
		vm.halt(err)
	}
	if c.kind == ctrlError {
		return c.err
	}
	return nil
}

// runLoop drives the flat instruction pointer starting at ip. frameDepth is
// the callStack length "owned" by this invocation: the top-level driver
// passes 0, while an f: call passes the depth just after it pushed its own
// return index. Because every f: recurses into a nested runLoop and only
// returns once that nested loop is done, frameDepth always equals
// len(vm.callStack) on entry, and any r: this loop executes directly is
// popping exactly its own frame. Returns when:
//   - r: is hit: its frame is popped and the retVal is this loop's result.
//   - the program ends with this frame still on the stack: yields None.
//   - an error or an exit escapes uncaught: propagated to the caller.
func (vm *VM) runLoop(ip int, frameDepth int) (Value, ctrl) {
	instrs := vm.program.Instructions
	for ip < len(instrs) {
		if err := vm.ctx.Err(); err != nil {
			vm.halt(err)
		}

		instr := instrs[ip]
		if instr.Label != "" {
			ip++
			continue
		}

		vm.nextIP = ip + 1
		vm.logf(">", "%v", instr.Call.Op)
		val, c := vm.evalCall(instr.Call)

		switch c.kind {
		case ctrlNone:
			_ = val
			ip++

		case ctrlJump:
			ip = c.jumpTo

		case ctrlReturn:
			if frameDepth > 0 {
				vm.callStack = vm.callStack[:frameDepth-1]
			}
			return c.retVal, ctrl{}

		case ctrlError:
			if frameDepth > 0 {
				vm.callStack = vm.callStack[:frameDepth-1]
			}
			return None, c

		case ctrlExit:
			if frameDepth > 0 {
				vm.callStack = vm.callStack[:frameDepth-1]
			}
			return None, c
		}
	}

	if frameDepth > 0 {
		vm.callStack = vm.callStack[:frameDepth-1]
	}
	return None, ctrl{}
}

// evalArg evaluates one argument node: a literal is returned as-is; a
// nested call is evaluated recursively.
func (vm *VM) evalArg(a Arg) (Value, ctrl) {
	if a.Lit != nil {
		return *a.Lit, ctrl{}
	}
	return vm.evalCall(a.Call)
}

// evalCall dispatches one Call node. ?:, j:, f: and #: are non-strict or
// control-altering and are special-cased; every other operator evaluates
// its arguments eagerly, left to right, before dispatching.
func (vm *VM) evalCall(call *Call) (Value, ctrl) {
	switch call.Op {
	case "?:":
		return vm.evalIf(call)
	case "j:":
		return vm.evalJump(call)
	case "f:":
		return vm.evalFunc(call)
	case "#:":
		return vm.evalCatch(call)
	}

	args := make([]Value, len(call.Args))
	for i, a := range call.Args {
		v, c := vm.evalArg(a)
		if c.kind != ctrlNone {
			return None, c
		}
		args[i] = v
	}
	return vm.dispatch(call.Op, args)
}

func (vm *VM) evalIf(call *Call) (Value, ctrl) {
	cond, c := vm.evalArg(call.Args[0])
	if c.kind != ctrlNone {
		return None, c
	}
	if !cond.Truthy() {
		return None, ctrl{}
	}
	return vm.evalArg(call.Args[1])
}

func (vm *VM) evalJump(call *Call) (Value, ctrl) {
	target, c, ok := vm.resolveLabelArg(call.Args[0])
	if c.kind != ctrlNone {
		return None, c
	}
	if !ok {
		return None, c
	}
	return None, ctrl{kind: ctrlJump, jumpTo: target}
}

func (vm *VM) evalFunc(call *Call) (Value, ctrl) {
	target, c, ok := vm.resolveLabelArg(call.Args[0])
	if c.kind != ctrlNone {
		return None, c
	}
	if !ok {
		return None, c
	}

	if vm.maxCallDepth > 0 && len(vm.callStack) >= vm.maxCallDepth {
		vm.halt(genericError("max call depth exceeded"))
	}

	vm.callStack = append(vm.callStack, vm.nextIP)
	frameDepth := len(vm.callStack)

	undo := vm.withLogPrefix("\t")
	defer undo()

	return vm.runLoop(target, frameDepth)
}

// resolveLabelArg evaluates arg to a Str and looks it up in the label
// table. If the second return isn't ctrlNone, the caller must propagate it
// immediately; ok is false when a LabelError was produced (already folded
// into ctrl).
func (vm *VM) resolveLabelArg(arg Arg) (int, ctrl, bool) {
	v, c := vm.evalArg(arg)
	if c.kind != ctrlNone {
		return 0, c, false
	}
	name, isStr := v.AsStr()
	if !isStr {
		return 0, ctrlErr(typeError("expected a Str label name")), false
	}
	target, ok := vm.program.Labels[name]
	if !ok {
		return 0, ctrlErr(labelError(name)), false
	}
	return target, ctrl{}, true
}

func (vm *VM) evalCatch(call *Call) (Value, ctrl) {
	labelVal, c := vm.evalArg(call.Args[0])
	if c.kind != ctrlNone {
		return None, c
	}
	label, isStr := labelVal.AsStr()
	if !isStr {
		return None, ctrlErr(typeError("expected a Str catch label"))
	}
	target, ok := vm.program.Labels[label]
	if !ok {
		return None, ctrlErr(labelError(label))
	}

	frame := catchFrame{label: label, savedCallDepth: len(vm.callStack)}
	vm.catchStack = append(vm.catchStack, frame)
	depth := len(vm.catchStack)

	val, c2 := vm.evalArg(call.Args[1])

	vm.catchStack = vm.catchStack[:depth-1]

	if c2.kind == ctrlError {
		vm.callStack = vm.callStack[:frame.savedCallDepth]
		vm.store(-1, Int(c2.err.Code()))
		return None, ctrl{kind: ctrlJump, jumpTo: target}
	}

	return val, c2
}
