/*
Package main implements micron, an interpreter for a tiny prefix-notation
scripting language.

Every construct is a function call written left-to-right: an operator token
like s: or p: is immediately followed by exactly as many argument
expressions as its fixed arity requires. There is no infix syntax and no
operator precedence to resolve.

Values are one of three kinds: Int, a signed integer at the host's pointer
width; Str, a sequence of Unicode code points; or None, a single falsy
sentinel that never compares equal to anything: =: with a None operand
raises a TypeError.

Storage is an unbounded, sparsely populated map from a signed integer key to
a Value (see internal/slotstore), read with g: and written with s:. Slot -1
is reserved: on a caught error it holds that error's numeric code.

Control flow has three layers:

  - j: is an unconditional jump to a named label, aborting whatever call
    tree is currently being evaluated.
  - f: and r: form a lightweight function call: f: jumps to a label and
    drives evaluation there until a matching r: supplies a return value (or
    the program ends), at which point f: yields that value to its own
    caller as an ordinary result.
  - #: is a catch: it evaluates its second argument, and if any operator
    raises one of the five error kinds during that evaluation, catches it,
    writes the numeric code to slot -1, and jumps to the given label
    instead of propagating further.

See parser.go and eval.go for how a source file becomes a flat, labeled
instruction sequence and how that sequence is walked.
*/
package main
