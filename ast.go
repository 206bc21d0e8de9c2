package main

// Op is an operator tag, spelled exactly as its source token (e.g. "s:",
// "j:", "~", "i").
type Op string

// Arg is one argument to a Call: either a literal value fixed at parse
// time, or a nested Call to evaluate.
type Arg struct {
	Lit  *Value
	Call *Call
}

// Call is a call tree node: an operator applied to a fixed number of
// argument nodes.
type Call struct {
	Op     Op
	Args   []Arg
	Offset int
}

// Instruction is one item of the flat top-level sequence: either a label
// placeholder or a top-level call tree.
type Instruction struct {
	Label  string // non-empty for a LabelMark
	Call   *Call  // non-nil for a call item
	Offset int
}

// Program is the fully parsed, immutable result of compiling a source file.
type Program struct {
	Instructions []Instruction
	Labels       map[string]int
}
