package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/loyston500/micron/internal/flushio"
	"github.com/loyston500/micron/internal/runeio"
)

// Core holds the host-facing plumbing shared by every VM: input/output
// streams, resource cleanup, and the halt/log machinery. Language-level
// concerns (slots, program, stacks) live on VM itself.
type Core struct {
	logging
	in      runeio.Reader
	out     flushio.WriteFlusher
	closers []io.Closer
}

// Close releases any resources registered via option constructors, in
// reverse order of registration.
func (core *Core) Close() (err error) {
	for i := len(core.closers) - 1; i >= 0; i-- {
		if cerr := core.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// halt aborts the run for a host-level reason: a failed write, a slot-limit
// or call-depth violation, or context cancellation. It is never used for
// ordinary Micron language errors, which are returned as values instead.
func (core *Core) halt(err error) {
	func() {
		defer func() { recover() }()
		if core.out != nil {
			if ferr := core.out.Flush(); err == nil {
				err = ferr
			}
		}
	}()

	func() {
		defer func() { recover() }()
		core.logf("#", "halt error: %v", err)
	}()

	panic(haltError{err})
}

func (core *Core) writeString(s string) {
	if err := core.out.Flush(); err != nil {
		core.halt(err)
	}
	if _, err := io.WriteString(core.out, s); err != nil {
		core.halt(err)
	}
}

// readLine reads one line from stdin, trailing newline stripped. At EOF
// with no data read, it returns "" (per SPEC_FULL.md §5.4); any other I/O
// failure halts.
func (core *Core) readLine() string {
	if core.out != nil {
		if err := core.out.Flush(); err != nil {
			core.halt(err)
		}
	}

	var b strings.Builder
	for {
		r, _, err := core.in.ReadRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			core.halt(err)
		}
		if r == '\n' {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}
func (err haltError) Unwrap() error { return err.error }

type logging struct {
	logfn func(mess string, args ...interface{})
}

// withLogPrefix indents subsequent trace lines, restoring the prior logfn
// via the returned function. Used for the duration of an f: call body.
func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	if logfn == nil {
		return func() {}
	}
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
