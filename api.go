package main

import (
	"context"
	"errors"
	"io"

	"github.com/ananthrk/rforth/internal/panicerr"
	"github.com/ananthrk/rforth/internal/runeio"
)

// New creates an interpreter with the built-in words defined, configured by
// any given options.
func New(opts ...InterpOption) *Interp {
	var it Interp
	it.compileBuiltins()
	defaultOptions.apply(&it)
	InterpOptions(opts...).apply(&it)
	return &it
}

// Run evaluates all queued input, returning nil once it is exhausted or
// after bye. Step errors are reported to the output and do not end the run;
// only input or output failures and context cancellation do.
func (it *Interp) Run(ctx context.Context) error {
	if it.exited {
		return nil
	}
	err := panicerr.Recover("interp", func() error {
		return it.run(ctx)
	})
	if ferr := it.out.Flush(); err == nil {
		err = ferr
	}
	var halt haltError
	if errors.As(err, &halt) {
		err = halt.error
	} else if panicerr.IsPanic(err) || panicerr.IsExit(err) {
		it.logf("!", "%v", err)
		if stack := panicerr.PanicStack(err); stack != "" {
			it.logf("!", "panic stack: %s", stack)
		}
	}
	return err
}

// Eval queues r as further input and runs it.
func (it *Interp) Eval(ctx context.Context, r io.Reader) error {
	it.Input.Queue = append(it.Input.Queue, r)
	return it.Run(ctx)
}

// Exited reports whether bye has ended the session.
func (it *Interp) Exited() bool { return it.exited }

// Failures returns how many step errors have been reported so far.
func (it *Interp) Failures() int { return it.failures }

// Stack returns a copy of the stack, bottom first.
func (it *Interp) Stack() []Value { return append([]Value(nil), it.stack...) }

// Words returns the names of all defined words in sorted order.
func (it *Interp) Words() []string { return it.dict.names() }

func WithInput(r io.Reader) InterpOption         { return withInput(r) }
func WithInputWriter(w io.WriterTo) InterpOption { return withInputWriter(w) }
func WithOutput(w io.Writer) InterpOption        { return withOutput(w) }
func WithTee(w io.Writer) InterpOption           { return withTee(w) }
func WithStackLimit(limit int) InterpOption      { return withStackLimit(limit) }

func WithLogf(logfn func(mess string, args ...interface{})) InterpOption { return withLogfn(logfn) }

// NamedReader gives r a Name, used in locations that trace logging reports.
func NamedReader(name string, r io.Reader) io.Reader { return runeio.NamedReader(name, r) }
