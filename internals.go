package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	errStackUnderflow = errors.New("stack underflow")
	errStackOverflow  = errors.New("stack overflow")
	errDivisionByZero = errors.New("division by zero")
	errExit           = errors.New("exit requested")
)

// unknownWordError is a token that is neither a word nor a number.
type unknownWordError string

func (tok unknownWordError) Error() string { return string(tok) + " ??" }

// aliasError names an alias target that is not in the dictionary.
type aliasError string

func (name aliasError) Error() string { return fmt.Sprintf("no such word: %v", string(name)) }

// wordError attributes an error to the word that raised it.
type wordError struct {
	name string
	err  error
}

func (err wordError) Error() string { return fmt.Sprintf("%v: %v", err.name, err.err) }
func (err wordError) Unwrap() error { return err.err }

// isWordFault reports whether err should be prefixed with the name of the
// primitive that returned it.
func isWordFault(err error) bool {
	if err == nil {
		return false
	}
	var we wordError
	if errors.As(err, &we) {
		return false
	}
	var ae aliasError
	return errors.Is(err, errStackUnderflow) ||
		errors.Is(err, errStackOverflow) ||
		errors.Is(err, errDivisionByZero) ||
		errors.As(err, &ae)
}

//// Stack access

func (it *Interp) need(n int) error {
	if len(it.stack) < n {
		return errStackUnderflow
	}
	return nil
}

func (it *Interp) push(v Value) error {
	if it.stackLimit > 0 && len(it.stack) >= it.stackLimit {
		return errStackOverflow
	}
	it.stack = append(it.stack, v)
	return nil
}

// pop must only follow a successful need.
func (it *Interp) pop() Value {
	i := len(it.stack) - 1
	v := it.stack[i]
	it.stack = it.stack[:i]
	return v
}

// peek returns the value i places below the top, which must exist.
func (it *Interp) peek(i int) Value {
	return it.stack[len(it.stack)-1-i]
}

//// Resolving and compiling

func (it *Interp) resolve(token string) (word, error) {
	if w, defined := it.dict.lookup(token); defined {
		return w, nil
	}
	if v, isNumber := parseNumber(token); isNumber {
		return word{name: token, action: &literal{v}}, nil
	}
	return word{}, unknownWordError(token)
}

// define compiles the body following a name into a composite bound to that
// name. Immediate words run as they are read. An unresolvable token abandons
// the definition: the remaining body, through ;, is read and discarded.
func (it *Interp) define() error {
	name, ok := it.scan()
	if !ok {
		it.logf(":", "no name to define")
		return nil
	}

	defer it.withLogPrefix("  ")()
	it.logf(":", "%v", name)

	def := &composite{name: name}
	for {
		token, ok := it.scan()
		if !ok || token == ";" {
			break
		}
		w, err := it.resolve(token)
		if err == nil && w.immediate {
			it.logf(">", "%v", w)
			err = w.action.exec(it)
		} else if err == nil {
			def.body = append(def.body, w.action)
			continue
		}
		if err != nil {
			it.logf("!", "abandon %v: %v", name, err)
			it.discard()
			return err
		}
	}

	it.dict.insert(name, def)
	it.logf(";", "%v", name)
	return nil
}

// discard skips a definition body through its closing ;, still running any
// immediate words so that comments are honored.
func (it *Interp) discard() {
	for {
		token, ok := it.scan()
		if !ok || token == ";" {
			return
		}
		if w, defined := it.dict.lookup(token); defined && w.immediate {
			if err := w.action.exec(it); err != nil {
				it.logf("!", "%v: %v", token, err)
			}
		}
	}
}

//// Evaluation

func (it *Interp) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		token, ok := it.scan()
		if !ok {
			return nil
		}
		err := it.step(token)
		if errors.Is(err, errExit) {
			it.exited = true
			it.logf("#", "bye")
			return nil
		} else if err != nil {
			it.report(err)
		}
	}
}

func (it *Interp) step(token string) error {
	w, err := it.resolve(token)
	if err != nil {
		return err
	}
	it.logf(">", "%v", w)
	return w.action.exec(it)
}

// report writes one diagnostic line for a failed step; the stack is left as
// the step left it.
func (it *Interp) report(err error) {
	it.failures++
	it.logf("!", "%v @%v", err, it.location())
	it.writeString(strings.TrimRight(err.Error(), "\n") + "\n")
}
