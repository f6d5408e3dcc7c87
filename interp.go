package main

import "strings"

//// The Interpreter

// Interp runs a session: it owns one dictionary, one stack, one queue of
// input streams, and one output stream. Every action runs against it.
type Interp struct {
	ioCore

	dict dictionary

	// The stack holds every value the words work on; it grows to the right,
	// so the last element is the top.
	stack      []Value
	stackLimit int

	exited   bool // bye was run
	failures int  // step errors reported so far
}

//// Stack Operations

// Name   Effect            Function
//
//	dup    (a -- a a)        duplicate the top
func (it *Interp) dup() error {
	if err := it.need(1); err != nil {
		return err
	}
	return it.push(it.peek(0))
}

// Name   Effect            Function
//
//	?dup   (a -- a a | 0)    duplicate the top unless it is zero
func (it *Interp) qdup() error {
	if err := it.need(1); err != nil {
		return err
	}
	if top := it.peek(0); !top.isZero() {
		return it.push(top)
	}
	return nil
}

// Name   Effect            Function
//
//	drop   (a -- )           discard the top
func (it *Interp) drop() error {
	if err := it.need(1); err != nil {
		return err
	}
	it.pop()
	return nil
}

// Name   Effect            Function
//
//	swap   (a b -- b a)      exchange the top two
func (it *Interp) swap() error {
	if err := it.need(2); err != nil {
		return err
	}
	n := len(it.stack)
	it.stack[n-2], it.stack[n-1] = it.stack[n-1], it.stack[n-2]
	return nil
}

// Name   Effect            Function
//
//	over   (a b -- a b a)    copy the second to the top
func (it *Interp) over() error {
	if err := it.need(2); err != nil {
		return err
	}
	return it.push(it.peek(1))
}

// Name   Effect            Function
//
//	rot    (a b c -- b c a)  rotate the third to the top
func (it *Interp) rot() error {
	if err := it.need(3); err != nil {
		return err
	}
	n := len(it.stack)
	a, b, c := it.stack[n-3], it.stack[n-2], it.stack[n-1]
	it.stack[n-3], it.stack[n-2], it.stack[n-1] = b, c, a
	return nil
}

//// Arithmetic Operations

// Name       Symbol  Effect          Function
//
//	add        +       (a b -- a+b)    sum of the top two
//	subtract   -       (a b -- a-b)    the second minus the top
//	multiply   *       (a b -- a*b)    product of the top two
//	divide     /       (a b -- a/b)    the second divided by the top, truncating
//	                                   integer quotients toward zero
func (it *Interp) add() error { return it.binary(addValues) }
func (it *Interp) sub() error { return it.binary(subValues) }
func (it *Interp) mul() error { return it.binary(mulValues) }
func (it *Interp) div() error { return it.binary(divValues) }

// binary replaces the top two values with op(second, top); the stack is left
// as it was if op fails.
func (it *Interp) binary(op func(a, b Value) (Value, error)) error {
	if err := it.need(2); err != nil {
		return err
	}
	n := len(it.stack)
	r, err := op(it.stack[n-2], it.stack[n-1])
	if err != nil {
		return err
	}
	it.stack[n-2] = r
	it.stack = it.stack[:n-1]
	return nil
}

//// Output Operations

// Symbol  Effect           Function
//
//	.    (a -- )          print the top and a newline
func (it *Interp) print() error {
	if err := it.need(1); err != nil {
		return err
	}
	it.writeString(it.pop().String() + "\n")
	return nil
}

// Symbol  Function
//
//	.S    print the whole stack, bottom first, like [1, 2, 3]
func (it *Interp) printStack() error {
	it.writeString(formatStack(it.stack) + "\n")
	return nil
}

// Name   Function
//
//	cr     print a newline
func (it *Interp) cr() error {
	it.writeString("\n")
	return nil
}

// Symbol  Function
//
//	.D    print every word in the dictionary
func (it *Interp) printDict() error {
	var sb strings.Builder
	dictDumper{it: it, out: &sb}.dump()
	it.writeString(sb.String())
	return nil
}

func formatStack(values []Value) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

//// Defining Operations

// Symbol  Function
//
//	:    read a name, then compile words up to ; into its definition
func (it *Interp) colon() error { return it.define() }

// Name    Function
//
//	alias   read two names, binding the first to what the second means now
func (it *Interp) alias() error {
	newName, ok := it.scan()
	if !ok {
		return nil
	}
	oldName, ok := it.scan()
	if !ok {
		return nil
	}
	if err := it.dict.alias(newName, oldName); err != nil {
		return err
	}
	it.logf(":", "alias %v -> %v", newName, oldName)
	return nil
}

//// Immediate Operations

// Symbol  Function
//
//	\    discard the rest of the input line; runs even while compiling
func (it *Interp) comment() error {
	it.skipLine()
	return nil
}

//// Session Operations

// Name   Function
//
//	bye    end the session
func (it *Interp) bye() error { return errExit }

// The built-in words, installed by New in this order.
var builtins = [...]struct {
	name      string
	immediate bool
	fn        func(it *Interp) error
}{
	{"dup", false, (*Interp).dup},
	{"?dup", false, (*Interp).qdup},
	{"drop", false, (*Interp).drop},
	{"swap", false, (*Interp).swap},
	{"over", false, (*Interp).over},
	{"rot", false, (*Interp).rot},
	{"+", false, (*Interp).add},
	{"-", false, (*Interp).sub},
	{"*", false, (*Interp).mul},
	{"/", false, (*Interp).div},
	{".", false, (*Interp).print},
	{".S", false, (*Interp).printStack},
	{".D", false, (*Interp).printDict},
	{"cr", false, (*Interp).cr},
	{":", false, (*Interp).colon},
	{"alias", false, (*Interp).alias},
	{"bye", false, (*Interp).bye},
	{`\`, true, (*Interp).comment},
}

func (it *Interp) compileBuiltins() {
	for _, b := range builtins {
		prim := &primitive{name: b.name, fn: b.fn}
		if b.immediate {
			it.dict.insertImmediate(b.name, prim)
		} else {
			it.dict.insert(b.name, prim)
		}
	}
}
