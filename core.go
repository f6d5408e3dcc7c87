package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ananthrk/rforth/internal/fileinput"
	"github.com/ananthrk/rforth/internal/flushio"
	"github.com/ananthrk/rforth/internal/runeio"
)

type ioCore struct {
	logging
	fileinput.Input
	out flushio.WriteFlusher

	// lineEnded is set when the last token read was terminated by a line
	// feed or by the end of input.
	lineEnded bool
}

// Close closes any input streams not yet read to their end.
func (core *ioCore) Close() error {
	return core.Input.Close()
}

func (core *ioCore) halt(err error) {
	// ignore any panics while trying to flush output
	func() {
		defer func() { recover() }()
		if core.out != nil {
			if ferr := core.out.Flush(); err == nil {
				err = ferr
			}
		}
	}()

	// ignore any panics while logging
	func() {
		defer func() { recover() }()
		core.logf("#", "halt error: %v", err)
	}()

	panic(haltError{err})
}

func (core *ioCore) flush() {
	if err := core.out.Flush(); err != nil {
		core.halt(err)
	}
}

func (core *ioCore) writeString(s string) {
	if _, err := runeio.WriteString(core.out, s); err != nil {
		core.halt(err)
	}
}

// readRune returns the next input rune, or false once all input is
// exhausted.
func (core *ioCore) readRune() (rune, bool) {
	r, _, err := core.Input.ReadRune()
	if err == io.EOF {
		return 0, false
	} else if err != nil {
		core.halt(err)
	}
	return r, true
}

// location names the line holding the last token read.
func (core *ioCore) location() fileinput.Location {
	if core.Scan.Len() > 0 {
		return core.Scan.Location
	}
	return core.Last.Location
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

	markWidth int
}

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

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		for _, r := range mark {
			mark = strings.Repeat(string(r), n) + mark
			break
		}
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
