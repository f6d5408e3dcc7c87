package main

import (
	"bytes"
	"io"
)

//// The Prelude

// Every word here could be spelled out wherever it is used; the prelude just
// gives the common combinations of the primitives a name. It is fed to the
// interpreter as ordinary source, so it also serves as a first program.

var prelude = preludeSource{}

type preludeSource struct{}

func (preludeSource) Name() string { return "prelude.fs" }

func (preludeSource) WriteTo(w io.Writer) (n int64, err error) {
	var buf bytes.Buffer
	line := func(parts ...string) {
		if err != nil {
			return
		}
		for _, s := range parts {
			buf.WriteString(s)
		}
		buf.WriteByte('\n')
		var m int64
		m, err = buf.WriteTo(w)
		n += m
	}

	line(`\ stack shuffles`)
	line(`: nip swap drop ;    \ (a b -- b)`)
	line(`: tuck swap over ;   \ (a b -- b a b)`)
	line(`: -rot rot rot ;     \ (a b c -- c a b)`)
	line(`: 2dup over over ;   \ (a b -- a b a b)`)
	line(`: 2drop drop drop ;  \ (a b -- )`)

	line(`\ arithmetic`)
	line(`: negate 0 swap - ;  \ (a -- -a)`)
	line(`: 1+ 1 + ;           \ (a -- a+1)`)
	line(`: 1- 1 - ;           \ (a -- a-1)`)
	line(`: sq dup * ;         \ (a -- a*a)`)

	return n, err
}
