package flushio

import (
	"bufio"
	"io"
)

// WriteFlusher is a flush-able io.Writer.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// Discard is a WriteFlusher that drops everything written to it.
var Discard WriteFlusher = nopFlusher{io.Discard}

// NewWriteFlusher creates a new flushable writer around w:
// - io.Discard and in-memory buffers get a noop Flush
// - any w that is already a WriteFlusher is returned as is
// - anything else is buffered by a new bufio.Writer
func NewWriteFlusher(w io.Writer) WriteFlusher {
	if w == io.Discard {
		return Discard
	}

	if wf, is := w.(WriteFlusher); is {
		return wf
	}

	// types like bytes.Buffer and strings.Builder need no flushing
	type buffer interface {
		io.Writer
		Grow(n int)
		Len() int
		Reset()
	}
	if _, isBuffer := w.(buffer); isBuffer {
		return nopFlusher{w}
	}

	return bufio.NewWriter(w)
}

type nopFlusher struct{ io.Writer }

func (nf nopFlusher) Flush() error { return nil }
