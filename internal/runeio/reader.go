package runeio

import (
	"bufio"
	"io"
)

// Reader is an io.Reader that also supports reading runes.
type Reader interface {
	io.Reader
	io.RuneReader
}

// NewReader returns a Reader from r; if r already implements it, r is simply
// returned. Otherwise a bufio.Reader provides rune reading around r.
// Any Name() string and Close() error methods of r are kept by the returned
// Reader.
func NewReader(r io.Reader) Reader {
	if impl, ok := r.(Reader); ok {
		return impl
	}
	var rr Reader = bufio.NewReader(r)
	if cl, ok := r.(io.Closer); ok {
		rr = closingRuneReader{rr, cl}
	}
	if impl, ok := r.(interface{ Name() string }); ok {
		return namedRuneReader{rr, impl.Name()}
	}
	return rr
}

// NamedReader attaches a Name to r, as reported by Input locations.
func NamedReader(name string, r io.Reader) io.Reader {
	if rr, ok := r.(Reader); ok {
		return namedRuneReader{rr, name}
	}
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

func (nr namedReader) Close() error {
	if cl, ok := nr.Reader.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

type closingRuneReader struct {
	Reader
	io.Closer
}

type namedRuneReader struct {
	Reader
	name string
}

func (nr namedRuneReader) Name() string { return nr.name }

func (nr namedRuneReader) Close() error {
	if cl, ok := nr.Reader.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}
