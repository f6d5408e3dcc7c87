package fileinput

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ananthrk/rforth/internal/runeio"
)

// Location names a line in an Input stream.
type Location struct {
	Name string
	Line int
}

// Line combines a Location along with a bytes.Buffer holding its content.
type Line struct {
	Location
	bytes.Buffer
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il Line) String() string      { return fmt.Sprintf("%v %q", il.Location, il.Buffer.String()) }

// Input implements sequential rune reading through a Queue of input streams.
// Both the current and last scanned lines are tracked for user feedback.
//
// The end of every stream that did not end in a line feed reads as one, so
// that no token or line spans two streams.
type Input struct {
	rr    runeio.Reader
	Queue []io.Reader
	Last  Line
	Scan  Line
}

// ReadRune reads one rune from the current stream, moving on through the
// Queue as streams are exhausted. Returns io.EOF only once the Queue is empty.
func (in *Input) ReadRune() (rune, int, error) {
	for {
		if in.rr == nil && !in.nextIn() {
			return 0, 0, io.EOF
		}

		r, n, err := in.rr.ReadRune()
		if err == io.EOF {
			pending := in.Scan.Len() > 0
			if cerr := in.closeIn(); cerr != nil {
				return 0, 0, cerr
			}
			if pending {
				return '\n', 0, nil
			}
			continue
		} else if err != nil {
			return 0, n, err
		}

		if r == '\n' {
			in.nextLine()
		} else {
			in.Scan.WriteRune(r)
		}
		return r, n, nil
	}
}

// Location returns the location of the line being scanned.
func (in *Input) Location() Location { return in.Scan.Location }

// Close closes the current stream and any still queued, returning the first
// error encountered.
func (in *Input) Close() (err error) {
	err = in.closeIn()
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) nextLine() {
	in.Last.Reset()
	in.Last.Location = in.Scan.Location
	in.Last.Write(in.Scan.Bytes())
	in.Scan.Reset()
	in.Scan.Line++
}

func (in *Input) closeIn() (err error) {
	if in.rr == nil {
		return nil
	}
	if in.Scan.Len() > 0 {
		in.nextLine()
	}
	if cl, ok := in.rr.(io.Closer); ok {
		err = cl.Close()
	}
	in.rr = nil
	return err
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.rr = runeio.NewReader(r)
	in.Scan.Reset()
	in.Scan.Name = nameOf(r)
	in.Scan.Line = 1
	return true
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
