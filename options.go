package main

import (
	"fmt"
	"io"

	"github.com/ananthrk/rforth/internal/flushio"
	"github.com/ananthrk/rforth/internal/runeio"
)

// InterpOption configures an Interp built by New.
type InterpOption interface{ apply(it *Interp) }

// InterpOptions flattens several options into one.
func InterpOptions(opts ...InterpOption) InterpOption {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	return res
}

type options []InterpOption

func (opts options) apply(it *Interp) {
	for _, opt := range opts {
		opt.apply(it)
	}
}

var defaultOptions = InterpOptions(
	withOutput(io.Discard),
)

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(it *Interp) {
	it.logfn = logfn
}

type inputOption struct{ io.Reader }
type inputWriterOption struct{ io.WriterTo }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type stackLimitOption int

func withInput(r io.Reader) inputOption               { return inputOption{r} }
func withInputWriter(w io.WriterTo) inputWriterOption { return inputWriterOption{w} }
func withOutput(w io.Writer) outputOption             { return outputOption{w} }
func withTee(w io.Writer) teeOption                   { return teeOption{w} }
func withStackLimit(limit int) stackLimitOption       { return stackLimitOption(limit) }

func (i inputOption) apply(it *Interp) {
	it.Input.Queue = append(it.Input.Queue, i.Reader)
}

func (i inputWriterOption) apply(it *Interp) {
	it.Input.Queue = append(it.Input.Queue, runeio.NamedReader(
		nameOf(i.WriterTo),
		&writerToReader{wto: i.WriterTo},
	))
}

func (o outputOption) apply(it *Interp) {
	if it.out != nil {
		it.out.Flush()
	}
	it.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(it *Interp) {
	it.out = flushio.WriteFlushers(it.out, flushio.NewWriteFlusher(o.Writer))
}

func (lim stackLimitOption) apply(it *Interp) {
	it.stackLimit = int(lim)
}

// writerToReader defers running an io.WriterTo until its content is first
// read, so that sources queued behind others cost nothing until reached.
type writerToReader struct {
	wto io.WriterTo
	r   io.Reader
}

func (wtr *writerToReader) Read(p []byte) (int, error) {
	if wtr.r == nil {
		pr, pw := io.Pipe()
		go func(wto io.WriterTo) {
			_, err := wto.WriteTo(pw)
			pw.CloseWithError(err)
		}(wtr.wto)
		wtr.r = pr
	}
	return wtr.r.Read(p)
}

func (wtr *writerToReader) Close() error {
	if cl, ok := wtr.r.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<%T>", obj)
}
