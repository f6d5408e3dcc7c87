// Package lineinput adapts an interactive line editor into an io.Reader, so
// that a terminal session can sit in an input queue like any other stream.
package lineinput

import (
	"errors"

	"github.com/chzyer/readline"
)

// Lines is the part of a *readline.Instance that Reader uses.
type Lines interface {
	Readline() (string, error)
	Close() error
}

// Config names the settings for Open.
type Config struct {
	Name        string // reported as the stream name; defaults to "stdin"
	Prompt      string
	HistoryFile string
}

// Reader reads one edited line at a time, each returned with a trailing line
// feed. Interrupted lines are dropped.
type Reader struct {
	lines Lines
	name  string
	buf   []byte
}

// Open starts a readline session on the process terminal.
func Open(cfg Config) (*Reader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            cfg.Prompt,
		HistoryFile:       cfg.HistoryFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "bye",
		HistorySearchFold: true,
	})
	if err != nil {
		return nil, err
	}
	return New(cfg.Name, rl), nil
}

// New creates a Reader around any Lines source.
func New(name string, lines Lines) *Reader {
	if name == "" {
		name = "stdin"
	}
	return &Reader{lines: lines, name: name}
}

// Name returns the stream name given to New.
func (r *Reader) Name() string { return r.name }

// Read copies out the rest of the current line, reading a new one when it
// has been used up. Returns io.EOF once the line source does.
func (r *Reader) Read(p []byte) (int, error) {
	for len(r.buf) == 0 {
		line, err := r.lines.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		} else if err != nil {
			return 0, err
		}
		r.buf = append(append(r.buf[:0], line...), '\n')
	}
	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}

// Close ends the line editing session.
func (r *Reader) Close() error { return r.lines.Close() }
