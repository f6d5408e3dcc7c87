package main

import (
	"strings"
	"unicode"
)

func isDelim(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r)
}

// scan reads the next token, a maximal run of non-delimiter runes, along with
// the single delimiter that ends it. Output is flushed first, since scanning
// may block on an interactive reader.
func (core *ioCore) scan() (string, bool) {
	core.flush()

	var sb strings.Builder
	for {
		r, ok := core.readRune()
		if !ok {
			core.lineEnded = true
			break
		}
		if isDelim(r) {
			if sb.Len() == 0 {
				continue
			}
			core.lineEnded = r == '\n'
			break
		}
		sb.WriteRune(r)
	}
	if sb.Len() == 0 {
		return "", false
	}
	return sb.String(), true
}

// skipLine discards input through the next line feed, unless the last token
// already ended its line.
func (core *ioCore) skipLine() {
	if core.lineEnded {
		return
	}
	for {
		r, ok := core.readRune()
		if !ok || r == '\n' {
			break
		}
	}
	core.lineEnded = true
}
