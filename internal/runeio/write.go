package runeio

import "io"

// WriteRune writes a single rune to w, preferring any byte, rune, or string
// writing method that w implements.
func WriteRune(w io.Writer, r rune) (n int, err error) {
	type runeWriter interface {
		WriteRune(r rune) (n int, err error)
	}
	if r < 0x80 {
		if bw, ok := w.(io.ByteWriter); ok {
			return 1, bw.WriteByte(byte(r))
		}
		return w.Write([]byte{byte(r)})
	}
	if rw, ok := w.(runeWriter); ok {
		return rw.WriteRune(r)
	}
	return io.WriteString(w, string(r))
}

// WriteString writes s to w, using w's WriteString if it has one.
func WriteString(w io.Writer, s string) (n int, err error) {
	if sw, ok := w.(io.StringWriter); ok {
		return sw.WriteString(s)
	}
	for _, r := range s {
		m, err := WriteRune(w, r)
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
