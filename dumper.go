package main

import (
	"fmt"
	"io"
	"strings"
)

// dictDumper writes every word in name order, one definition per line:
//
//	# Dictionary
//	  : dup <primitive> ;
//	  : sq dup * ;
//	  : \ <primitive> ; immediate
//
// A reference whose name has since been bound to something else is marked
// with a trailing ' since the body still runs the older action.
type dictDumper struct {
	it  *Interp
	out io.Writer
}

func (dump dictDumper) dump() {
	fmt.Fprintf(dump.out, "# Dictionary\n")
	var buf strings.Builder
	for _, name := range dump.it.dict.names() {
		w, _ := dump.it.dict.lookup(name)
		buf.Reset()
		dump.formatWord(&buf, w)
		buf.WriteByte('\n')
		io.WriteString(dump.out, buf.String())
	}
}

func (dump dictDumper) formatWord(buf *strings.Builder, w word) {
	buf.WriteString("  : ")
	buf.WriteString(w.name)
	switch act := w.action.(type) {
	case *primitive:
		if act.name == w.name {
			buf.WriteString(" <primitive>")
		} else {
			fmt.Fprintf(buf, " <primitive %v>", act.name)
		}
	case *composite:
		for _, ref := range act.body {
			buf.WriteByte(' ')
			dump.formatRef(buf, ref)
		}
	default:
		buf.WriteByte(' ')
		dump.formatRef(buf, w.action)
	}
	buf.WriteString(" ;")
	if w.immediate {
		buf.WriteString(" immediate")
	}
}

func (dump dictDumper) formatRef(buf *strings.Builder, act action) {
	var name string
	switch act := act.(type) {
	case *literal:
		buf.WriteString(act.value.String())
		return
	case *primitive:
		name = act.name
	case *composite:
		name = act.name
	default:
		fmt.Fprintf(buf, "<%T>", act)
		return
	}
	buf.WriteString(name)
	if cur, defined := dump.it.dict.lookup(name); !defined || cur.action != act {
		buf.WriteByte('\'')
	}
}
