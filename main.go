package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/ananthrk/rforth/internal/lineinput"
	"github.com/ananthrk/rforth/internal/logio"
)

func main() {
	ctx := context.Background()

	var logs logio.Logger
	logs.SetOutput(os.Stderr)
	defer func() { os.Exit(logs.ExitCode()) }()

	var (
		timeout     time.Duration
		trace       bool
		stackLimit  int
		noPrelude   bool
		interactive bool
		tui         bool
		historyFile string
	)
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.IntVar(&stackLimit, "stack-limit", 0, "enable a stack depth limit")
	flag.BoolVar(&noPrelude, "no-prelude", false, "do not define the prelude words")
	flag.BoolVar(&interactive, "i", false, "read standard input after any source files")
	flag.BoolVar(&tui, "tui", false, "run a full screen interactive session")
	flag.StringVar(&historyFile, "history", "", "keep interactive line history in a file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v [options] [file.fs ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	var opts []InterpOption
	if trace {
		opts = append(opts, WithLogf(logs.Leveledf("TRACE")))
	}
	if stackLimit != 0 {
		opts = append(opts, WithStackLimit(stackLimit))
	}
	if !noPrelude {
		opts = append(opts, WithInputWriter(prelude))
	}
	for _, name := range flag.Args() {
		f, err := os.Open(name)
		if err != nil {
			logs.Errorf("%v", err)
			return
		}
		opts = append(opts, WithInput(f))
	}

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if tui {
		logs.ErrorIf(runREPL(ctx, opts...))
		return
	}

	if flag.NArg() == 0 || interactive {
		in, err := openStdin(historyFile)
		if err != nil {
			logs.Errorf("%v", err)
			return
		}
		opts = append(opts, WithInput(in))
	}
	opts = append(opts, WithOutput(os.Stdout))

	it := New(opts...)
	logs.ErrorIf(it.Run(ctx))
	logs.ErrorIf(it.Close())
}

// openStdin reads standard input through a line editor when it is a
// terminal, and directly otherwise.
func openStdin(historyFile string) (io.Reader, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return os.Stdin, nil
	}
	return lineinput.Open(lineinput.Config{
		Prompt:      "ok> ",
		HistoryFile: historyFile,
	})
}
