// Command gen_interp_expects writes free function forms of the builder
// methods of a test case type, so that cases can be assembled with apply:
//
//	interpTest("name").apply(expectInterpStack(1), expectInterpOutput(""))
//
// Usage: gen_interp_expects [-type interpTestCase] [-infix Interp] [in.go [out.go]]
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

type namedReader interface {
	io.ReadCloser
	Name() string
}

var (
	in  namedReader    = os.Stdin
	out io.WriteCloser = os.Stdout

	caseType = "interpTestCase"
	infix    = "Interp"
)

func parseFlags() {
	flag.StringVar(&caseType, "type", caseType, "test case type whose builder methods are wrapped")
	flag.StringVar(&infix, "infix", infix, "inserted between expect or with and the rest of each name")
	flag.Parse()

	args := flag.Args()

	if len(args) > 0 {
		name := args[0]
		f, err := os.Open(name)
		if err != nil {
			log.Fatalf("failed to open %v: %v", name, err)
		}
		args = args[1:]
		in = f
	}

	if len(args) > 0 {
		name := args[0]
		f, err := os.Create(name)
		if err != nil {
			log.Fatalf("failed to create %v: %v", name, err)
		}
		out = f
	}
}

func main() {
	ctx := context.Background()
	parseFlags()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)

	ready := make(chan struct{})

	eg.Go(func() error {
		goimports := exec.CommandContext(ctx, "goimports")
		pipe, err := goimports.StdinPipe()
		if err != nil {
			return err
		}

		defer out.Close()
		goimports.Stdout = out
		goimports.Stderr = os.Stderr

		out = pipe

		close(ready)
		if err := goimports.Run(); err != nil {
			return fmt.Errorf("goimports run failed: %w", err)
		}
		return nil
	})

	eg.Go(func() (rerr error) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ready:
		}

		defer func() {
			if cerr := in.Close(); rerr == nil {
				rerr = cerr
			}
			if cerr := out.Close(); rerr == nil {
				rerr = cerr
			}
		}()

		return run(ctx)
	})

	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}

// builder is one matched method, like
//
//	func (itc interpTestCase) expectStack(values ...interface{}) interpTestCase
type builder struct {
	recv   string // itc
	prefix string // expect
	rest   string // Stack
	params string // values ...interface{}
}

func builderPattern() *regexp.Regexp {
	t := regexp.QuoteMeta(caseType)
	return regexp.MustCompile(`func \((\w+) ` + t + `\) (expect|with)(\w+)\((.+?)\) ` + t + ` \{$`)
}

// args turns the parameter list into call arguments; every parameter must be
// written with its own type, as in (name string, input string).
func (b builder) args() (string, error) {
	var args []string
	for _, param := range strings.Split(b.params, ",") {
		fields := strings.Fields(param)
		if len(fields) != 2 {
			return "", fmt.Errorf("%v%v: parameter %q lacks its own type", b.prefix, b.rest, strings.TrimSpace(param))
		}
		arg := fields[0]
		if strings.HasPrefix(fields[1], "...") {
			arg += "..."
		}
		args = append(args, arg)
	}
	return strings.Join(args, ", "), nil
}

func (b builder) writeTo(buf *bytes.Buffer) error {
	args, err := b.args()
	if err != nil {
		return err
	}
	fmt.Fprintf(buf, "func %v%v%v(%v) func(%v) %v {\n", b.prefix, infix, b.rest, b.params, caseType, caseType)
	fmt.Fprintf(buf, "\treturn func(%v %v) %v {\n", b.recv, caseType, caseType)
	fmt.Fprintf(buf, "\t\treturn %v.%v%v(%v)\n", b.recv, b.prefix, b.rest, args)
	buf.WriteString("\t}\n")
	buf.WriteString("}\n\n")
	return nil
}

func run(ctx context.Context) error {
	var buf bytes.Buffer
	buf.Grow(1024)
	buf.WriteString("package main\n\n")

	buf.WriteString("// @generated from ")
	buf.WriteString(in.Name())
	buf.WriteString("\n\n")

	if args := flag.Args(); len(args) >= 2 {
		buf.WriteString("//go:generate go run scripts/gen_interp_expects.go --")
		for _, arg := range args {
			buf.WriteByte(' ')
			buf.WriteString(arg)
		}
		buf.WriteString("\n\n")
	}

	pattern := builderPattern()
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if match := pattern.FindStringSubmatch(sc.Text()); len(match) > 0 {
			b := builder{
				recv:   match[1],
				prefix: match[2],
				rest:   match[3],
				params: match[4],
			}
			if err := b.writeTo(&buf); err != nil {
				return err
			}
		}

		if buf.Len() > 0 {
			if _, err := buf.WriteTo(out); err != nil {
				return err
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return sc.Err()
}
