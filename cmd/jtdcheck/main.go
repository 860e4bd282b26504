// Command jtdcheck runs the RFC 8927 conformance corpus
// against this module's validator and prints a colorized pass/fail
// summary. It is test tooling, not part of the validator's public API;
// the library's contract is exactly the three operations FromWire,
// Schema.ValidateSchema and Validate.
//
// Usage:
//
//	jtdcheck [flags]
//
// Flags:
//
//	-invalid string      Path to an invalid_schemas fixture file
//	-validation string    Path to a validation fixture file
//	-format string        Fixture format: "json" (default) or "yaml"
//	-verbose              Print every case, not just failures
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

func main() {
	invalidPath := flag.String("invalid", "", "path to an invalid_schemas fixture file")
	validationPath := flag.String("validation", "", "path to a validation fixture file")
	format := flag.String("format", "json", "fixture format: json or yaml")
	verbose := flag.Bool("verbose", false, "print every case, not just failures")
	flag.Parse()

	if *invalidPath == "" && *validationPath == "" {
		fmt.Fprintln(os.Stderr, "jtdcheck: at least one of -invalid or -validation is required")
		flag.Usage()
		os.Exit(2)
	}

	out := newPrinter(os.Stdout)

	total, failed := 0, 0

	if *invalidPath != "" {
		n, f := runInvalidSchemas(out, *invalidPath, *format, *verbose)
		total += n
		failed += f
	}

	if *validationPath != "" {
		n, f := runValidationCases(out, *validationPath, *format, *verbose)
		total += n
		failed += f
	}

	out.summary(total, failed)

	if failed > 0 {
		os.Exit(1)
	}
}

// printer wraps stdout with a TTY-aware, Windows-safe color writer.
type printer struct {
	out     io.Writer
	pass    *color.Color
	fail    *color.Color
	skip    *color.Color
	verbose bool
}

func newPrinter(f *os.File) *printer {
	writer := colorable.NewColorable(f)
	enabled := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())

	pass := color.New(color.FgGreen)
	fail := color.New(color.FgRed, color.Bold)
	skip := color.New(color.FgYellow)
	if !enabled {
		pass.DisableColor()
		fail.DisableColor()
		skip.DisableColor()
	}

	return &printer{out: writer, pass: pass, fail: fail, skip: skip}
}

func (p *printer) passf(name string) {
	p.pass.Fprintf(p.out, "PASS %s\n", name)
}

func (p *printer) failf(name, reason string) {
	p.fail.Fprintf(p.out, "FAIL %s: %s\n", name, reason)
}

func (p *printer) skipf(name, reason string) {
	p.skip.Fprintf(p.out, "SKIP %s: %s\n", name, reason)
}

func (p *printer) summary(total, failed int) {
	if failed == 0 {
		p.pass.Fprintf(p.out, "%d/%d cases passed\n", total, total)
		return
	}
	p.fail.Fprintf(p.out, "%d/%d cases passed (%d failed)\n", total-failed, total, failed)
}
