package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/MineChook/Coal/internal/generate"
	"github.com/MineChook/Coal/internal/report"
	"github.com/MineChook/Coal/internal/syntax"
	"github.com/MineChook/Coal/internal/walk"
)

// buildOptions collects everything the build pipeline needs, already
// resolved from CLI flags, coal.toml, and built-in defaults.
type buildOptions struct {
	SourcePath string
	Output     string
	CC         string
	KeepLL     bool
	LogLevel   int
}

// compile runs the full lexer -> parser -> analyzer -> emitter pipeline
// on one source file and, on success, invokes the external C compiler to
// turn the emitted IR into an executable.
func compile(opts buildOptions) bool {
	rep := report.NewReporter(opts.LogLevel)

	src, err := ioutil.ReadFile(opts.SourcePath)
	if err != nil {
		printErrorMessage("Source Error", err)
		return false
	}

	spinner, _ := pstart("Parsing")
	prog, diag := syntax.Parse(opts.SourcePath, string(src))
	if diag != nil {
		pfail(spinner)
		printDiagnostic(diag)
		return false
	}
	pdone(spinner)

	spinner, _ = pstart("Analyzing")
	table, diag := walk.Analyze(opts.SourcePath, prog)
	if diag != nil {
		pfail(spinner)
		printDiagnostic(diag)
		return false
	}
	pdone(spinner)

	spinner, _ = pstart("Generating")
	ir, diag := generate.Emit(opts.SourcePath, prog, table)
	if diag != nil {
		pfail(spinner)
		printDiagnostic(diag)
		return false
	}
	pdone(spinner)

	llPath := opts.Output + ".ll"
	if err := ioutil.WriteFile(llPath, []byte(ir), 0644); err != nil {
		printErrorMessage("Output Error", err)
		return false
	}
	if !opts.KeepLL {
		defer os.Remove(llPath)
	}

	spinner, _ = pstart("Linking")
	if err := runCC(opts.CC, llPath, opts.Output); err != nil {
		pfail(spinner)
		printErrorMessage(opts.CC+" Error", err)
		return false
	}
	pdone(spinner)

	printSummary(rep, false)
	return true
}

// runCC shells out to the external C compiler driver (clang by default)
// to assemble, compile, and link the emitted textual IR directly,
// following the pipeline's stated design of treating LLVM as an external
// toolchain step rather than a linked library.
func runCC(cc, llPath, outPath string) error {
	absOut, err := filepath.Abs(outPath)
	if err != nil {
		return err
	}

	cmd := exec.Command(cc, llPath, "-o", absOut)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return fmt.Errorf("%s", stderr.String())
		}
		return err
	}
	return nil
}
