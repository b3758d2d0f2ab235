package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"github.com/MineChook/Coal/internal/report"
)

var (
	errorStyleBG = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	errorColorFG = pterm.FgRed
	warnStyleBG  = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	warnColorFG  = pterm.FgYellow
	infoColorFG  = pterm.FgLightGreen
)

// printErrorMessage prints a plain tool-usage error.
func printErrorMessage(tag string, err error) {
	errorStyleBG.Print(tag)
	errorColorFG.Println(" " + err.Error())
}

// printDiagnostic renders a single compiler diagnostic as a colored
// "file:line:col: severity[code]: message" line and — when the diagnostic
// carries a span — the offending source line with a caret underline.
func printDiagnostic(d *report.Diagnostic) {
	fmt.Println()
	loc := d.File
	if d.Span != nil {
		loc = fmt.Sprintf("%s:%d:%d", d.File, d.Span.Line, d.Span.Col)
	}
	if d.Severity == report.SeverityWarning {
		warnColorFG.Printf("%s: warning[%s]: %s\n", loc, d.Code, d.Message)
	} else {
		errorColorFG.Printf("%s: error[%s]: %s\n", loc, d.Code, d.Message)
	}

	if d.Span != nil {
		printSourceLine(d.File, *d.Span)
	}
}

func printSourceLine(file string, span report.Span) {
	f, err := os.Open(file)
	if err != nil {
		return
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanLines)
	var line string
	for ln := 1; sc.Scan(); ln++ {
		if ln == span.Line {
			line = sc.Text()
			break
		}
	}

	width := span.End - span.Start
	if width < 1 {
		width = 1
	}
	if span.Col-1+width > len(line) {
		width = len(line) - (span.Col - 1)
		if width < 1 {
			width = 1
		}
	}

	fmt.Println()
	infoColorFG.Printf("%4d | ", span.Line)
	fmt.Println(line)
	fmt.Print(strings.Repeat(" ", 7+span.Col-1))
	errorColorFG.Println(strings.Repeat("^", width))
}

// printSummary prints the warnings accumulated during a run and a final
// pass/fail banner.
func printSummary(rep *report.Reporter, failed bool) {
	for _, w := range rep.Warnings() {
		printDiagnostic(w)
	}

	fmt.Println()
	if failed {
		errorColorFG.Println("build failed")
	} else {
		infoColorFG.Println("build succeeded")
	}
}

// pstart, pdone, and pfail bracket one compilation phase with a spinner.
func pstart(phase string) (*pterm.SpinnerPrinter, error) {
	return pterm.DefaultSpinner.WithStyle(pterm.NewStyle(infoColorFG)).Start(phase + "...")
}

func pdone(s *pterm.SpinnerPrinter) {
	if s != nil {
		s.Success()
	}
}

func pfail(s *pterm.SpinnerPrinter) {
	if s != nil {
		s.Fail()
	}
}
