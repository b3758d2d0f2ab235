// Command coalc is Coal's command-line driver: it parses CLI arguments,
// merges them with an optional coal.toml project file, and runs the
// compiler pipeline in internal/{syntax,walk,generate} behind an
// olive.CLI whose default action compiles the source file, with a version
// subcommand plus top-level pretty-printer flags.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"

	"github.com/MineChook/Coal/internal/config"
	"github.com/MineChook/Coal/internal/report"
)

const version = "0.1.0"

func main() {
	cli := olive.NewCLI("coalc", "coalc compiles Coal source files to native executables", true)

	cli.AddPrimaryArg("source", "the Coal source file to compile", true)
	cli.AddStringArg("output", "o", "the path of the executable to produce", false)
	cli.AddStringArg("cc", "", "the C compiler driver used to assemble and link the emitted IR", false)
	cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})
	cli.AddFlag("keep-ll", "k", "keep the emitted .ll file alongside the executable")
	cli.AddFlag("emit-tokens", "", "print the token stream instead of compiling")
	cli.AddFlag("emit-json-tokens", "", "print the token stream as JSON instead of compiling")
	cli.AddFlag("emit-ast", "", "print the parsed AST instead of compiling")

	cli.AddSubcommand("version", "print the coalc version", false)

	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		printErrorMessage("CLI Usage Error", err)
		os.Exit(1)
	}

	if subcmdName, _, ok := result.Subcommand(); ok && subcmdName == "version" {
		fmt.Println("coalc version " + version)
		return
	}

	sourceRel, _ := result.PrimaryArg()
	source, err := filepath.Abs(sourceRel)
	if err != nil {
		printErrorMessage("Path Error", err)
		os.Exit(1)
	}

	cfg, err := config.Load(filepath.Dir(source))
	if err != nil {
		printErrorMessage("Config Error", err)
		os.Exit(1)
	}

	opts := resolveOptions(source, result, cfg)

	if result.HasFlag("emit-tokens") {
		emitTokens(opts.SourcePath)
		return
	}
	if result.HasFlag("emit-json-tokens") {
		emitJSONTokens(opts.SourcePath)
		return
	}
	if result.HasFlag("emit-ast") {
		emitAST(opts.SourcePath)
		return
	}

	if !compile(opts) {
		os.Exit(1)
	}
}

// resolveOptions merges CLI flags, coal.toml, and built-in defaults.
// Flags always win; coal.toml fills anything a flag left unset; the
// built-in defaults are the last resort.
func resolveOptions(source string, result *olive.ArgParseResult, cfg *config.Config) buildOptions {
	opts := buildOptions{
		SourcePath: source,
		Output:     "a.out",
		CC:         "clang",
		LogLevel:   report.LogLevelWarn,
	}

	if cfg.Present {
		if cfg.Output != "" {
			opts.Output = cfg.Output
		}
		if cfg.CC != "" {
			opts.CC = cfg.CC
		}
		if cfg.LogLevel != "" {
			opts.LogLevel = parseLogLevel(cfg.LogLevel)
		}
		opts.KeepLL = cfg.KeepLL
	}

	if v, ok := result.Arguments["output"]; ok {
		opts.Output = v.(string)
	}
	if v, ok := result.Arguments["cc"]; ok {
		opts.CC = v.(string)
	}
	if v, ok := result.Arguments["loglevel"]; ok {
		opts.LogLevel = parseLogLevel(v.(string))
	}
	if result.HasFlag("keep-ll") {
		opts.KeepLL = true
	}

	return opts
}

func parseLogLevel(s string) int {
	switch s {
	case "silent":
		return report.LogLevelSilent
	case "error":
		return report.LogLevelError
	case "verbose":
		return report.LogLevelVerbose
	default:
		return report.LogLevelWarn
	}
}
