// Command yamlstruct generates record codecs and inspects YAML documents.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/mattn/go-isatty"
)

const usageText = `yamlstruct

Usage:
  yamlstruct gen  -type T1[,T2,...] [-dir .] -o out.go
  yamlstruct json FILE                 (requires -tags yaml2json)
  yamlstruct env  -prefix P [-key-case lower|upper|asis] FILE

Global flags (before the subcommand):
  -log.level debug|info|warn|error`

type command func(args []string, stdout io.Writer, logger log.Logger) error

var commands = map[string]command{
	"gen":  genCmd,
	"json": jsonCmd,
	"env":  envCmd,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("yamlstruct", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprintln(stderr, usageText) }
	logLevel := fs.String("log.level", "info", "Only log messages with the given severity or above. One of: [debug, info, warn, error]")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return 2
	}
	cmd, ok := commands[fs.Arg(0)]
	if !ok {
		fs.Usage()
		return 2
	}

	logger, err := newLogger(stderr, *logLevel)
	if err != nil {
		printError(stderr, err)
		return 2
	}
	if err := cmd(fs.Args()[1:], stdout, logger); err != nil {
		printError(stderr, err)
		return 1
	}
	return 0
}

func newLogger(w io.Writer, lvl string) (log.Logger, error) {
	var opt level.Option
	switch lvl {
	case "debug":
		opt = level.AllowDebug()
	case "info":
		opt = level.AllowInfo()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		return nil, fmt.Errorf("unknown log level %q", lvl)
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, opt)
	return log.With(logger, "ts", log.DefaultTimestampUTC), nil
}

// printError writes err in red when w is a terminal.
func printError(w io.Writer, err error) {
	c := color.New(color.FgRed, color.Bold)
	if f, ok := w.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		c.DisableColor()
	}
	c.Fprint(w, "error: ")
	fmt.Fprintln(w, err)
}
