package main

import (
	"flag"
	"fmt"
	"io"
)

const usageLine = "usage: showmore [flags] [file]   (reads stdin when file is omitted or \"-\")"

type cliArgs struct {
	configPath string
	maxLength  int
	expanded   bool
	width      int
	debug      bool
	version    bool
	file       string

	// set records which flags were given explicitly.
	set map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (cliArgs, error) {
	var a cliArgs
	fs := flag.NewFlagSet("showmore", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, usageLine)
		fs.PrintDefaults()
	}

	fs.StringVar(&a.configPath, "config", "showmore.yaml", "Attribute file (YAML)")
	fs.IntVar(&a.maxLength, "max-length", 0, "Truncate after this many characters (negative disables)")
	fs.BoolVar(&a.expanded, "expanded", false, "Start expanded")
	fs.IntVar(&a.width, "width", 0, "Wrap width in cells (0 follows the terminal)")
	fs.BoolVar(&a.debug, "debug", false, "Write a debug log to the user cache directory")
	fs.BoolVar(&a.version, "version", false, "Show version and exit")

	if err := fs.Parse(args); err != nil {
		return a, err
	}

	a.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { a.set[f.Name] = true })
	if fs.NArg() > 0 {
		a.file = fs.Arg(0)
	}
	return a, nil
}

// readsStdin reports whether the content comes from stdin.
func (a cliArgs) readsStdin() bool {
	return a.file == "" || a.file == "-"
}
