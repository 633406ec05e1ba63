package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/marcus/showmore/internal/app"
	"github.com/marcus/showmore/internal/config"
	"github.com/marcus/showmore/internal/logger"
	"github.com/marcus/showmore/internal/showmore"
	"github.com/marcus/showmore/internal/version"
)

var errNoInput = errors.New("no input: pass a file or pipe text on stdin")

// isTerminal reports whether r is an interactive terminal.
var isTerminal = func(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(argv []string, stdin io.Reader, stderr io.Writer) error {
	args, err := parseFlags(argv, stderr)
	if err != nil {
		return err
	}

	if args.version {
		fmt.Fprintf(stderr, "showmore %s\n", version.String())
		return nil
	}

	if args.readsStdin() && isTerminal(stdin) {
		fmt.Fprintln(stderr, usageLine)
		return errNoInput
	}

	closer, err := logger.Init(logger.Options{Debug: args.debug, Level: slog.LevelDebug})
	if err != nil {
		fmt.Fprintf(stderr, "Warning: failed to init logging: %v\n", err)
	}
	defer closer.Close()

	cfg, err := config.Load(args.configPath)
	if err != nil {
		return err
	}
	override := func(cfg showmore.Config) showmore.Config { return applyFlags(cfg, args) }
	cfg = override(cfg)

	text, title, err := readContent(args.file, stdin)
	if err != nil {
		return err
	}
	logger.Info("starting showmore", "source", title, "chars", showmore.RuneLen(text), "maxLength", cfg.MaxLength)

	c := showmore.New(cfg)
	c.SetContentText(text)

	var watcher *config.Watcher
	if _, statErr := os.Stat(args.configPath); statErr == nil {
		watcher, err = config.Watch(args.configPath)
		if err != nil {
			logger.Warn("attribute hot reload disabled", "path", args.configPath, "error", err)
		} else {
			defer watcher.Close()
		}
	}

	m := app.New(c, app.Options{
		Title:    title,
		Width:    args.width,
		Watcher:  watcher,
		Override: override,
	})
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if args.readsStdin() {
		// Content consumed stdin; read keys from the terminal instead.
		opts = append(opts, tea.WithInputTTY())
	}
	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// applyFlags lets explicit flags override the attribute file.
func applyFlags(cfg showmore.Config, args cliArgs) showmore.Config {
	if args.set["max-length"] {
		cfg.MaxLength = args.maxLength
	}
	if args.set["expanded"] {
		cfg.Expanded = args.expanded
	}
	return cfg
}

// readContent returns the text to display and a title for it. An empty path
// or "-" reads stdin.
func readContent(path string, stdin io.Reader) (text, title string, err error) {
	var data []byte
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
		title = "stdin"
	} else {
		data, err = os.ReadFile(path)
		title = filepath.Base(path)
	}
	if err != nil {
		return "", "", fmt.Errorf("reading content: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), title, nil
}
