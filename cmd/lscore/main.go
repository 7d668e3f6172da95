// Package main is the entry point for the lscore inspection tool.
//
// lscore loads a file into a document and prints its parse tree, or the
// syntactic context chain at one position.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tidwall/sjson"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/dshills/lscore/internal/config"
	"github.com/dshills/lscore/internal/engine"
	"github.com/dshills/lscore/internal/engine/buffer"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Options holds the parsed command line.
type Options struct {
	ConfigPath string
	Language   string
	At         string
	JSON       bool
	LogLevel   string
	File       string
}

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stdout, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 2
	}

	cfg, err := loadSettings(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	commonlog.Configure(cfg.Verbosity(), cfg.LogPath())

	if err := inspect(opts, cfg, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stdout, stderr io.Writer) (Options, error) {
	var opts Options
	var showVersion bool

	fs := flag.NewFlagSet("lscore", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to settings file (.toml, .yaml)")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to settings file (shorthand)")
	fs.StringVar(&opts.Language, "lang", "", "Language id; defaults to the file extension mapping")
	fs.StringVar(&opts.Language, "l", "", "Language id (shorthand)")
	fs.StringVar(&opts.At, "at", "", "Print the context chain at row:col instead of the tree")
	fs.BoolVar(&opts.JSON, "json", false, "Print the context chain as JSON (with -at)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (none, error, warning, notice, info, debug)")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "lscore - inspect the syntax tree of a file\n\n")
		fmt.Fprintf(stderr, "Usage: lscore [options] file\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  lscore main.go              Print the parse tree\n")
		fmt.Fprintf(stderr, "  lscore -at 3:8 main.go      Print the context at row 3, column 8\n")
		fmt.Fprintf(stderr, "  lscore -json -at 0:0 a.rs   Print the context as JSON\n")
		fmt.Fprintf(stderr, "  lscore -l py script         Parse as Python\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if showVersion {
		fmt.Fprintf(stdout, "lscore %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return opts, flag.ErrHelp
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return opts, errUsage
	}
	opts.File = fs.Arg(0)

	if opts.JSON && opts.At == "" {
		fmt.Fprintf(stderr, "-json requires -at\n")
		return opts, errUsage
	}

	return opts, nil
}

func loadSettings(opts Options) (*config.Settings, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func inspect(opts Options, cfg *config.Settings, w io.Writer) error {
	data, err := os.ReadFile(opts.File)
	if err != nil {
		return err
	}

	language := opts.Language
	if language == "" {
		id, ok := cfg.LanguageFor(opts.File)
		if !ok {
			return fmt.Errorf("no language for %s; use -lang", opts.File)
		}
		language = id
	}

	d := engine.FromText(string(data),
		engine.WithLanguage(language),
		engine.WithIndentation(cfg.Indentation()),
		engine.WithMaxUndoPackets(cfg.Editor.MaxUndoPackets),
	)
	if !d.HasTree() {
		return fmt.Errorf("cannot parse %s as %q", opts.File, language)
	}

	if opts.At == "" {
		out, err := d.PrettyPrint()
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	}

	p, err := parsePosition(opts.At)
	if err != nil {
		return err
	}
	chain, err := d.ContextAt(p)
	if err != nil {
		return err
	}
	out := chain.String()
	if opts.JSON {
		if out, err = chainJSON(chain); err != nil {
			return err
		}
		out += "\n"
	}
	_, err = io.WriteString(w, out)
	return err
}

// chainJSON renders a chain as an array of
// {"kind", "start": {"row", "column"}, "end": {"row", "column"}} objects.
func chainJSON(chain engine.Chain) (string, error) {
	out := "[]"
	for i, region := range chain {
		fields := []struct {
			path  string
			value any
		}{
			{"kind", region.Kind},
			{"start.row", region.Range.Beginning.Row},
			{"start.column", region.Range.Beginning.Column},
			{"end.row", region.Range.Ending.Row},
			{"end.column", region.Range.Ending.Column},
		}
		for _, f := range fields {
			var err error
			out, err = sjson.Set(out, fmt.Sprintf("%d.%s", i, f.path), f.value)
			if err != nil {
				return "", fmt.Errorf("encoding context: %w", err)
			}
		}
	}
	return out, nil
}

// parsePosition reads "row:col", both zero-based.
func parsePosition(s string) (buffer.Position, error) {
	row, col, ok := strings.Cut(s, ":")
	if !ok {
		return buffer.Position{}, fmt.Errorf("position %q: want row:col", s)
	}
	r, err := strconv.Atoi(row)
	if err != nil {
		return buffer.Position{}, fmt.Errorf("position %q: %w", s, err)
	}
	c, err := strconv.Atoi(col)
	if err != nil {
		return buffer.Position{}, fmt.Errorf("position %q: %w", s, err)
	}
	return buffer.NewPosition(r, c), nil
}
