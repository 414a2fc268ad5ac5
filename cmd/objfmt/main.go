package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"pkt.systems/objfmt"
	"pkt.systems/objfmt/internal/load"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type config struct {
	opts     objfmt.Options
	palette  string
	noColor  bool
	unwrap   bool
	yaml     bool
	diffFrom string
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("objfmt", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	var cfg config
	indent := fs.IntP("indent", "i", 4, "spaces per nesting level (0-10, anything else means one tab)")
	style := fs.String("style", "kr", "bracket placement: kr, allman or horstmann")
	fs.IntVarP(&cfg.opts.PreferLineWidth, "width", "w", objfmt.DefaultPreferLineWidth, "preferred line width for number packing and long strings")
	fs.BoolVar(&cfg.opts.AllowApos, "apos", false, "allow 'single quoted' strings")
	fs.BoolVar(&cfg.opts.AllowBacktick, "backtick", false, "allow `backtick quoted` strings")
	fs.BoolVar(&cfg.opts.LongStringAsBlock, "long-string-block", false, "print strings that overflow the line as raw text blocks")
	fs.BoolVar(&cfg.opts.HTML, "html", false, "escape &, < and > in keys and strings")
	fs.StringVar(&cfg.palette, "palette", "default", "colour palette name (see --list-palettes)")
	fs.BoolVar(&cfg.noColor, "no-color", false, "disable colorized output, even when writing to a TTY")
	listPalettes := fs.Bool("list-palettes", false, "print the available palettes and exit")
	fs.BoolVar(&cfg.unwrap, "unwrap", false, "decode strings that hold JSON objects or arrays")
	fs.BoolVar(&cfg.yaml, "yaml", false, "read YAML input (default for .yaml and .yml files)")
	fs.StringVar(&cfg.diffFrom, "diff", "", "print a line diff from `FILE` to the input, in FILE's key order")
	verbose := fs.BoolP("verbose", "v", false, "log debug details to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: objfmt [flags] [file ...]\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	logger := newLogger(stderr, *verbose)

	if *listPalettes {
		for _, name := range objfmt.PaletteNames() {
			fmt.Fprintln(stdout, name)
		}
		return 0
	}

	st, ok := objfmt.ParseIndentStyle(*style)
	if !ok {
		logger.Errorf("unknown style %q", *style)
		return 2
	}
	cfg.opts.Style = st
	cfg.opts.Indent = objfmt.IndentWidth(*indent)

	styles, err := objfmt.StylesFor(cfg.palette)
	if err != nil {
		logger.Error(err)
		return 2
	}
	if !cfg.noColor && isTerminal(stdout) {
		cfg.opts.Styles = styles
	}

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	if cfg.diffFrom != "" {
		if cfg.diffFrom == "-" && paths[0] == "-" {
			logger.Error("--diff - needs a file argument to compare stdin against")
			return 2
		}
		if err := runDiff(stdout, stdin, paths[0], &cfg, logger); err != nil {
			logger.Error(err)
			return 1
		}
		return 0
	}

	for _, path := range paths {
		docs, err := readDocs(path, stdin, &cfg, logger)
		if err != nil {
			logger.Error(err)
			return 1
		}
		for _, doc := range docs {
			if err := objfmt.FormatTo(stdout, doc, &cfg.opts); err != nil {
				logger.Errorf("write error: %v", err)
				return 1
			}
			if _, err := io.WriteString(stdout, "\n"); err != nil {
				logger.Errorf("write error: %v", err)
				return 1
			}
		}
	}
	return 0
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "objfmt",
		Level:  level,
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func readDocs(path string, stdin io.Reader, cfg *config, logger *log.Logger) ([]any, error) {
	data, err := readInput(path, stdin)
	if err != nil {
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	if cfg.yaml || ext == ".yaml" || ext == ".yml" {
		logger.Debug("decoding", "path", path, "format", "yaml", "bytes", len(data))
		docs, err := load.YAML(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return docs, nil
	}
	logger.Debug("decoding", "path", path, "format", "json", "bytes", len(data), "unwrap", cfg.unwrap)
	docs, err := load.JSON(bytes.NewReader(data), load.Options{Unwrap: cfg.unwrap})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return docs, nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}
