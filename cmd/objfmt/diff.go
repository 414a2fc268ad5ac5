package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/sergi/go-diff/diffmatchpatch"

	"pkt.systems/objfmt"
)

// runDiff renders the first document of cfg.diffFrom and of path, the
// latter in the former's key order, and prints a line diff between them.
func runDiff(w io.Writer, stdin io.Reader, path string, cfg *config, logger *log.Logger) error {
	before, err := firstDoc(cfg.diffFrom, stdin, cfg, logger)
	if err != nil {
		return err
	}
	after, err := firstDoc(path, stdin, cfg, logger)
	if err != nil {
		return err
	}
	opts := cfg.opts
	opts.Styles = objfmt.Styles{}
	from := objfmt.Format(before, &opts)
	to := objfmt.FormatIndent(after, &opts, "", before)
	changed, err := writeLineDiff(w, from, to)
	if err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	logger.Debug("diff done", "from", cfg.diffFrom, "to", path, "changed", changed)
	return nil
}

func firstDoc(path string, stdin io.Reader, cfg *config, logger *log.Logger) (any, error) {
	docs, err := readDocs(path, stdin, cfg, logger)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%s: no document", path)
	}
	return docs[0], nil
}

// writeLineDiff prints every line of from and to prefixed with "- ", "+ "
// or "  ". It reports whether any line differs.
func writeLineDiff(w io.Writer, from, to string) (bool, error) {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from+"\n", to+"\n")
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	changed := false
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix, changed = "+ ", true
		case diffmatchpatch.DiffDelete:
			prefix, changed = "- ", true
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			if _, err := io.WriteString(w, prefix+line); err != nil {
				return changed, err
			}
		}
	}
	return changed, nil
}
