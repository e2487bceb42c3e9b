package diff

import (
	"fmt"
	"strings"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Options controls the unified diff headers.
type Options struct {
	ExpectedLabel string
	ActualLabel   string
	// Now stamps the headers when set. Leave nil for reproducible output.
	Now func() time.Time
}

// Unified compares expected and actual line by line and returns a unified diff.
// Returns an empty string if the content is identical.
// Diffs exceeding 10,000 lines are truncated with a marker.
func Unified(expected, actual string, opts Options) string {
	if expected == actual {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(expected, actual)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var buf strings.Builder

	stamp := ""
	if opts.Now != nil {
		stamp = "\t" + opts.Now().Format("2006-01-02 15:04:05")
	}
	fmt.Fprintf(&buf, "--- %s%s\n", labelOr(opts.ExpectedLabel, "expected"), stamp)
	fmt.Fprintf(&buf, "+++ %s%s\n", labelOr(opts.ActualLabel, "actual"), stamp)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(expected), countLines(actual))

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}

	result := buf.String()
	out := strings.Split(result, "\n")
	if len(out) > maxDiffLines {
		return strings.Join(out[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n"
	}
	return result
}

// GenerateUnifiedDiff compares byte content with timestamped headers.
func GenerateUnifiedDiff(expected, actual []byte, expectedLabel, actualLabel string) string {
	return Unified(string(expected), string(actual), Options{
		ExpectedLabel: expectedLabel,
		ActualLabel:   actualLabel,
		Now:           time.Now,
	})
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func countLines(text string) int {
	return len(splitLines(text))
}

func labelOr(label, fallback string) string {
	if strings.TrimSpace(label) == "" {
		return fallback
	}
	return label
}
