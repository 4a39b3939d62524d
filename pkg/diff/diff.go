// Package diff renders line-based unified diffs.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."

	// DefaultContext is the number of unchanged lines shown around a change.
	DefaultContext = 3
)

type op struct {
	kind    byte
	text    string
	oldLine int
	newLine int
}

// GenerateUnifiedDiff compares before and after line by line and returns a
// unified diff, or "" when they are identical. Output longer than 10,000 lines
// is truncated with a marker.
func GenerateUnifiedDiff(before, after []byte, beforeLabel, afterLabel string) string {
	return Unified(before, after, beforeLabel, afterLabel, DefaultContext)
}

// Unified is GenerateUnifiedDiff with a configurable number of context lines.
func Unified(before, after []byte, beforeLabel, afterLabel string, context int) string {
	if bytes.Equal(before, after) {
		return ""
	}
	if context < 0 {
		context = 0
	}

	ops := lineOps(string(before), string(after))

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", beforeLabel)
	fmt.Fprintf(&buf, "+++ %s\n", afterLabel)

	for _, h := range hunks(ops, context) {
		writeHunk(&buf, ops[h[0]:h[1]])
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		truncated := strings.Join(lines[:maxDiffLines], "\n")
		return truncated + "\n" + truncateMessage + "\n"
	}

	return result
}

// lineOps diffs whole lines by mapping each distinct line to a rune first.
func lineOps(before, after string) []op {
	dmp := diffmatchpatch.New()
	a, b, table := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), table)

	var ops []op
	oldLine, newLine := 1, 1
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			o := op{text: line, oldLine: oldLine, newLine: newLine}
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				o.kind = ' '
				oldLine++
				newLine++
			case diffmatchpatch.DiffDelete:
				o.kind = '-'
				oldLine++
			case diffmatchpatch.DiffInsert:
				o.kind = '+'
				newLine++
			}
			ops = append(ops, o)
		}
	}
	return ops
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\n")
	}
	return lines
}

// hunks returns [start, end) ranges of ops. Changes separated by at most
// 2*context unchanged lines share a hunk.
func hunks(ops []op, context int) [][2]int {
	var out [][2]int
	for i := 0; i < len(ops); {
		if ops[i].kind == ' ' {
			i++
			continue
		}

		start := i - context
		if start < 0 {
			start = 0
		}
		end := i
		for j := i; j < len(ops); j++ {
			if ops[j].kind != ' ' {
				end = j
			} else if j-end > 2*context {
				break
			}
		}
		stop := end + context + 1
		if stop > len(ops) {
			stop = len(ops)
		}

		out = append(out, [2]int{start, stop})
		i = stop
	}
	return out
}

func writeHunk(buf *bytes.Buffer, ops []op) {
	var oldCount, newCount int
	for _, o := range ops {
		if o.kind != '+' {
			oldCount++
		}
		if o.kind != '-' {
			newCount++
		}
	}

	oldStart, newStart := ops[0].oldLine, ops[0].newLine
	if oldCount == 0 {
		oldStart--
	}
	if newCount == 0 {
		newStart--
	}

	fmt.Fprintf(buf, "@@ -%d,%d +%d,%d @@\n", oldStart, oldCount, newStart, newCount)
	for _, o := range ops {
		buf.WriteByte(o.kind)
		buf.WriteString(o.text)
		buf.WriteByte('\n')
	}
}
