// Package pipeline provides the high-level orchestration for header
// classification and model auditing.
package pipeline

import (
	"strings"

	"github.com/jonathan/cv-header-classifier/internal/types"
)

// SegmentText splits raw extracted CV text into classifiable lines.
//
// Convention: blank-line adjacency is computed here, against the raw
// document, before blank lines are dropped. Downstream stages only ever
// see trimmed, non-empty lines, each carrying PrecededByBlank and
// FollowedByBlank from this pass. Line indexes refer to positions in
// the returned (filtered) sequence, which is also the coordinate space
// reported back in Header records.
func SegmentText(raw string) []types.Line {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	rawLines := strings.Split(normalized, "\n")

	type kept struct {
		text            string
		precededByBlank bool
		followedByBlank bool
	}

	var lines []kept
	for i, rawLine := range rawLines {
		trimmed := strings.TrimSpace(rawLine)
		if trimmed == "" {
			continue
		}
		lines = append(lines, kept{
			text:            rawLine,
			precededByBlank: i > 0 && strings.TrimSpace(rawLines[i-1]) == "",
			followedByBlank: i < len(rawLines)-1 && strings.TrimSpace(rawLines[i+1]) == "",
		})
	}

	out := make([]types.Line, len(lines))
	for i, line := range lines {
		out[i] = types.Line{
			Text:            line.text,
			Index:           i,
			Total:           len(lines),
			PrecededByBlank: line.precededByBlank,
			FollowedByBlank: line.followedByBlank,
		}
	}
	return out
}

// SegmentLines wraps pre-segmented plain lines (e.g. from an API
// request) into the Line coordinate space. Blank entries are dropped;
// adjacency flags are recorded from the raw sequence first.
func SegmentLines(rawLines []string) []types.Line {
	return SegmentText(strings.Join(rawLines, "\n"))
}
