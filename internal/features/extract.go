package features

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/cv-header-classifier/internal/types"
)

var (
	// Leading enumeration markers such as "1.", "12)", "[3]" or "•".
	enumerationMarkerPattern = regexp.MustCompile(`^\s*(?:\d+[.)]|\[\d+\]|[-•*])\s*`)
	// Four-digit year token between 1900 and 2099.
	yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// Context carries the neighbor information a single line cannot supply
// itself. The segmenter records blank-line adjacency before dropping
// blank lines, so the extractor never needs the raw document.
type Context struct {
	PrecededByBlank bool
	FollowedByBlank bool
}

// Extract computes the feature record for one line. It is pure and
// deterministic: the result depends only on the arguments.
//
// total must be positive and index must fall inside the document;
// anything else is a caller error reported as InvalidInputError.
func Extract(text string, index, total int, ctx Context) (types.FeatureRecord, error) {
	if total <= 0 {
		return types.FeatureRecord{}, &InvalidInputError{Message: fmt.Sprintf("total lines must be positive, got %d", total)}
	}
	if index < 0 || index >= total {
		return types.FeatureRecord{}, &InvalidInputError{Message: fmt.Sprintf("line index %d out of range [0,%d)", index, total)}
	}

	trimmed := strings.TrimSpace(text)

	return types.FeatureRecord{
		IsAllUpperCase:            isAllUpperCase(trimmed),
		StartsWithNumberOrMarker:  enumerationMarkerPattern.MatchString(text),
		ContainsYear:              yearPattern.MatchString(text),
		Length:                    len(trimmed),
		PositionRatio:             float64(index) / float64(total),
		WordCount:                 len(strings.Fields(trimmed)),
		HasColon:                  strings.Contains(text, ":"),
		MatchesPublicationPattern: MatchesPublicationPattern(text),
		EndsWithTerminalPunct:     endsWithTerminalPunct(trimmed),
		PrecedingBlankLine:        ctx.PrecededByBlank,
		FollowingBlankLine:        ctx.FollowedByBlank,
		IndentationLevel:          indentationLevel(text),
	}, nil
}

// ExtractLine computes the feature record for a segmented line,
// carrying over its recorded blank-line adjacency.
func ExtractLine(line types.Line) (types.FeatureRecord, error) {
	return Extract(line.Text, line.Index, line.Total, Context{
		PrecededByBlank: line.PrecededByBlank,
		FollowedByBlank: line.FollowedByBlank,
	})
}

// isAllUpperCase reports whether the line contains at least one letter
// and no lowercase letters. Digits and punctuation are ignored so that
// "RESEARCH EXPERIENCE (2019)" still counts.
func isAllUpperCase(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}

// endsWithTerminalPunct reports whether the line ends in sentence
// punctuation. Headers rarely do; body sentences usually do.
func endsWithTerminalPunct(s string) bool {
	if s == "" {
		return false
	}
	switch s[len(s)-1] {
	case '.', '!', '?', ';':
		return true
	}
	return false
}

// indentationLevel is the offset of the first non-whitespace character,
// or the line length if the line is all whitespace.
func indentationLevel(s string) int {
	count := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return count
		}
		count++
	}
	return count
}
