// Package features computes per-line feature records for the header classifier.
package features

import (
	"regexp"
	"strings"
)

// publicationHeaderPatterns is the curated set of known publication
// section titles. Matching is whole-line and case-insensitive: a header
// line must equal one of these phrases, not merely contain it, because
// substring matching over body text (e.g. a sentence mentioning
// "publications") produces far too many false positives.
//
// The list is append-only across versions; new canonical forms go at
// the end.
var publicationHeaderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^publications?$`),
	regexp.MustCompile(`(?i)^selected publications$`),
	regexp.MustCompile(`(?i)^recent publications$`),
	regexp.MustCompile(`(?i)^peer[- ]reviewed publications$`),
	regexp.MustCompile(`(?i)^refereed publications$`),
	regexp.MustCompile(`(?i)^journal publications$`),
	regexp.MustCompile(`(?i)^journal articles?$`),
	regexp.MustCompile(`(?i)^conference papers?$`),
	regexp.MustCompile(`(?i)^conference publications$`),
	regexp.MustCompile(`(?i)^conference proceedings$`),
	regexp.MustCompile(`(?i)^book chapters?$`),
	regexp.MustCompile(`(?i)^books? and chapters$`),
	regexp.MustCompile(`(?i)^thesis$`),
	regexp.MustCompile(`(?i)^theses$`),
	regexp.MustCompile(`(?i)^dissertations?$`),
	regexp.MustCompile(`(?i)^patents?$`),
	regexp.MustCompile(`(?i)^preprints?$`),
	regexp.MustCompile(`(?i)^technical reports?$`),
	regexp.MustCompile(`(?i)^working papers?$`),
	regexp.MustCompile(`(?i)^research (?:papers|articles|publications)$`),
	regexp.MustCompile(`(?i)^scholarly (?:works|articles)$`),
	regexp.MustCompile(`(?i)^published works?$`),
	regexp.MustCompile(`(?i)^list of publications$`),
	regexp.MustCompile(`(?i)^publications? (?:and|&) (?:presentations|patents)$`),
	// Standalone year headings inside a publication list, optionally
	// labeled ("2020" or "2020 Publications").
	regexp.MustCompile(`(?i)^(19|20)\d{2}(?: publications)?$`),
}

// MatchesPublicationPattern reports whether the line equals one of the
// known publication section titles, modulo case and surrounding
// whitespace. It short-circuits on the first match.
func MatchesPublicationPattern(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	for _, pattern := range publicationHeaderPatterns {
		if pattern.MatchString(trimmed) {
			return true
		}
	}
	return false
}
