package classifier

import "github.com/jonathan/cv-header-classifier/internal/types"

// FilterHeaders applies the two-tier publication-header policy to the
// classifier's predicted headers for one document.
//
// Pattern-confirmed headers are high confidence but low recall (exact
// phrase list); the classifier is higher recall but noisier. When any
// predicted header matches the curated publication patterns, exactly
// those headers are returned and the broader predictions are discarded.
// Otherwise the full prediction list is returned unchanged. Order is
// preserved in both cases.
//
// An empty result means no publication section was identified, which is
// a normal outcome for the caller, not an error.
func FilterHeaders(headers []types.Header) []types.Header {
	var patternConfirmed []types.Header
	for _, header := range headers {
		if header.Features.MatchesPublicationPattern {
			patternConfirmed = append(patternConfirmed, header)
		}
	}

	if len(patternConfirmed) > 0 {
		return patternConfirmed
	}
	return headers
}
