package types

// FeatureName identifies one feature in a FeatureRecord.
type FeatureName string

// Feature name constants. These are the canonical names used by the
// extractor, both classifier strategies, and the model file format.
const (
	FeatureIsAllUpperCase            FeatureName = "is_all_upper_case"
	FeatureStartsWithNumberOrMarker  FeatureName = "starts_with_number_or_marker"
	FeatureContainsYear              FeatureName = "contains_year"
	FeatureIsShort                   FeatureName = "is_short"
	FeatureHasColon                  FeatureName = "has_colon"
	FeatureMatchesPublicationPattern FeatureName = "matches_publication_pattern"
	FeatureEndsWithTerminalPunct     FeatureName = "ends_with_terminal_punct"
	FeaturePrecedingBlankLine        FeatureName = "preceding_blank_line"
	FeatureFollowingBlankLine        FeatureName = "following_blank_line"
	FeatureEarlyInDocument           FeatureName = "early_in_document"
	FeatureIndented                  FeatureName = "indented"
	FeatureFewWords                  FeatureName = "few_words"
)

// FeatureNames lists every boolean feature in a fixed order. Both
// classifier strategies iterate this slice so that training and
// inference stay deterministic.
var FeatureNames = []FeatureName{
	FeatureIsAllUpperCase,
	FeatureStartsWithNumberOrMarker,
	FeatureContainsYear,
	FeatureIsShort,
	FeatureHasColon,
	FeatureMatchesPublicationPattern,
	FeatureEndsWithTerminalPunct,
	FeaturePrecedingBlankLine,
	FeatureFollowingBlankLine,
	FeatureEarlyInDocument,
	FeatureIndented,
	FeatureFewWords,
}

// FeatureRecord holds the derived attributes of a single line. Every
// field is a pure function of the line and its immediate neighbors.
type FeatureRecord struct {
	IsAllUpperCase            bool    `json:"is_all_upper_case"`
	StartsWithNumberOrMarker  bool    `json:"starts_with_number_or_marker"`
	ContainsYear              bool    `json:"contains_year"`
	Length                    int     `json:"length"`
	PositionRatio             float64 `json:"position_ratio"`
	WordCount                 int     `json:"word_count"`
	HasColon                  bool    `json:"has_colon"`
	MatchesPublicationPattern bool    `json:"matches_publication_pattern"`
	EndsWithTerminalPunct     bool    `json:"ends_with_terminal_punct"`
	PrecedingBlankLine        bool    `json:"preceding_blank_line"`
	FollowingBlankLine        bool    `json:"following_blank_line"`
	IndentationLevel          int     `json:"indentation_level"`
}

// Thresholds for deriving boolean indicators from the numeric features.
// Section headers in CVs are short standalone titles near the top of a
// section, so short length, low word count, and early position are all
// weak header signals.
const (
	shortLineMaxLength  = 40
	fewWordsMax         = 4
	earlyPositionCutoff = 0.5
)

// Bool returns the boolean indicator for the named feature. Numeric
// features are folded into booleans here so that the rule-weighted
// model can treat every feature uniformly.
func (f FeatureRecord) Bool(name FeatureName) bool {
	switch name {
	case FeatureIsAllUpperCase:
		return f.IsAllUpperCase
	case FeatureStartsWithNumberOrMarker:
		return f.StartsWithNumberOrMarker
	case FeatureContainsYear:
		return f.ContainsYear
	case FeatureIsShort:
		return f.Length > 0 && f.Length <= shortLineMaxLength
	case FeatureHasColon:
		return f.HasColon
	case FeatureMatchesPublicationPattern:
		return f.MatchesPublicationPattern
	case FeatureEndsWithTerminalPunct:
		return f.EndsWithTerminalPunct
	case FeaturePrecedingBlankLine:
		return f.PrecedingBlankLine
	case FeatureFollowingBlankLine:
		return f.FollowingBlankLine
	case FeatureEarlyInDocument:
		return f.PositionRatio < earlyPositionCutoff
	case FeatureIndented:
		return f.IndentationLevel > 0
	case FeatureFewWords:
		return f.WordCount > 0 && f.WordCount <= fewWordsMax
	default:
		return false
	}
}

// LabeledExample pairs a feature record with its ground-truth label.
// Text is retained for audit output only; the classifiers never read it.
type LabeledExample struct {
	Text     string        `json:"text,omitempty"`
	Features FeatureRecord `json:"features"`
	IsHeader bool          `json:"is_header"`
}
