// Package types provides type definitions for structured data used throughout the CV header classifier.
package types

// Line represents one logical line of CV text together with its position
// context. Lines are immutable once produced by the segmenter.
type Line struct {
	Text  string `json:"text"`
	Index int    `json:"index"`
	Total int    `json:"total"`
	// Blank-line adjacency is captured by the segmenter before blank
	// lines are dropped, so downstream feature extraction never sees
	// the blanks themselves.
	PrecededByBlank bool `json:"preceded_by_blank,omitempty"`
	FollowedByBlank bool `json:"followed_by_blank,omitempty"`
}

// Header represents a line classified as a section header.
// Index refers to the line's position in the segmented document so that
// downstream extraction can locate the section body.
type Header struct {
	Text     string        `json:"text"`
	Index    int           `json:"index"`
	Features FeatureRecord `json:"features"`
}
