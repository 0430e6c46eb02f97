package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeatureRecord_BoolDirectFields(t *testing.T) {
	record := FeatureRecord{
		IsAllUpperCase:            true,
		StartsWithNumberOrMarker:  true,
		ContainsYear:              true,
		HasColon:                  true,
		MatchesPublicationPattern: true,
		EndsWithTerminalPunct:     true,
		PrecedingBlankLine:        true,
		FollowingBlankLine:        true,
		IndentationLevel:          2,
	}

	assert.True(t, record.Bool(FeatureIsAllUpperCase))
	assert.True(t, record.Bool(FeatureStartsWithNumberOrMarker))
	assert.True(t, record.Bool(FeatureContainsYear))
	assert.True(t, record.Bool(FeatureHasColon))
	assert.True(t, record.Bool(FeatureMatchesPublicationPattern))
	assert.True(t, record.Bool(FeatureEndsWithTerminalPunct))
	assert.True(t, record.Bool(FeaturePrecedingBlankLine))
	assert.True(t, record.Bool(FeatureFollowingBlankLine))
	assert.True(t, record.Bool(FeatureIndented))
}

func TestFeatureRecord_BoolDerivedFields(t *testing.T) {
	short := FeatureRecord{Length: 12, WordCount: 1, PositionRatio: 0.1}
	assert.True(t, short.Bool(FeatureIsShort))
	assert.True(t, short.Bool(FeatureFewWords))
	assert.True(t, short.Bool(FeatureEarlyInDocument))

	long := FeatureRecord{Length: 95, WordCount: 18, PositionRatio: 0.9}
	assert.False(t, long.Bool(FeatureIsShort))
	assert.False(t, long.Bool(FeatureFewWords))
	assert.False(t, long.Bool(FeatureEarlyInDocument))
}

func TestFeatureRecord_BoolZeroLengthNotShort(t *testing.T) {
	// A zero-length record (unextracted) must not count as short.
	empty := FeatureRecord{}
	assert.False(t, empty.Bool(FeatureIsShort))
	assert.False(t, empty.Bool(FeatureFewWords))
}

func TestFeatureRecord_BoolUnknownName(t *testing.T) {
	record := FeatureRecord{IsAllUpperCase: true}
	assert.False(t, record.Bool(FeatureName("no_such_feature")))
}

func TestFeatureNames_CoverEveryBoolBranch(t *testing.T) {
	// Every enumerated name must be answerable by Bool without
	// falling through to the default branch. A record with all signals
	// set should report true for each name.
	record := FeatureRecord{
		IsAllUpperCase:            true,
		StartsWithNumberOrMarker:  true,
		ContainsYear:              true,
		Length:                    10,
		PositionRatio:             0.0,
		WordCount:                 1,
		HasColon:                  true,
		MatchesPublicationPattern: true,
		EndsWithTerminalPunct:     true,
		PrecedingBlankLine:        true,
		FollowingBlankLine:        true,
		IndentationLevel:          1,
	}

	for _, name := range FeatureNames {
		assert.True(t, record.Bool(name), "feature %s should be true", name)
	}
}

func TestConfusionMatrix_Total(t *testing.T) {
	matrix := ConfusionMatrix{TruePositives: 90, FalsePositives: 5, TrueNegatives: 4, FalseNegatives: 1}
	assert.Equal(t, 100, matrix.Total())
}

func TestClassifyRequest_Validate(t *testing.T) {
	empty := &ClassifyRequest{}
	assert.Error(t, empty.Validate())

	withText := &ClassifyRequest{Text: "PUBLICATIONS\nSmith, J. (2020)."}
	assert.NoError(t, withText.Validate())

	withLines := &ClassifyRequest{Lines: []string{"PUBLICATIONS"}}
	assert.NoError(t, withLines.Validate())
}

func TestEvaluateRequest_Validate(t *testing.T) {
	empty := &EvaluateRequest{}
	assert.Error(t, empty.Validate())

	valid := &EvaluateRequest{Examples: []LabeledExample{{IsHeader: true}}}
	assert.NoError(t, valid.Validate())
}
