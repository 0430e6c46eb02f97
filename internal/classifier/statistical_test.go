package classifier

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/cv-header-classifier/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeFeatures_StableShape(t *testing.T) {
	encoded := EncodeFeatures(types.FeatureRecord{IsAllUpperCase: true, Length: 10, WordCount: 1})

	tokens := strings.Fields(encoded)
	// One token per enumerated feature, in the fixed order.
	require.Len(t, tokens, len(types.FeatureNames))
	assert.Equal(t, "is_all_upper_case:true", tokens[0])
	for i, name := range types.FeatureNames {
		assert.True(t, strings.HasPrefix(tokens[i], string(name)+":"), "token %d should encode %s", i, name)
	}
}

func TestStatistical_PredictHeaderAndBody(t *testing.T) {
	clf := &Statistical{}
	require.NoError(t, clf.Train(trainingCorpus(t)))

	isHeader, err := clf.Predict("PUBLICATIONS", 0, 10)
	require.NoError(t, err)
	assert.True(t, isHeader)

	isHeader, err = clf.Predict("Smith, J. (2021). Results of a long experiment. Journal of Examples.", 8, 10)
	require.NoError(t, err)
	assert.False(t, isHeader)
}

func TestStatistical_PredictBeforeTrain(t *testing.T) {
	clf := &Statistical{}
	_, err := clf.Predict("Publications", 0, 1)
	assert.ErrorIs(t, err, ErrNotTrained)
}

func TestStatistical_PredictIdempotent(t *testing.T) {
	clf := &Statistical{}
	require.NoError(t, clf.Train(trainingCorpus(t)))

	first, err := clf.Predict("EDUCATION", 1, 10)
	require.NoError(t, err)
	second, err := clf.Predict("EDUCATION", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestStatistical_SaveUntrained(t *testing.T) {
	clf := &Statistical{}
	err := clf.Save(filepath.Join(t.TempDir(), "model.json"))
	assert.ErrorIs(t, err, ErrNoTrainedModel)
}

func TestStatistical_SaveLoadRoundTrip(t *testing.T) {
	examples := trainingCorpus(t)
	clf := &Statistical{}
	require.NoError(t, clf.Train(examples))

	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, clf.Save(path))

	reloaded := &Statistical{}
	require.NoError(t, reloaded.Load(path))

	batch := []string{
		"PUBLICATIONS",
		"Selected Publications",
		"Smith, J. (2020). A Great Paper. Journal of Things.",
		"AWARDS",
		"Worked on distributed systems in a research laboratory setting.",
	}
	for i, text := range batch {
		want, err := clf.Predict(text, i, len(batch))
		require.NoError(t, err)
		got, err := reloaded.Predict(text, i, len(batch))
		require.NoError(t, err)
		assert.Equal(t, want, got, "prediction mismatch for %q", text)
	}
}

func TestStatistical_DeterministicAcrossRetrains(t *testing.T) {
	// Same examples in the same traversal order must give the same
	// predictions from two independently trained instances.
	examples := trainingCorpus(t)

	first := &Statistical{}
	require.NoError(t, first.Train(examples))
	second := &Statistical{}
	require.NoError(t, second.Train(examples))

	for _, example := range examples {
		a, err := first.PredictRecord(example.Features)
		require.NoError(t, err)
		b, err := second.PredictRecord(example.Features)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}
