package classifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_KnownStrategies(t *testing.T) {
	ruleWeighted, err := New(StrategyRuleWeighted)
	require.NoError(t, err)
	assert.IsType(t, &RuleWeighted{}, ruleWeighted)

	statistical, err := New(StrategyStatistical)
	require.NoError(t, err)
	assert.IsType(t, &Statistical{}, statistical)
}

func TestNew_UnknownStrategy(t *testing.T) {
	_, err := New(Strategy("neural"))
	assert.Error(t, err)
}

func TestNew_WithThreshold(t *testing.T) {
	clf, err := New(StrategyRuleWeighted, WithThreshold(0.5))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, clf.(*RuleWeighted).threshold, 1e-9)
}

func TestOpen_SelectsStrategyFromFile(t *testing.T) {
	examples := trainingCorpus(t)

	trained := &Statistical{}
	require.NoError(t, trained.Train(examples))
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, trained.Save(path))

	clf, err := Open(path)
	require.NoError(t, err)
	assert.IsType(t, &Statistical{}, clf)

	isHeader, err := clf.Predict("PUBLICATIONS", 0, 10)
	require.NoError(t, err)
	assert.True(t, isHeader)
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.json"))

	var corrupt *CorruptModelError
	require.ErrorAs(t, err, &corrupt)
	assert.True(t, corrupt.Missing)
}

func TestOpen_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Open(path)

	var corrupt *CorruptModelError
	require.ErrorAs(t, err, &corrupt)
	assert.False(t, corrupt.Missing)
}

func TestLoad_RejectsUntrainedMarker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"format_version":1,"strategy":"rule_weighted","trained":false}`), 0o644))

	clf := &RuleWeighted{}
	var corrupt *CorruptModelError
	assert.ErrorAs(t, clf.Load(path), &corrupt)
}

func TestLoad_RejectsStrategyMismatch(t *testing.T) {
	examples := trainingCorpus(t)
	trained := &RuleWeighted{threshold: DefaultDecisionThreshold}
	require.NoError(t, trained.Train(examples))

	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, trained.Save(path))

	wrong := &Statistical{}
	var corrupt *CorruptModelError
	assert.ErrorAs(t, wrong.Load(path), &corrupt)
}

func TestLoad_RejectsNewerFormatVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"format_version":99,"strategy":"rule_weighted","trained":true}`), 0o644))

	clf := &RuleWeighted{}
	var corrupt *CorruptModelError
	assert.ErrorAs(t, clf.Load(path), &corrupt)
}
