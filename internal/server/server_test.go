package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/jonathan/cv-header-classifier/internal/classifier"
	"github.com/jonathan/cv-header-classifier/internal/features"
	"github.com/jonathan/cv-header-classifier/internal/monitor"
	"github.com/jonathan/cv-header-classifier/internal/server/ratelimit"
	"github.com/jonathan/cv-header-classifier/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trainingExamples builds a small balanced corpus of header and body lines.
func trainingExamples(t *testing.T) []types.LabeledExample {
	t.Helper()

	lines := []struct {
		text     string
		isHeader bool
	}{
		{"PUBLICATIONS", true},
		{"EDUCATION", true},
		{"RESEARCH EXPERIENCE", true},
		{"AWARDS", true},
		{"Smith, J. (2020). A Great Paper. Journal of Things.", false},
		{"Worked on large-scale data processing systems for three years.", false},
		{"Taught undergraduate courses in algorithms and supervised two students.", false},
		{"Received departmental funding for a collaborative research project.", false},
	}

	examples := make([]types.LabeledExample, 0, len(lines))
	for i, line := range lines {
		record, err := features.Extract(line.text, i, len(lines), features.Context{})
		require.NoError(t, err)
		examples = append(examples, types.LabeledExample{Text: line.text, Features: record, IsHeader: line.isHeader})
	}
	return examples
}

// setupTestServer builds a server around a freshly trained model with
// in-memory history and rate limiting disabled.
func setupTestServer(t *testing.T) *Server {
	t.Helper()

	clf, err := classifier.New(classifier.StrategyRuleWeighted)
	require.NoError(t, err)
	require.NoError(t, clf.Train(trainingExamples(t)))

	return &Server{
		clf:         clf,
		history:     monitor.NewMemoryHistory(),
		thresholds:  monitor.DefaultThresholds(),
		rateLimiter: ratelimit.NewLimiter(&ratelimit.Config{Enabled: false}),
	}
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestHandleClassify_Text(t *testing.T) {
	s := setupTestServer(t)

	w := postJSON(t, s.Handler(), "/classify", types.ClassifyRequest{
		Text: "RESEARCH EXPERIENCE\nI did some research.\nPUBLICATIONS\nSmith, J. (2020). A Great Paper.",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp ClassifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "PUBLICATIONS", resp.Headers[0].Text)
	assert.Equal(t, 2, resp.Headers[0].Index)
}

func TestHandleClassify_Lines(t *testing.T) {
	s := setupTestServer(t)

	w := postJSON(t, s.Handler(), "/classify", types.ClassifyRequest{
		Lines: []string{"PUBLICATIONS", "Smith, J. (2020). A Great Paper."},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp ClassifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "PUBLICATIONS", resp.Headers[0].Text)
}

func TestHandleClassify_NoHeadersIsOK(t *testing.T) {
	s := setupTestServer(t)

	w := postJSON(t, s.Handler(), "/classify", types.ClassifyRequest{
		Lines: []string{"Smith, J. (2020). A paper with a long title that reads like body text entirely."},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp ClassifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Count)
	assert.NotNil(t, resp.Headers)
}

func TestHandleClassify_EmptyRequest(t *testing.T) {
	s := setupTestServer(t)

	w := postJSON(t, s.Handler(), "/classify", types.ClassifyRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleClassify_InvalidJSON(t *testing.T) {
	s := setupTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/classify", bytes.NewReader([]byte(`{`)))
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleClassify_UntrainedModel(t *testing.T) {
	s := setupTestServer(t)
	untrained, err := classifier.New(classifier.StrategyRuleWeighted)
	require.NoError(t, err)
	s.clf = untrained

	w := postJSON(t, s.Handler(), "/classify", types.ClassifyRequest{Lines: []string{"PUBLICATIONS"}})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandleEvaluate(t *testing.T) {
	s := setupTestServer(t)

	w := postJSON(t, s.Handler(), "/evaluate", types.EvaluateRequest{
		Examples:     trainingExamples(t),
		ModelVersion: "v1",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var result struct {
		Snapshot types.MetricsSnapshot `json:"snapshot"`
		Report   types.AlertReport     `json:"report"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "v1", result.Snapshot.ModelVersion)
	assert.Equal(t, 8, result.Snapshot.Confusion.Total())

	// The snapshot lands in history
	stored, err := s.history.Recent(10)
	require.NoError(t, err)
	require.Len(t, stored, 1)
}

func TestHandleEvaluate_NoExamples(t *testing.T) {
	s := setupTestServer(t)

	w := postJSON(t, s.Handler(), "/evaluate", types.EvaluateRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleHistory(t *testing.T) {
	s := setupTestServer(t)

	for i := 0; i < 3; i++ {
		w := postJSON(t, s.Handler(), "/evaluate", types.EvaluateRequest{Examples: trainingExamples(t)})
		require.Equal(t, http.StatusOK, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/history?limit=2", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Snapshots []types.MetricsSnapshot `json:"snapshots"`
		Count     int                     `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
}

func TestHandleHistory_InvalidLimit(t *testing.T) {
	s := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/history?limit=zero", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleListModels_NoRegistry(t *testing.T) {
	s := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/models", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandleHealth(t *testing.T) {
	s := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestNew_LoadsModelFromFile(t *testing.T) {
	clf, err := classifier.New(classifier.StrategyRuleWeighted)
	require.NoError(t, err)
	require.NoError(t, clf.Train(trainingExamples(t)))

	modelPath := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, clf.Save(modelPath))

	s, err := New(Config{Port: 0, ModelPath: modelPath})
	require.NoError(t, err)

	w := postJSON(t, s.Handler(), "/classify", types.ClassifyRequest{Lines: []string{"PUBLICATIONS"}})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNew_MissingModel(t *testing.T) {
	_, err := New(Config{Port: 0, ModelPath: filepath.Join(t.TempDir(), "missing.json")})
	require.Error(t, err)

	var corrupt *classifier.CorruptModelError
	assert.ErrorAs(t, err, &corrupt)
}
