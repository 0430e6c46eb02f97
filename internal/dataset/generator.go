// Package dataset generates and loads labeled training data for the
// header classifier. Generated labels come from cheap heuristics and
// are meant as a starting point for human review, not as ground truth.
package dataset

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/cv-header-classifier/internal/features"
	"github.com/jonathan/cv-header-classifier/internal/pipeline"
	"github.com/jonathan/cv-header-classifier/internal/types"
)

// Dataset is a labeled example collection plus provenance metadata.
type Dataset struct {
	Source      string                 `json:"source"`
	GeneratedAt time.Time              `json:"generated_at"`
	Examples    []types.LabeledExample `json:"examples"`
}

// Generate walks corpusDir for plain-text CV exports (*.txt), segments
// each document into lines, extracts features, and pre-labels every
// line. Files are processed in sorted path order so output is
// deterministic for a given corpus.
func Generate(corpusDir string) (*Dataset, error) {
	info, err := os.Stat(corpusDir)
	if err != nil {
		return nil, fmt.Errorf("corpus directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("corpus path %s is not a directory", corpusDir)
	}

	var paths []string
	err = filepath.WalkDir(corpusDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() && strings.EqualFold(filepath.Ext(path), ".txt") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk corpus directory: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no .txt files found under %s", corpusDir)
	}
	sort.Strings(paths)

	ds := &Dataset{
		Source:      corpusDir,
		GeneratedAt: time.Now().UTC(),
	}
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		examples, err := labelDocument(string(content))
		if err != nil {
			return nil, fmt.Errorf("failed to label %s: %w", path, err)
		}
		ds.Examples = append(ds.Examples, examples...)
	}
	if len(ds.Examples) == 0 {
		return nil, fmt.Errorf("corpus under %s contains no non-blank lines", corpusDir)
	}
	return ds, nil
}

// labelDocument segments one document and pre-labels each line.
func labelDocument(raw string) ([]types.LabeledExample, error) {
	lines := pipeline.SegmentText(raw)
	examples := make([]types.LabeledExample, 0, len(lines))
	for _, line := range lines {
		record, err := features.ExtractLine(line)
		if err != nil {
			return nil, err
		}
		examples = append(examples, types.LabeledExample{
			Text:     strings.TrimSpace(line.Text),
			Features: record,
			IsHeader: looksLikeHeader(record),
		})
	}
	return examples, nil
}

// looksLikeHeader is the pre-labeling heuristic: a known publication
// heading, or an all-caps line short enough to be a section title.
func looksLikeHeader(record types.FeatureRecord) bool {
	if record.MatchesPublicationPattern {
		return true
	}
	return record.IsAllUpperCase &&
		record.Bool(types.FeatureIsShort) &&
		record.Bool(types.FeatureFewWords) &&
		!record.EndsWithTerminalPunct
}

// WriteFile writes the dataset as pretty-printed JSON, creating parent
// directories as needed.
func (d *Dataset) WriteFile(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write dataset file: %w", err)
	}
	return nil
}
