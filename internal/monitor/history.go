package monitor

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/jonathan/cv-header-classifier/internal/types"
)

// HistoryCap is the maximum number of snapshots retained. Eviction is
// FIFO: once the cap is reached the oldest entry is dropped first.
const HistoryCap = 50

// HistoryRepository stores evaluation snapshots. Implementations must
// apply the FIFO cap on Append and return entries from Recent in
// chronological order, oldest first.
type HistoryRepository interface {
	Append(snapshot types.MetricsSnapshot) error
	Recent(n int) ([]types.MetricsSnapshot, error)
}

// MemoryHistory is an in-memory HistoryRepository, used in tests and as
// the fallback when no history file or database is configured.
type MemoryHistory struct {
	mu      sync.Mutex
	entries []types.MetricsSnapshot
}

// NewMemoryHistory creates an empty in-memory history.
func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{}
}

// Append adds a snapshot, evicting the oldest entry beyond HistoryCap.
func (h *MemoryHistory) Append(snapshot types.MetricsSnapshot) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries, snapshot)
	if len(h.entries) > HistoryCap {
		h.entries = h.entries[len(h.entries)-HistoryCap:]
	}
	return nil
}

// Recent returns up to n of the most recent snapshots, oldest first.
func (h *MemoryHistory) Recent(n int) ([]types.MetricsSnapshot, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if n <= 0 || len(h.entries) == 0 {
		return nil, nil
	}
	start := len(h.entries) - n
	if start < 0 {
		start = 0
	}
	out := make([]types.MetricsSnapshot, len(h.entries)-start)
	copy(out, h.entries[start:])
	return out, nil
}

// FileHistory is a JSON-file-backed HistoryRepository. The file holds a
// plain array of snapshots, oldest first, never more than HistoryCap
// entries. Each operation reads or writes the whole file and closes it
// on every path.
type FileHistory struct {
	mu   sync.Mutex
	path string
}

// NewFileHistory creates a history backed by the given file path. The
// file is created on first Append.
func NewFileHistory(path string) *FileHistory {
	return &FileHistory{path: path}
}

// Append adds a snapshot to the file, applying the FIFO cap.
func (h *FileHistory) Append(snapshot types.MetricsSnapshot) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, err := h.read()
	if err != nil {
		return err
	}

	entries = append(entries, snapshot)
	if len(entries) > HistoryCap {
		entries = entries[len(entries)-HistoryCap:]
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize metrics history: %w", err)
	}
	if err := os.WriteFile(h.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write metrics history: %w", err)
	}
	return nil
}

// Recent returns up to n of the most recent snapshots, oldest first.
func (h *FileHistory) Recent(n int) ([]types.MetricsSnapshot, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, err := h.read()
	if err != nil {
		return nil, err
	}
	if n <= 0 || len(entries) == 0 {
		return nil, nil
	}
	start := len(entries) - n
	if start < 0 {
		start = 0
	}
	return entries[start:], nil
}

// read loads the full history; a missing file is an empty history.
func (h *FileHistory) read() ([]types.MetricsSnapshot, error) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read metrics history: %w", err)
	}

	var entries []types.MetricsSnapshot
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("corrupt metrics history %s: %w", h.path, err)
	}
	return entries, nil
}
