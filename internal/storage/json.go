// Package storage persists the transaction analysis as a JSON document.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nalkhodair/rasid/internal/model"
)

// DefaultPath is where the analysis file is written unless overridden.
const DefaultPath = "data/transactions_analysis.json"

// JSONStore writes the analysis result to a single JSON file. The persisted
// shape is always an array of zero or more transactions, UTF-8 with Arabic
// text left unescaped, indented for human readability. Each save truncates
// the previous file.
type JSONStore struct {
	path string
}

// NewJSONStore creates a store writing to path, or DefaultPath if empty.
func NewJSONStore(path string) *JSONStore {
	if path == "" {
		path = DefaultPath
	}
	return &JSONStore{path: path}
}

// Path returns the location of the analysis file.
func (s *JSONStore) Path() string {
	return s.path
}

// Save writes the transactions to the analysis file, creating parent
// directories as needed and overwriting any previous contents.
func (s *JSONStore) Save(_ context.Context, transactions []model.Transaction) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create analysis file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(transactions); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode analysis: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close analysis file: %w", err)
	}

	slog.Info("analysis saved", "path", s.path, "transactions", len(transactions))
	return nil
}

// Load reads the analysis file back.
func (s *JSONStore) Load(_ context.Context) ([]model.Transaction, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis file: %w", err)
	}

	var transactions []model.Transaction
	if err := json.Unmarshal(data, &transactions); err != nil {
		return nil, fmt.Errorf("failed to decode analysis file: %w", err)
	}
	return transactions, nil
}
