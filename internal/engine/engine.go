// Package engine orchestrates the extract-classify-persist pipeline for a
// single SMS text.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nalkhodair/rasid/internal/model"
	"github.com/nalkhodair/rasid/internal/parser"
)

// Engine runs one SMS body through extraction, classification and
// persistence. A nil store skips persistence (dry runs).
type Engine struct {
	classifier Classifier
	store      Store
	logger     *slog.Logger
}

// New creates a processing engine.
func New(classifier Classifier, store Store, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		classifier: classifier,
		store:      store,
		logger:     logger,
	}
}

// Process extracts a transaction from text, classifies its vendor and saves
// the result. A nil transaction with a nil error means the text was rejected
// or incomplete; the analysis file is left untouched in that case.
func (e *Engine) Process(ctx context.Context, text string) (*model.Transaction, error) {
	result, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to extract transaction: %w", err)
	}

	switch result.Status {
	case parser.StatusRejected:
		return nil, nil
	case parser.StatusIncomplete:
		e.logger.Info("transaction incomplete, skipping",
			"missing_fields", result.Missing)
		return nil, nil
	case parser.StatusMatched:
	}

	txn := result.Transaction
	txn.Category = e.classifier.Categorize(ctx, txn.Vendor, txn.Amount)

	if e.store != nil {
		if err := e.store.Save(ctx, []model.Transaction{*txn}); err != nil {
			return nil, fmt.Errorf("failed to save analysis: %w", err)
		}
	}

	e.logger.Info("transaction processed",
		"vendor", txn.Vendor,
		"amount", txn.Amount,
		"category", txn.Category)
	return txn, nil
}
