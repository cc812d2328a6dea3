package main

import (
	"fmt"
	"log/slog"

	"github.com/nalkhodair/rasid/internal/config"
	"github.com/nalkhodair/rasid/internal/engine"
	"github.com/nalkhodair/rasid/internal/llm"
)

// createClassifier builds the LLM classifier from resolved configuration.
func createClassifier(cfg config.Config) (engine.Classifier, error) {
	classifier, err := llm.NewClassifier(llm.Config{
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	}, slog.Default())
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM classifier: %w", err)
	}
	return classifier, nil
}
