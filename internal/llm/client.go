package llm

import (
	"context"
	"time"
)

// Client defines the interface to a text-generation service that labels
// a vendor with a spending category.
type Client interface {
	Classify(ctx context.Context, vendor string, amount float64) (ClassificationResponse, error)
}

// ClassificationResponse contains the raw label returned by the service,
// before closed-set validation.
type ClassificationResponse struct {
	Label string
}

// Config holds configuration for the LLM classifier.
type Config struct {
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}
