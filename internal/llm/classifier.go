package llm

import (
	"context"
	"log/slog"
	"strings"

	"github.com/nalkhodair/rasid/internal/model"
)

// Classifier assigns spending categories to vendors via an LLM client,
// guaranteeing every answer is a member of the closed category set.
type Classifier struct {
	client Client
	logger *slog.Logger
}

// NewClassifier creates a new LLM-based classifier.
func NewClassifier(cfg Config, logger *slog.Logger) (*Classifier, error) {
	client, err := newOpenAIClient(cfg)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{client: client, logger: logger}, nil
}

// Categorize returns the spending category for a vendor and amount. Any
// service failure or out-of-set answer degrades to CategoryOther; the
// caller never sees an error or an invalid label.
func (c *Classifier) Categorize(ctx context.Context, vendor string, amount float64) model.Category {
	resp, err := c.client.Classify(ctx, vendor, amount)
	if err != nil {
		c.logger.Error("classification request failed, using fallback category",
			"vendor", vendor,
			"error", err)
		return model.CategoryOther
	}

	category := model.Category(strings.TrimSpace(resp.Label))
	if !category.Valid() {
		c.logger.Error("classifier returned a label outside the category set, using fallback category",
			"vendor", vendor,
			"label", resp.Label)
		return model.CategoryOther
	}

	c.logger.Debug("vendor classified",
		"vendor", vendor,
		"category", category)
	return category
}
