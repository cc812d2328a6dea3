package engine

import (
	"context"

	"github.com/nalkhodair/rasid/internal/model"
)

// Classifier assigns a spending category to a vendor. Implementations must
// always return a member of the closed category set.
type Classifier interface {
	Categorize(ctx context.Context, vendor string, amount float64) model.Category
}

// Store persists the transaction analysis.
type Store interface {
	Save(ctx context.Context, transactions []model.Transaction) error
}
