package engine

import (
	"context"
	"strings"
	"sync"

	"github.com/nalkhodair/rasid/internal/model"
)

// MockClassifier is a test implementation of the Classifier interface.
// It returns deterministic categories based on vendor name patterns.
type MockClassifier struct {
	calls []MockCall
	mu    sync.Mutex
}

// MockCall records details of a classification request.
type MockCall struct {
	Vendor   string
	Category model.Category
	Amount   float64
}

// NewMockClassifier creates a new mock classifier.
func NewMockClassifier() *MockClassifier {
	return &MockClassifier{calls: make([]MockCall, 0)}
}

// Categorize provides deterministic categories based on vendor name.
func (m *MockClassifier) Categorize(_ context.Context, vendor string, amount float64) model.Category {
	m.mu.Lock()
	defer m.mu.Unlock()

	vendorLower := strings.ToLower(vendor)

	var category model.Category
	switch {
	case strings.Contains(vendorLower, "mark") || strings.Contains(vendorLower, "market") || strings.Contains(vendorLower, "restaurant"):
		category = model.CategoryFood
	case strings.Contains(vendorLower, "pharmacy") || strings.Contains(vendorLower, "clinic"):
		category = model.CategoryHealth
	case strings.Contains(vendorLower, "uber") || strings.Contains(vendorLower, "careem") || strings.Contains(vendorLower, "petrol"):
		category = model.CategoryTransport
	case strings.Contains(vendorLower, "cinema") || strings.Contains(vendorLower, "netflix"):
		category = model.CategoryEntertainment
	default:
		category = model.CategoryOther
	}

	m.calls = append(m.calls, MockCall{Vendor: vendor, Amount: amount, Category: category})
	return category
}

// Calls returns a copy of the recorded classification requests.
func (m *MockClassifier) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]MockCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}
