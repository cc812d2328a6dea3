package llm

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/nalkhodair/rasid/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient is a test implementation of the Client interface.
type mockClient struct {
	err   error
	label string
	calls int
}

func (m *mockClient) Classify(_ context.Context, _ string, _ float64) (ClassificationResponse, error) {
	m.calls++
	if m.err != nil {
		return ClassificationResponse{}, m.err
	}
	return ClassificationResponse{Label: m.label}, nil
}

func TestNewClassifier(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "valid config",
			config:  Config{APIKey: "test-key"},
			wantErr: false,
		},
		{
			name:    "missing api key",
			config:  Config{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier, err := NewClassifier(tt.config, slog.Default())
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "API key")
			} else {
				require.NoError(t, err)
				assert.NotNil(t, classifier)
			}
		})
	}
}

func TestClassifier_Categorize(t *testing.T) {
	tests := []struct {
		name   string
		client *mockClient
		want   model.Category
	}{
		{
			name:   "valid label",
			client: &mockClient{label: "Food"},
			want:   model.CategoryFood,
		},
		{
			name:   "label with surrounding whitespace",
			client: &mockClient{label: "  Transport\n"},
			want:   model.CategoryTransport,
		},
		{
			name:   "label outside the closed set",
			client: &mockClient{label: "Groceries"},
			want:   model.CategoryOther,
		},
		{
			name:   "case mismatch is out of set",
			client: &mockClient{label: "food"},
			want:   model.CategoryOther,
		},
		{
			name:   "empty response",
			client: &mockClient{label: ""},
			want:   model.CategoryOther,
		},
		{
			name:   "service failure",
			client: &mockClient{err: errors.New("connection refused")},
			want:   model.CategoryOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Classifier{client: tt.client, logger: slog.Default()}
			got := c.Categorize(context.Background(), "HALA MARK", 47.80)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 1, tt.client.calls)
		})
	}
}

func TestClassifier_CategorizeAlwaysInSet(t *testing.T) {
	// Every category the service can legitimately answer must pass through
	// unchanged, and everything else must collapse to Other.
	for _, category := range model.Categories() {
		c := &Classifier{
			client: &mockClient{label: category.String()},
			logger: slog.Default(),
		}
		got := c.Categorize(context.Background(), "vendor", 10)
		assert.True(t, got.Valid())
		assert.Equal(t, category, got)
	}
}

func TestSystemPrompt(t *testing.T) {
	prompt := systemPrompt()
	for _, category := range model.Categories() {
		assert.Contains(t, prompt, category.String())
	}
	assert.Contains(t, prompt, "exactly one category")
}
