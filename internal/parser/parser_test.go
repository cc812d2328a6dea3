package parser

import (
	"testing"

	"github.com/nalkhodair/rasid/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSMS = "شراء\nبطاقة:0510;مدى-ابل باي\nمبلغ:SAR 47.80\nلدى:HALA MARK\nفي:25-2-2 06:44"

func TestParse_Matched(t *testing.T) {
	result, err := Parse(sampleSMS)
	require.NoError(t, err)
	require.Equal(t, StatusMatched, result.Status)
	require.NotNil(t, result.Transaction)

	txn := result.Transaction
	assert.Equal(t, model.TypePurchase, txn.Type)
	assert.Equal(t, 47.80, txn.Amount)
	assert.Equal(t, "HALA MARK", txn.Vendor)
	assert.Equal(t, model.CategoryOther, txn.Category)
	assert.Equal(t, "0510", txn.CardNumber)
	assert.Equal(t, "2025-02-02", txn.Date)
	assert.Equal(t, "06:44", txn.Time)
}

func TestParse_CreditTransfer(t *testing.T) {
	text := "بطاقة ائتمانية:تحويل\nبطاقة:1234\nمبلغ:SAR 150.00\nلدى:AMAZON SA\nفي:24-12-31 23:59"

	result, err := Parse(text)
	require.NoError(t, err)
	require.Equal(t, StatusMatched, result.Status)

	txn := result.Transaction
	assert.Equal(t, model.TypeCreditTransfer, txn.Type)
	assert.Equal(t, 150.00, txn.Amount)
	assert.Equal(t, "AMAZON SA", txn.Vendor)
	assert.Equal(t, "1234", txn.CardNumber)
	assert.Equal(t, "2024-12-31", txn.Date)
	assert.Equal(t, "23:59", txn.Time)
}

func TestParse_ArabicVendor(t *testing.T) {
	text := "شراء\nبطاقة:9031;مدى\nمبلغ:SAR 23.50\nلدى:مطعم البيك\nفي:25-6-14 21:05"

	result, err := Parse(text)
	require.NoError(t, err)
	require.Equal(t, StatusMatched, result.Status)
	// Greedy vendor match swallows the following في marker; it must not
	// leak into the vendor name.
	assert.Equal(t, "مطعم البيك", result.Transaction.Vendor)
	assert.Equal(t, "2025-06-14", result.Transaction.Date)
}

func TestParse_Rejected(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "incoming transfer notification",
			text: "تحويل وارد\nمبلغ:SAR 500.00\nفي:25-2-2 06:44",
		},
		{
			name: "otp message",
			text: "رمز التحقق الخاص بك هو 123456",
		},
		{
			name: "empty text",
			text: "",
		},
		{
			name: "type marker not at start",
			text: "عملية شراء\nمبلغ:SAR 47.80",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, StatusRejected, result.Status)
			assert.Nil(t, result.Transaction)
		})
	}
}

func TestParse_Incomplete(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		missing []string
	}{
		{
			name:    "amount absent",
			text:    "شراء\nبطاقة:0510;مدى-ابل باي\nلدى:HALA MARK\nفي:25-2-2 06:44",
			missing: []string{"amount"},
		},
		{
			name:    "vendor absent",
			text:    "شراء\nبطاقة:0510;مدى-ابل باي\nمبلغ:SAR 47.80\nفي:25-2-2 06:44",
			missing: []string{"vendor"},
		},
		{
			name:    "date and time absent",
			text:    "شراء\nبطاقة:0510;مدى-ابل باي\nمبلغ:SAR 47.80\nلدى:HALA MARK",
			missing: []string{"date", "time"},
		},
		{
			name:    "time absent",
			text:    "شراء\nبطاقة:0510;مدى-ابل باي\nمبلغ:SAR 47.80\nلدى:HALA MARK\nفي:25-2-2",
			missing: []string{"time"},
		},
		{
			name:    "card absent",
			text:    "شراء\nمبلغ:SAR 47.80\nلدى:HALA MARK\nفي:25-2-2 06:44",
			missing: []string{"card"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, StatusIncomplete, result.Status)
			assert.Nil(t, result.Transaction)
			assert.Equal(t, tt.missing, result.Missing)
		})
	}
}

func TestParse_DatetimeError(t *testing.T) {
	// Month 13 matches the surface pattern but is not a real date.
	text := "شراء\nبطاقة:0510;مدى-ابل باي\nمبلغ:SAR 47.80\nلدى:HALA MARK\nفي:25-13-2 06:44"

	_, err := Parse(text)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "datetime")
}

func TestParse_AmountError(t *testing.T) {
	text := "شراء\nبطاقة:0510;مدى-ابل باي\nمبلغ:SAR 47.80.90\nلدى:HALA MARK\nفي:25-2-2 06:44"

	_, err := Parse(text)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount")
}
