// Package model defines the domain types shared across the application.
package model

// Transaction types recognized in bank SMS notifications.
const (
	// TypePurchase is the marker for a card purchase (شراء).
	TypePurchase = "شراء"
	// TypeCreditTransfer is the marker for a credit-card transfer (بطاقة ائتمانية:تحويل).
	TypeCreditTransfer = "بطاقة ائتمانية:تحويل"
)

// Transaction represents a single purchase transaction extracted from a bank SMS.
// JSON field names match the analysis file layout consumed by downstream tooling.
type Transaction struct {
	Type       string   `json:"Type"`
	Amount     float64  `json:"Amount (SAR)"`
	Vendor     string   `json:"Vendor"`
	Category   Category `json:"Category"`
	CardNumber string   `json:"Card Number"`
	Date       string   `json:"Date"`
	Time       string   `json:"Time"`
}
