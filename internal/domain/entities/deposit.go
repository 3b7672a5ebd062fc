package entities

import (
	"encoding/json"
	"time"
)

// DepositStatus represents the payment processing outcome of a deposit.
type DepositStatus string

const (
	DepositStatusPending  DepositStatus = "pending"
	DepositStatusApproved DepositStatus = "approved"
	DepositStatusDenied   DepositStatus = "denied"
)

// Deposit is the reservation payment made against a quote.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//
// ProviderPayloadRaw keeps the Mercado Pago response body for traceability.
type Deposit struct {
	ID                 string          `json:"id"`
	QuoteID            string          `json:"quote_id"`
	Amount             int64           `json:"amount"`
	Date               time.Time       `json:"date"`
	Status             DepositStatus   `json:"status"`
	ProviderPaymentID  string          `json:"provider_payment_id,omitempty"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}
