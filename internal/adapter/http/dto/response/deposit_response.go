package response

import (
	"encoding/json"
	"time"

	"eventos_api/internal/domain/entities"
)

type DepositResponse struct {
	ID                 string          `json:"id"`
	QuoteID            string          `json:"quote_id"`
	Amount             int64           `json:"amount"`
	Date               time.Time       `json:"date"`
	Status             string          `json:"status"`
	ProviderPaymentID  string          `json:"provider_payment_id,omitempty"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty" swaggertype:"object"`
}

func FromDeposit(d entities.Deposit) DepositResponse {
	return DepositResponse{
		ID:                 d.ID,
		QuoteID:            d.QuoteID,
		Amount:             d.Amount,
		Date:               d.Date,
		Status:             string(d.Status),
		ProviderPaymentID:  d.ProviderPaymentID,
		ProviderPayloadRaw: d.ProviderPayloadRaw,
	}
}

func FromDeposits(ds []entities.Deposit) []DepositResponse {
	out := make([]DepositResponse, len(ds))
	for i, d := range ds {
		out[i] = FromDeposit(d)
	}
	return out
}
