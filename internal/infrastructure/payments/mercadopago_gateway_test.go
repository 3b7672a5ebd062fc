package payments

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	_, err := NewMercadoPagoGateway("", false, zap.NewNop())
	assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	g, err := NewMercadoPagoGateway("", true, zap.NewNop())
	require.NoError(t, err)

	t.Run("positive deposit is approved", func(t *testing.T) {
		payload := `{"transaction_amount":900000,"external_reference":"EV-1","description":"Deposit for quote EV-1","payer":{"email":"ana@example.com"},"token":"tok"}`
		id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(payload))
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.Equal(t, "approved", status)

		var body mockDepositResponse
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, id, strconv.FormatInt(body.ID, 10))
		assert.Equal(t, "EV-1", body.ExternalReference)
		assert.Equal(t, float64(900000), body.TransactionAmount)
		assert.Equal(t, "Deposit for quote EV-1", body.Description)
		assert.Equal(t, "ana@example.com", body.PayerEmail)
		assert.Equal(t, "accredited", body.StatusDetail)
		assert.NotEmpty(t, body.DateApproved)
		assert.False(t, body.LiveMode)
		assert.NotContains(t, string(raw), "tok")
	})

	t.Run("zero amount is rejected", func(t *testing.T) {
		_, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":0,"external_reference":"EV-2"}`))
		require.NoError(t, err)
		assert.Equal(t, "rejected", status)

		var body mockDepositResponse
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, "EV-2", body.ExternalReference)
		assert.Empty(t, body.DateApproved)
	})

	t.Run("malformed payload", func(t *testing.T) {
		_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`not json`))
		assert.Error(t, err)
	})
}

func TestNewMercadoPagoGateway_NilLogger(t *testing.T) {
	g, err := NewMercadoPagoGateway("", true, nil)
	require.NoError(t, err)

	_, status, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":1,"external_reference":"EV-3"}`))
	require.NoError(t, err)
	assert.Equal(t, "approved", status)
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
}
