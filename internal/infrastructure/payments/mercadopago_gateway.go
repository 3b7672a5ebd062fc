package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"eventos_api/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

const (
	mockStatusApproved = "approved"
	mockStatusRejected = "rejected"
)

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	log      *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

// NewMercadoPagoGateway builds the gateway. In mock mode no SDK client is created
// and deposits are settled locally.
func NewMercadoPagoGateway(accessToken string, mockMode bool, log *zap.Logger) (*MercadoPagoGateway, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("mercadopago")
	if mockMode {
		log.Info("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, log: log}, nil
	}

	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercado pago sdk config: %w", err)
	}
	log.Info("client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), log: log}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.mockPayment(requestPayload)
	}

	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	g.log.Debug("create start", zap.Int("payload_len", len(requestPayload)))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		return "", "", nil, fmt.Errorf("decode payment request: %w", err)
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.log.Warn("sdk create failed", zap.Error(err))
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	providerPaymentID = fmt.Sprintf("%d", resp.ID)
	g.log.Info("create success", zap.String("provider_payment_id", providerPaymentID), zap.String("provider_status", resp.Status))

	return providerPaymentID, resp.Status, b, nil
}

type mockDepositRequest struct {
	ExternalReference string  `json:"external_reference"`
	TransactionAmount float64 `json:"transaction_amount"`
	Description       string  `json:"description"`
	Payer             struct {
		Email string `json:"email"`
	} `json:"payer"`
}

type mockDepositResponse struct {
	ID                int64   `json:"id"`
	Status            string  `json:"status"`
	StatusDetail      string  `json:"status_detail"`
	ExternalReference string  `json:"external_reference"`
	TransactionAmount float64 `json:"transaction_amount"`
	Description       string  `json:"description,omitempty"`
	PayerEmail        string  `json:"payer_email,omitempty"`
	LiveMode          bool    `json:"live_mode"`
	DateCreated       string  `json:"date_created"`
	DateApproved      string  `json:"date_approved,omitempty"`
}

// mockPayment settles a deposit locally. Deposits with a positive amount are
// approved; anything else is rejected the way the provider rejects it.
func (g *MercadoPagoGateway) mockPayment(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	var req mockDepositRequest
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		return "", "", nil, fmt.Errorf("decode payment request: %w", err)
	}

	now := time.Now().UTC()
	resp := mockDepositResponse{
		ID:                now.UnixNano(),
		Status:            mockStatusApproved,
		StatusDetail:      "accredited",
		ExternalReference: req.ExternalReference,
		TransactionAmount: req.TransactionAmount,
		Description:       req.Description,
		PayerEmail:        req.Payer.Email,
		DateCreated:       now.Format(time.RFC3339Nano),
	}
	if req.TransactionAmount > 0 {
		resp.DateApproved = resp.DateCreated
	} else {
		resp.Status = mockStatusRejected
		resp.StatusDetail = "cc_rejected_bad_filled_other"
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	id := strconv.FormatInt(resp.ID, 10)
	g.log.Info("mock create success",
		zap.String("provider_payment_id", id),
		zap.String("provider_status", resp.Status),
		zap.String("external_reference", req.ExternalReference),
	)
	return id, resp.Status, b, nil
}
