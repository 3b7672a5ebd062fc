package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventos_api/internal/domain/entities"
	"eventos_api/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidDepositPayload          = errors.New("invalid mercado pago payload")
	ErrQuoteNotPayable                = errors.New("quote is not ready for a deposit")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// DepositSettings controls deposit pricing and payload checks.
// Sandbox relaxes payload validation when the gateway runs in mock mode.
type DepositSettings struct {
	Percent int
	Sandbox bool
}

// IDepositUseCase charges the reservation deposit of an agreed quote.
type IDepositUseCase interface {
	CreateDeposit(ctx context.Context, requester Actor, quoteID string, mpPayload json.RawMessage) (entities.Deposit, error)
	ListByQuote(ctx context.Context, requester Actor, quoteID string) ([]entities.Deposit, error)
}

type DepositUseCase struct {
	repo     interfaces.IDepositRepository
	quotes   IQuoteUseCase
	gateway  interfaces.IPaymentGateway
	settings DepositSettings
	log      *zap.Logger
}

var _ IDepositUseCase = (*DepositUseCase)(nil)

func NewDepositUseCase(repo interfaces.IDepositRepository, quotes IQuoteUseCase, gateway interfaces.IPaymentGateway, settings DepositSettings, log *zap.Logger) *DepositUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &DepositUseCase{repo: repo, quotes: quotes, gateway: gateway, settings: settings, log: log.Named("deposit")}
}

// DepositAmount is the share of total charged as deposit, rounded down.
func DepositAmount(total int64, percent int) int64 {
	return total * int64(percent) / 100
}

func (u *DepositUseCase) CreateDeposit(ctx context.Context, requester Actor, quoteID string, mpPayload json.RawMessage) (entities.Deposit, error) {
	quoteID = strings.TrimSpace(quoteID)
	log := u.log.With(zap.String("quote_id", quoteID))

	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.settings.Sandbox {
			log.Debug("invalid payload", zap.Int("payload_len", len(mpPayload)))
			return entities.Deposit{}, ErrInvalidDepositPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.Deposit{}, errors.New("payment gateway not configured")
	}

	q, err := u.quotes.GetByID(ctx, requester, quoteID)
	if err != nil {
		return entities.Deposit{}, err
	}
	if q.Status != entities.QuoteStatusClosed && q.Status != entities.QuoteStatusNegotiating {
		log.Info("quote not payable", zap.String("status", string(q.Status)))
		return entities.Deposit{}, ErrQuoteNotPayable
	}
	amount := DepositAmount(q.Total, u.settings.Percent)

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		return entities.Deposit{}, ErrInvalidDepositPayload
	}
	if !u.settings.Sandbox {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			return entities.Deposit{}, ErrInvalidDepositPayload
		}
		ensurePayerDefaults(reqMap, q.Email)
		if !hasPayer(reqMap) {
			return entities.Deposit{}, ErrInvalidDepositPayload
		}
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Deposit for quote %s", q.ID)
	}
	// The amount always comes from the stored quote.
	reqMap["external_reference"] = q.ID
	reqMap["transaction_amount"] = amount
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Deposit{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Warn("payment gateway failed", zap.Error(err))
		return entities.Deposit{}, classifyGatewayError(err)
	}
	log.Info("payment gateway success",
		zap.String("provider_payment_id", providerPaymentID),
		zap.String("provider_status", providerStatus),
		zap.Int64("amount", amount),
	)

	id := providerPaymentID
	if id == "" {
		id = uuid.NewString()
	}
	d := entities.Deposit{
		ID:                 id,
		QuoteID:            q.ID,
		Amount:             amount,
		Date:               time.Now().UTC(),
		Status:             depositStatusFor(providerStatus),
		ProviderPaymentID:  providerPaymentID,
		ProviderPayloadRaw: providerResp,
	}
	created, err := u.repo.Create(ctx, d)
	if err != nil {
		log.Error("deposit persist failed", zap.String("deposit_id", d.ID), zap.Error(err))
		return entities.Deposit{}, err
	}
	return created, nil
}

func (u *DepositUseCase) ListByQuote(ctx context.Context, requester Actor, quoteID string) ([]entities.Deposit, error) {
	q, err := u.quotes.GetByID(ctx, requester, quoteID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByQuoteID(ctx, q.ID)
}

func depositStatusFor(providerStatus string) entities.DepositStatus {
	switch strings.ToLower(providerStatus) {
	case "approved":
		return entities.DepositStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.DepositStatusDenied
	}
	return entities.DepositStatusPending
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayerDefaults fills the payer e-mail from the quote when the client sent no payer identity.
func ensurePayerDefaults(m map[string]any, quoteEmail string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && quoteEmail != "" {
		payer["email"] = quoteEmail
	}
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
