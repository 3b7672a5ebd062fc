package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/mail"
	"strings"

	"eventos_api/internal/domain/entities"
	"eventos_api/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	affiliateCodePrefix      = "AF-"
	affiliateCodeLength      = 6
	affiliateCodeAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	defaultCommissionPercent = 10
	maxCodeAttempts          = 5
)

var (
	ErrInvalidAffiliateInput    = errors.New("invalid affiliate data")
	ErrAffiliateAlreadyExists   = errors.New("affiliate already registered")
	ErrAffiliateNotFound        = errors.New("affiliate not found")
	ErrAffiliateCodeUnavailable = errors.New("could not allocate an affiliate code")
)

// AffiliateRegistration is the full payload of the multi-step affiliate form.
type AffiliateRegistration struct {
	FullName      string
	Email         string
	Phone         string
	DocumentID    string
	City          string
	PayoutMethod  entities.PayoutMethod
	PayoutAccount string
}

// AffiliateStats summarizes the quotes an affiliate referred.
type AffiliateStats struct {
	QuotesReferred   int
	QuotesClosed     int
	ClosedTotal      int64
	CommissionEarned int64
}

type AffiliateOverview struct {
	Affiliate entities.Affiliate
	Stats     AffiliateStats
}

type IAffiliateUseCase interface {
	Register(ctx context.Context, actor Actor, in AffiliateRegistration) (entities.Affiliate, error)
	GetMine(ctx context.Context, actor Actor) (AffiliateOverview, error)
	ResolveCode(ctx context.Context, code string) (entities.Affiliate, error)
}

type AffiliateUseCase struct {
	repo   interfaces.IAffiliateRepository
	users  interfaces.IUserRepository
	quotes interfaces.IQuoteRepository
	log    *zap.Logger
}

var (
	_ IAffiliateUseCase = (*AffiliateUseCase)(nil)
	_ ReferralResolver  = (*AffiliateUseCase)(nil)
)

func NewAffiliateUseCase(repo interfaces.IAffiliateRepository, users interfaces.IUserRepository, quotes interfaces.IQuoteRepository, log *zap.Logger) *AffiliateUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &AffiliateUseCase{repo: repo, users: users, quotes: quotes, log: log.Named("affiliate")}
}

func (u *AffiliateUseCase) Register(ctx context.Context, actor Actor, in AffiliateRegistration) (entities.Affiliate, error) {
	if err := validateAffiliate(in); err != nil {
		return entities.Affiliate{}, err
	}

	existing, err := u.repo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return entities.Affiliate{}, err
	}
	if existing.Code != "" {
		return entities.Affiliate{}, ErrAffiliateAlreadyExists
	}

	aff := entities.Affiliate{
		UserID:            actor.UserID,
		FullName:          strings.TrimSpace(in.FullName),
		Email:             strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:             strings.TrimSpace(in.Phone),
		DocumentID:        strings.TrimSpace(in.DocumentID),
		City:              strings.TrimSpace(in.City),
		PayoutMethod:      in.PayoutMethod,
		PayoutAccount:     strings.TrimSpace(in.PayoutAccount),
		CommissionPercent: defaultCommissionPercent,
	}
	created, err := u.createWithFreshCode(ctx, aff)
	if err != nil {
		return entities.Affiliate{}, err
	}

	if !actor.IsAdmin() {
		if err := u.users.UpdateRole(ctx, actor.Email, entities.RoleAffiliate); err != nil {
			u.log.Warn("promote to affiliate failed", zap.String("user_id", actor.UserID), zap.Error(err))
		}
	}
	u.log.Info("affiliate registered", zap.String("user_id", actor.UserID), zap.String("code", created.Code))
	return created, nil
}

// createWithFreshCode writes aff under a newly allocated code. A conflict means
// either the user registered concurrently or the code was claimed after it was
// allocated; only the latter is retried.
func (u *AffiliateUseCase) createWithFreshCode(ctx context.Context, aff entities.Affiliate) (entities.Affiliate, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := u.allocateCode(ctx)
		if err != nil {
			return entities.Affiliate{}, err
		}
		aff.Code = code

		created, err := u.repo.Create(ctx, aff)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, interfaces.ErrConflict) {
			return entities.Affiliate{}, err
		}

		existing, err := u.repo.GetByUserID(ctx, aff.UserID)
		if err != nil {
			return entities.Affiliate{}, err
		}
		if existing.Code != "" {
			return entities.Affiliate{}, ErrAffiliateAlreadyExists
		}
		u.log.Info("affiliate code claimed concurrently, retrying", zap.String("code", code))
	}
	return entities.Affiliate{}, ErrAffiliateCodeUnavailable
}

func (u *AffiliateUseCase) allocateCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := newAffiliateCode()
		if err != nil {
			return "", err
		}
		taken, err := u.repo.GetByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if taken.Code == "" {
			return code, nil
		}
	}
	return "", ErrAffiliateCodeUnavailable
}

func (u *AffiliateUseCase) GetMine(ctx context.Context, actor Actor) (AffiliateOverview, error) {
	aff, err := u.repo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return AffiliateOverview{}, err
	}
	if aff.Code == "" {
		return AffiliateOverview{}, ErrAffiliateNotFound
	}

	referred, err := u.quotes.ListByOrigin(ctx, entities.AffiliateOrigin(aff.Code))
	if err != nil {
		return AffiliateOverview{}, err
	}
	return AffiliateOverview{Affiliate: aff, Stats: referralStats(referred, aff.CommissionPercent)}, nil
}

// referralStats pays commission on closed quotes only.
func referralStats(quotes []entities.Quote, percent int) AffiliateStats {
	stats := AffiliateStats{QuotesReferred: len(quotes)}
	for _, q := range quotes {
		if q.Status != entities.QuoteStatusClosed {
			continue
		}
		stats.QuotesClosed++
		stats.ClosedTotal += q.Total
	}
	stats.CommissionEarned = stats.ClosedTotal * int64(percent) / 100
	return stats
}

func (u *AffiliateUseCase) ResolveCode(ctx context.Context, code string) (entities.Affiliate, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return entities.Affiliate{}, nil
	}
	return u.repo.GetByCode(ctx, code)
}

func validateAffiliate(in AffiliateRegistration) error {
	required := []struct {
		field string
		value string
	}{
		{"full name", in.FullName},
		{"email", in.Email},
		{"phone", in.Phone},
		{"document id", in.DocumentID},
		{"city", in.City},
		{"payout account", in.PayoutAccount},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidAffiliateInput, r.field)
		}
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(in.Email)); err != nil {
		return fmt.Errorf("%w: email is not valid", ErrInvalidAffiliateInput)
	}
	if countDigits(in.Phone) < 7 {
		return fmt.Errorf("%w: phone must have at least 7 digits", ErrInvalidAffiliateInput)
	}
	if !in.PayoutMethod.Valid() {
		return fmt.Errorf("%w: payout method must be bank_transfer, nequi or daviplata", ErrInvalidAffiliateInput)
	}
	return nil
}

func newAffiliateCode() (string, error) {
	var b strings.Builder
	b.WriteString(affiliateCodePrefix)
	max := big.NewInt(int64(len(affiliateCodeAlphabet)))
	for i := 0; i < affiliateCodeLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(affiliateCodeAlphabet[n.Int64()])
	}
	return b.String(), nil
}
