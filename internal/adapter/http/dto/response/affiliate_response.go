package response

import (
	"time"

	"eventos_api/internal/domain/entities"
	"eventos_api/internal/usecase"
)

type AffiliateResponse struct {
	UserID            string    `json:"user_id"`
	Code              string    `json:"code"`
	FullName          string    `json:"full_name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	DocumentID        string    `json:"document_id"`
	City              string    `json:"city"`
	PayoutMethod      string    `json:"payout_method"`
	PayoutAccount     string    `json:"payout_account"`
	CommissionPercent int       `json:"commission_percent"`
	ReferralLink      string    `json:"referral_link"`
	CreatedAt         time.Time `json:"created_at"`
}

// FromAffiliate builds the response. The referral link is a relative URL
// the front end prefixes with its own origin.
func FromAffiliate(a entities.Affiliate) AffiliateResponse {
	return AffiliateResponse{
		UserID:            a.UserID,
		Code:              a.Code,
		FullName:          a.FullName,
		Email:             a.Email,
		Phone:             a.Phone,
		DocumentID:        a.DocumentID,
		City:              a.City,
		PayoutMethod:      string(a.PayoutMethod),
		PayoutAccount:     a.PayoutAccount,
		CommissionPercent: a.CommissionPercent,
		ReferralLink:      "/?ref=" + a.Code,
		CreatedAt:         a.CreatedAt,
	}
}

type AffiliateStatsResponse struct {
	QuotesReferred   int   `json:"quotes_referred"`
	QuotesClosed     int   `json:"quotes_closed"`
	ClosedTotal      int64 `json:"closed_total"`
	CommissionEarned int64 `json:"commission_earned"`
}

type AffiliateOverviewResponse struct {
	Affiliate AffiliateResponse      `json:"affiliate"`
	Stats     AffiliateStatsResponse `json:"stats"`
}

func FromAffiliateOverview(o usecase.AffiliateOverview) AffiliateOverviewResponse {
	return AffiliateOverviewResponse{
		Affiliate: FromAffiliate(o.Affiliate),
		Stats: AffiliateStatsResponse{
			QuotesReferred:   o.Stats.QuotesReferred,
			QuotesClosed:     o.Stats.QuotesClosed,
			ClosedTotal:      o.Stats.ClosedTotal,
			CommissionEarned: o.Stats.CommissionEarned,
		},
	}
}
