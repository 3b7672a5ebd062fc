package request

import (
	"strings"

	"eventos_api/internal/domain/entities"
	"eventos_api/internal/usecase"
)

// AffiliateRegistrationRequest carries every step of the affiliate sign-up form.
// Field checks happen in the use case so all problems are reported the same way.
type AffiliateRegistrationRequest struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	DocumentID    string `json:"document_id"`
	City          string `json:"city"`
	PayoutMethod  string `json:"payout_method"`
	PayoutAccount string `json:"payout_account"`
}

func (r AffiliateRegistrationRequest) ToInput() usecase.AffiliateRegistration {
	return usecase.AffiliateRegistration{
		FullName:      r.FullName,
		Email:         r.Email,
		Phone:         r.Phone,
		DocumentID:    r.DocumentID,
		City:          r.City,
		PayoutMethod:  entities.PayoutMethod(strings.ToLower(strings.TrimSpace(r.PayoutMethod))),
		PayoutAccount: r.PayoutAccount,
	}
}

type RecommendationRequest struct {
	Interests string `json:"interests"`
}
