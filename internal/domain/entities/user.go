package entities

import "time"

type Role string

const (
	RoleCustomer  Role = "customer"
	RoleAffiliate Role = "affiliate"
	RoleAdmin     Role = "admin"
)

// UserProfile is the identity record of a website user.
//
// Storage model (DynamoDB):
//   - PK: email (lower-cased), which keeps e-mail addresses unique
//   - GSI1 (id-index): id
type UserProfile struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type PayoutMethod string

const (
	PayoutBankTransfer PayoutMethod = "bank_transfer"
	PayoutNequi        PayoutMethod = "nequi"
	PayoutDaviplata    PayoutMethod = "daviplata"
)

func (m PayoutMethod) Valid() bool {
	switch m {
	case PayoutBankTransfer, PayoutNequi, PayoutDaviplata:
		return true
	}
	return false
}

// Affiliate is a registered referrer entitled to a commission on the closed
// events they referred. It is written once and never updated by this service.
//
// Storage model (DynamoDB):
//   - PK: user_id
//   - GSI1 (code-index): code
type Affiliate struct {
	UserID            string       `json:"user_id"`
	Code              string       `json:"code"`
	FullName          string       `json:"full_name"`
	Email             string       `json:"email"`
	Phone             string       `json:"phone"`
	DocumentID        string       `json:"document_id"`
	City              string       `json:"city"`
	PayoutMethod      PayoutMethod `json:"payout_method"`
	PayoutAccount     string       `json:"payout_account"`
	CommissionPercent int          `json:"commission_percent"`
	CreatedAt         time.Time    `json:"created_at"`
}

// AffiliateOrigin is the quote origin recorded for referrals of code.
func AffiliateOrigin(code string) string {
	return "affiliate:" + code
}

// TokenClaims is the verified content of an access token.
type TokenClaims struct {
	TokenID   string
	UserID    string
	Email     string
	Role      Role
	ExpiresAt time.Time
}
