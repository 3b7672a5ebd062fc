package usecase

import "eventos_api/internal/domain/entities"

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID string
	Email  string
	Role   entities.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == entities.RoleAdmin
}

// canAccessQuote reports whether the actor may read the quote.
func (a Actor) canAccessQuote(q entities.Quote) bool {
	return a.IsAdmin() || (a.UserID != "" && a.UserID == q.OwnerID)
}
