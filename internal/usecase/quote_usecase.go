package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"eventos_api/internal/domain/catalog"
	"eventos_api/internal/domain/entities"
	"eventos_api/internal/domain/pricing"
	"eventos_api/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidQuoteInput  = errors.New("invalid quote input")
	ErrUnknownService     = errors.New("unknown service")
	ErrNoServicesSelected = errors.New("no services selected")
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrQuoteForbidden     = errors.New("quote belongs to another user")
	ErrInvalidQuoteStatus = errors.New("invalid quote status")
	ErrQuotePersistence   = errors.New("quote could not be saved")
)

// CustomerDetails identifies who the quote is for.
type CustomerDetails struct {
	Name  string
	Email string
	Phone string
}

// EventDetails describes the event being quoted.
// EventDate is YYYY-MM-DD; StartTime and EndTime are HH:MM when given.
type EventDetails struct {
	EventType     string
	EventDate     string
	StartTime     string
	EndTime       string
	Theme         string
	VenueAddress  string
	StreetAddress string
	Neighborhood  string
	Notes         string
}

type ServiceSelection struct {
	ServiceID string
	Quantity  int
}

type ModularQuoteInput struct {
	Customer     CustomerDetails
	Event        EventDetails
	Services     []ServiceSelection
	ReferralCode string
}

type PackagedQuoteInput struct {
	Customer      CustomerDetails
	Event         EventDetails
	EventCategory string
	PeopleCount   int
	IncludeVenue  bool
	ReferralCode  string
}

// QuotePreview is a priced quote that has not been persisted.
type QuotePreview struct {
	Items            []entities.QuoteItem
	Total            int64
	BasePrice        int64
	PeopleCount      int
	IncludedServices []entities.IncludedService
}

// QuoteSubmission is the result of a successful submission.
type QuoteSubmission struct {
	Quote      entities.Quote
	Summary    string
	MessageURL string
}

// ReferralResolver maps an affiliate code to its affiliate. A zero Affiliate means unknown.
type ReferralResolver interface {
	ResolveCode(ctx context.Context, code string) (entities.Affiliate, error)
}

type QuoteMetrics interface {
	QuoteSubmitted(kind string)
	QuoteRejected(reason string)
}

// IQuoteUseCase covers quote assembly, submission and back-office follow-up.
type IQuoteUseCase interface {
	PreviewModular(ctx context.Context, services []ServiceSelection) (QuotePreview, error)
	PreviewPackaged(ctx context.Context, eventCategory string, peopleCount int, includeVenue bool) (QuotePreview, error)
	SubmitModular(ctx context.Context, owner Actor, in ModularQuoteInput) (QuoteSubmission, error)
	SubmitPackaged(ctx context.Context, owner Actor, in PackagedQuoteInput) (QuoteSubmission, error)
	GetByID(ctx context.Context, requester Actor, id string) (entities.Quote, error)
	ListMine(ctx context.Context, owner Actor) ([]entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo           interfaces.IQuoteRepository
	referrals      ReferralResolver
	metrics        QuoteMetrics
	whatsAppNumber string
	log            *zap.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, referrals ReferralResolver, metrics QuoteMetrics, whatsAppNumber string, log *zap.Logger) *QuoteUseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &QuoteUseCase{
		repo:           repo,
		referrals:      referrals,
		metrics:        metrics,
		whatsAppNumber: whatsAppNumber,
		log:            log.Named("quote"),
	}
}

func (u *QuoteUseCase) PreviewModular(_ context.Context, services []ServiceSelection) (QuotePreview, error) {
	sel, err := buildSelection(services)
	if err != nil {
		return QuotePreview{}, err
	}
	items := collectItems(sel)
	return QuotePreview{Items: items, Total: sel.Total()}, nil
}

func (u *QuoteUseCase) PreviewPackaged(_ context.Context, eventCategory string, peopleCount int, includeVenue bool) (QuotePreview, error) {
	pkg := pricing.NewPackage(peopleCount, includeVenue, strings.TrimSpace(eventCategory))
	return packagePreview(pkg), nil
}

func packagePreview(pkg pricing.Package) QuotePreview {
	return QuotePreview{
		Items:            pkg.Items(),
		Total:            pkg.Total,
		BasePrice:        pkg.BasePrice,
		PeopleCount:      pkg.PeopleCount,
		IncludedServices: pkg.IncludedServices(),
	}
}

func (u *QuoteUseCase) SubmitModular(ctx context.Context, owner Actor, in ModularQuoteInput) (QuoteSubmission, error) {
	if err := validateCommon(in.Customer, in.Event); err != nil {
		u.reject("invalid_input", err)
		return QuoteSubmission{}, err
	}
	sel, err := buildSelection(in.Services)
	if err != nil {
		u.reject("unknown_service", err)
		return QuoteSubmission{}, err
	}
	if sel.Len() == 0 {
		u.reject("empty_selection", ErrNoServicesSelected)
		return QuoteSubmission{}, ErrNoServicesSelected
	}

	q := newQuote(owner, entities.QuoteKindModular, in.Customer, in.Event)
	q.Items = collectItems(sel)
	q.Total = sel.Total()
	q.Origin = u.resolveOrigin(ctx, in.ReferralCode)

	return u.persist(ctx, q)
}

func (u *QuoteUseCase) SubmitPackaged(ctx context.Context, owner Actor, in PackagedQuoteInput) (QuoteSubmission, error) {
	if err := validateCommon(in.Customer, in.Event); err != nil {
		u.reject("invalid_input", err)
		return QuoteSubmission{}, err
	}
	if !in.IncludeVenue && strings.TrimSpace(in.Event.VenueAddress) == "" {
		err := fmt.Errorf("%w: venue address is required when the venue is not included", ErrInvalidQuoteInput)
		u.reject("invalid_input", err)
		return QuoteSubmission{}, err
	}

	pkg := pricing.NewPackage(in.PeopleCount, in.IncludeVenue, strings.TrimSpace(in.EventCategory))
	includeVenue := in.IncludeVenue

	q := newQuote(owner, entities.QuoteKindPackaged, in.Customer, in.Event)
	if q.EventType == "" {
		q.EventType = pkg.Category.DisplayName
	}
	q.Items = pkg.Items()
	q.Total = pkg.Total
	q.PeopleCount = pkg.PeopleCount
	q.IncludeVenue = &includeVenue
	q.Origin = u.resolveOrigin(ctx, in.ReferralCode)

	return u.persist(ctx, q)
}

func (u *QuoteUseCase) persist(ctx context.Context, q entities.Quote) (QuoteSubmission, error) {
	created, err := u.repo.Create(ctx, q)
	if err != nil {
		u.log.Error("persist quote failed", zap.String("kind", string(q.Kind)), zap.Error(err))
		u.metrics.QuoteRejected("persistence")
		return QuoteSubmission{}, fmt.Errorf("%w: %v", ErrQuotePersistence, err)
	}
	u.metrics.QuoteSubmitted(string(created.Kind))
	u.log.Info("quote submitted",
		zap.String("quote_id", created.ID),
		zap.String("kind", string(created.Kind)),
		zap.String("origin", created.Origin),
		zap.Int64("total", created.Total),
	)

	summary := BuildQuoteSummary(created)
	return QuoteSubmission{
		Quote:      created,
		Summary:    summary,
		MessageURL: BuildMessageURL(u.whatsAppNumber, summary),
	}, nil
}

func (u *QuoteUseCase) reject(reason string, err error) {
	u.metrics.QuoteRejected(reason)
	u.log.Debug("quote rejected", zap.String("reason", reason), zap.Error(err))
}

// resolveOrigin never fails a submission: unknown codes and lookup errors fall back to web.
func (u *QuoteUseCase) resolveOrigin(ctx context.Context, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" || u.referrals == nil {
		return entities.OriginWeb
	}
	aff, err := u.referrals.ResolveCode(ctx, code)
	if err != nil {
		u.log.Warn("referral lookup failed", zap.String("code", code), zap.Error(err))
		return entities.OriginWeb
	}
	if aff.Code == "" {
		return entities.OriginWeb
	}
	return entities.AffiliateOrigin(aff.Code)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, requester Actor, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if !requester.canAccessQuote(q) {
		return entities.Quote{}, ErrQuoteForbidden
	}
	return q, nil
}

func (u *QuoteUseCase) ListMine(ctx context.Context, owner Actor) ([]entities.Quote, error) {
	return u.repo.ListByOwner(ctx, owner.UserID)
}

func (u *QuoteUseCase) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if !status.Valid() {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}
	q, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	u.log.Info("quote status updated", zap.String("quote_id", id), zap.String("status", string(status)))
	return q, nil
}

func buildSelection(services []ServiceSelection) (*pricing.Selection, error) {
	sel := pricing.NewSelection()
	for _, s := range services {
		svc, ok := catalog.ServiceByID(strings.TrimSpace(s.ServiceID))
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownService, s.ServiceID)
		}
		sel.Select(svc, true)
		sel.SetQuantity(svc.ID, s.Quantity)
	}
	return sel, nil
}

func collectItems(sel *pricing.Selection) []entities.QuoteItem {
	items := make([]entities.QuoteItem, 0, sel.Len())
	for it := range sel.Items() {
		items = append(items, it)
	}
	return items
}

func newQuote(owner Actor, kind entities.QuoteKind, c CustomerDetails, e EventDetails) entities.Quote {
	theme := strings.TrimSpace(e.Theme)
	if t, ok := catalog.ThemeByID(theme); ok {
		theme = t.Name
	}
	return entities.Quote{
		OwnerID:       owner.UserID,
		Kind:          kind,
		CustomerName:  strings.TrimSpace(c.Name),
		Email:         strings.TrimSpace(c.Email),
		Phone:         strings.TrimSpace(c.Phone),
		Status:        entities.QuoteStatusPending,
		EventType:     strings.TrimSpace(e.EventType),
		EventDate:     strings.TrimSpace(e.EventDate),
		StartTime:     strings.TrimSpace(e.StartTime),
		EndTime:       strings.TrimSpace(e.EndTime),
		Theme:         theme,
		VenueAddress:  strings.TrimSpace(e.VenueAddress),
		StreetAddress: strings.TrimSpace(e.StreetAddress),
		Neighborhood:  strings.TrimSpace(e.Neighborhood),
		Notes:         strings.TrimSpace(e.Notes),
	}
}

func validateCommon(c CustomerDetails, e EventDetails) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidQuoteInput)
	}
	if strings.TrimSpace(c.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidQuoteInput)
	}
	if countDigits(c.Phone) < 7 {
		return fmt.Errorf("%w: phone must have at least 7 digits", ErrInvalidQuoteInput)
	}
	if strings.TrimSpace(c.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidQuoteInput)
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(c.Email)); err != nil {
		return fmt.Errorf("%w: email is not valid", ErrInvalidQuoteInput)
	}
	if strings.TrimSpace(e.EventDate) == "" {
		return fmt.Errorf("%w: event date is required", ErrInvalidQuoteInput)
	}
	if _, err := time.Parse(time.DateOnly, strings.TrimSpace(e.EventDate)); err != nil {
		return fmt.Errorf("%w: event date must be YYYY-MM-DD", ErrInvalidQuoteInput)
	}
	for _, t := range []string{e.StartTime, e.EndTime} {
		if t = strings.TrimSpace(t); t == "" {
			continue
		}
		if _, err := time.Parse("15:04", t); err != nil {
			return fmt.Errorf("%w: times must be HH:MM", ErrInvalidQuoteInput)
		}
	}
	return nil
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

type noopMetrics struct{}

func (noopMetrics) QuoteSubmitted(string) {}
func (noopMetrics) QuoteRejected(string)  {}
func (noopMetrics) Recommendation(string) {}
