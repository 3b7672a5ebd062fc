package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"eventos_api/internal/domain/entities"
	"eventos_api/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

var (
	ErrInvalidSignUp       = errors.New("invalid sign up data")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidResetToken   = errors.New("invalid or expired reset token")
	ErrWeakPassword        = errors.New("password must have at least 8 characters")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidProfileInput = errors.New("invalid profile data")
)

type SignUpInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

// AuthResult is a freshly issued session.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      entities.UserProfile
}

// AuthSettings holds the identity policy knobs read from configuration.
type AuthSettings struct {
	AdminEmails  []string
	ResetTTL     time.Duration
	ResetURLBase string
}

// IAuthUseCase covers account lifecycle, sessions and the live profile feed.
type IAuthUseCase interface {
	SignUp(ctx context.Context, in SignUpInput) (AuthResult, error)
	SignIn(ctx context.Context, email, password string) (AuthResult, error)
	SignOut(ctx context.Context, claims entities.TokenClaims) error
	Authenticate(ctx context.Context, token string) (entities.TokenClaims, error)
	SendPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	GetProfile(ctx context.Context, userID string) (entities.UserProfile, error)
	UpdateProfile(ctx context.Context, actor Actor, name, phone string) (entities.UserProfile, error)
	SubscribeProfile(ctx context.Context, userID string) (interfaces.ProfileSubscription, error)
}

type AuthUseCase struct {
	users    interfaces.IUserRepository
	sessions interfaces.ISessionStore
	feed     interfaces.IProfileFeed
	mailer   interfaces.IMailer
	tokens   interfaces.ITokenManager
	admins   map[string]struct{}
	settings AuthSettings
	log      *zap.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(
	users interfaces.IUserRepository,
	sessions interfaces.ISessionStore,
	feed interfaces.IProfileFeed,
	mailer interfaces.IMailer,
	tokens interfaces.ITokenManager,
	settings AuthSettings,
	log *zap.Logger,
) *AuthUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	admins := make(map[string]struct{}, len(settings.AdminEmails))
	for _, e := range settings.AdminEmails {
		admins[strings.ToLower(strings.TrimSpace(e))] = struct{}{}
	}
	return &AuthUseCase{
		users:    users,
		sessions: sessions,
		feed:     feed,
		mailer:   mailer,
		tokens:   tokens,
		admins:   admins,
		settings: settings,
		log:      log.Named("auth"),
	}
}

func (u *AuthUseCase) SignUp(ctx context.Context, in SignUpInput) (AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	name := strings.TrimSpace(in.Name)
	if email == "" || name == "" {
		return AuthResult{}, fmt.Errorf("%w: name and email are required", ErrInvalidSignUp)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return AuthResult{}, fmt.Errorf("%w: email is not valid", ErrInvalidSignUp)
	}
	if len(in.Password) < minPasswordLength {
		return AuthResult{}, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, err
	}

	role := entities.RoleCustomer
	if _, ok := u.admins[email]; ok {
		role = entities.RoleAdmin
	}

	user, err := u.users.Create(ctx, entities.UserProfile{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Phone:        strings.TrimSpace(in.Phone),
		Role:         role,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return AuthResult{}, ErrEmailTaken
		}
		return AuthResult{}, err
	}
	u.log.Info("user signed up", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return u.issue(user)
}

func (u *AuthUseCase) SignIn(ctx context.Context, email, password string) (AuthResult, error) {
	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, err
	}
	if user.ID == "" {
		return AuthResult{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	return u.issue(user)
}

func (u *AuthUseCase) issue(user entities.UserProfile) (AuthResult, error) {
	tok, claims, err := u.tokens.Issue(user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: tok, ExpiresAt: claims.ExpiresAt, User: user}, nil
}

// SignOut revokes the token until it would have expired anyway.
func (u *AuthUseCase) SignOut(ctx context.Context, claims entities.TokenClaims) error {
	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return u.sessions.Revoke(ctx, claims.TokenID, ttl)
}

func (u *AuthUseCase) Authenticate(ctx context.Context, token string) (entities.TokenClaims, error) {
	claims, err := u.tokens.Parse(token)
	if err != nil {
		return entities.TokenClaims{}, ErrUnauthorized
	}
	revoked, err := u.sessions.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return entities.TokenClaims{}, err
	}
	if revoked {
		return entities.TokenClaims{}, ErrUnauthorized
	}
	return claims, nil
}

// SendPasswordReset e-mails a one-time reset link. Unknown addresses succeed
// silently so the endpoint cannot be used to enumerate accounts.
func (u *AuthUseCase) SendPasswordReset(ctx context.Context, email string) error {
	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.ID == "" {
		u.log.Debug("password reset for unknown email")
		return nil
	}

	token, err := newResetToken()
	if err != nil {
		return err
	}
	if err := u.sessions.SaveResetToken(ctx, token, user.Email, u.settings.ResetTTL); err != nil {
		return err
	}
	if err := u.mailer.SendPasswordReset(ctx, user.Email, user.Name, u.resetURL(token)); err != nil {
		u.log.Error("send password reset failed", zap.String("user_id", user.ID), zap.Error(err))
		return err
	}
	u.log.Info("password reset sent", zap.String("user_id", user.ID))
	return nil
}

func (u *AuthUseCase) resetURL(token string) string {
	sep := "?"
	if strings.Contains(u.settings.ResetURLBase, "?") {
		sep = "&"
	}
	return u.settings.ResetURLBase + sep + "token=" + token
}

func (u *AuthUseCase) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return ErrWeakPassword
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrInvalidResetToken
	}
	email, err := u.sessions.ConsumeResetToken(ctx, token)
	if err != nil {
		return err
	}
	if email == "" {
		return ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return u.users.UpdatePasswordHash(ctx, email, string(hash))
}

func (u *AuthUseCase) GetProfile(ctx context.Context, userID string) (entities.UserProfile, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return entities.UserProfile{}, err
	}
	if user.ID == "" {
		return entities.UserProfile{}, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile saves the new name and phone and pushes the result to live subscribers.
func (u *AuthUseCase) UpdateProfile(ctx context.Context, actor Actor, name, phone string) (entities.UserProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.UserProfile{}, fmt.Errorf("%w: name is required", ErrInvalidProfileInput)
	}
	user, err := u.users.UpdateProfile(ctx, actor.Email, name, strings.TrimSpace(phone))
	if err != nil {
		return entities.UserProfile{}, err
	}
	if user.ID == "" {
		return entities.UserProfile{}, ErrUserNotFound
	}
	if err := u.feed.Publish(ctx, user); err != nil {
		u.log.Warn("publish profile update failed", zap.String("user_id", user.ID), zap.Error(err))
	}
	return user, nil
}

// SubscribeProfile returns a feed that yields the current profile first and then
// every published change until Close is called or ctx is done.
func (u *AuthUseCase) SubscribeProfile(ctx context.Context, userID string) (interfaces.ProfileSubscription, error) {
	// Subscribe before reading the snapshot so no update between the two is lost.
	inner, err := u.feed.Subscribe(ctx, userID)
	if err != nil {
		return nil, err
	}
	current, err := u.GetProfile(ctx, userID)
	if err != nil {
		_ = inner.Close()
		return nil, err
	}

	s := &snapshotSubscription{
		inner:   inner,
		updates: make(chan entities.UserProfile, 1),
		done:    make(chan struct{}),
	}
	go s.run(ctx, current)
	return s, nil
}

type snapshotSubscription struct {
	inner   interfaces.ProfileSubscription
	updates chan entities.UserProfile
	done    chan struct{}
	once    sync.Once
}

func (s *snapshotSubscription) Updates() <-chan entities.UserProfile {
	return s.updates
}

func (s *snapshotSubscription) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		err = s.inner.Close()
	})
	return err
}

func (s *snapshotSubscription) run(ctx context.Context, current entities.UserProfile) {
	defer close(s.updates)
	if !s.send(ctx, current) {
		return
	}
	for {
		select {
		case p, ok := <-s.inner.Updates():
			if !ok || !s.send(ctx, p) {
				return
			}
		case <-s.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *snapshotSubscription) send(ctx context.Context, p entities.UserProfile) bool {
	select {
	case s.updates <- p:
		return true
	case <-s.done:
		return false
	case <-ctx.Done():
		return false
	}
}

func newResetToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
