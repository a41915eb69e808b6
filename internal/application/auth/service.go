package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-auth-api/internal/application/notifier"
	"github.com/go-auth-api/internal/domain"
	"github.com/go-auth-api/internal/pkg/id"
	"github.com/go-auth-api/internal/pkg/password"
	pkgtoken "github.com/go-auth-api/internal/pkg/token"
	"github.com/go-auth-api/internal/pkg/validate"
)

// DynamoDB attribute names used in partial update maps.
const (
	fieldVerified              = "verified"
	fieldVerificationToken     = "verification_token"
	fieldVerificationExpiresAt = "verification_expires_at"
	fieldResetToken            = "reset_token"
	fieldResetExpiresAt        = "reset_expires_at"
	fieldPasswordHash          = "password_hash"
	fieldLastLoginAt           = "last_login_at"
)

// Service is the authentication state machine. Every operation that
// succeeds persists its state change before any notification is sent;
// notification failures are logged, dead-lettered by the notifier, and
// never roll anything back.
type Service interface {
	Signup(ctx context.Context, req domain.SignupRequest) (account *domain.Account, sessionToken string, err error)
	VerifyEmail(ctx context.Context, code string) (*domain.Account, error)
	Login(ctx context.Context, req domain.LoginRequest) (account *domain.Account, sessionToken string, err error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	CheckAuth(ctx context.Context, accountID string) (*domain.Account, error)
}

type accountStore interface {
	Put(ctx context.Context, a *domain.Account) error
	Get(ctx context.Context, accountID string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByVerificationToken(ctx context.Context, token string) (*domain.Account, error)
	GetByResetToken(ctx context.Context, token string) (*domain.Account, error)
	Update(ctx context.Context, accountID string, sets map[string]interface{}, removes []string) error
}

type sessionSigner interface {
	Sign(accountID string) (string, error)
}

type service struct {
	repo      accountStore
	notifier  notifier.Notifier
	signer    sessionSigner
	hasher    *password.Hasher
	clientURL string
}

type ServiceDeps struct {
	AccountRepo accountStore
	Notifier    notifier.Notifier
	Signer      sessionSigner
	Hasher      *password.Hasher
	ClientURL   string
}

func NewService(deps ServiceDeps) Service {
	return &service{
		repo:      deps.AccountRepo,
		notifier:  deps.Notifier,
		signer:    deps.Signer,
		hasher:    deps.Hasher,
		clientURL: deps.ClientURL,
	}
}

func (s *service) Signup(ctx context.Context, req domain.SignupRequest) (*domain.Account, string, error) {
	if err := validate.Struct(&req); err != nil {
		return nil, "", fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}

	// Read-check-write window: a concurrent signup with the same email can
	// slip past this check; the email GSI lookup is the uniqueness backstop.
	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, "", fmt.Errorf("email already registered: %w", domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, "", err
	}
	verificationToken, err := pkgtoken.New()
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	a := &domain.Account{
		AccountID:             id.New(),
		Name:                  req.Name,
		Email:                 req.Email,
		PasswordHash:          hash,
		Verified:              false,
		VerificationToken:     verificationToken,
		VerificationExpiresAt: now.Add(domain.VerificationTokenTTL).Unix(),
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := s.repo.Put(ctx, a); err != nil {
		return nil, "", err
	}

	// The account is durable from here on: session issuance and email
	// delivery failures do not undo it.
	sessionToken, err := s.signer.Sign(a.AccountID)
	if err != nil {
		return nil, "", err
	}

	if err := s.notifier.SendVerificationEmail(ctx, a.Email, verificationToken); err != nil {
		slog.Warn("verification email not delivered", "account_id", a.AccountID, "err", err)
	}

	return a, sessionToken, nil
}

func (s *service) VerifyEmail(ctx context.Context, code string) (*domain.Account, error) {
	if code == "" {
		return nil, fmt.Errorf("code is required: %w", domain.ErrBadRequest)
	}
	a, err := s.repo.GetByVerificationToken(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidOrExpired
		}
		return nil, err
	}
	// An expired token is treated exactly like an unknown one.
	if a.VerificationExpiresAt < time.Now().Unix() {
		return nil, domain.ErrInvalidOrExpired
	}

	// Token consumption and the verified flag flip in a single update.
	err = s.repo.Update(ctx, a.AccountID,
		map[string]interface{}{fieldVerified: true},
		[]string{fieldVerificationToken, fieldVerificationExpiresAt},
	)
	if err != nil {
		return nil, err
	}
	a.Verified = true
	a.VerificationToken = ""
	a.VerificationExpiresAt = 0

	if err := s.notifier.SendWelcomeEmail(ctx, a.Email, a.Name); err != nil {
		slog.Warn("welcome email not delivered", "account_id", a.AccountID, "err", err)
	}

	return a, nil
}

func (s *service) Login(ctx context.Context, req domain.LoginRequest) (*domain.Account, string, error) {
	if err := validate.Struct(&req); err != nil {
		return nil, "", fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}

	a, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Same error as a password mismatch: never reveal whether the
			// email exists.
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}
	ok, err := s.hasher.Verify(req.Password, a.PasswordHash)
	if err != nil {
		return nil, "", fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return nil, "", domain.ErrInvalidCredentials
	}

	sessionToken, err := s.signer.Sign(a.AccountID)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	if err := s.repo.Update(ctx, a.AccountID, map[string]interface{}{fieldLastLoginAt: now}, nil); err != nil {
		return nil, "", err
	}
	a.LastLoginAt = &now

	return a, sessionToken, nil
}

func (s *service) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("email is required: %w", domain.ErrBadRequest)
	}
	a, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Reveals account existence, unlike login. Kept as-is: the
			// reference behavior is an explicit product decision.
			return fmt.Errorf("user not found: %w", domain.ErrNotFound)
		}
		return err
	}

	resetToken, err := pkgtoken.New()
	if err != nil {
		return err
	}
	err = s.repo.Update(ctx, a.AccountID, map[string]interface{}{
		fieldResetToken:     resetToken,
		fieldResetExpiresAt: time.Now().Add(domain.ResetTokenTTL).Unix(),
	}, nil)
	if err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", s.clientURL, resetToken)
	if err := s.notifier.SendPasswordResetEmail(ctx, a.Email, resetURL); err != nil {
		slog.Warn("password reset email not delivered", "account_id", a.AccountID, "err", err)
	}

	return nil
}

func (s *service) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return fmt.Errorf("token is required: %w", domain.ErrBadRequest)
	}
	if len(newPassword) < 8 {
		return fmt.Errorf("password must be at least 8 characters: %w", domain.ErrBadRequest)
	}

	a, err := s.repo.GetByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrInvalidOrExpired
		}
		return err
	}
	if a.ResetExpiresAt < time.Now().Unix() {
		return domain.ErrInvalidOrExpired
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	// New hash and token consumption land in one update, so the token is
	// invalid from here on even if the confirmation email below fails.
	err = s.repo.Update(ctx, a.AccountID,
		map[string]interface{}{fieldPasswordHash: hash},
		[]string{fieldResetToken, fieldResetExpiresAt},
	)
	if err != nil {
		return err
	}

	if err := s.notifier.SendPasswordResetSuccessEmail(ctx, a.Email); err != nil {
		slog.Warn("reset confirmation email not delivered", "account_id", a.AccountID, "err", err)
	}

	return nil
}

func (s *service) CheckAuth(ctx context.Context, accountID string) (*domain.Account, error) {
	a, err := s.repo.Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("account not found: %w", domain.ErrUnauthorized)
		}
		return nil, err
	}
	return a, nil
}
