package http

import (
	"context"

	"github.com/go-auth-api/internal/domain"
)

// AccountRepository is the minimal interface the router requires from the
// account store: lookup by identity, by email, and by pending token, plus
// upsert and partial update. Expiry of token fields is enforced by the auth
// service at lookup time, not by the store.
type AccountRepository interface {
	Put(ctx context.Context, a *domain.Account) error
	Get(ctx context.Context, accountID string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByVerificationToken(ctx context.Context, token string) (*domain.Account, error)
	GetByResetToken(ctx context.Context, token string) (*domain.Account, error)
	Update(ctx context.Context, accountID string, sets map[string]interface{}, removes []string) error
}
