// Package account manages admin login credentials: the settings form,
// password hashing and login.
package account

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/restaurant-admin/internal/config"
	"github.com/heartmarshall/restaurant-admin/internal/domain"
)

// credentialStore is the entity store contract for login credentials.
type credentialStore interface {
	Load(ctx context.Context) ([]domain.LoginCredential, error)
	Add(ctx context.Context, rec domain.LoginCredential) (domain.LoginCredential, error)
	Update(ctx context.Context, id domain.ID, patch domain.Patch[domain.LoginCredential]) (bool, error)
	GetByID(ctx context.Context, id domain.ID) (domain.LoginCredential, bool, error)
	DeleteByID(ctx context.Context, id domain.ID) error
}

// tokenIssuer issues access tokens for authenticated credentials.
type tokenIssuer interface {
	GenerateAccessToken(credentialID domain.ID, email string) (string, error)
}

// Service implements credential management and login.
type Service struct {
	log         *slog.Logger
	credentials credentialStore
	tokens      tokenIssuer
	cfg         config.AuthConfig
}

// NewService creates a new account service.
func NewService(logger *slog.Logger, credentials credentialStore, tokens tokenIssuer, cfg config.AuthConfig) *Service {
	return &Service{
		log:         logger.With("service", "account"),
		credentials: credentials,
		tokens:      tokens,
		cfg:         cfg,
	}
}
