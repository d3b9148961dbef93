package account

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/restaurant-admin/internal/domain"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	AccessToken string
	Credential  domain.LoginCredential
}

// Login authenticates by email and password and issues an access token.
// Returns domain.ErrUnauthorized if the email is unknown or the password is
// wrong. A credential still holding a plaintext seed password is rehashed on
// its first successful login.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	creds, err := s.credentials.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("account.Login load credentials: %w", err)
	}

	var (
		cred  domain.LoginCredential
		found bool
	)
	for _, c := range creds {
		if strings.EqualFold(c.Email, input.Email) {
			cred, found = c, true
			break
		}
	}
	if !found {
		return nil, domain.ErrUnauthorized
	}

	legacy := !isBcryptHash(cred.Password)
	if !passwordMatches(cred.Password, input.Password) {
		return nil, domain.ErrUnauthorized
	}

	if legacy {
		s.upgradeLegacy(ctx, cred.ID, input.Password)
	}

	token, err := s.tokens.GenerateAccessToken(cred.ID, cred.Email)
	if err != nil {
		return nil, fmt.Errorf("account.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "credential logged in", slog.String("credential_id", cred.ID.String()))

	return &LoginResult{AccessToken: token, Credential: cred}, nil
}

// upgradeLegacy replaces a plaintext password with its hash. Failure is
// logged; the login itself already succeeded.
func (s *Service) upgradeLegacy(ctx context.Context, id domain.ID, password string) {
	hash, err := s.hash(password)
	if err == nil {
		_, err = s.credentials.Update(ctx, id, domain.LoginCredentialPatch{Password: &hash})
	}
	if err != nil {
		s.log.WarnContext(ctx, "rehash legacy password",
			slog.String("credential_id", id.String()),
			slog.String("error", err.Error()))
	}
}

func isBcryptHash(stored string) bool {
	return strings.HasPrefix(stored, "$2a$") ||
		strings.HasPrefix(stored, "$2b$") ||
		strings.HasPrefix(stored, "$2y$")
}

func passwordMatches(stored, given string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}
