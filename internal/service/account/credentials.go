package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/restaurant-admin/internal/domain"
)

// List returns every credential. Password fields carry stored hashes and
// must not be rendered.
func (s *Service) List(ctx context.Context) ([]domain.LoginCredential, error) {
	creds, err := s.credentials.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("account.List: %w", err)
	}
	return creds, nil
}

// Get returns the credential or domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, id domain.ID) (domain.LoginCredential, error) {
	c, ok, err := s.credentials.GetByID(ctx, id)
	if err != nil {
		return domain.LoginCredential{}, fmt.Errorf("account.Get: %w", err)
	}
	if !ok {
		return domain.LoginCredential{}, fmt.Errorf("credential %s: %w", id, domain.ErrNotFound)
	}
	return c, nil
}

// Current returns the credential the settings form edits: the one with the
// given id, or the first stored credential when id is zero.
func (s *Service) Current(ctx context.Context, id domain.ID) (domain.LoginCredential, error) {
	if id != 0 {
		return s.Get(ctx, id)
	}
	creds, err := s.List(ctx)
	if err != nil {
		return domain.LoginCredential{}, err
	}
	if len(creds) == 0 {
		return domain.LoginCredential{}, fmt.Errorf("no credentials: %w", domain.ErrNotFound)
	}
	return creds[0], nil
}

// Create adds a credential with a hashed password. The email must not be
// taken by another credential.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.LoginCredential, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return domain.LoginCredential{}, err
	}

	if err := s.ensureEmailFree(ctx, input.Email, 0); err != nil {
		return domain.LoginCredential{}, err
	}

	hash, err := s.hash(input.Password)
	if err != nil {
		return domain.LoginCredential{}, fmt.Errorf("account.Create: %w", err)
	}

	c, err := s.credentials.Add(ctx, domain.LoginCredential{
		Name:     input.Name,
		Email:    input.Email,
		Password: hash,
	})
	if err != nil {
		return domain.LoginCredential{}, fmt.Errorf("account.Create: %w", err)
	}

	s.log.InfoContext(ctx, "credential created", slog.String("credential_id", c.ID.String()))
	return c, nil
}

// UpdateSettings replaces the email and password of the targeted credential.
func (s *Service) UpdateSettings(ctx context.Context, input SettingsInput) (domain.LoginCredential, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return domain.LoginCredential{}, err
	}

	current, err := s.Current(ctx, input.ID)
	if err != nil {
		return domain.LoginCredential{}, err
	}

	if err := s.ensureEmailFree(ctx, input.Email, current.ID); err != nil {
		return domain.LoginCredential{}, err
	}

	hash, err := s.hash(input.Password)
	if err != nil {
		return domain.LoginCredential{}, fmt.Errorf("account.UpdateSettings: %w", err)
	}

	ok, err := s.credentials.Update(ctx, current.ID, domain.LoginCredentialPatch{
		Email:    &input.Email,
		Password: &hash,
	})
	if err != nil {
		return domain.LoginCredential{}, fmt.Errorf("account.UpdateSettings: %w", err)
	}
	if !ok {
		return domain.LoginCredential{}, fmt.Errorf("credential %s: %w", current.ID, domain.ErrNotFound)
	}

	s.log.InfoContext(ctx, "credential settings updated", slog.String("credential_id", current.ID.String()))
	return s.Get(ctx, current.ID)
}

// Delete removes a credential. Deleting a missing credential is a no-op.
func (s *Service) Delete(ctx context.Context, id domain.ID) error {
	if err := s.credentials.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("account.Delete: %w", err)
	}
	s.log.InfoContext(ctx, "credential deleted", slog.String("credential_id", id.String()))
	return nil
}

func (s *Service) ensureEmailFree(ctx context.Context, email string, self domain.ID) error {
	creds, err := s.credentials.Load(ctx)
	if err != nil {
		return fmt.Errorf("load credentials: %w", err)
	}
	for _, c := range creds {
		if c.ID != self && strings.EqualFold(c.Email, email) {
			return fmt.Errorf("email %s: %w", email, domain.ErrAlreadyExists)
		}
	}
	return nil
}

func (s *Service) hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}
