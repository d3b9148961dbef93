package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/restaurant-admin/internal/domain"
	"github.com/heartmarshall/restaurant-admin/internal/service/account"
	"github.com/heartmarshall/restaurant-admin/pkg/ctxutil"
)

type accountService interface {
	Login(ctx context.Context, input account.LoginInput) (*account.LoginResult, error)
	Current(ctx context.Context, id domain.ID) (domain.LoginCredential, error)
	UpdateSettings(ctx context.Context, input account.SettingsInput) (domain.LoginCredential, error)
	List(ctx context.Context) ([]domain.LoginCredential, error)
	Create(ctx context.Context, input account.CreateInput) (domain.LoginCredential, error)
	Delete(ctx context.Context, id domain.ID) error
}

// AuthHandler serves login and credential endpoints.
type AuthHandler struct {
	svc      accountService
	tokenTTL time.Duration
	log      *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc accountService, tokenTTL time.Duration, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, tokenTTL: tokenTTL, log: logger.With("handler", "auth")}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	AccessToken string             `json:"accessToken"`
	ExpiresIn   int64              `json:"expiresIn"`
	Credential  credentialResponse `json:"credential"`
}

type settingsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createCredentialRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// credentialResponse never carries the password.
type credentialResponse struct {
	ID    domain.ID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func toCredentialResponse(c domain.LoginCredential) credentialResponse {
	return credentialResponse{ID: c.ID, Name: c.Name, Email: c.Email}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Login(r.Context(), account.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		AccessToken: result.AccessToken,
		ExpiresIn:   int64(h.tokenTTL.Seconds()),
		Credential:  toCredentialResponse(result.Credential),
	})
}

// Settings handles GET /settings/credentials. With auth enabled it shows the
// caller's own credential, otherwise the first stored one.
func (h *AuthHandler) Settings(w http.ResponseWriter, r *http.Request) {
	id, _ := ctxutil.CredentialIDFromCtx(r.Context())

	c, err := h.svc.Current(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCredentialResponse(c))
}

// UpdateSettings handles PUT /settings/credentials.
func (h *AuthHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, _ := ctxutil.CredentialIDFromCtx(r.Context())

	c, err := h.svc.UpdateSettings(r.Context(), account.SettingsInput{
		ID:       id,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCredentialResponse(c))
}

// ListCredentials handles GET /credentials.
func (h *AuthHandler) ListCredentials(w http.ResponseWriter, r *http.Request) {
	creds, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]credentialResponse, 0, len(creds))
	for _, c := range creds {
		out = append(out, toCredentialResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateCredential handles POST /credentials.
func (h *AuthHandler) CreateCredential(w http.ResponseWriter, r *http.Request) {
	var req createCredentialRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.svc.Create(r.Context(), account.CreateInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCredentialResponse(c))
}

// DeleteCredential handles DELETE /credentials/{id}. A caller cannot delete
// its own credential.
func (h *AuthHandler) DeleteCredential(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	if self, ok := ctxutil.CredentialIDFromCtx(r.Context()); ok && self == id {
		handleError(h.log, w, r, domain.NewValidationError("id", "cannot delete the signed-in credential"))
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
