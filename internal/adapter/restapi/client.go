// Package restapi is the HTTP variant of the entity stores: the same CRUD
// contract, served by a remote restaurant-admin API.
//
// Reads degrade: Load yields an empty collection and GetByID yields not-found
// when the request fails. Writes log the failure and return it.
package restapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/heartmarshall/restaurant-admin/internal/config"
)

// Client is a configured HTTP client for the admin API.
type Client struct {
	http *resty.Client
	log  *slog.Logger
}

// New creates a client for cfg.BaseURL with JSON content type and
// cfg.Timeout per request.
func New(cfg config.APIConfig, log *slog.Logger) *Client {
	c := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetTimeout(cfg.Timeout)

	return &Client{http: c, log: log.With("adapter", "restapi")}
}

// SetToken sends token as a bearer token on every subsequent request.
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.http.R().SetContext(ctx)
}

// check turns a resty outcome into an error: transport errors and non-2xx
// statuses both fail.
func check(resp *resty.Response, err error, method, path string) error {
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
	}
	return nil
}

func isNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

func decode[T any](resp *resty.Response, method, path string) (T, error) {
	var out T
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return out, fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return out, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

// Login exchanges credentials for an access token and uses it for later
// requests.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	const path = "/auth/login"

	resp, err := c.request(ctx).SetBody(loginRequest{Email: email, Password: password}).Post(path)
	if err := check(resp, err, http.MethodPost, path); err != nil {
		c.log.ErrorContext(ctx, "login failed", slog.String("error", err.Error()))
		return "", err
	}

	out, err := decode[loginResponse](resp, http.MethodPost, path)
	if err != nil {
		return "", err
	}
	c.SetToken(out.AccessToken)
	return out.AccessToken, nil
}
