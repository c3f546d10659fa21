// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/hmac"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/restful-users/internal/logger"
	"github.com/MKhiriev/restful-users/internal/response"
	"github.com/MKhiriev/restful-users/internal/utils"
	"github.com/MKhiriev/restful-users/models"
)

// hashHeader carries the hex HMAC-SHA256 of a request or response body.
const hashHeader = "HashSHA256"

type httpUsersAPI struct {
	client *utils.HTTPClient

	hashKey string
	token   string

	logger *logger.Logger
}

// NewHTTPUsersAPI constructs an HTTP/REST implementation of [UsersAPI].
// It normalises and validates baseURL. When hashKey is not empty request
// bodies are signed and response bodies verified with HMAC-SHA256.
//
// Returns an error if baseURL is empty or cannot be parsed as a valid URL.
func NewHTTPUsersAPI(baseURL string, timeout time.Duration, hashKey string, logger *logger.Logger) (UsersAPI, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid users api address: %w", err)
	}

	if hashKey != "" {
		utils.InitHasherPool(hashKey)
	}

	return &httpUsersAPI{
		client:  utils.NewHTTPClient(normalized, timeout),
		hashKey: hashKey,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpUsersAPI) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpUsersAPI) Token() string {
	return h.token
}

// Version implements [UsersAPI]. GET /api/version.
func (h *httpUsersAPI) Version(ctx context.Context) (map[string]string, error) {
	var out struct {
		Data map[string]string `json:"data"`
	}
	if err := h.do(h.request(ctx), http.MethodGet, "/api/version", &out); err != nil {
		return nil, fmt.Errorf("version request: %w", err)
	}
	return out.Data, nil
}

// Register implements [UsersAPI]. POST /api/user/register.
func (h *httpUsersAPI) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	r, err := h.withBody(h.request(ctx), req)
	if err != nil {
		return models.User{}, err
	}

	var out struct {
		Data models.User `json:"data"`
	}
	if err = h.do(r, http.MethodPost, "/api/user/register", &out); err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	return out.Data, nil
}

// Login implements [UsersAPI]. POST /api/user/login; the returned token is
// stored for later requests.
func (h *httpUsersAPI) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	r, err := h.withBody(h.request(ctx), req)
	if err != nil {
		return "", err
	}

	var out struct {
		Token     string `json:"token"`
		TokenType string `json:"token_type"`
	}
	if err = h.do(r, http.MethodPost, "/api/user/login", &out); err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}

	h.SetToken(out.Token)
	h.logger.Debug().Str("token_type", out.TokenType).Msg("logged in")
	return h.token, nil
}

// CurrentUser implements [UsersAPI]. GET /api/user.
func (h *httpUsersAPI) CurrentUser(ctx context.Context) (models.User, error) {
	var out struct {
		Data models.User `json:"data"`
	}
	if err := h.do(h.authedRequest(ctx), http.MethodGet, "/api/user", &out); err != nil {
		return models.User{}, fmt.Errorf("current user request: %w", err)
	}
	return out.Data, nil
}

// ListUsers implements [UsersAPI]. GET /api/users?page=&per_page=.
func (h *httpUsersAPI) ListUsers(ctx context.Context, page, perPage int) ([]models.User, response.Meta, error) {
	r := h.authedRequest(ctx).SetQueryParams(map[string]string{
		"page":     strconv.Itoa(page),
		"per_page": strconv.Itoa(perPage),
	})

	var out struct {
		Data      []models.User `json:"data"`
		Paginator response.Meta `json:"paginator"`
	}
	if err := h.do(r, http.MethodGet, "/api/users", &out); err != nil {
		return nil, response.Meta{}, fmt.Errorf("list users request: %w", err)
	}
	return out.Data, out.Paginator, nil
}

// GetUser implements [UsersAPI]. GET /api/users/{id}.
func (h *httpUsersAPI) GetUser(ctx context.Context, userID int64) (models.User, error) {
	r := h.authedRequest(ctx).SetPathParam("id", strconv.FormatInt(userID, 10))

	var out struct {
		Data models.User `json:"data"`
	}
	if err := h.do(r, http.MethodGet, "/api/users/{id}", &out); err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	return out.Data, nil
}

// DeleteUser implements [UsersAPI]. DELETE /api/users/{id}.
func (h *httpUsersAPI) DeleteUser(ctx context.Context, userID int64) error {
	r := h.authedRequest(ctx).SetPathParam("id", strconv.FormatInt(userID, 10))

	if err := h.do(r, http.MethodDelete, "/api/users/{id}", nil); err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}
	return nil
}

// ExportUsers implements [UsersAPI]. GET /api/users/export; the CSV file is
// returned as sent.
func (h *httpUsersAPI) ExportUsers(ctx context.Context) ([]byte, error) {
	resp, err := h.send(h.authedRequest(ctx).SetHeader("Accept", "text/csv"), http.MethodGet, "/api/users/export")
	if err != nil {
		return nil, fmt.Errorf("export users request: %w", err)
	}
	return resp.Body(), nil
}

func (h *httpUsersAPI) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *httpUsersAPI) authedRequest(ctx context.Context) *resty.Request {
	r := h.request(ctx)
	if h.token != "" {
		r.SetAuthToken(h.token)
	}
	return r
}

// withBody sets the JSON encoding of v as the request body and signs it.
func (h *httpUsersAPI) withBody(r *resty.Request, v any) (*resty.Request, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	r.SetHeader("Content-Type", "application/json").SetBody(payload)
	if h.hashKey != "" {
		r.SetHeader(hashHeader, hex.EncodeToString(utils.Hash(payload)))
	}
	return r, nil
}

// do sends the request and decodes a 2xx JSON body into out unless out is nil.
func (h *httpUsersAPI) do(r *resty.Request, method, path string, out any) error {
	resp, err := h.send(r, method, path)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

func (h *httpUsersAPI) send(r *resty.Request, method, path string) (*resty.Response, error) {
	resp, err := r.Execute(method, path)
	if err != nil {
		return nil, err
	}

	h.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Str("trace_id", resp.Header().Get("X-Trace-ID")).
		Msg("users api response")

	if err = h.verifyResponse(resp); err != nil {
		return nil, err
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// verifyResponse checks the HashSHA256 header when hashing is enabled and the
// server sent one.
func (h *httpUsersAPI) verifyResponse(resp *resty.Response) error {
	if h.hashKey == "" {
		return nil
	}

	received := resp.Header().Get(hashHeader)
	if received == "" {
		return nil
	}

	expected := hex.EncodeToString(utils.Hash(resp.Body()))
	if !hmac.Equal([]byte(expected), []byte(received)) {
		return ErrIntegrityCheckFailed
	}
	return nil
}
