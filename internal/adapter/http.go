// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/volcano-api/internal/config"
	"github.com/MKhiriev/volcano-api/internal/logger"
	"github.com/MKhiriev/volcano-api/internal/utils"
	"github.com/MKhiriev/volcano-api/internal/validators"
	"github.com/MKhiriev/volcano-api/models"
	"github.com/go-resty/resty/v2"
)

type httpAPIClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIClient constructs the resty implementation of [APIClient]. It
// normalises the base URL from cfg.HTTPAddress and applies cfg.RequestTimeout
// to every request.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPAPIClient(cfg config.Adapter, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.SetError(&models.ErrorResponse{})

	return &httpAPIClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [APIClient].
func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [APIClient].
func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [APIClient]. POST /user/register.
func (h *httpAPIClient) Register(ctx context.Context, credentials models.Credentials) error {
	var created models.MessageResponse

	resp, err := h.request(ctx).
		SetBody(credentials).
		SetResult(&created).
		Post("/user/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [APIClient]. POST /user/login; the token of a successful
// login is kept for later requests.
func (h *httpAPIClient) Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error) {
	var login models.LoginResponse

	resp, err := h.request(ctx).
		SetBody(credentials).
		SetResult(&login).
		Post("/user/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}
	if login.Token == "" {
		return models.LoginResponse{}, fmt.Errorf("%w: login returned no token", ErrUnexpectedReply)
	}

	h.SetToken(login.Token)
	h.logger.Debug().Str("email", credentials.Email).Int64("expires_in", login.ExpiresIn).Msg("logged in")

	return login, nil
}

// Countries implements [APIClient]. GET /countries.
func (h *httpAPIClient) Countries(ctx context.Context) ([]models.Country, error) {
	countries := []models.Country{}
	if err := h.get(ctx, "/countries", nil, &countries); err != nil {
		return nil, fmt.Errorf("countries request: %w", err)
	}
	return countries, nil
}

// Me implements [APIClient]. GET /me.
func (h *httpAPIClient) Me(ctx context.Context) (models.Operator, error) {
	var operator models.Operator
	if err := h.get(ctx, "/me", nil, &operator); err != nil {
		return models.Operator{}, fmt.Errorf("me request: %w", err)
	}
	return operator, nil
}

// Volcanoes implements [APIClient]. GET /volcanoes.
func (h *httpAPIClient) Volcanoes(ctx context.Context, filter models.VolcanoFilter) ([]models.VolcanoSummary, error) {
	query := url.Values{}
	query.Set(validators.QueryCountry, filter.Country)
	if filter.PopulatedWithin != "" {
		query.Set(validators.QueryPopulatedWithin, string(filter.PopulatedWithin))
	}

	volcanoes := []models.VolcanoSummary{}
	if err := h.get(ctx, "/volcanoes", query, &volcanoes); err != nil {
		return nil, fmt.Errorf("volcanoes request: %w", err)
	}
	return volcanoes, nil
}

// Volcano implements [APIClient]. GET /volcano/{id}.
func (h *httpAPIClient) Volcano(ctx context.Context, id int64) (models.VolcanoDetails, error) {
	var volcano models.VolcanoDetails
	if err := h.get(ctx, "/volcano/"+strconv.FormatInt(id, 10), nil, &volcano); err != nil {
		return models.VolcanoDetails{}, fmt.Errorf("volcano request: %w", err)
	}
	return volcano, nil
}

// Profile implements [APIClient]. GET /user/{email}/profile.
func (h *httpAPIClient) Profile(ctx context.Context, email string) (models.Profile, error) {
	var profile models.Profile
	if err := h.get(ctx, profilePath(email), nil, &profile); err != nil {
		return models.Profile{}, fmt.Errorf("profile request: %w", err)
	}
	return profile, nil
}

// UpdateProfile implements [APIClient]. PUT /user/{email}/profile.
func (h *httpAPIClient) UpdateProfile(ctx context.Context, email string, req models.ProfileUpdateRequest) (models.Profile, error) {
	var profile models.Profile

	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&profile).
		Put(profilePath(email))
	if err != nil {
		return models.Profile{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

func (h *httpAPIClient) get(ctx context.Context, path string, query url.Values, result any) error {
	req := h.request(ctx).SetResult(result)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return err
	}

	return mapHTTPError(resp)
}

// request starts a request carrying the stored token, if any.
func (h *httpAPIClient) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func profilePath(email string) string {
	return "/user/" + url.PathEscape(email) + "/profile"
}
