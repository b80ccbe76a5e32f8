// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 the flameconnect authors

package cloud

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// tokenExpiryMargin is subtracted from the advertised token lifetime so a
// token is never used in the last moments before the relay rejects it.
const tokenExpiryMargin = 30 * time.Second

// Credentials is the account identity used for the password-grant token
// request.
type Credentials struct {
	Email    string
	Password string
	ClientID string
	Scope    string
}

// Session acquires and caches bearer tokens for the relay API.
// Safe for concurrent use.
type Session struct {
	tokenURL    string
	credentials Credentials
	httpClient  *http.Client

	mu      sync.Mutex
	token   string
	expires time.Time
}

// NewSession creates a session against the given token endpoint.
func NewSession(tokenURL string, credentials Credentials, httpClient *http.Client) *Session {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Session{
		tokenURL:    tokenURL,
		credentials: credentials,
		httpClient:  httpClient,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Token returns a valid bearer token, fetching a fresh one when the cached
// token is missing or within the expiry margin.
func (s *Session) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && time.Now().Before(s.expires) {
		return s.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", s.credentials.Email)
	form.Set("password", s.credentials.Password)
	form.Set("client_id", s.credentials.ClientID)
	form.Set("scope", s.credentials.Scope)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", fmt.Errorf("parse token response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("token response missing access_token")
	}

	s.token = tr.AccessToken
	s.expires = time.Now().Add(time.Duration(tr.ExpiresIn)*time.Second - tokenExpiryMargin)

	return s.token, nil
}

// Invalidate discards the cached token so the next call fetches a fresh one.
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.expires = time.Time{}
}
