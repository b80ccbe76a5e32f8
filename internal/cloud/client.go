// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 the flameconnect authors

// Package cloud is the transport collaborator for the parameter codec: it
// talks to the FlameConnect relay over HTTPS, converting between the JSON
// base64 envelope the relay speaks and the raw frames the codec consumes.
package cloud

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/deviantintegral/flameconnect-sub000/pkg/flameconnect"
)

// StatusError reports a non-2xx relay response.
type StatusError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("relay returned HTTP %d: %s", e.StatusCode, e.Body)
}

// Fire is one fireplace on the account.
type Fire struct {
	FireID       string `json:"FireId"`
	FriendlyName string `json:"FriendlyName"`
}

// wireParameter is one envelope entry: numeric parameter id plus the
// base64-encoded wire frame.
type wireParameter struct {
	ParameterID uint16 `json:"ParameterId"`
	Value       string `json:"Value"`
}

// writeRequest is the relay's write payload.
type writeRequest struct {
	FireID     string          `json:"FireId"`
	Parameters []wireParameter `json:"Parameters"`
}

// Client reads and writes fireplace parameters through the relay.
type Client struct {
	baseURL    string
	session    *Session
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a relay client. A nil logger disables logging.
func NewClient(baseURL string, session *Session, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		session:    session,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
}

// ListFires returns the fires registered to the account.
func (c *Client) ListFires(ctx context.Context) ([]Fire, error) {
	body, err := c.get(ctx, c.baseURL+"/Fires")
	if err != nil {
		return nil, err
	}

	var fires []Fire
	if err := json.Unmarshal(body, &fires); err != nil {
		return nil, fmt.Errorf("parse fires response: %w", err)
	}
	return fires, nil
}

// ReadParameters fetches and decodes all parameters for a fire. Entries that
// fail to decode are logged and skipped; the rest of the batch is returned.
func (c *Client) ReadParameters(ctx context.Context, fireID string) ([]flameconnect.Parameter, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/Fires/%s/Parameters", c.baseURL, fireID))
	if err != nil {
		return nil, err
	}

	var entries []wireParameter
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("parse parameters response: %w", err)
	}

	params := make([]flameconnect.Parameter, 0, len(entries))
	for _, entry := range entries {
		raw, err := base64.StdEncoding.DecodeString(entry.Value)
		if err != nil {
			c.logger.Warn("skipping parameter with invalid base64",
				zap.Uint16("parameter_id", entry.ParameterID),
				zap.Error(err))
			continue
		}

		param, err := flameconnect.DecodeParameter(flameconnect.ParameterID(entry.ParameterID), raw)
		if err != nil {
			c.logger.Warn("skipping parameter that failed to decode",
				zap.Uint16("parameter_id", entry.ParameterID),
				zap.Error(err))
			continue
		}

		params = append(params, param)
	}

	return params, nil
}

// ReadParameter fetches one parameter kind, or nil if the fire does not
// report it.
func (c *Client) ReadParameter(ctx context.Context, fireID string, id flameconnect.ParameterID) (flameconnect.Parameter, error) {
	params, err := c.ReadParameters(ctx, fireID)
	if err != nil {
		return nil, err
	}
	for _, p := range params {
		if p.ID() == id {
			return p, nil
		}
	}
	return nil, nil
}

// WriteParameters encodes and writes the given parameters. A read-only
// parameter in the list aborts the whole write before anything is sent.
func (c *Client) WriteParameters(ctx context.Context, fireID string, params []flameconnect.Parameter) error {
	request := writeRequest{FireID: fireID, Parameters: make([]wireParameter, 0, len(params))}

	for _, param := range params {
		frame, err := flameconnect.EncodeParameter(param)
		if err != nil {
			return fmt.Errorf("encode parameter %d: %w", param.ID(), err)
		}
		request.Parameters = append(request.Parameters, wireParameter{
			ParameterID: uint16(param.ID()),
			Value:       base64.StdEncoding.EncodeToString(frame),
		})
	}

	payload, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("marshal write request: %w", err)
	}

	c.logger.Debug("writing parameters",
		zap.String("fire_id", fireID),
		zap.Int("count", len(request.Parameters)))

	_, err = c.post(ctx, c.baseURL+"/Fires/Parameters", payload)
	return err
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, url, nil)
}

func (c *Client) post(ctx context.Context, url string, payload []byte) ([]byte, error) {
	return c.do(ctx, http.MethodPost, url, payload)
}

func (c *Client) do(ctx context.Context, method, url string, payload []byte) ([]byte, error) {
	token, err := c.session.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire token: %w", err)
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Token may have been revoked server-side; force a refresh next call.
		c.session.Invalidate()
	}
	if resp.StatusCode >= 400 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	return body, nil
}
