// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 the flameconnect authors

package cloud

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deviantintegral/flameconnect-sub000/pkg/flameconnect"
)

func newTokenServer(t *testing.T, requests *int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests != nil {
			*requests++
		}

		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "password", r.Form.Get("grant_type"))
		assert.Equal(t, "user@example.com", r.Form.Get("username"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "test-token",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	}))
}

func testCredentials() Credentials {
	return Credentials{
		Email:    "user@example.com",
		Password: "hunter2",
		ClientID: "flameconnect-cli",
		Scope:    "fires.readwrite",
	}
}

func encodeFrame(t *testing.T, p flameconnect.Parameter) string {
	frame, err := flameconnect.EncodeParameter(p)
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(frame)
}

func TestSession_TokenCached(t *testing.T) {
	requests := 0
	tokenServer := newTokenServer(t, &requests)
	defer tokenServer.Close()

	session := NewSession(tokenServer.URL, testCredentials(), nil)

	ctx := context.Background()
	token1, err := session.Token(ctx)
	require.NoError(t, err)
	token2, err := session.Token(ctx)
	require.NoError(t, err)

	assert.Equal(t, "test-token", token1)
	assert.Equal(t, token1, token2)
	assert.Equal(t, 1, requests, "second call should hit the cache")

	session.Invalidate()
	_, err = session.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, requests, "invalidated session should refetch")
}

func TestSession_TokenErrorStatus(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusBadRequest)
	}))
	defer tokenServer.Close()

	session := NewSession(tokenServer.URL, testCredentials(), nil)

	_, err := session.Token(context.Background())
	require.Error(t, err)

	statusErr, ok := err.(*StatusError)
	require.True(t, ok, "expected StatusError, got %T", err)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
}

func TestClient_ReadParameters_SkipsBadEntries(t *testing.T) {
	tokenServer := newTokenServer(t, nil)
	defer tokenServer.Close()

	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "/Fires/fire-1/Parameters", r.URL.Path)

		entries := []wireParameter{
			{ParameterID: 321, Value: encodeFrame(t, flameconnect.Mode{Mode: flameconnect.ModeManual, Temperature: 22.5})},
			// Truncated frame: must be skipped, not abort the batch
			{ParameterID: 326, Value: base64.StdEncoding.EncodeToString([]byte{0x46, 0x01})},
			// Unknown id: skipped as well
			{ParameterID: 9999, Value: base64.StdEncoding.EncodeToString([]byte{0x0F, 0x27, 0x00})},
			{ParameterID: 369, Value: encodeFrame(t, flameconnect.Sound{Volume: 40, File: 1})},
		}
		json.NewEncoder(w).Encode(entries)
	}))
	defer apiServer.Close()

	session := NewSession(tokenServer.URL, testCredentials(), nil)
	client := NewClient(apiServer.URL, session, nil)

	params, err := client.ReadParameters(context.Background(), "fire-1")
	require.NoError(t, err)
	require.Len(t, params, 2)

	assert.Equal(t, flameconnect.Mode{Mode: flameconnect.ModeManual, Temperature: 22.5}, params[0])
	assert.Equal(t, flameconnect.Sound{Volume: 40, File: 1}, params[1])
}

func TestClient_WriteParameters_Envelope(t *testing.T) {
	tokenServer := newTokenServer(t, nil)
	defer tokenServer.Close()

	var received writeRequest
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/Fires/Parameters", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer apiServer.Close()

	session := NewSession(tokenServer.URL, testCredentials(), nil)
	client := NewClient(apiServer.URL, session, nil)

	err := client.WriteParameters(context.Background(), "fire-1", []flameconnect.Parameter{
		flameconnect.Mode{Mode: flameconnect.ModeManual, Temperature: 22.5},
	})
	require.NoError(t, err)

	assert.Equal(t, "fire-1", received.FireID)
	require.Len(t, received.Parameters, 1)
	assert.Equal(t, uint16(321), received.Parameters[0].ParameterID)

	raw, err := base64.StdEncoding.DecodeString(received.Parameters[0].Value)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x41, 0x01, 0x03, 0x01, 0x16, 0x05}, raw)
}

func TestClient_WriteParameters_ReadOnlyAborts(t *testing.T) {
	tokenServer := newTokenServer(t, nil)
	defer tokenServer.Close()

	called := false
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer apiServer.Close()

	session := NewSession(tokenServer.URL, testCredentials(), nil)
	client := NewClient(apiServer.URL, session, nil)

	err := client.WriteParameters(context.Background(), "fire-1", []flameconnect.Parameter{
		flameconnect.Mode{Mode: flameconnect.ModeOff},
		flameconnect.ErrorState{},
	})
	require.Error(t, err)
	assert.False(t, called, "a read-only parameter must abort before any request is sent")
}

func TestClient_ListFires(t *testing.T) {
	tokenServer := newTokenServer(t, nil)
	defer tokenServer.Close()

	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Fires", r.URL.Path)
		json.NewEncoder(w).Encode([]Fire{
			{FireID: "fire-1", FriendlyName: "Living room"},
			{FireID: "fire-2", FriendlyName: "Den"},
		})
	}))
	defer apiServer.Close()

	session := NewSession(tokenServer.URL, testCredentials(), nil)
	client := NewClient(apiServer.URL, session, nil)

	fires, err := client.ListFires(context.Background())
	require.NoError(t, err)
	require.Len(t, fires, 2)
	assert.Equal(t, "Living room", fires[0].FriendlyName)
}

func TestClient_StatusError(t *testing.T) {
	tokenServer := newTokenServer(t, nil)
	defer tokenServer.Close()

	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such fire", http.StatusNotFound)
	}))
	defer apiServer.Close()

	session := NewSession(tokenServer.URL, testCredentials(), nil)
	client := NewClient(apiServer.URL, session, nil)

	_, err := client.ReadParameters(context.Background(), "nope")
	require.Error(t, err)

	statusErr, ok := err.(*StatusError)
	require.True(t, ok, "expected StatusError, got %T", err)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "no such fire")
}
