// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 the flameconnect authors

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/deviantintegral/flameconnect-sub000/internal/cloud"
)

// GetPassword retrieves the account password from the environment or prompts
// the user without echoing input.
func GetPassword() (string, error) {
	if pw := os.Getenv("FLAMECONNECT_PASSWORD"); pw != "" {
		return pw, nil
	}

	fmt.Fprint(os.Stderr, "Password: ")

	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		// Fallback to regular input if terminal functions fail
		reader := bufio.NewReader(os.Stdin)
		password, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("failed to read password: %v", err)
		}
		fmt.Fprintln(os.Stderr)
		return strings.TrimSpace(password), nil
	}

	fmt.Fprintln(os.Stderr)
	return string(passwordBytes), nil
}

// newCloudClient builds an authenticated relay client from config plus the
// resolved password.
func newCloudClient() (*cloud.Client, error) {
	if cfg.Cloud.Email == "" {
		return nil, fmt.Errorf("no account email configured (set FLAMECONNECT_CLOUD_EMAIL)")
	}

	password, err := GetPassword()
	if err != nil {
		return nil, err
	}

	session := cloud.NewSession(cfg.Cloud.TokenURL, cloud.Credentials{
		Email:    cfg.Cloud.Email,
		Password: password,
		ClientID: cfg.Cloud.ClientID,
		Scope:    cfg.Cloud.Scope,
	}, nil)

	return cloud.NewClient(cfg.Cloud.APIBaseURL, session, logger), nil
}

// resolveFireID returns the fire to operate on: the --fire flag or config
// value if set, otherwise the account's only fire.
func resolveFireID(ctx context.Context, client *cloud.Client) (string, error) {
	if cfg.FireID != "" {
		return cfg.FireID, nil
	}

	fires, err := client.ListFires(ctx)
	if err != nil {
		return "", err
	}

	switch len(fires) {
	case 0:
		return "", fmt.Errorf("no fires registered to this account")
	case 1:
		return fires[0].FireID, nil
	default:
		return "", fmt.Errorf("account has %d fires; select one with --fire", len(fires))
	}
}
