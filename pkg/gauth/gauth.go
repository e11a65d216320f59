// Package gauth builds Google API credentials from a base64 encoded service
// account key, optionally impersonating a workspace user.
package gauth

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

var ErrMissingKey = errors.New("gauth: service account key is empty")

// DecodeKey decodes a base64 service account key into its JSON form.
func DecodeKey(encoded string) ([]byte, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil, ErrMissingKey
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("gauth: decode key: %w", err)
	}
	return data, nil
}

// TokenSource returns a token source for the service account in credentialsJSON.
// When subject is set the account acts on behalf of that user.
func TokenSource(ctx context.Context, credentialsJSON []byte, subject string, scopes ...string) (oauth2.TokenSource, error) {
	cfg, err := google.JWTConfigFromJSON(credentialsJSON, scopes...)
	if err != nil {
		return nil, fmt.Errorf("gauth: parse service account: %w", err)
	}
	cfg.Subject = subject
	return cfg.TokenSource(ctx), nil
}

// ClientOption decodes encodedKey and returns it as an API client option.
func ClientOption(ctx context.Context, encodedKey, subject string, scopes ...string) (option.ClientOption, error) {
	data, err := DecodeKey(encodedKey)
	if err != nil {
		return nil, err
	}
	ts, err := TokenSource(ctx, data, subject, scopes...)
	if err != nil {
		return nil, err
	}
	return option.WithTokenSource(ts), nil
}
