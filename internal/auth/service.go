package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	apperrors "fitness-community-backend/internal/errors"
	"fitness-community-backend/internal/logger"

	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the JWT claims issued by the auth function
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Service verifies bearer tokens against the external auth function and
// extracts the acting user from verified tokens. Every call consults the
// auth function, so a revoked token stops working immediately.
type Service struct {
	authURL    string
	httpClient *http.Client
}

// NewService creates an auth service for the given auth function URL
func NewService(authURL string, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Service{
		authURL:    authURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type authenticateRequest struct {
	Token string `json:"token"`
}

type authenticateResponse struct {
	Result bool `json:"result"`
}

// Authenticate verifies a token with the auth function and returns the
// username the token was issued to. A network or decode failure surfaces
// as a dependency error so callers can map it to 503 rather than 403.
func (s *Service) Authenticate(ctx context.Context, token string) (string, error) {
	body, err := json.Marshal(authenticateRequest{Token: token})
	if err != nil {
		return "", fmt.Errorf("failed to marshal authenticate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.authURL+"/authenticate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create authenticate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		logger.New().WithError(err).Error("Auth function request failed")
		return "", apperrors.ErrAuthServiceUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.New().WithField("status", resp.StatusCode).Error("Auth function returned non-200")
		return "", apperrors.ErrAuthServiceUnavailable
	}

	var result authenticateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", apperrors.ErrAuthServiceUnavailable
	}
	if !result.Result {
		return "", apperrors.ErrTokenRejected
	}

	username, err := subjectOf(token)
	if err != nil {
		return "", apperrors.ErrTokenRejected
	}

	return username, nil
}

// subjectOf extracts the sub claim from a token the auth function has
// already verified. The signature is not re-checked here.
func subjectOf(token string) (string, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, &Claims{})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return claims.Subject, nil
}
