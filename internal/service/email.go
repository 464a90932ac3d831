package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	apperrors "fitness-community-backend/internal/errors"
	"fitness-community-backend/internal/logger"
)

// EmailClient sends transactional email through the email function service
type EmailClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewEmailClient creates an email client for the given function service URL
func NewEmailClient(baseURL string, timeout time.Duration) *EmailClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &EmailClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type emailResult struct {
	Result bool `json:"result"`
}

// SendForgotPassword sends a forgot-password email containing the code
func (c *EmailClient) SendForgotPassword(ctx context.Context, email, firstName, code string) error {
	payload := map[string]string{
		"to":    email,
		"first": firstName,
		"code":  code,
	}
	return c.post(ctx, "/email/forgot-password", payload)
}

// SendActivation sends an account activation email containing the code
func (c *EmailClient) SendActivation(ctx context.Context, email, code string) error {
	payload := map[string]string{
		"to":   email,
		"code": code,
	}
	return c.post(ctx, "/email/activation", payload)
}

// SendWelcome sends a welcome email to a newly registered user
func (c *EmailClient) SendWelcome(ctx context.Context, email, firstName, username string) error {
	payload := map[string]string{
		"to":       email,
		"first":    firstName,
		"username": username,
	}
	return c.post(ctx, "/email/welcome", payload)
}

func (c *EmailClient) post(ctx context.Context, path string, payload map[string]string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.New().WithError(err).WithField("path", path).Error("Email function request failed")
		return apperrors.ErrEmailSendFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.New().WithField("status", resp.StatusCode).WithField("path", path).Error("Email function returned non-200")
		return apperrors.ErrEmailSendFailed
	}

	var result emailResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode email response: %w", err)
	}
	if !result.Result {
		return apperrors.ErrEmailSendFailed
	}
	return nil
}
