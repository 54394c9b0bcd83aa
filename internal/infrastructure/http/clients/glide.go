package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/warpmint/framepay/internal/domain"
	"github.com/warpmint/framepay/internal/domain/interfaces"
	"github.com/warpmint/framepay/internal/domain/models"
	"github.com/warpmint/framepay/pkg/config"
)

type glideClient struct {
	baseURL      string
	projectID    string
	httpClient   *http.Client
	maxRetries   int
	retryDelay   time.Duration
	pollInterval time.Duration
	pollTimeout  time.Duration
	logger       zerolog.Logger
}

func NewGlideClient(cfg config.GlideConfig, logger zerolog.Logger) interfaces.PaymentClient {
	return &glideClient{
		baseURL:   cfg.BaseURL,
		projectID: cfg.ProjectID,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout(),
		},
		maxRetries:   cfg.MaxRetries,
		retryDelay:   cfg.RetryDelay(),
		pollInterval: cfg.PollInterval(),
		pollTimeout:  cfg.PollTimeout(),
		logger:       logger.With().Str("component", "glide_client").Logger(),
	}
}

func (c *glideClient) CreateSession(ctx context.Context, req *models.CreateSessionRequest) (*domain.PaymentSession, error) {
	var response models.SessionResponse
	if err := c.makeRequest(ctx, "POST", "/v1/sessions", req, &response); err != nil {
		return nil, fmt.Errorf("failed to create payment session: %w", err)
	}

	return response.ToDomain(true)
}

func (c *glideClient) GetSessionByID(ctx context.Context, sessionID string) (*domain.PaymentSession, error) {
	endpoint := fmt.Sprintf("/v1/sessions/%s", url.PathEscape(sessionID))

	var response models.SessionResponse
	if err := c.makeRequest(ctx, "GET", endpoint, nil, &response); err != nil {
		var statusErr *domain.HTTPStatusError
		if errors.As(err, &statusErr) && statusErr.Status == http.StatusNotFound {
			return nil, fmt.Errorf("session %s: %w", sessionID, domain.ErrSessionNotFound)
		}
		return nil, fmt.Errorf("failed to get session %s: %w", sessionID, err)
	}

	return response.ToDomain(false)
}

func (c *glideClient) GetSessionByPaymentTransaction(ctx context.Context, chainID, txHash string) (*domain.PaymentSession, error) {
	endpoint := fmt.Sprintf("/v1/sessions/by-payment-transaction?chainId=%s&txHash=%s",
		url.QueryEscape(chainID), url.QueryEscape(txHash))

	var response models.SessionResponse
	if err := c.makeRequest(ctx, "GET", endpoint, nil, &response); err != nil {
		var statusErr *domain.HTTPStatusError
		if errors.As(err, &statusErr) && statusErr.Status == http.StatusNotFound {
			return nil, fmt.Errorf("payment transaction %s: %w", txHash, domain.ErrSessionNotFound)
		}
		return nil, fmt.Errorf("failed to look up session by payment transaction %s: %w", txHash, err)
	}

	return response.ToDomain(false)
}

// WaitForSession polls the session until it carries a sponsored transaction
// hash. The wait is bounded by the configured poll timeout; expiry surfaces
// as ErrSessionNotFound so the caller folds it into the pending state.
func (c *glideClient) WaitForSession(ctx context.Context, sessionID string) (*domain.PaymentSession, error) {
	waitCtx, cancel := context.WithTimeout(ctx, c.pollTimeout)
	defer cancel()

	for {
		session, err := c.GetSessionByID(waitCtx, sessionID)
		if err != nil {
			return nil, err
		}
		if session.Settled() {
			return session, nil
		}
		if session.Status == domain.SessionStatusFailed {
			return nil, fmt.Errorf("session %s failed: %w", sessionID, domain.ErrRemoteUnavailable)
		}

		select {
		case <-waitCtx.Done():
			c.logger.Warn().
				Str("session_id", sessionID).
				Dur("poll_timeout", c.pollTimeout).
				Msg("Session did not settle within wait bound")
			return nil, fmt.Errorf("session %s did not settle in time: %w", sessionID, domain.ErrSessionNotFound)
		case <-time.After(c.pollInterval):
		}
	}
}

// makeRequest makes an HTTP request with retries. Server errors are
// retried with exponential backoff; client errors fail fast.
func (c *glideClient) makeRequest(ctx context.Context, method, endpoint string, body interface{}, response interface{}) error {
	fullURL := c.baseURL + endpoint

	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.retryDelay * time.Duration(1<<(attempt-1))): // Exponential backoff
			}
		}

		var reqBody []byte
		var err error

		if body != nil {
			reqBody, err = json.Marshal(body)
			if err != nil {
				return fmt.Errorf("failed to marshal request body: %w", err)
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, fullURL, bytes.NewReader(reqBody))
		if err != nil {
			lastErr = fmt.Errorf("failed to create request: %w", err)
			continue
		}

		req.Header.Set("Content-Type", "application/json")
		if c.projectID != "" {
			req.Header.Set("X-Project-Id", c.projectID)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed: %w", err)
			c.logger.Warn().Err(err).Int("attempt", attempt+1).Str("url", fullURL).Msg("Session API request failed, retrying")
			continue
		}

		respBody, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = fmt.Errorf("failed to read response body: %w", readErr)
			continue
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			if response != nil {
				if err := json.Unmarshal(respBody, response); err != nil {
					return fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
				}
			}
			return nil
		}

		if resp.StatusCode >= 500 {
			lastErr = &domain.HTTPStatusError{Status: resp.StatusCode, Body: string(respBody)}
			c.logger.Warn().Int("status", resp.StatusCode).Int("attempt", attempt+1).Str("url", fullURL).Msg("Session API server error, retrying")
			continue
		}

		// Client errors (4xx) - don't retry
		return &domain.HTTPStatusError{Status: resp.StatusCode, Body: string(respBody)}
	}

	c.logger.Error().Err(lastErr).Str("url", fullURL).Int("max_retries", c.maxRetries).Msg("Session API request failed after all retries")
	return fmt.Errorf("request failed after %d retries: %w", c.maxRetries, lastErr)
}
