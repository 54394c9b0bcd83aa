package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/warpmint/framepay/internal/domain"
	"github.com/warpmint/framepay/internal/domain/interfaces"
	"github.com/warpmint/framepay/internal/domain/models"
	"github.com/warpmint/framepay/pkg/config"
)

type neynarClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	maxRetries int
	retryDelay time.Duration
	logger     zerolog.Logger
}

func NewNeynarClient(cfg config.NeynarConfig, logger zerolog.Logger) interfaces.SocialGraphClient {
	return &neynarClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout(),
		},
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay(),
		logger:     logger.With().Str("component", "neynar_client").Logger(),
	}
}

func (c *neynarClient) UsersByFIDs(ctx context.Context, fids []int64) ([]domain.UserProfile, error) {
	parts := make([]string, len(fids))
	for i, fid := range fids {
		parts[i] = strconv.FormatInt(fid, 10)
	}
	endpoint := "/user/bulk?fids=" + url.QueryEscape(strings.Join(parts, ","))

	var response models.UserBulkResponse
	if err := c.fetchJSON(ctx, endpoint, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch users by fids: %w", err)
	}

	return toProfiles(response.Users), nil
}

func (c *neynarClient) SearchUsers(ctx context.Context, query string, limit int) ([]domain.UserProfile, error) {
	endpoint := fmt.Sprintf("/user/search?q=%s&limit=%d", url.QueryEscape(query), limit)

	var response models.UserSearchResponse
	if err := c.fetchJSON(ctx, endpoint, &response); err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	return toProfiles(response.Result.Users), nil
}

func (c *neynarClient) UsersByAddresses(ctx context.Context, addresses []string) (map[string][]domain.UserProfile, error) {
	endpoint := "/user/bulk-by-address?addresses=" + url.QueryEscape(strings.Join(addresses, ","))

	var response models.UsersByAddressResponse
	if err := c.fetchJSON(ctx, endpoint, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch users by addresses: %w", err)
	}

	result := make(map[string][]domain.UserProfile, len(response))
	for address, users := range response {
		result[strings.ToLower(address)] = toProfiles(users)
	}
	return result, nil
}

func (c *neynarClient) fetchJSON(ctx context.Context, endpoint string, response interface{}) error {
	body, err := c.fetchWithRetry(ctx, c.baseURL+endpoint)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, response); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	return nil
}

// fetchWithRetry performs one GET with rate-limit retries: HTTP 429 is
// retried with a doubling delay, any other non-2xx status fails
// immediately, and exhausting all retries on 429 is a typed terminal
// failure rather than a silent nil.
func (c *neynarClient) fetchWithRetry(ctx context.Context, fullURL string) ([]byte, error) {
	delay := c.retryDelay

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Accept", "application/json")
		if c.apiKey != "" {
			req.Header.Set("api_key", c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("request failed: %w", err)
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			if readErr != nil {
				return nil, fmt.Errorf("failed to read response body: %w", readErr)
			}
			return body, nil
		}

		if resp.StatusCode == http.StatusTooManyRequests && attempt < c.maxRetries-1 {
			c.logger.Warn().
				Int("attempt", attempt+1).
				Dur("delay", delay).
				Str("url", fullURL).
				Msg("Rate limited, retrying after delay")

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			break
		}

		return nil, &domain.HTTPStatusError{Status: resp.StatusCode, Body: string(body)}
	}

	c.logger.Error().Str("url", fullURL).Int("max_retries", c.maxRetries).Msg("Still rate limited after all retries")
	return nil, fmt.Errorf("%w after %d attempts", domain.ErrRetriesExhausted, c.maxRetries)
}

func toProfiles(users []models.User) []domain.UserProfile {
	profiles := make([]domain.UserProfile, len(users))
	for i := range users {
		profiles[i] = users[i].ToDomain()
	}
	return profiles
}
