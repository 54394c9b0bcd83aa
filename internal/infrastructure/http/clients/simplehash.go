package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/warpmint/framepay/internal/domain"
	"github.com/warpmint/framepay/internal/domain/interfaces"
	"github.com/warpmint/framepay/internal/domain/models"
	"github.com/warpmint/framepay/pkg/config"
)

type simpleHashClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewSimpleHashClient(cfg config.SimpleHashConfig, logger zerolog.Logger) interfaces.CollectorsClient {
	return &simpleHashClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout(),
		},
		logger: logger.With().Str("component", "simplehash_client").Logger(),
	}
}

// TopCollectors retrieves the top holders of the contract. The leaderboard
// is decorative, so no retries here: a failed fetch degrades the frame, it
// does not block it.
func (c *simpleHashClient) TopCollectors(ctx context.Context, contract string, limit int) ([]models.TopCollector, error) {
	fullURL := fmt.Sprintf("%s/nfts/top_collectors/base/%s?limit=%d", c.baseURL, url.PathEscape(contract), limit)

	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-KEY", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch top collectors: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().Int("status", resp.StatusCode).Str("contract", contract).Msg("Top collectors request failed")
		return nil, &domain.HTTPStatusError{Status: resp.StatusCode, Body: string(body)}
	}

	var response models.TopCollectorsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	return response.TopCollectors, nil
}
