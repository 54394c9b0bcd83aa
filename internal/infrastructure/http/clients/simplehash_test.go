package clients_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/warpmint/framepay/internal/domain"
	"github.com/warpmint/framepay/internal/infrastructure/http/clients"
	"github.com/warpmint/framepay/pkg/config"
)

func TestTopCollectors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/nfts/top_collectors/base/0xcontract", r.URL.Path)
		require.Equal(t, "5", r.URL.Query().Get("limit"))
		require.Equal(t, "sh-key", r.Header.Get("X-API-KEY"))
		_, _ = w.Write([]byte(`{
			"top_collectors": [
				{"owner_address": "0xaa", "owner_ens_name": "alice.eth", "total_copies_owned": 12},
				{"owner_address": "0xbb", "total_copies_owned": 7}
			]
		}`))
	}))
	defer srv.Close()

	client := clients.NewSimpleHashClient(config.SimpleHashConfig{
		BaseURL: srv.URL,
		APIKey:  "sh-key",
		Timeout: 2,
	}, zerolog.Nop())

	collectors, err := client.TopCollectors(context.Background(), "0xcontract", 5)
	require.NoError(t, err)
	require.Len(t, collectors, 2)
	require.Equal(t, "alice.eth", collectors[0].OwnerENSName)
	require.Equal(t, 7, collectors[1].TotalCopiesOwned)
}

func TestTopCollectorsErrorStatus(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := clients.NewSimpleHashClient(config.SimpleHashConfig{BaseURL: srv.URL, Timeout: 2}, zerolog.Nop())

	_, err := client.TopCollectors(context.Background(), "0xcontract", 5)
	require.ErrorIs(t, err, domain.ErrRemoteUnavailable)
	require.Equal(t, 1, calls, "leaderboard fetches are single-shot")
}
