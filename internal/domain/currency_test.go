package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/warpmint/framepay/internal/domain"
)

func TestSupportedCurrency(t *testing.T) {
	usdc, ok := domain.SupportedCurrency("eip155:8453", "USDC")
	require.True(t, ok, "symbol lookup is case insensitive")
	require.Equal(t, 6, usdc.Decimals)
	require.False(t, usdc.Native)
	require.Equal(t, "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913", usdc.TokenAddress)

	eth, ok := domain.SupportedCurrency("eip155:1", "eth")
	require.True(t, ok)
	require.True(t, eth.Native)
	require.Empty(t, eth.TokenAddress)

	_, ok = domain.SupportedCurrency("eip155:42161", "degen")
	require.False(t, ok, "degen only exists on base")

	_, ok = domain.SupportedCurrency("eip155:999", "usdc")
	require.False(t, ok)
}

func TestSessionSettledBySponsoredHash(t *testing.T) {
	session := &domain.PaymentSession{SessionID: "sess-1", Status: domain.SessionStatusPending}
	require.False(t, session.Settled())

	session.SponsoredTransactionHash = "0xsponsored"
	require.True(t, session.Settled())
}
