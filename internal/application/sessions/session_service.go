package sessions

import (
	"context"

	"github.com/warpmint/framepay/internal/domain"
)

// ISessionService orchestrates payment session creation against the
// payment-abstraction API. No local state is written; the remote service
// owns every session.
type ISessionService interface {
	// CreateMintSession builds the mint (or batch mint) calldata for the
	// given colors and opens a session paid in the configured mint
	// currency.
	CreateMintSession(ctx context.Context, payer string, colors []string) (*domain.PaymentSession, error)

	// CreatePaymentSession opens a session transferring amount of
	// currency to recipient on chainID. The pairing must be supported.
	CreatePaymentSession(ctx context.Context, payer, recipient, chainID, currency, amount string) (*domain.PaymentSession, error)

	// GetSession retrieves a session by id.
	GetSession(ctx context.Context, sessionID string) (*domain.PaymentSession, error)
}
