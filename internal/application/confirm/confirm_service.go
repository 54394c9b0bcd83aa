package confirm

import (
	"context"

	"github.com/warpmint/framepay/internal/domain"
)

// IConfirmService resolves the state of a submitted payment transaction.
// Each call performs exactly one lookup-then-wait cycle; the remote
// service is the source of truth, so concurrent polls for the same hash
// are idempotent.
type IConfirmService interface {
	// Confirm never returns an error: every failure folds into a
	// submitted (still pending) result carrying the hash forward, and the
	// user's refresh button is the retry trigger.
	Confirm(ctx context.Context, chainID, txHash string) *domain.ConfirmResult
}
