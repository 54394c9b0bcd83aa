package interfaces

import (
	"context"
	"math/big"

	"github.com/warpmint/framepay/internal/domain"
	"github.com/warpmint/framepay/internal/domain/models"
)

// PaymentClient talks to the payment-abstraction session API.
type PaymentClient interface {
	// CreateSession creates a payment session and returns it with the
	// unsigned transaction the payer's wallet must sign.
	CreateSession(ctx context.Context, req *models.CreateSessionRequest) (*domain.PaymentSession, error)

	// GetSessionByID retrieves a session by its opaque id.
	GetSessionByID(ctx context.Context, sessionID string) (*domain.PaymentSession, error)

	// GetSessionByPaymentTransaction finds the session whose payment
	// transaction matches txHash on chainID.
	GetSessionByPaymentTransaction(ctx context.Context, chainID, txHash string) (*domain.PaymentSession, error)

	// WaitForSession blocks until the session settles or the wait bound
	// expires.
	WaitForSession(ctx context.Context, sessionID string) (*domain.PaymentSession, error)
}

// SocialGraphClient talks to the social-graph user API.
type SocialGraphClient interface {
	UsersByFIDs(ctx context.Context, fids []int64) ([]domain.UserProfile, error)
	SearchUsers(ctx context.Context, query string, limit int) ([]domain.UserProfile, error)
	UsersByAddresses(ctx context.Context, addresses []string) (map[string][]domain.UserProfile, error)
}

// CollectorsClient talks to the NFT metadata API.
type CollectorsClient interface {
	TopCollectors(ctx context.Context, contract string, limit int) ([]models.TopCollector, error)
}

// ChainReader reads receipts and contract state from the destination chain.
type ChainReader interface {
	// WaitForMintReceipt waits for the receipt of txHash and decodes the
	// minted color from its logs.
	WaitForMintReceipt(ctx context.Context, txHash string) (*domain.MintReceipt, error)

	// ColorBalance reads balanceOf(owner) on the colors contract.
	ColorBalance(ctx context.Context, owner string) (*big.Int, error)
}

// StatusBroadcaster pushes session status updates to connected clients.
type StatusBroadcaster interface {
	BroadcastSessionStatus(update domain.SessionStatusUpdate)
}
