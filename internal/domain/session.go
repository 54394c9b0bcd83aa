package domain

import "time"

type SessionStatus string

const (
	SessionStatusPending SessionStatus = "pending"
	SessionStatusSettled SessionStatus = "settled"
	SessionStatusFailed  SessionStatus = "failed"
)

// UnsignedTransaction is the transaction the payer's wallet co-signs. Its
// shape never changes after session creation; to/value/input are the sole
// contract with the wallet.
type UnsignedTransaction struct {
	ChainID string `json:"chainId"`
	To      string `json:"to"`
	Value   string `json:"value"`
	Input   string `json:"input"`
}

// PaymentSession is owned by the payment-abstraction service; this system
// only reads it. SponsoredTransactionHash is empty until the session
// settles on the destination chain.
type PaymentSession struct {
	SessionID                string               `json:"session_id"`
	PayerAddress             string               `json:"payer_address"`
	RecipientAddress         string               `json:"recipient_address"`
	ChainID                  string               `json:"chain_id"`
	PaymentCurrency          string               `json:"payment_currency"`
	PaymentAmount            string               `json:"payment_amount"`
	Status                   SessionStatus        `json:"status"`
	UnsignedTransaction      *UnsignedTransaction `json:"unsigned_transaction,omitempty"`
	SponsoredTransactionHash string               `json:"sponsored_transaction_hash,omitempty"`
	CreatedAt                time.Time            `json:"created_at"`
	UpdatedAt                time.Time            `json:"updated_at"`
}

func (s *PaymentSession) Settled() bool {
	return s.SponsoredTransactionHash != ""
}

// SessionStatusUpdate is broadcast over the status websocket when a
// session reaches a terminal state.
type SessionStatusUpdate struct {
	SessionID                string        `json:"session_id"`
	ChainID                  string        `json:"chain_id"`
	PaymentTransactionHash   string        `json:"payment_transaction_hash"`
	SponsoredTransactionHash string        `json:"sponsored_transaction_hash,omitempty"`
	Status                   SessionStatus `json:"status"`
	Timestamp                time.Time     `json:"timestamp"`
}
