package models

import (
	"time"

	"github.com/warpmint/framepay/internal/domain"
)

// CreateSessionRequest is the payment session API's creation payload. The
// embedded transaction is what should execute on the destination chain;
// the service wraps it in a sponsored payment.
type CreateSessionRequest struct {
	PayerWalletAddress string             `json:"payerWalletAddress"`
	PaymentCurrency    string             `json:"paymentCurrency"`
	Transaction        TransactionRequest `json:"transaction"`
}

type TransactionRequest struct {
	ChainID string `json:"chainId"`
	To      string `json:"to"`
	Value   string `json:"value"`
	Input   string `json:"input"`
}

// SessionResponse is the wire shape of a payment session. Loosely typed
// JSON from the remote side is validated at the boundary via ToDomain.
type SessionResponse struct {
	SessionID                string               `json:"sessionId"`
	PayerWalletAddress       string               `json:"payerWalletAddress"`
	RecipientAddress         string               `json:"recipientAddress"`
	PaymentCurrency          string               `json:"paymentCurrency"`
	PaymentAmount            string               `json:"paymentAmount"`
	ChainID                  string               `json:"chainId"`
	Status                   string               `json:"status"`
	UnsignedTransaction      *TransactionRequest  `json:"unsignedTransaction"`
	SponsoredTransactionHash string               `json:"sponsoredTransactionHash"`
	CreatedAt                time.Time            `json:"createdAt"`
	UpdatedAt                time.Time            `json:"updatedAt"`
}

// ToDomain validates the response shape and converts it. A session without
// an id is malformed; requireUnsigned additionally demands the unsigned
// transaction (creation responses must carry one).
func (r *SessionResponse) ToDomain(requireUnsigned bool) (*domain.PaymentSession, error) {
	if r.SessionID == "" {
		return nil, domain.ErrMalformedResponse
	}
	if requireUnsigned && (r.UnsignedTransaction == nil || r.UnsignedTransaction.To == "") {
		return nil, domain.ErrMalformedResponse
	}

	session := &domain.PaymentSession{
		SessionID:                r.SessionID,
		PayerAddress:             r.PayerWalletAddress,
		RecipientAddress:         r.RecipientAddress,
		ChainID:                  r.ChainID,
		PaymentCurrency:          r.PaymentCurrency,
		PaymentAmount:            r.PaymentAmount,
		Status:                   domain.SessionStatus(r.Status),
		SponsoredTransactionHash: r.SponsoredTransactionHash,
		CreatedAt:                r.CreatedAt,
		UpdatedAt:                r.UpdatedAt,
	}
	if r.UnsignedTransaction != nil {
		session.UnsignedTransaction = &domain.UnsignedTransaction{
			ChainID: r.UnsignedTransaction.ChainID,
			To:      r.UnsignedTransaction.To,
			Value:   r.UnsignedTransaction.Value,
			Input:   r.UnsignedTransaction.Input,
		}
	}
	if session.Status == "" {
		if session.Settled() {
			session.Status = domain.SessionStatusSettled
		} else {
			session.Status = domain.SessionStatusPending
		}
	}
	return session, nil
}
