package confirm

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/warpmint/framepay/internal/domain"
	"github.com/warpmint/framepay/internal/domain/interfaces"
	"github.com/warpmint/framepay/internal/metrics"
)

type confirmService struct {
	payments    interfaces.PaymentClient
	broadcaster interfaces.StatusBroadcaster
	recorder    metrics.Recorder
	logger      zerolog.Logger
}

func NewConfirmService(
	payments interfaces.PaymentClient,
	broadcaster interfaces.StatusBroadcaster,
	recorder metrics.Recorder,
	logger zerolog.Logger,
) IConfirmService {
	return &confirmService{
		payments:    payments,
		broadcaster: broadcaster,
		recorder:    recorder,
		logger:      logger.With().Str("component", "confirm_service").Logger(),
	}
}

func (s *confirmService) Confirm(ctx context.Context, chainID, txHash string) *domain.ConfirmResult {
	startTime := time.Now()

	session, err := s.payments.GetSessionByPaymentTransaction(ctx, chainID, txHash)
	if err != nil {
		// Not found and transport errors alike mean "not settled yet as
		// far as we can tell"; the refresh button retries.
		s.logger.Debug().
			Err(err).
			Str("chain_id", chainID).
			Str("tx_hash", txHash).
			Msg("Session lookup did not resolve, staying pending")
		return s.pending(chainID, txHash)
	}

	if !session.Settled() {
		session, err = s.payments.WaitForSession(ctx, session.SessionID)
		if err != nil {
			s.logger.Debug().
				Err(err).
				Str("chain_id", chainID).
				Str("tx_hash", txHash).
				Msg("Session did not settle within wait, staying pending")
			return s.pending(chainID, txHash)
		}
	}

	s.logger.Info().
		Str("chain_id", chainID).
		Str("tx_hash", txHash).
		Str("session_id", session.SessionID).
		Str("sponsored_tx_hash", session.SponsoredTransactionHash).
		Dur("elapsed", time.Since(startTime)).
		Msg("Payment session settled")
	s.recorder.IncCounter("confirm_settled", map[string]string{"chain": chainID})
	s.recorder.ObserveLatency("confirm", time.Since(startTime), map[string]string{"chain": chainID})

	if s.broadcaster != nil {
		s.broadcaster.BroadcastSessionStatus(domain.SessionStatusUpdate{
			SessionID:                session.SessionID,
			ChainID:                  chainID,
			PaymentTransactionHash:   txHash,
			SponsoredTransactionHash: session.SponsoredTransactionHash,
			Status:                   domain.SessionStatusSettled,
			Timestamp:                time.Now(),
		})
	}

	return &domain.ConfirmResult{
		State:                    domain.ConfirmSettled,
		TxHash:                   txHash,
		SponsoredTransactionHash: session.SponsoredTransactionHash,
	}
}

func (s *confirmService) pending(chainID, txHash string) *domain.ConfirmResult {
	s.recorder.IncCounter("confirm_pending", map[string]string{"chain": chainID})
	return &domain.ConfirmResult{
		State:  domain.ConfirmSubmitted,
		TxHash: txHash,
	}
}
