package confirm_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/warpmint/framepay/internal/application/confirm"
	"github.com/warpmint/framepay/internal/domain"
	"github.com/warpmint/framepay/internal/domain/models"
	"github.com/warpmint/framepay/internal/metrics"
)

type fakePaymentClient struct {
	lookupSession *domain.PaymentSession
	lookupErr     error
	waitSession   *domain.PaymentSession
	waitErr       error
	lookupCalls   int
	waitCalls     int
}

func (f *fakePaymentClient) CreateSession(ctx context.Context, req *models.CreateSessionRequest) (*domain.PaymentSession, error) {
	return nil, errors.New("not used")
}

func (f *fakePaymentClient) GetSessionByID(ctx context.Context, sessionID string) (*domain.PaymentSession, error) {
	return nil, errors.New("not used")
}

func (f *fakePaymentClient) GetSessionByPaymentTransaction(ctx context.Context, chainID, txHash string) (*domain.PaymentSession, error) {
	f.lookupCalls++
	return f.lookupSession, f.lookupErr
}

func (f *fakePaymentClient) WaitForSession(ctx context.Context, sessionID string) (*domain.PaymentSession, error) {
	f.waitCalls++
	return f.waitSession, f.waitErr
}

type fakeBroadcaster struct {
	updates []domain.SessionStatusUpdate
}

func (f *fakeBroadcaster) BroadcastSessionStatus(update domain.SessionStatusUpdate) {
	f.updates = append(f.updates, update)
}

func TestConfirmUnknownHashStaysPending(t *testing.T) {
	payments := &fakePaymentClient{
		lookupErr: fmt.Errorf("payment transaction 0xabc: %w", domain.ErrSessionNotFound),
	}
	svc := confirm.NewConfirmService(payments, nil, metrics.NewNoopRecorder(), zerolog.Nop())

	result := svc.Confirm(context.Background(), "eip155:8453", "0xabc")

	require.Equal(t, domain.ConfirmSubmitted, result.State)
	require.Equal(t, "0xabc", result.TxHash, "pending result must carry the hash forward")
	require.Empty(t, result.SponsoredTransactionHash)
	require.Zero(t, payments.waitCalls)
}

func TestConfirmTransportErrorStaysPending(t *testing.T) {
	payments := &fakePaymentClient{lookupErr: domain.ErrRemoteUnavailable}
	svc := confirm.NewConfirmService(payments, nil, metrics.NewNoopRecorder(), zerolog.Nop())

	result := svc.Confirm(context.Background(), "eip155:8453", "0xabc")

	require.Equal(t, domain.ConfirmSubmitted, result.State)
	require.Equal(t, "0xabc", result.TxHash)
}

func TestConfirmAlreadySettledSkipsWait(t *testing.T) {
	payments := &fakePaymentClient{
		lookupSession: &domain.PaymentSession{
			SessionID:                "sess-1",
			Status:                   domain.SessionStatusSettled,
			SponsoredTransactionHash: "0xsponsored",
		},
	}
	broadcaster := &fakeBroadcaster{}
	svc := confirm.NewConfirmService(payments, broadcaster, metrics.NewNoopRecorder(), zerolog.Nop())

	result := svc.Confirm(context.Background(), "eip155:8453", "0xabc")

	require.Equal(t, domain.ConfirmSettled, result.State)
	require.Equal(t, "0xsponsored", result.SponsoredTransactionHash)
	require.Zero(t, payments.waitCalls, "settled sessions must not be re-waited")

	require.Len(t, broadcaster.updates, 1)
	require.Equal(t, "sess-1", broadcaster.updates[0].SessionID)
	require.Equal(t, "0xabc", broadcaster.updates[0].PaymentTransactionHash)
	require.Equal(t, domain.SessionStatusSettled, broadcaster.updates[0].Status)
}

func TestConfirmPendingSessionWaitsThroughToSettled(t *testing.T) {
	payments := &fakePaymentClient{
		lookupSession: &domain.PaymentSession{SessionID: "sess-1", Status: domain.SessionStatusPending},
		waitSession: &domain.PaymentSession{
			SessionID:                "sess-1",
			Status:                   domain.SessionStatusSettled,
			SponsoredTransactionHash: "0xsponsored",
		},
	}
	svc := confirm.NewConfirmService(payments, nil, metrics.NewNoopRecorder(), zerolog.Nop())

	result := svc.Confirm(context.Background(), "eip155:8453", "0xabc")

	require.Equal(t, 1, payments.lookupCalls)
	require.Equal(t, 1, payments.waitCalls)
	require.Equal(t, domain.ConfirmSettled, result.State)
	require.Equal(t, "0xabc", result.TxHash)
	require.Equal(t, "0xsponsored", result.SponsoredTransactionHash)
}

func TestConfirmWaitFailureStaysPending(t *testing.T) {
	payments := &fakePaymentClient{
		lookupSession: &domain.PaymentSession{SessionID: "sess-1", Status: domain.SessionStatusPending},
		waitErr:       domain.ErrSessionNotFound,
	}
	broadcaster := &fakeBroadcaster{}
	svc := confirm.NewConfirmService(payments, broadcaster, metrics.NewNoopRecorder(), zerolog.Nop())

	result := svc.Confirm(context.Background(), "eip155:8453", "0xabc")

	require.Equal(t, domain.ConfirmSubmitted, result.State)
	require.Equal(t, "0xabc", result.TxHash)
	require.Empty(t, broadcaster.updates, "pending results never broadcast")
}
