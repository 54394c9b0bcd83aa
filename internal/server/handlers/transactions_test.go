package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/warpmint/framepay/internal/domain"
	"github.com/warpmint/framepay/internal/server/handlers"
)

type fakeSessionService struct {
	mintColors   []string
	payChainID   string
	payCurrency  string
	payAmount    string
	payRecipient string
	err          error
}

func (f *fakeSessionService) CreateMintSession(ctx context.Context, payer string, colors []string) (*domain.PaymentSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mintColors = colors
	return &domain.PaymentSession{
		SessionID: "sess-1",
		UnsignedTransaction: &domain.UnsignedTransaction{
			ChainID: "eip155:8453",
			To:      "0x7Bc1C072742D8391817EB4Eb2317F98dc72C61dB",
			Value:   "0x38d7ea4c68000",
			Input:   "0xdeadbeef",
		},
	}, nil
}

func (f *fakeSessionService) CreatePaymentSession(ctx context.Context, payer, recipient, chainID, currency, amount string) (*domain.PaymentSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.payRecipient = recipient
	f.payChainID = chainID
	f.payCurrency = currency
	f.payAmount = amount
	return &domain.PaymentSession{
		SessionID: "sess-2",
		UnsignedTransaction: &domain.UnsignedTransaction{
			ChainID: chainID,
			To:      "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913",
			Value:   "0x0",
			Input:   "0xa9059cbb",
		},
	}, nil
}

func (f *fakeSessionService) GetSession(ctx context.Context, sessionID string) (*domain.PaymentSession, error) {
	return nil, domain.ErrSessionNotFound
}

type fakeUserService struct {
	address string
	err     error
}

func (f *fakeUserService) UserByFID(ctx context.Context, fid int64) (*domain.UserProfile, error) {
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserService) VerifiedAddress(ctx context.Context, fid int64) (string, error) {
	return f.address, f.err
}

func (f *fakeUserService) SearchUsers(ctx context.Context, query string) ([]domain.UserProfile, error) {
	return nil, nil
}

func (f *fakeUserService) DisplayNamesByAddress(ctx context.Context, addresses []string) (map[string]string, error) {
	return map[string]string{}, nil
}

func newTxRouter(sessionSvc *fakeSessionService, userSvc *fakeUserService) *gin.Engine {
	router := gin.New()
	h := handlers.NewTxHandler(sessionSvc, userSvc, testConfig(), zerolog.Nop())
	router.POST("/tx/mint", h.Mint)
	router.POST("/tx/mint-batch", h.MintBatch)
	router.POST("/tx/pay", h.Pay)
	return router
}

func postTxAction(t *testing.T, router *gin.Engine, path string, action domain.FrameAction) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(action)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestMintReturnsUnsignedTransaction(t *testing.T) {
	sessionSvc := &fakeSessionService{}
	router := newTxRouter(sessionSvc, &fakeUserService{})

	rec := postTxAction(t, router, "/tx/mint", domain.FrameAction{
		UntrustedData: domain.UntrustedData{FID: 3, Address: "0xaa"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, sessionSvc.mintColors, 1)
	require.Regexp(t, `^#[0-9a-f]{6}$`, sessionSvc.mintColors[0])

	var tx domain.TxResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tx))
	require.Equal(t, "eip155:8453", tx.ChainID)
	require.Equal(t, "0x7Bc1C072742D8391817EB4Eb2317F98dc72C61dB", tx.To)
	require.Equal(t, "0xdeadbeef", tx.Data)
}

func TestMintBatchUsesConfiguredSize(t *testing.T) {
	sessionSvc := &fakeSessionService{}
	router := newTxRouter(sessionSvc, &fakeUserService{})

	rec := postTxAction(t, router, "/tx/mint-batch", domain.FrameAction{
		UntrustedData: domain.UntrustedData{FID: 3, Address: "0xaa"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, sessionSvc.mintColors, 10)
}

func TestMintRequiresConnectedWallet(t *testing.T) {
	router := newTxRouter(&fakeSessionService{}, &fakeUserService{})

	rec := postTxAction(t, router, "/tx/mint", domain.FrameAction{
		UntrustedData: domain.UntrustedData{FID: 3},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPayParsesInstructionAndResolvesRecipient(t *testing.T) {
	sessionSvc := &fakeSessionService{}
	userSvc := &fakeUserService{address: "0xcastauthor"}
	router := newTxRouter(sessionSvc, userSvc)

	rec := postTxAction(t, router, "/tx/pay", domain.FrameAction{
		UntrustedData: domain.UntrustedData{
			FID:       3,
			Address:   "0xaa",
			InputText: "5 usdc on arbitrum",
			CastID:    domain.CastID{FID: 42, Hash: "0xcast"},
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "0xcastauthor", sessionSvc.payRecipient)
	require.Equal(t, "eip155:42161", sessionSvc.payChainID)
	require.Equal(t, "usdc", sessionSvc.payCurrency)
	require.Equal(t, "5", sessionSvc.payAmount)
}

func TestPayRejectsUnparseableText(t *testing.T) {
	router := newTxRouter(&fakeSessionService{}, &fakeUserService{address: "0xcastauthor"})

	rec := postTxAction(t, router, "/tx/pay", domain.FrameAction{
		UntrustedData: domain.UntrustedData{FID: 3, Address: "0xaa", InputText: "hello world"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPayErrorTaxonomy(t *testing.T) {
	cases := []struct {
		name       string
		sessionErr error
		userErr    error
		wantStatus int
	}{
		{"unsupported currency", domain.ErrCurrencyNotSupported, nil, http.StatusBadRequest},
		{"unknown recipient", nil, domain.ErrUserNotFound, http.StatusNotFound},
		{"no verified address", nil, domain.ErrValidation, http.StatusBadRequest},
		{"remote down", domain.ErrRemoteUnavailable, nil, http.StatusBadGateway},
		{"retries exhausted", domain.ErrRetriesExhausted, nil, http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTxRouter(
				&fakeSessionService{err: tc.sessionErr},
				&fakeUserService{address: "0xcastauthor", err: tc.userErr},
			)
			rec := postTxAction(t, router, "/tx/pay", domain.FrameAction{
				UntrustedData: domain.UntrustedData{FID: 3, Address: "0xaa", InputText: "5 usdc"},
			})
			require.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
