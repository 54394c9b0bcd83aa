package sessions

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/warpmint/framepay/internal/domain"
	"github.com/warpmint/framepay/internal/domain/interfaces"
	"github.com/warpmint/framepay/internal/domain/models"
	"github.com/warpmint/framepay/internal/infrastructure/rpc"
	"github.com/warpmint/framepay/internal/metrics"
	"github.com/warpmint/framepay/pkg/config"
)

type sessionService struct {
	payments interfaces.PaymentClient
	cfg      config.MintConfig
	chainID  string
	priceWei *big.Int
	recorder metrics.Recorder
	logger   zerolog.Logger
}

func NewSessionService(
	payments interfaces.PaymentClient,
	mintCfg config.MintConfig,
	paymentChain string,
	recorder metrics.Recorder,
	logger zerolog.Logger,
) (ISessionService, error) {
	priceWei, ok := new(big.Int).SetString(mintCfg.PriceWei, 10)
	if !ok {
		return nil, fmt.Errorf("invalid mint price %q", mintCfg.PriceWei)
	}

	if _, ok := domain.SupportedCurrency(paymentChain, mintCfg.PaymentCurrency); !ok {
		return nil, fmt.Errorf("mint payment currency %q not supported on %s: %w",
			mintCfg.PaymentCurrency, paymentChain, domain.ErrCurrencyNotSupported)
	}

	return &sessionService{
		payments: payments,
		cfg:      mintCfg,
		chainID:  paymentChain,
		priceWei: priceWei,
		recorder: recorder,
		logger:   logger.With().Str("component", "session_service").Logger(),
	}, nil
}

func (s *sessionService) CreateMintSession(ctx context.Context, payer string, colors []string) (*domain.PaymentSession, error) {
	startTime := time.Now()
	requestID := uuid.New().String()

	names := make([]string, len(colors))
	for i, color := range colors {
		names[i] = color[1:] // drop the leading '#'
	}

	var input []byte
	var err error
	if len(colors) == 1 {
		input, err = rpc.EncodeMint(colors[0], names[0], payer)
	} else {
		input, err = rpc.EncodeMintBatch(colors, names, payer)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode mint calldata: %w", err)
	}

	value := new(big.Int).Mul(s.priceWei, big.NewInt(int64(len(colors))))
	currency, _ := domain.SupportedCurrency(s.chainID, s.cfg.PaymentCurrency)

	session, err := s.createSession(ctx, &models.CreateSessionRequest{
		PayerWalletAddress: payer,
		PaymentCurrency:    currency.AssetID,
		Transaction: models.TransactionRequest{
			ChainID: s.chainID,
			To:      s.cfg.ContractAddress,
			Value:   hexutil.EncodeBig(value),
			Input:   hexutil.Encode(input),
		},
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("request_id", requestID).
		Str("session_id", session.SessionID).
		Str("payer", payer).
		Int("colors", len(colors)).
		Dur("elapsed", time.Since(startTime)).
		Msg("Mint session created")
	s.recorder.IncCounter("mint_session_created", map[string]string{"chain": s.chainID})
	s.recorder.ObserveLatency("create_session", time.Since(startTime), map[string]string{"chain": s.chainID})

	return session, nil
}

func (s *sessionService) CreatePaymentSession(ctx context.Context, payer, recipient, chainID, currencySymbol, amount string) (*domain.PaymentSession, error) {
	startTime := time.Now()
	requestID := uuid.New().String()

	currency, ok := domain.SupportedCurrency(chainID, currencySymbol)
	if !ok {
		return nil, fmt.Errorf("%q on %s: %w", currencySymbol, chainID, domain.ErrCurrencyNotSupported)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil || !value.IsPositive() {
		return nil, fmt.Errorf("amount %q: %w", amount, domain.ErrValidation)
	}
	atomic := value.Shift(int32(currency.Decimals)).Truncate(0).BigInt()

	tx := models.TransactionRequest{ChainID: chainID}
	if currency.Native {
		tx.To = recipient
		tx.Value = hexutil.EncodeBig(atomic)
	} else {
		input, err := rpc.EncodeERC20Transfer(recipient, atomic)
		if err != nil {
			return nil, fmt.Errorf("failed to encode transfer calldata: %w", err)
		}
		tx.To = currency.TokenAddress
		tx.Value = hexutil.EncodeBig(big.NewInt(0))
		tx.Input = hexutil.Encode(input)
	}

	session, err := s.createSession(ctx, &models.CreateSessionRequest{
		PayerWalletAddress: payer,
		PaymentCurrency:    currency.AssetID,
		Transaction:        tx,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("request_id", requestID).
		Str("session_id", session.SessionID).
		Str("payer", payer).
		Str("recipient", recipient).
		Str("chain_id", chainID).
		Str("currency", currency.Symbol).
		Str("amount", amount).
		Dur("elapsed", time.Since(startTime)).
		Msg("Payment session created")
	s.recorder.IncCounter("payment_session_created", map[string]string{"chain": chainID})
	s.recorder.ObserveLatency("create_session", time.Since(startTime), map[string]string{"chain": chainID})

	return session, nil
}

func (s *sessionService) GetSession(ctx context.Context, sessionID string) (*domain.PaymentSession, error) {
	return s.payments.GetSessionByID(ctx, sessionID)
}

func (s *sessionService) createSession(ctx context.Context, req *models.CreateSessionRequest) (*domain.PaymentSession, error) {
	session, err := s.payments.CreateSession(ctx, req)
	if err != nil {
		return nil, err
	}
	if session.UnsignedTransaction == nil {
		return nil, fmt.Errorf("session %s: %w", session.SessionID, domain.ErrMalformedResponse)
	}
	return session, nil
}
