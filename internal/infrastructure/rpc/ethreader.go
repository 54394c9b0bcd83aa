package rpc

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog"

	"github.com/warpmint/framepay/internal/domain"
	"github.com/warpmint/framepay/pkg/config"
)

// EthReader reads receipts and contract state from the destination chain
// over a JSON-RPC endpoint.
type EthReader struct {
	client         *ethclient.Client
	contract       common.Address
	pollInterval   time.Duration
	receiptTimeout time.Duration
	logger         zerolog.Logger
}

func NewEthReader(cfg config.EthConfig, contractAddress string, logger zerolog.Logger) (*EthReader, error) {
	client, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial eth rpc: %w", err)
	}

	return &EthReader{
		client:         client,
		contract:       common.HexToAddress(contractAddress),
		pollInterval:   cfg.ReceiptPollInterval(),
		receiptTimeout: cfg.ReceiptWait(),
		logger:         logger.With().Str("component", "eth_reader").Logger(),
	}, nil
}

// WaitForMintReceipt polls for the receipt of txHash, then decodes the
// minted color from the first decodable log the colors contract emitted.
func (r *EthReader) WaitForMintReceipt(ctx context.Context, txHash string) (*domain.MintReceipt, error) {
	waitCtx, cancel := context.WithTimeout(ctx, r.receiptTimeout)
	defer cancel()

	hash := common.HexToHash(txHash)

	var receipt *types.Receipt
	for {
		var err error
		receipt, err = r.client.TransactionReceipt(waitCtx, hash)
		if err == nil {
			break
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, fmt.Errorf("failed to fetch receipt for %s: %w", txHash, err)
		}

		select {
		case <-waitCtx.Done():
			return nil, fmt.Errorf("receipt for %s not available in time: %w", txHash, waitCtx.Err())
		case <-time.After(r.pollInterval):
		}
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("transaction %s reverted: %w", txHash, domain.ErrRemoteUnavailable)
	}

	color, err := r.colorFromLogs(receipt.Logs)
	if err != nil {
		return nil, err
	}

	from, err := r.transactionSender(waitCtx, hash, receipt)
	if err != nil {
		// The color is still worth rendering without the sender.
		r.logger.Warn().Err(err).Str("tx_hash", txHash).Msg("Failed to resolve transaction sender")
	}

	return &domain.MintReceipt{
		TxHash: txHash,
		From:   from,
		Color:  color,
	}, nil
}

// ColorBalance reads balanceOf(owner) on the colors contract.
func (r *EthReader) ColorBalance(ctx context.Context, owner string) (*big.Int, error) {
	input, err := baseColorsABI.Pack("balanceOf", common.HexToAddress(owner))
	if err != nil {
		return nil, fmt.Errorf("failed to pack balanceOf call: %w", err)
	}

	output, err := r.client.CallContract(ctx, ethereum.CallMsg{
		To:   &r.contract,
		Data: input,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("balanceOf call failed: %w", err)
	}

	results, err := baseColorsABI.Unpack("balanceOf", output)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	balance, ok := results[0].(*big.Int)
	if !ok {
		return nil, domain.ErrMalformedResponse
	}
	return balance, nil
}

func (r *EthReader) colorFromLogs(logs []*types.Log) (string, error) {
	for _, entry := range logs {
		if entry.Address != r.contract {
			continue
		}
		color, err := DecodeColorLog(entry.Data)
		if err == nil {
			return color, nil
		}
	}
	return "", fmt.Errorf("%w: no decodable mint log", domain.ErrMalformedResponse)
}

func (r *EthReader) transactionSender(ctx context.Context, hash common.Hash, receipt *types.Receipt) (string, error) {
	tx, _, err := r.client.TransactionByHash(ctx, hash)
	if err != nil {
		return "", err
	}

	sender, err := r.client.TransactionSender(ctx, tx, receipt.BlockHash, receipt.TransactionIndex)
	if err != nil {
		return "", err
	}
	return sender.Hex(), nil
}
