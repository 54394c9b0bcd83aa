package parser

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNoMatch is returned when free text does not look like a payment
// instruction. Callers render it as a user-facing validation message.
var ErrNoMatch = errors.New("expected '<amount> <token>' or '<amount> <token> on <chain>'")

// DefaultChainID is used when the "on <chain>" clause is absent or the
// chain name is not recognized.
const DefaultChainID = "eip155:8453" // base

var payPattern = regexp.MustCompile(`(?i)^\s*(\d+(?:\.\d+)?)\s+([a-z]+)(?:\s+on\s+([a-z0-9]+))?\s*$`)

var chainAliases = map[string]string{
	"eth":      "eip155:1",
	"ethereum": "eip155:1",
	"mainnet":  "eip155:1",
	"base":     "eip155:8453",
	"arb":      "eip155:42161",
	"arbitrum": "eip155:42161",
	"op":       "eip155:10",
	"optimism": "eip155:10",
}

// PaymentIntent is the parsed form of a free-text payment instruction
// such as "5 usdc on arbitrum".
type PaymentIntent struct {
	// Amount is the numeric part exactly as the user wrote it.
	Amount string
	// Value is Amount parsed for arithmetic.
	Value    decimal.Decimal
	Currency string
	ChainID  string
}

// Parse extracts (amount, currency, chain) from free text. The chain
// defaults to base when omitted; unrecognized chain names fall back to the
// same default.
func Parse(text string) (*PaymentIntent, error) {
	m := payPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, ErrNoMatch
	}

	value, err := decimal.NewFromString(m[1])
	if err != nil {
		return nil, ErrNoMatch
	}
	if !value.IsPositive() {
		return nil, ErrNoMatch
	}

	return &PaymentIntent{
		Amount:   m[1],
		Value:    value,
		Currency: strings.ToLower(m[2]),
		ChainID:  ResolveChain(m[3]),
	}, nil
}

// ResolveChain maps a chain-name alias to its canonical CAIP-2 id. Empty
// or unknown names resolve to DefaultChainID.
func ResolveChain(name string) string {
	if id, ok := chainAliases[strings.ToLower(name)]; ok {
		return id
	}
	return DefaultChainID
}
