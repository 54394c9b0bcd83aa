package domain

import "strings"

// Currency describes a payment currency available on one chain. AssetID is
// the CAIP-19 identifier the payment-abstraction service expects.
type Currency struct {
	Symbol       string
	ChainID      string
	AssetID      string
	TokenAddress string
	Decimals     int
	Native       bool
}

// currenciesByChain mirrors the payment service's published support
// matrix. Protocol data, not deployment data, so it lives in code.
var currenciesByChain = map[string]map[string]Currency{
	"eip155:1": {
		"eth":  {Symbol: "eth", ChainID: "eip155:1", AssetID: "eip155:1/slip44:60", Decimals: 18, Native: true},
		"usdc": {Symbol: "usdc", ChainID: "eip155:1", AssetID: "eip155:1/erc20:0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", TokenAddress: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", Decimals: 6},
	},
	"eip155:8453": {
		"eth":   {Symbol: "eth", ChainID: "eip155:8453", AssetID: "eip155:8453/slip44:60", Decimals: 18, Native: true},
		"usdc":  {Symbol: "usdc", ChainID: "eip155:8453", AssetID: "eip155:8453/erc20:0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913", TokenAddress: "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913", Decimals: 6},
		"degen": {Symbol: "degen", ChainID: "eip155:8453", AssetID: "eip155:8453/erc20:0x4ed4E862860beD51a9570b96d89aF5E1B0Efefed", TokenAddress: "0x4ed4E862860beD51a9570b96d89aF5E1B0Efefed", Decimals: 18},
	},
	"eip155:42161": {
		"eth":  {Symbol: "eth", ChainID: "eip155:42161", AssetID: "eip155:42161/slip44:60", Decimals: 18, Native: true},
		"usdc": {Symbol: "usdc", ChainID: "eip155:42161", AssetID: "eip155:42161/erc20:0xaf88d065e77c8cC2239327C5EDb3A432268e5831", TokenAddress: "0xaf88d065e77c8cC2239327C5EDb3A432268e5831", Decimals: 6},
	},
	"eip155:10": {
		"eth":  {Symbol: "eth", ChainID: "eip155:10", AssetID: "eip155:10/slip44:60", Decimals: 18, Native: true},
		"usdc": {Symbol: "usdc", ChainID: "eip155:10", AssetID: "eip155:10/erc20:0x0b2C639c533813f4Aa9D7837CAf62653d097Ff85", TokenAddress: "0x0b2C639c533813f4Aa9D7837CAf62653d097Ff85", Decimals: 6},
	},
}

// SupportedCurrency resolves a (chain, symbol) pairing. The second return
// is false when the pairing is not supported.
func SupportedCurrency(chainID, symbol string) (Currency, bool) {
	chain, ok := currenciesByChain[chainID]
	if !ok {
		return Currency{}, false
	}
	c, ok := chain[strings.ToLower(symbol)]
	return c, ok
}
