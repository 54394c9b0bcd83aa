package rpc

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/warpmint/framepay/internal/domain"
)

const baseColorsABIJSON = `[
	{"type":"function","name":"mint","stateMutability":"payable","inputs":[{"name":"color","type":"string"},{"name":"name","type":"string"},{"name":"recipient","type":"address"}],"outputs":[]},
	{"type":"function","name":"mintBatch","stateMutability":"payable","inputs":[{"name":"colors","type":"string[]"},{"name":"names","type":"string[]"},{"name":"quantity","type":"uint256"},{"name":"recipient","type":"address"}],"outputs":[]},
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]}
]`

var baseColorsABI = mustParseABI(baseColorsABIJSON)

func mustParseABI(s string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(s))
	if err != nil {
		panic(err)
	}
	return parsed
}

// EncodeMint builds the calldata for mint(color, name, recipient).
func EncodeMint(color, name, recipient string) ([]byte, error) {
	return baseColorsABI.Pack("mint", color, name, common.HexToAddress(recipient))
}

// EncodeMintBatch builds the calldata for mintBatch(colors, names, quantity, recipient).
func EncodeMintBatch(colors, names []string, recipient string) ([]byte, error) {
	return baseColorsABI.Pack("mintBatch", colors, names, big.NewInt(int64(len(colors))), common.HexToAddress(recipient))
}

// DecodeColorLog extracts the minted color from the mint event's
// ABI-encoded log data. The layout is fixed: 32-byte words, the string
// length in the third word and the string bytes starting at the fourth.
func DecodeColorLog(data []byte) (string, error) {
	if len(data) < 4*32 {
		return "", fmt.Errorf("%w: log data too short (%d bytes)", domain.ErrMalformedResponse, len(data))
	}

	strLen := new(big.Int).SetBytes(data[64:96])
	if !strLen.IsInt64() {
		return "", fmt.Errorf("%w: implausible string length in log data", domain.ErrMalformedResponse)
	}
	n := int(strLen.Int64())
	if n <= 0 || 96+n > len(data) {
		return "", fmt.Errorf("%w: string length %d out of range", domain.ErrMalformedResponse, n)
	}

	return string(data[96 : 96+n]), nil
}
