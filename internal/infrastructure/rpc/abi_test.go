package rpc_test

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/warpmint/framepay/internal/domain"
	"github.com/warpmint/framepay/internal/infrastructure/rpc"
)

// colorLogData builds event data in the mint log's fixed layout: an
// offset word, a second word, the string length in the third word and
// the string bytes starting at the fourth.
func colorLogData(color string) []byte {
	data := make([]byte, 96)
	data[31] = 0x40 // offset of the dynamic part
	lenWord := big.NewInt(int64(len(color))).FillBytes(make([]byte, 32))
	data = append(data[:64], lenWord...)
	padded := make([]byte, (len(color)+31)/32*32)
	copy(padded, color)
	return append(data, padded...)
}

func TestDecodeColorLog(t *testing.T) {
	color, err := rpc.DecodeColorLog(colorLogData("#FF8800"))
	require.NoError(t, err)
	require.Equal(t, "#FF8800", color)
}

func TestDecodeColorLogTooShort(t *testing.T) {
	_, err := rpc.DecodeColorLog(make([]byte, 64))
	require.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestDecodeColorLogLengthOutOfRange(t *testing.T) {
	data := make([]byte, 128)
	data[95] = 0xff // claims a 255-byte string with only one word of payload
	_, err := rpc.DecodeColorLog(data)
	require.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestEncodeMintSelectorAndArgs(t *testing.T) {
	input, err := rpc.EncodeMint("#FF8800", "FF8800", "0x00000000000000000000000000000000000000aa")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(input), 4)

	// Calldata must embed both strings and the recipient address.
	raw := hex.EncodeToString(input)
	require.Contains(t, raw, hex.EncodeToString([]byte("#FF8800")))
	require.Contains(t, raw, hex.EncodeToString([]byte("FF8800")))
	require.Contains(t, raw, "00000000000000000000000000000000000000aa")
}

func TestEncodeMintBatchCountsColors(t *testing.T) {
	colors := []string{"#FF8800", "#00FF00"}
	names := []string{"FF8800", "00FF00"}
	input, err := rpc.EncodeMintBatch(colors, names, "0x00000000000000000000000000000000000000aa")
	require.NoError(t, err)

	// Quantity 2 appears as a full word in the static part.
	quantityWord := big.NewInt(2).FillBytes(make([]byte, 32))
	require.Contains(t, hex.EncodeToString(input), hex.EncodeToString(quantityWord))
}

func TestEncodeERC20Transfer(t *testing.T) {
	amount := big.NewInt(5_000_000) // 5 usdc
	input, err := rpc.EncodeERC20Transfer("0x00000000000000000000000000000000000000bb", amount)
	require.NoError(t, err)
	require.Len(t, input, 4+32+32)

	// transfer(address,uint256) selector.
	require.Equal(t, "a9059cbb", hex.EncodeToString(input[:4]))
	require.Equal(t, "00000000000000000000000000000000000000bb", hex.EncodeToString(input[4+12:4+32]))
	require.Equal(t, amount, new(big.Int).SetBytes(input[4+32:]))
}
