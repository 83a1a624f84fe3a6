//go:build unit

package amount

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stardustlabs/walletbridge"
)

const balanceFixture = `{
	"baseCoin": {"total": "0x64", "available": "0x32"},
	"nativeTokens": [
		{"id": "0x08aa", "total": "0xff", "available": "0x0f"},
		{"id": "0x08bb", "total": "0x1", "available": "0x0"}
	],
	"requiredStorageDeposit": {
		"alias": "59200",
		"basic": "42600",
		"foundry": "52800",
		"nft": "48200"
	}
}`

func TestDecodeBalanceNormalizesEveryField(t *testing.T) {
	t.Parallel()

	balance, err := DecodeBalance(json.RawMessage(balanceFixture))
	require.NoError(t, err)

	assert.Zero(t, balance.BaseCoin.Total.Cmp(big.NewInt(100)))
	assert.Zero(t, balance.BaseCoin.Available.Cmp(big.NewInt(50)))

	require.Len(t, balance.NativeTokens, 2)
	assert.Equal(t, "0x08aa", balance.NativeTokens[0].TokenID)
	assert.Zero(t, balance.NativeTokens[0].Total.Cmp(big.NewInt(255)))
	assert.Zero(t, balance.NativeTokens[0].Available.Cmp(big.NewInt(15)))
	assert.Zero(t, balance.NativeTokens[1].Total.Cmp(big.NewInt(1)))
	assert.Zero(t, balance.NativeTokens[1].Available.Cmp(big.NewInt(0)))

	assert.Zero(t, balance.RequiredStorageDeposit.Alias.Cmp(big.NewInt(59200)))
	assert.Zero(t, balance.RequiredStorageDeposit.Basic.Cmp(big.NewInt(42600)))
	assert.Zero(t, balance.RequiredStorageDeposit.Foundry.Cmp(big.NewInt(52800)))
	assert.Zero(t, balance.RequiredStorageDeposit.NFT.Cmp(big.NewInt(48200)))
}

func TestDecodeBalanceNoNativeTokens(t *testing.T) {
	t.Parallel()

	payload := `{
		"baseCoin": {"total": "0x0", "available": "0x0"},
		"nativeTokens": [],
		"requiredStorageDeposit": {"alias": "0", "basic": "0", "foundry": "0", "nft": "0"}
	}`

	balance, err := DecodeBalance(json.RawMessage(payload))
	require.NoError(t, err)
	assert.Empty(t, balance.NativeTokens)
	assert.Zero(t, balance.BaseCoin.Total.Sign())
}

func TestDecodeBalanceFailsWholeOnOneBadField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
	}{
		{
			name: "malformed base coin total",
			payload: `{
				"baseCoin": {"total": "0xzz", "available": "0x32"},
				"requiredStorageDeposit": {"alias": "0", "basic": "0", "foundry": "0", "nft": "0"}
			}`,
		},
		{
			name: "malformed native token available",
			payload: `{
				"baseCoin": {"total": "0x64", "available": "0x32"},
				"nativeTokens": [{"id": "0x08aa", "total": "0xff", "available": "nope"}],
				"requiredStorageDeposit": {"alias": "0", "basic": "0", "foundry": "0", "nft": "0"}
			}`,
		},
		{
			name: "missing storage deposit field",
			payload: `{
				"baseCoin": {"total": "0x64", "available": "0x32"},
				"requiredStorageDeposit": {"alias": "0", "basic": "0", "foundry": "0"}
			}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			balance, err := DecodeBalance(json.RawMessage(tt.payload))
			require.ErrorIs(t, err, walletbridge.ErrFormat)
			assert.Nil(t, balance)
		})
	}
}

func TestDecodeBalanceRejectsNonObject(t *testing.T) {
	t.Parallel()

	_, err := DecodeBalance(json.RawMessage(`"not a balance"`))
	require.ErrorIs(t, err, walletbridge.ErrDecode)
}
