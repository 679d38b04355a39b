package vaultstandard

import (
	"bytes"
	"testing"

	sdktypes "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenJSON(t *testing.T) {
	native := NewNativeToken("uosmo")
	nativeBytes, err := native.Marshal()
	require.NoError(t, err)
	assert.Equal(t, `{"native":"uosmo"}`, string(nativeBytes))

	cw20 := NewCw20Token("osmo1contract")
	cw20Bytes, err := cw20.Marshal()
	require.NoError(t, err)
	assert.Equal(t, `{"cw20":"osmo1contract"}`, string(cw20Bytes))
}

func TestToNativeDenom(t *testing.T) {
	native := NewNativeToken("uosmo")
	denom, err := native.ToNativeDenom()
	require.NoError(t, err)
	assert.Equal(t, "uosmo", denom)

	cw20 := NewCw20Token("osmo1contract")
	_, err = cw20.ToNativeDenom()
	require.ErrorIs(t, err, ErrInvalidTokenKind)
}

func TestToCw20Addr(t *testing.T) {
	raw := sdktypes.AccAddress(bytes.Repeat([]byte{1}, 20))
	cw20 := NewCw20Token(raw.String())

	addr, err := cw20.ToCw20Addr(Bech32Validator{})
	require.NoError(t, err)
	assert.Equal(t, raw, addr)
}

func TestToCw20AddrWrongKind(t *testing.T) {
	native := NewNativeToken("uosmo")

	_, err := native.ToCw20Addr(Bech32Validator{})
	require.ErrorIs(t, err, ErrInvalidTokenKind)
	// the offending denom is carried for diagnostics
	assert.Contains(t, err.Error(), "uosmo")
}

func TestToCw20AddrMalformed(t *testing.T) {
	cw20 := NewCw20Token("definitely-not-bech32")

	_, err := cw20.ToCw20Addr(Bech32Validator{})
	require.ErrorIs(t, err, ErrMalformedAddress)
}
