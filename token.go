package vaultstandard

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	sdktypes "github.com/cosmos/cosmos-sdk/types"
)

// AddressValidator checks that a free-form string is a well-formed account
// address and returns the validated handle. It is supplied by the hosting
// runtime; Bech32Validator is a ready-made implementation for chains using
// the SDK bech32 account format.
type AddressValidator interface {
	ValidateAddress(addr string) (sdktypes.AccAddress, error)
}

type Bech32Validator struct{}

var _ AddressValidator = Bech32Validator{}

func (Bech32Validator) ValidateAddress(addr string) (sdktypes.AccAddress, error) {
	return sdktypes.AccAddressFromBech32(addr)
}

// Token is an asset accepted or minted by a vault. It is either a chain-native
// denom or a token represented by a cw20 contract. Exactly one field is set;
// the strings are not checked for well-formedness at construction.
type Token struct {
	Native *string `json:"native,omitempty"`
	Cw20   *string `json:"cw20,omitempty"`
}

func NewNativeToken(denom string) Token {
	return Token{Native: &denom}
}

func NewCw20Token(addr string) Token {
	return Token{Cw20: &addr}
}

// IsNative reports whether the token is the native variant.
func (t Token) IsNative() bool {
	return t.Native != nil
}

// ToCw20Addr returns the validated contract address of a cw20 token.
//
// This is deliberately a narrowing conversion rather than an optional
// accessor: callers that only accept cw20 vaults want a loud failure when
// handed a native token, not a silent None.
func (t Token) ToCw20Addr(api AddressValidator) (sdktypes.AccAddress, error) {
	if t.Cw20 == nil {
		if t.Native != nil {
			return nil, errorsmod.Wrapf(ErrInvalidTokenKind, "native token %s cannot be converted to address", *t.Native)
		}
		return nil, errorsmod.Wrap(ErrInvalidTokenKind, "token has no variant set")
	}

	addr, err := api.ValidateAddress(*t.Cw20)
	if err != nil {
		return nil, errorsmod.Wrapf(ErrMalformedAddress, "%s: %s", *t.Cw20, err)
	}
	return addr, nil
}

func UnmarshalToken(data []byte) (Token, error) {
	var r Token
	err := json.Unmarshal(data, &r)
	return r, err
}

func (t *Token) Marshal() ([]byte, error) {
	return json.Marshal(t)
}

// ToNativeDenom returns the denom of a native token unchanged. It fails with
// ErrInvalidTokenKind when called on a cw20 token.
func (t Token) ToNativeDenom() (string, error) {
	if t.Native == nil {
		return "", errorsmod.Wrap(ErrInvalidTokenKind, "cw20 token cannot be converted to native denom")
	}
	return *t.Native, nil
}
