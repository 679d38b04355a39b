package vaultstandard

import errorsmod "cosmossdk.io/errors"

const codespace = "vault-standard"

var (
	// ErrInvalidTokenKind is returned when a Token conversion is attempted
	// against the wrong variant.
	ErrInvalidTokenKind = errorsmod.Register(codespace, 2, "invalid token kind")

	// ErrMalformedAddress is returned when the address validator rejects a
	// cw20 token address.
	ErrMalformedAddress = errorsmod.Register(codespace, 3, "malformed address")

	// ErrUnsupportedExtension is returned when a VaultExtension payload
	// references a capability the vault does not have enabled. The whole call
	// is rejected, never partially applied.
	ErrUnsupportedExtension = errorsmod.Register(codespace, 4, "unsupported vault extension")

	// ErrZeroAmount is returned when a command carries a zero amount.
	ErrZeroAmount = errorsmod.Register(codespace, 5, "amount cannot be zero")

	// ErrFundsMismatch is returned when the amount field of a command does not
	// match the funds attached to the call.
	ErrFundsMismatch = errorsmod.Register(codespace, 6, "attached funds do not match amount")

	// ErrLimitExceeded is returned when a command amount exceeds the
	// corresponding Max* query result. Max* bounds are authoritative, so the
	// command is rejected wholesale rather than clamped.
	ErrLimitExceeded = errorsmod.Register(codespace, 7, "limit exceeded")

	// ErrUnknownMessage is returned when a message envelope has no variant set.
	ErrUnknownMessage = errorsmod.Register(codespace, 8, "unknown message variant")
)
