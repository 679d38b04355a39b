// Package vault routes vault standard messages to an accounting engine and
// enforces the protocol-level rules on the way: nonzero amounts, funds
// matching, authoritative Max* bounds, and rejection of extension payloads
// for capabilities the vault does not have enabled.
package vault

import (
	"context"

	"cosmossdk.io/math"
	sdktypes "github.com/cosmos/cosmos-sdk/types"

	vaultstandard "github.com/margined-protocol/cw-vault-standard"
)

// MsgInfo carries the call context of a command: who sent it and which coins
// were attached.
type MsgInfo struct {
	Sender string
	Funds  sdktypes.Coins
}

// Vault is the accounting engine behind a Dispatcher. Implementations own
// balances and exchange-rate math; how totals are computed and persisted is
// up to them.
//
// All methods except Deposit and Redeem must be pure reads of current state.
type Vault interface {
	// Info returns the vault's base and vault tokens.
	Info(ctx context.Context) (vaultstandard.VaultInfo, error)

	// TotalAssets returns assets under management in base token units.
	TotalAssets(ctx context.Context) (math.Int, error)
	// TotalVaultTokenSupply returns the circulating vault token amount.
	TotalVaultTokenSupply(ctx context.Context) (math.Int, error)

	// ConvertToShares returns the average-case share value of assets.
	ConvertToShares(ctx context.Context, assets math.Int) (math.Int, error)
	// ConvertToAssets returns the average-case asset value of shares.
	ConvertToAssets(ctx context.Context, shares math.Int) (math.Int, error)

	// PreviewDeposit returns the shares a deposit of assets would mint now,
	// ignoring limits and including any deposit fee. Must not return more
	// than Deposit would mint in the same state.
	PreviewDeposit(ctx context.Context, assets math.Int) (math.Int, error)
	// PreviewRedeem returns the assets a redemption of shares would return
	// now, ignoring limits.
	PreviewRedeem(ctx context.Context, shares math.Int) (math.Int, error)

	// MaxDeposit returns the upper bound on depositable assets for recipient,
	// factoring in global and per-user limits. Zero means deposits are
	// disabled; nil means no limit is configured. Must not consult the
	// recipient's actual balance.
	MaxDeposit(ctx context.Context, recipient string) (*math.Int, error)
	// MaxRedeem returns the upper bound on vault tokens redeemable from
	// owner's holdings, or nil if no limit is configured.
	MaxRedeem(ctx context.Context, owner string) (*math.Int, error)

	// Deposit mints vault tokens to recipient for the deposited assets and
	// returns the minted amount.
	Deposit(ctx context.Context, info MsgInfo, assets math.Int, recipient string) (math.Int, error)
	// Redeem burns the given vault tokens and returns the amount of
	// underlying assets paid out to recipient.
	Redeem(ctx context.Context, info MsgInfo, shares math.Int, recipient string) (math.Int, error)
}
