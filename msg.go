// Package vaultstandard defines the message protocol of the CosmWasm vault
// standard: a common interface for vaults that accept deposits of one asset
// and mint a proportional vault token redeemable for a share of the
// underlying assets.
//
// Amounts are math.Int values, which cross the wire as JSON strings matching
// the CosmWasm Uint128 encoding.
package vaultstandard

import (
	"encoding/json"

	"cosmossdk.io/math"

	"github.com/margined-protocol/cw-vault-standard/extensions/keeper"
	"github.com/margined-protocol/cw-vault-standard/extensions/lockup"
)

// ExecuteMsg is the state-changing message set every vault accepts. T is the
// extension payload type; vaults with capabilities outside the bundled set
// substitute their own payload type for ExtensionExecuteMsg.
type ExecuteMsg[T any] struct {
	// Deposit into the vault. Native assets are passed in the funds
	// parameter.
	Deposit *Deposit `json:"deposit,omitempty"`
	// Redeem vault tokens for underlying assets. The native vault token must
	// be passed in the funds parameter, unless the lockup extension is
	// enabled, in which case the vault token has already been passed to
	// Unlock.
	Redeem *Redeem `json:"redeem,omitempty"`
	// VaultExtension forwards an extension-defined payload. The base
	// protocol does not interpret it.
	VaultExtension *T `json:"vault_extension,omitempty"`
}

type Deposit struct {
	// Amount of the underlying asset to deposit. Must be nonzero and must
	// match the funds attached to the call.
	Amount math.Int `json:"amount"`
	// Recipient of the vault tokens. Defaults to the caller.
	Recipient *string `json:"recipient"`
}

type Redeem struct {
	// Recipient of the withdrawn underlying assets. Defaults to the caller.
	Recipient *string `json:"recipient"`
	// Amount of vault tokens sent to the contract. For native vault tokens
	// this duplicates the funds, but cw4626-style vaults have no funds to
	// inspect, so one API serves both.
	Amount math.Int `json:"amount"`
}

// QueryMsg is the read-only message set every vault accepts. All variants are
// pure functions of current vault state and input. T is the extension payload
// type, as for ExecuteMsg.
type QueryMsg[T any] struct {
	// VaultStandardInfo returns the standard version and enabled extensions.
	VaultStandardInfo *VaultStandardInfoQuery `json:"vault_standard_info,omitempty"`
	// Info returns the vault's base and vault tokens.
	Info *InfoQuery `json:"info,omitempty"`
	// PreviewDeposit returns the amount of vault tokens that would be minted
	// for depositing Amount now.
	//
	// Must return the same or fewer shares than an actual deposit of the same
	// amount executed in the same transaction, must ignore deposit limits as
	// if the deposit were unconditionally accepted, and must include any
	// deposit fee.
	PreviewDeposit *PreviewDeposit `json:"preview_deposit,omitempty"`
	// PreviewRedeem returns the underlying assets that would be returned for
	// redeeming Amount vault tokens, under the same no-limits assumption.
	PreviewRedeem *PreviewRedeem `json:"preview_redeem,omitempty"`
	// MaxDeposit returns the maximum amount depositable for Recipient,
	// factoring in both global and per-user limits. If deposits are disabled
	// for any reason it must be zero; null means no limit is configured. Must
	// not consult Recipient's actual balance.
	MaxDeposit *MaxDeposit `json:"max_deposit,omitempty"`
	// MaxRedeem returns the maximum amount of vault tokens redeemable from
	// Owner's holdings.
	MaxRedeem *MaxRedeem `json:"max_redeem,omitempty"`
	// TotalAssets returns assets under management denominated in the base
	// token. Display only, precision not guaranteed.
	TotalAssets *TotalAssets `json:"total_assets,omitempty"`
	// TotalVaultTokenSupply returns the circulating vault token amount.
	TotalVaultTokenSupply *TotalVaultTokenSupply `json:"total_vault_token_supply,omitempty"`
	// ConvertToShares returns the shares the vault would exchange for Amount
	// assets under ideal conditions, reflecting average-case rather than
	// per-user pricing. Display only; not an execution predictor.
	ConvertToShares *ConvertToShares `json:"convert_to_shares,omitempty"`
	// ConvertToAssets is the inverse of ConvertToShares.
	ConvertToAssets *ConvertToAssets `json:"convert_to_assets,omitempty"`
	// VaultExtension forwards an extension-defined payload. The base protocol
	// cannot declare its response shape; dispatch is special-cased at the
	// runtime boundary.
	VaultExtension *T `json:"vault_extension,omitempty"`
}

type VaultStandardInfoQuery struct {
}

type InfoQuery struct {
}

type PreviewDeposit struct {
	Amount math.Int `json:"amount"`
}

type PreviewRedeem struct {
	Amount math.Int `json:"amount"`
}

type MaxDeposit struct {
	Recipient string `json:"recipient"`
}

type MaxRedeem struct {
	Owner string `json:"owner"`
}

type TotalAssets struct {
}

type TotalVaultTokenSupply struct {
}

type ConvertToShares struct {
	Amount math.Int `json:"amount"`
}

type ConvertToAssets struct {
	Amount math.Int `json:"amount"`
}

// ExtensionExecuteMsg bundles the execute messages of the capability modules
// shipped with this module. A vault enables a capability by registering a
// handler for it at dispatch time; payloads for unregistered capabilities are
// rejected.
type ExtensionExecuteMsg struct {
	Keeper *keeper.ExecuteMsg `json:"keeper,omitempty"`
	Lockup *lockup.ExecuteMsg `json:"lockup,omitempty"`
}

// ExtensionQueryMsg bundles the query messages of the capability modules
// shipped with this module.
type ExtensionQueryMsg struct {
	Keeper *keeper.QueryMsg `json:"keeper,omitempty"`
	Lockup *lockup.QueryMsg `json:"lockup,omitempty"`
}

// DefaultExecuteMsg and DefaultQueryMsg are the message sets with the bundled
// extension payloads.
type (
	DefaultExecuteMsg = ExecuteMsg[ExtensionExecuteMsg]
	DefaultQueryMsg   = QueryMsg[ExtensionQueryMsg]
)

func UnmarshalExecuteMsg[T any](data []byte) (ExecuteMsg[T], error) {
	var r ExecuteMsg[T]
	err := json.Unmarshal(data, &r)
	return r, err
}

func (r *ExecuteMsg[T]) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

func UnmarshalQueryMsg[T any](data []byte) (QueryMsg[T], error) {
	var r QueryMsg[T]
	err := json.Unmarshal(data, &r)
	return r, err
}

func (r *QueryMsg[T]) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
