package vaultstandard

import "encoding/json"

// Version of the vault standard implemented by this module.
const Version uint16 = 1

// VaultStandardInfoKey is the storage key under which a vault stores its
// VaultStandardInfo, so that other contracts can read it with a cheap raw
// query instead of a smart query round trip.
const VaultStandardInfoKey = "vault_standard_info"

// VaultStandardInfo is returned from QueryMsg.VaultStandardInfo and describes
// the version of the vault standard used as well as any enabled extensions.
// It is also stored verbatim under VaultStandardInfoKey.
type VaultStandardInfo struct {
	// Version of the vault standard used, e.g. 1.
	Version uint16 `json:"version"`
	// Extensions enabled on the vault, e.g. ["lockup", "keeper"]. Order
	// reflects registration and is stable for identical configuration.
	Extensions []string `json:"extensions"`
}

// VaultInfo is returned from QueryMsg.Info and names the two economically
// relevant tokens of a vault. Both are set at instantiation and immutable
// from this protocol's perspective.
type VaultInfo struct {
	// BaseToken is accepted for deposits and withdrawals and used for
	// accounting in the vault.
	BaseToken Token `json:"base_token"`
	// VaultToken is the receipt token representing a claim on the vault.
	VaultToken Token `json:"vault_token"`
}

func UnmarshalVaultStandardInfo(data []byte) (VaultStandardInfo, error) {
	var r VaultStandardInfo
	err := json.Unmarshal(data, &r)
	return r, err
}

func (r *VaultStandardInfo) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

func UnmarshalVaultInfo(data []byte) (VaultInfo, error) {
	var r VaultInfo
	err := json.Unmarshal(data, &r)
	return r, err
}

func (r *VaultInfo) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
