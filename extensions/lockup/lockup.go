// Package lockup defines the messages of the lockup extension, which gates
// redemption behind a time lock: vault tokens are first sent to Unlock, and
// the underlying assets become withdrawable once the lockup duration expires.
package lockup

import (
	"encoding/json"

	"cosmossdk.io/math"
)

type ExecuteMsg struct {
	// Unlock starts the unlocking process for the given amount of vault
	// tokens, which must be attached to the call.
	Unlock *Unlock `json:"unlock,omitempty"`
	// EmergencyUnlock starts unlocking without caring about the vault's
	// ability to first perform bookkeeping such as compounding rewards.
	EmergencyUnlock *EmergencyUnlock `json:"emergency_unlock,omitempty"`
	// WithdrawUnlocked withdraws the assets of a matured unlocking position.
	WithdrawUnlocked *WithdrawUnlocked `json:"withdraw_unlocked,omitempty"`
}

type Unlock struct {
	// Amount of vault tokens to unlock.
	Amount math.Int `json:"amount"`
}

type EmergencyUnlock struct {
	Amount math.Int `json:"amount"`
}

type WithdrawUnlocked struct {
	// Recipient of the withdrawn assets. Defaults to the caller.
	Recipient *string `json:"recipient"`
	// LockupID of the position to withdraw from.
	LockupID uint64 `json:"lockup_id"`
}

type QueryMsg struct {
	// UnlockingPositions returns the positions currently unlocking for an
	// owner, paginated by position id.
	UnlockingPositions *UnlockingPositions `json:"unlocking_positions,omitempty"`
	// UnlockingPosition returns a single position by id.
	UnlockingPosition *UnlockingPositionQuery `json:"unlocking_position,omitempty"`
	// LockupDuration returns the configured lockup duration of the vault.
	LockupDuration *LockupDuration `json:"lockup_duration,omitempty"`
}

type UnlockingPositions struct {
	Owner      string  `json:"owner"`
	StartAfter *uint64 `json:"start_after"`
	Limit      *uint32 `json:"limit"`
}

type UnlockingPositionQuery struct {
	LockupID uint64 `json:"lockup_id"`
}

type LockupDuration struct {
}

// UnlockingPosition is the response for QueryMsg.UnlockingPosition and the
// element type for QueryMsg.UnlockingPositions.
type UnlockingPosition struct {
	ID    uint64 `json:"id"`
	Owner string `json:"owner"`
	// ReleaseAt is when the position can be withdrawn.
	ReleaseAt Expiration `json:"release_at"`
	// BaseTokenAmount claimable once the position matures.
	BaseTokenAmount math.Int `json:"base_token_amount"`
}

// Expiration is a point at which something expires, by height or by time.
// Time is in nanoseconds since epoch, encoded as a string.
type Expiration struct {
	AtHeight *uint64   `json:"at_height,omitempty"`
	AtTime   *string   `json:"at_time,omitempty"`
	Never    *struct{} `json:"never,omitempty"`
}

// Duration is a span of blocks or of time in seconds.
type Duration struct {
	Height *uint64 `json:"height,omitempty"`
	Time   *uint64 `json:"time,omitempty"`
}

func UnmarshalUnlockingPosition(data []byte) (UnlockingPosition, error) {
	var r UnlockingPosition
	err := json.Unmarshal(data, &r)
	return r, err
}

func (r *UnlockingPosition) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

func UnmarshalExecuteMsg(data []byte) (ExecuteMsg, error) {
	var r ExecuteMsg
	err := json.Unmarshal(data, &r)
	return r, err
}

func (r *ExecuteMsg) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

func UnmarshalQueryMsg(data []byte) (QueryMsg, error) {
	var r QueryMsg
	err := json.Unmarshal(data, &r)
	return r, err
}

func (r *QueryMsg) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
