package lockup

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteMsgJSON(t *testing.T) {
	msg := ExecuteMsg{
		Unlock: &Unlock{Amount: math.NewInt(1000)},
	}
	msgBytes, err := msg.Marshal()
	require.NoError(t, err)
	assert.Equal(t, `{"unlock":{"amount":"1000"}}`, string(msgBytes))

	msg = ExecuteMsg{
		WithdrawUnlocked: &WithdrawUnlocked{LockupID: 3},
	}
	msgBytes, err = msg.Marshal()
	require.NoError(t, err)
	assert.Equal(t, `{"withdraw_unlocked":{"recipient":null,"lockup_id":3}}`, string(msgBytes))
}

func TestQueryMsgJSON(t *testing.T) {
	owner := "osmo1owner"
	msg := QueryMsg{
		UnlockingPositions: &UnlockingPositions{Owner: owner},
	}
	msgBytes, err := msg.Marshal()
	require.NoError(t, err)
	assert.Equal(t, `{"unlocking_positions":{"owner":"osmo1owner","start_after":null,"limit":null}}`, string(msgBytes))

	roundTripped, err := UnmarshalQueryMsg(msgBytes)
	require.NoError(t, err)
	assert.Equal(t, msg, roundTripped)
}

func TestUnlockingPositionJSON(t *testing.T) {
	releaseAt := uint64(123456)
	position := UnlockingPosition{
		ID:              1,
		Owner:           "osmo1owner",
		ReleaseAt:       Expiration{AtHeight: &releaseAt},
		BaseTokenAmount: math.NewInt(500),
	}

	positionBytes, err := position.Marshal()
	require.NoError(t, err)
	assert.Equal(t,
		`{"id":1,"owner":"osmo1owner","release_at":{"at_height":123456},"base_token_amount":"500"}`,
		string(positionBytes))
}
