package vault

import (
	"context"
	"encoding/json"
	"testing"

	"cosmossdk.io/math"
	sdktypes "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	vaultstandard "github.com/margined-protocol/cw-vault-standard"
	"github.com/margined-protocol/cw-vault-standard/extensions/lockup"
)

// testVault is a zero-fee in-memory accounting engine with floor rounding in
// both directions.
type testVault struct {
	info             vaultstandard.VaultInfo
	totalAssets      math.Int
	totalShares      math.Int
	balances         map[string]math.Int
	depositCap       *math.Int
	depositsDisabled bool
}

var _ Vault = (*testVault)(nil)

func newTestVault() *testVault {
	return &testVault{
		info: vaultstandard.VaultInfo{
			BaseToken:  vaultstandard.NewNativeToken("uosmo"),
			VaultToken: vaultstandard.NewNativeToken("factory/osmo1vault/vault"),
		},
		totalAssets: math.ZeroInt(),
		totalShares: math.ZeroInt(),
		balances:    map[string]math.Int{},
	}
}

func (v *testVault) Info(_ context.Context) (vaultstandard.VaultInfo, error) {
	return v.info, nil
}

func (v *testVault) TotalAssets(_ context.Context) (math.Int, error) {
	return v.totalAssets, nil
}

func (v *testVault) TotalVaultTokenSupply(_ context.Context) (math.Int, error) {
	return v.totalShares, nil
}

func (v *testVault) ConvertToShares(_ context.Context, assets math.Int) (math.Int, error) {
	if v.totalShares.IsZero() || v.totalAssets.IsZero() {
		return assets, nil
	}
	return assets.Mul(v.totalShares).Quo(v.totalAssets), nil
}

func (v *testVault) ConvertToAssets(_ context.Context, shares math.Int) (math.Int, error) {
	if v.totalShares.IsZero() {
		return shares, nil
	}
	return shares.Mul(v.totalAssets).Quo(v.totalShares), nil
}

func (v *testVault) PreviewDeposit(ctx context.Context, assets math.Int) (math.Int, error) {
	return v.ConvertToShares(ctx, assets)
}

func (v *testVault) PreviewRedeem(ctx context.Context, shares math.Int) (math.Int, error) {
	return v.ConvertToAssets(ctx, shares)
}

func (v *testVault) MaxDeposit(_ context.Context, _ string) (*math.Int, error) {
	if v.depositsDisabled {
		zero := math.ZeroInt()
		return &zero, nil
	}
	if v.depositCap == nil {
		return nil, nil
	}
	cap := *v.depositCap
	return &cap, nil
}

func (v *testVault) MaxRedeem(_ context.Context, owner string) (*math.Int, error) {
	balance, ok := v.balances[owner]
	if !ok {
		balance = math.ZeroInt()
	}
	return &balance, nil
}

func (v *testVault) Deposit(ctx context.Context, _ MsgInfo, assets math.Int, recipient string) (math.Int, error) {
	shares, err := v.PreviewDeposit(ctx, assets)
	if err != nil {
		return math.Int{}, err
	}
	v.totalAssets = v.totalAssets.Add(assets)
	v.totalShares = v.totalShares.Add(shares)
	v.addBalance(recipient, shares)
	return shares, nil
}

func (v *testVault) Redeem(ctx context.Context, info MsgInfo, shares math.Int, _ string) (math.Int, error) {
	assets, err := v.PreviewRedeem(ctx, shares)
	if err != nil {
		return math.Int{}, err
	}
	v.totalAssets = v.totalAssets.Sub(assets)
	v.totalShares = v.totalShares.Sub(shares)
	v.addBalance(info.Sender, shares.Neg())
	return assets, nil
}

func (v *testVault) addBalance(owner string, delta math.Int) {
	balance, ok := v.balances[owner]
	if !ok {
		balance = math.ZeroInt()
	}
	v.balances[owner] = balance.Add(delta)
}

type stubExecutor struct {
	name     string
	received json.RawMessage
}

func (s *stubExecutor) Name() string { return s.name }

func (s *stubExecutor) Execute(_ context.Context, _ MsgInfo, payload json.RawMessage) error {
	s.received = payload
	return nil
}

type stubQuerier struct {
	name     string
	response json.RawMessage
}

func (s *stubQuerier) Name() string { return s.name }

func (s *stubQuerier) Query(_ context.Context, _ json.RawMessage) (json.RawMessage, error) {
	return s.response, nil
}

type DispatcherTestSuite struct {
	suite.Suite
}

func TestDispatcher(t *testing.T) {
	suite.Run(t, new(DispatcherTestSuite))
}

func depositFunds(amount int64) sdktypes.Coins {
	return sdktypes.NewCoins(sdktypes.NewCoin("uosmo", math.NewInt(amount)))
}

func (s *DispatcherTestSuite) execute(d *Dispatcher, info MsgInfo, msg vaultstandard.DefaultExecuteMsg) (math.Int, error) {
	raw, err := msg.Marshal()
	s.Require().NoError(err)
	return d.Execute(context.Background(), info, raw)
}

func (s *DispatcherTestSuite) query(d *Dispatcher, msg vaultstandard.DefaultQueryMsg) json.RawMessage {
	raw, err := msg.Marshal()
	s.Require().NoError(err)
	response, err := d.Query(context.Background(), raw)
	s.Require().NoError(err)
	return response
}

func (s *DispatcherTestSuite) queryInt(d *Dispatcher, msg vaultstandard.DefaultQueryMsg) math.Int {
	var result math.Int
	s.Require().NoError(json.Unmarshal(s.query(d, msg), &result))
	return result
}

func (s *DispatcherTestSuite) Test_PreviewDepositNeverOverestimates() {
	v := newTestVault()
	// skewed exchange rate, 3 assets per share
	v.totalAssets = math.NewInt(3000)
	v.totalShares = math.NewInt(1000)
	d := NewDispatcher(v)

	for _, amount := range []int64{1, 7, 1000, 2999} {
		preview := s.queryInt(d, vaultstandard.DefaultQueryMsg{
			PreviewDeposit: &vaultstandard.PreviewDeposit{Amount: math.NewInt(amount)},
		})

		minted, err := s.execute(d, MsgInfo{Sender: "osmo1sender", Funds: depositFunds(amount)},
			vaultstandard.DefaultExecuteMsg{
				Deposit: &vaultstandard.Deposit{Amount: math.NewInt(amount)},
			})
		s.Require().NoError(err)
		s.True(preview.LTE(minted), "preview %s must not exceed minted %s", preview, minted)
	}
}

func (s *DispatcherTestSuite) Test_ConvertRoundTripWithinOneUnit() {
	v := newTestVault()
	v.totalAssets = math.NewInt(2000)
	v.totalShares = math.NewInt(1000)
	d := NewDispatcher(v)

	for _, amount := range []int64{1, 2, 999, 1001, 54321} {
		x := math.NewInt(amount)
		shares := s.queryInt(d, vaultstandard.DefaultQueryMsg{
			ConvertToShares: &vaultstandard.ConvertToShares{Amount: x},
		})
		back := s.queryInt(d, vaultstandard.DefaultQueryMsg{
			ConvertToAssets: &vaultstandard.ConvertToAssets{Amount: shares},
		})

		s.True(back.LTE(x), "round trip must not inflate: %s -> %s", x, back)
		// drift bounded by one rounding unit, the asset value of one share
		unit := v.totalAssets.Quo(v.totalShares)
		s.True(x.Sub(back).LTE(unit), "drift %s exceeds one rounding unit %s", x.Sub(back), unit)
	}
}

func (s *DispatcherTestSuite) Test_DepositThenPreviewRedeem() {
	v := newTestVault()
	v.totalAssets = math.NewInt(7919)
	v.totalShares = math.NewInt(3571)
	d := NewDispatcher(v)

	minted, err := s.execute(d, MsgInfo{Sender: "osmo1sender", Funds: depositFunds(1000)},
		vaultstandard.DefaultExecuteMsg{
			Deposit: &vaultstandard.Deposit{Amount: math.NewInt(1000)},
		})
	s.Require().NoError(err)

	redeemable := s.queryInt(d, vaultstandard.DefaultQueryMsg{
		PreviewRedeem: &vaultstandard.PreviewRedeem{Amount: minted},
	})
	// zero-fee vault: never more than what went in
	s.True(redeemable.LTE(math.NewInt(1000)), "redeemable %s exceeds deposit", redeemable)
}

func (s *DispatcherTestSuite) Test_DepositsDisabledRejectsAnyAmount() {
	v := newTestVault()
	v.depositsDisabled = true
	d := NewDispatcher(v)

	limit := s.query(d, vaultstandard.DefaultQueryMsg{
		MaxDeposit: &vaultstandard.MaxDeposit{Recipient: "osmo1sender"},
	})
	s.JSONEq(`"0"`, string(limit))

	_, err := s.execute(d, MsgInfo{Sender: "osmo1sender", Funds: depositFunds(1)},
		vaultstandard.DefaultExecuteMsg{
			Deposit: &vaultstandard.Deposit{Amount: math.NewInt(1)},
		})
	s.Require().ErrorIs(err, vaultstandard.ErrLimitExceeded)
}

func (s *DispatcherTestSuite) Test_NoLimitNeverBlocksDeposit() {
	v := newTestVault()
	d := NewDispatcher(v)

	limit := s.query(d, vaultstandard.DefaultQueryMsg{
		MaxDeposit: &vaultstandard.MaxDeposit{Recipient: "osmo1sender"},
	})
	s.Equal("null", string(limit))

	amount := int64(1_000_000_000)
	_, err := s.execute(d, MsgInfo{Sender: "osmo1sender", Funds: depositFunds(amount)},
		vaultstandard.DefaultExecuteMsg{
			Deposit: &vaultstandard.Deposit{Amount: math.NewInt(amount)},
		})
	s.Require().NoError(err)
}

func (s *DispatcherTestSuite) Test_DepositCapEnforced() {
	v := newTestVault()
	cap := math.NewInt(500)
	v.depositCap = &cap
	d := NewDispatcher(v)

	_, err := s.execute(d, MsgInfo{Sender: "osmo1sender", Funds: depositFunds(501)},
		vaultstandard.DefaultExecuteMsg{
			Deposit: &vaultstandard.Deposit{Amount: math.NewInt(501)},
		})
	s.Require().ErrorIs(err, vaultstandard.ErrLimitExceeded)

	_, err = s.execute(d, MsgInfo{Sender: "osmo1sender", Funds: depositFunds(500)},
		vaultstandard.DefaultExecuteMsg{
			Deposit: &vaultstandard.Deposit{Amount: math.NewInt(500)},
		})
	s.Require().NoError(err)
}

func (s *DispatcherTestSuite) Test_FundsMismatchRejected() {
	v := newTestVault()
	d := NewDispatcher(v)

	_, err := s.execute(d, MsgInfo{Sender: "osmo1sender", Funds: depositFunds(500)},
		vaultstandard.DefaultExecuteMsg{
			Deposit: &vaultstandard.Deposit{Amount: math.NewInt(1000)},
		})
	s.Require().ErrorIs(err, vaultstandard.ErrFundsMismatch)

	_, err = s.execute(d, MsgInfo{Sender: "osmo1sender"},
		vaultstandard.DefaultExecuteMsg{
			Deposit: &vaultstandard.Deposit{Amount: math.NewInt(1000)},
		})
	s.Require().ErrorIs(err, vaultstandard.ErrFundsMismatch)
}

func (s *DispatcherTestSuite) Test_ZeroAmountRejected() {
	v := newTestVault()
	d := NewDispatcher(v)

	_, err := s.execute(d, MsgInfo{Sender: "osmo1sender"},
		vaultstandard.DefaultExecuteMsg{
			Deposit: &vaultstandard.Deposit{Amount: math.ZeroInt()},
		})
	s.Require().ErrorIs(err, vaultstandard.ErrZeroAmount)

	_, err = s.execute(d, MsgInfo{Sender: "osmo1sender"},
		vaultstandard.DefaultExecuteMsg{
			Redeem: &vaultstandard.Redeem{Amount: math.ZeroInt()},
		})
	s.Require().ErrorIs(err, vaultstandard.ErrZeroAmount)
}

func (s *DispatcherTestSuite) Test_RedeemBoundedByHoldings() {
	v := newTestVault()
	d := NewDispatcher(v)

	minted, err := s.execute(d, MsgInfo{Sender: "osmo1sender", Funds: depositFunds(1000)},
		vaultstandard.DefaultExecuteMsg{
			Deposit: &vaultstandard.Deposit{Amount: math.NewInt(1000)},
		})
	s.Require().NoError(err)

	_, err = s.execute(d, MsgInfo{Sender: "osmo1sender"},
		vaultstandard.DefaultExecuteMsg{
			Redeem: &vaultstandard.Redeem{Amount: minted.AddRaw(1)},
		})
	s.Require().ErrorIs(err, vaultstandard.ErrLimitExceeded)

	returned, err := s.execute(d, MsgInfo{Sender: "osmo1sender"},
		vaultstandard.DefaultExecuteMsg{
			Redeem: &vaultstandard.Redeem{Amount: minted},
		})
	s.Require().NoError(err)
	s.True(returned.LTE(math.NewInt(1000)))
}

func (s *DispatcherTestSuite) Test_UnsupportedExtensionLeavesStateUnchanged() {
	v := newTestVault()
	v.totalAssets = math.NewInt(1000)
	v.totalShares = math.NewInt(1000)
	d := NewDispatcher(v)

	msg := vaultstandard.DefaultExecuteMsg{
		VaultExtension: &vaultstandard.ExtensionExecuteMsg{
			Lockup: &lockup.ExecuteMsg{
				Unlock: &lockup.Unlock{Amount: math.NewInt(100)},
			},
		},
	}
	_, err := s.execute(d, MsgInfo{Sender: "osmo1sender"}, msg)
	s.Require().ErrorIs(err, vaultstandard.ErrUnsupportedExtension)

	s.Equal(math.NewInt(1000), v.totalAssets)
	s.Equal(math.NewInt(1000), v.totalShares)
}

func (s *DispatcherTestSuite) Test_RegisteredExtensionRouted() {
	v := newTestVault()
	executor := &stubExecutor{name: "lockup"}
	querier := &stubQuerier{name: "lockup", response: json.RawMessage(`{"height":86400}`)}
	d := NewDispatcher(v, WithExecutor(executor), WithQuerier(querier))

	msg := vaultstandard.DefaultExecuteMsg{
		VaultExtension: &vaultstandard.ExtensionExecuteMsg{
			Lockup: &lockup.ExecuteMsg{
				Unlock: &lockup.Unlock{Amount: math.NewInt(100)},
			},
		},
	}
	_, err := s.execute(d, MsgInfo{Sender: "osmo1sender"}, msg)
	s.Require().NoError(err)
	s.JSONEq(`{"unlock":{"amount":"100"}}`, string(executor.received))

	response := s.query(d, vaultstandard.DefaultQueryMsg{
		VaultExtension: &vaultstandard.ExtensionQueryMsg{
			Lockup: &lockup.QueryMsg{LockupDuration: &lockup.LockupDuration{}},
		},
	})
	s.JSONEq(`{"height":86400}`, string(response))
}

func (s *DispatcherTestSuite) Test_StandardInfoMatchesQuery() {
	v := newTestVault()
	executor := &stubExecutor{name: "lockup"}
	querier := &stubQuerier{name: "keeper", response: json.RawMessage(`[]`)}
	d := NewDispatcher(v, WithExecutor(executor), WithQuerier(querier))

	info := d.StandardInfo()
	s.Equal(vaultstandard.Version, info.Version)
	// registration order
	s.Equal([]string{"lockup", "keeper"}, info.Extensions)

	// value stored at the well-known key and the query response must be
	// byte-identical
	stored, err := info.Marshal()
	s.Require().NoError(err)
	queried := s.query(d, vaultstandard.DefaultQueryMsg{
		VaultStandardInfo: &vaultstandard.VaultStandardInfoQuery{},
	})
	s.Equal(string(stored), string(queried))
}

func (s *DispatcherTestSuite) Test_QueriesArePure() {
	v := newTestVault()
	v.totalAssets = math.NewInt(12345)
	v.totalShares = math.NewInt(6789)
	d := NewDispatcher(v)

	first := s.query(d, vaultstandard.DefaultQueryMsg{TotalAssets: &vaultstandard.TotalAssets{}})
	preview := s.queryInt(d, vaultstandard.DefaultQueryMsg{
		PreviewDeposit: &vaultstandard.PreviewDeposit{Amount: math.NewInt(100)},
	})
	second := s.query(d, vaultstandard.DefaultQueryMsg{TotalAssets: &vaultstandard.TotalAssets{}})

	s.Equal(string(first), string(second))
	s.False(preview.IsNil())
}

func (s *DispatcherTestSuite) Test_EmptyEnvelopeRejected() {
	v := newTestVault()
	d := NewDispatcher(v)

	_, err := d.Execute(context.Background(), MsgInfo{Sender: "osmo1sender"}, []byte(`{}`))
	s.Require().ErrorIs(err, vaultstandard.ErrUnknownMessage)

	_, err = d.Query(context.Background(), []byte(`{}`))
	s.Require().ErrorIs(err, vaultstandard.ErrUnknownMessage)
}
