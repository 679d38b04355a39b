package vaultapi

import (
	"context"
	"time"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/client"
	sdktypes "github.com/cosmos/cosmos-sdk/types"
	"go.uber.org/zap"

	vaultstandard "github.com/margined-protocol/cw-vault-standard"
	"github.com/margined-protocol/cw-vault-standard/metrics"
)

// VaultClient is a typed client for a single vault contract, one method per
// protocol operation.
type VaultClient interface {
	WithGasAdjustment(gasAdjustment float64) VaultClient
	WithGasPrice(gasPrice sdktypes.DecCoin) VaultClient
	WithGasLimit(gasLimit uint64) VaultClient
	WithIndicators(indicators *metrics.Indicators) VaultClient

	Deposit(ctx context.Context, amount math.Int, recipient *string) error
	Redeem(ctx context.Context, amount math.Int, recipient *string) error

	VaultStandardInfo(ctx context.Context) (vaultstandard.VaultStandardInfo, error)
	VaultStandardInfoRaw(ctx context.Context) (vaultstandard.VaultStandardInfo, error)
	Info(ctx context.Context) (vaultstandard.VaultInfo, error)
	PreviewDeposit(ctx context.Context, amount math.Int) (math.Int, error)
	PreviewRedeem(ctx context.Context, amount math.Int) (math.Int, error)
	MaxDeposit(ctx context.Context, recipient string) (*math.Int, error)
	MaxRedeem(ctx context.Context, owner string) (*math.Int, error)
	TotalAssets(ctx context.Context) (math.Int, error)
	TotalVaultTokenSupply(ctx context.Context) (math.Int, error)
	ConvertToShares(ctx context.Context, amount math.Int) (math.Int, error)
	ConvertToAssets(ctx context.Context, amount math.Int) (math.Int, error)
}

type vaultClientImpl struct {
	clientCtx    client.Context
	contractAddr string
	opts         BroadcastOptions
	indicators   *metrics.Indicators
	logger       *zap.Logger
}

var _ VaultClient = (*vaultClientImpl)(nil)

func NewVaultClient(clientCtx client.Context, contractAddr string) VaultClient {
	return &vaultClientImpl{
		clientCtx:    clientCtx,
		contractAddr: contractAddr,
		opts:         DefaultBroadcastOptions().WithContractAddr(contractAddr),
		logger:       zap.L(),
	}
}

func (c *vaultClientImpl) WithGasAdjustment(gasAdjustment float64) VaultClient {
	c.opts = c.opts.WithGasAdjustment(gasAdjustment)
	return c
}

func (c *vaultClientImpl) WithGasPrice(gasPrice sdktypes.DecCoin) VaultClient {
	c.opts.GasPrice = gasPrice
	return c
}

func (c *vaultClientImpl) WithGasLimit(gasLimit uint64) VaultClient {
	c.opts = c.opts.WithGas(gasLimit)
	return c
}

func (c *vaultClientImpl) WithIndicators(indicators *metrics.Indicators) VaultClient {
	c.indicators = indicators
	return c
}

// Deposit executes a deposit, attaching the base token as funds when the
// vault accounts in a native denom. Cw20-based vaults receive the asset
// out-of-band via a cw20 send instead.
func (c *vaultClientImpl) Deposit(ctx context.Context, amount math.Int, recipient *string) error {
	info, err := c.Info(ctx)
	if err != nil {
		return err
	}

	funds := sdktypes.Coins{}
	if info.BaseToken.IsNative() {
		denom, err := info.BaseToken.ToNativeDenom()
		if err != nil {
			return err
		}
		funds = sdktypes.NewCoins(sdktypes.NewCoin(denom, amount))
	}

	msg := vaultstandard.DefaultExecuteMsg{
		Deposit: &vaultstandard.Deposit{
			Amount:    amount,
			Recipient: recipient,
		},
	}
	return c.execute(ctx, "deposit", msg, funds)
}

// Redeem executes a redemption, attaching the vault token as funds when it is
// a native denom.
func (c *vaultClientImpl) Redeem(ctx context.Context, amount math.Int, recipient *string) error {
	info, err := c.Info(ctx)
	if err != nil {
		return err
	}

	funds := sdktypes.Coins{}
	if info.VaultToken.IsNative() {
		denom, err := info.VaultToken.ToNativeDenom()
		if err != nil {
			return err
		}
		funds = sdktypes.NewCoins(sdktypes.NewCoin(denom, amount))
	}

	msg := vaultstandard.DefaultExecuteMsg{
		Redeem: &vaultstandard.Redeem{
			Recipient: recipient,
			Amount:    amount,
		},
	}
	return c.execute(ctx, "redeem", msg, funds)
}

func (c *vaultClientImpl) VaultStandardInfo(ctx context.Context) (vaultstandard.VaultStandardInfo, error) {
	msg := vaultstandard.DefaultQueryMsg{
		VaultStandardInfo: &vaultstandard.VaultStandardInfoQuery{},
	}
	return query[vaultstandard.VaultStandardInfo](c, ctx, "vault_standard_info", msg)
}

// VaultStandardInfoRaw reads the same information from the vault's well-known
// storage key, skipping contract dispatch.
func (c *vaultClientImpl) VaultStandardInfoRaw(ctx context.Context) (vaultstandard.VaultStandardInfo, error) {
	started := time.Now()
	info, err := QueryVaultStandardInfo(c.clientCtx, ctx, c.contractAddr)
	c.observeQuery("vault_standard_info_raw", started, err)
	return info, err
}

func (c *vaultClientImpl) Info(ctx context.Context) (vaultstandard.VaultInfo, error) {
	msg := vaultstandard.DefaultQueryMsg{
		Info: &vaultstandard.InfoQuery{},
	}
	return query[vaultstandard.VaultInfo](c, ctx, "info", msg)
}

func (c *vaultClientImpl) PreviewDeposit(ctx context.Context, amount math.Int) (math.Int, error) {
	msg := vaultstandard.DefaultQueryMsg{
		PreviewDeposit: &vaultstandard.PreviewDeposit{Amount: amount},
	}
	return query[math.Int](c, ctx, "preview_deposit", msg)
}

func (c *vaultClientImpl) PreviewRedeem(ctx context.Context, amount math.Int) (math.Int, error) {
	msg := vaultstandard.DefaultQueryMsg{
		PreviewRedeem: &vaultstandard.PreviewRedeem{Amount: amount},
	}
	return query[math.Int](c, ctx, "preview_redeem", msg)
}

func (c *vaultClientImpl) MaxDeposit(ctx context.Context, recipient string) (*math.Int, error) {
	msg := vaultstandard.DefaultQueryMsg{
		MaxDeposit: &vaultstandard.MaxDeposit{Recipient: recipient},
	}
	return query[*math.Int](c, ctx, "max_deposit", msg)
}

func (c *vaultClientImpl) MaxRedeem(ctx context.Context, owner string) (*math.Int, error) {
	msg := vaultstandard.DefaultQueryMsg{
		MaxRedeem: &vaultstandard.MaxRedeem{Owner: owner},
	}
	return query[*math.Int](c, ctx, "max_redeem", msg)
}

func (c *vaultClientImpl) TotalAssets(ctx context.Context) (math.Int, error) {
	msg := vaultstandard.DefaultQueryMsg{
		TotalAssets: &vaultstandard.TotalAssets{},
	}
	return query[math.Int](c, ctx, "total_assets", msg)
}

func (c *vaultClientImpl) TotalVaultTokenSupply(ctx context.Context) (math.Int, error) {
	msg := vaultstandard.DefaultQueryMsg{
		TotalVaultTokenSupply: &vaultstandard.TotalVaultTokenSupply{},
	}
	return query[math.Int](c, ctx, "total_vault_token_supply", msg)
}

func (c *vaultClientImpl) ConvertToShares(ctx context.Context, amount math.Int) (math.Int, error) {
	msg := vaultstandard.DefaultQueryMsg{
		ConvertToShares: &vaultstandard.ConvertToShares{Amount: amount},
	}
	return query[math.Int](c, ctx, "convert_to_shares", msg)
}

func (c *vaultClientImpl) ConvertToAssets(ctx context.Context, amount math.Int) (math.Int, error) {
	msg := vaultstandard.DefaultQueryMsg{
		ConvertToAssets: &vaultstandard.ConvertToAssets{Amount: amount},
	}
	return query[math.Int](c, ctx, "convert_to_assets", msg)
}

func query[Response interface{}](c *vaultClientImpl, ctx context.Context, method string, msg any) (Response, error) {
	started := time.Now()
	response, err := Query[Response](c.clientCtx, ctx, c.contractAddr, msg)
	c.observeQuery(method, started, err)
	return response, err
}

func (c *vaultClientImpl) observeQuery(method string, started time.Time, err error) {
	if c.indicators != nil {
		c.indicators.AddQueryTotal(method, c.contractAddr)
		c.indicators.ObserveQueryDuration(time.Since(started).Seconds(), method, c.contractAddr)
	}
	if err != nil {
		c.logger.Warn("vault query failed",
			zap.String("method", method),
			zap.String("contract", c.contractAddr),
			zap.Error(err),
		)
	}
}

func (c *vaultClientImpl) execute(ctx context.Context, method string, msg any, funds sdktypes.Coins) error {
	opts := c.opts.WithExecuteMsg(msg).WithCoins(funds)
	err := Execute(c.clientCtx, opts)
	if c.indicators != nil {
		c.indicators.AddExecuteTotal(method, c.contractAddr)
	}
	if err != nil {
		c.logger.Error("vault execute failed",
			zap.String("method", method),
			zap.String("contract", c.contractAddr),
			zap.Error(err),
		)
	}
	return err
}
