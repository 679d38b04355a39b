package vaultapi

import (
	"encoding/json"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	"github.com/cosmos/cosmos-sdk/client"
	clienttx "github.com/cosmos/cosmos-sdk/client/tx"
	sdktypes "github.com/cosmos/cosmos-sdk/types"
)

type BroadcastOptions struct {
	ContractAddr  string           // ContractAddr: Address of the vault contract
	ExecuteMsg    []byte           // ExecuteMsg: JSON-encoded ExecuteMsg
	Funds         sdktypes.Coins   // Funds: Coins attached to the call
	GasAdjustment float64          // GasAdjustment: Gas adjustment factor for the estimated gas amount
	GasPrice      sdktypes.DecCoin // GasPrice: Gas price, e.g. "0.025uosmo"
	Gas           uint64           // Gas: Amount of gas reserved for transaction execution
	Simulate      bool             // Simulate: Whether to simulate the transaction to estimate gas usage
}

func DefaultBroadcastOptions() BroadcastOptions {
	return BroadcastOptions{
		Funds:         sdktypes.Coins{},
		GasAdjustment: 1.2,
		GasPrice:      sdktypes.NewInt64DecCoin("uosmo", 2500),
		Gas:           200_000,
		Simulate:      true,
	}
}

func (opts BroadcastOptions) WithContractAddr(contractAddr string) BroadcastOptions {
	opts.ContractAddr = contractAddr
	return opts
}

func (opts BroadcastOptions) WithExecuteMsg(executeMsg any) BroadcastOptions {
	executeMsgBytes, err := json.Marshal(executeMsg)
	if err != nil {
		panic(err)
	}

	opts.ExecuteMsg = executeMsgBytes
	return opts
}

func (opts BroadcastOptions) WithFunds(funds string) BroadcastOptions {
	coinFunds, err := sdktypes.ParseCoinsNormalized(funds)
	if err != nil {
		panic(err)
	}

	opts.Funds = coinFunds
	return opts
}

func (opts BroadcastOptions) WithCoins(funds sdktypes.Coins) BroadcastOptions {
	opts.Funds = funds
	return opts
}

func (opts BroadcastOptions) WithGasAdjustment(gasAdjustment float64) BroadcastOptions {
	opts.GasAdjustment = gasAdjustment
	return opts
}

func (opts BroadcastOptions) WithGasPrice(gasPrice string) BroadcastOptions {
	coin, err := sdktypes.ParseDecCoin(gasPrice)
	if err != nil {
		panic(err)
	}
	opts.GasPrice = coin
	return opts
}

func (opts BroadcastOptions) WithGas(gas uint64) BroadcastOptions {
	opts.Gas = gas
	return opts
}

func (opts BroadcastOptions) WithSimulate(simulate bool) BroadcastOptions {
	opts.Simulate = simulate
	return opts
}

// Execute broadcasts a MsgExecuteContract built from opts, signed by the
// clientCtx's from-account. The transaction result is written to the
// clientCtx output, following SDK convention.
func Execute(clientCtx client.Context, opts BroadcastOptions) error {
	msg := &wasmtypes.MsgExecuteContract{
		Sender:   clientCtx.GetFromAddress().String(),
		Contract: opts.ContractAddr,
		Msg:      opts.ExecuteMsg,
		Funds:    opts.Funds,
	}
	if err := msg.ValidateBasic(); err != nil {
		return err
	}

	txf := clienttx.Factory{}.
		WithTxConfig(clientCtx.TxConfig).
		WithAccountRetriever(clientCtx.AccountRetriever).
		WithKeybase(clientCtx.Keyring).
		WithChainID(clientCtx.ChainID).
		WithGas(opts.Gas).
		WithGasAdjustment(opts.GasAdjustment).
		WithGasPrices(opts.GasPrice.String()).
		WithSimulateAndExecute(opts.Simulate)

	return clienttx.GenerateOrBroadcastTxWithFactory(clientCtx, txf, msg)
}
