// Package vaultapi is a client for contracts implementing the vault standard.
// It exposes the generic smart and raw query paths plus a typed VaultClient
// covering every protocol operation.
package vaultapi

import (
	"context"
	"encoding/json"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	"github.com/cosmos/cosmos-sdk/client"

	vaultstandard "github.com/margined-protocol/cw-vault-standard"
)

// Query sends a smart query to the contract at addr and decodes the response
// into Response.
func Query[Response interface{}](
	clientCtx client.Context, ctx context.Context, addr string, msg interface{},
) (Response, error) {
	var result Response
	queryClient := wasmtypes.NewQueryClient(clientCtx)

	queryBytes, err := json.Marshal(msg)
	if err != nil {
		return result, err
	}

	response, err := queryClient.SmartContractState(ctx, &wasmtypes.QuerySmartContractStateRequest{
		Address:   addr,
		QueryData: queryBytes,
	})
	if err != nil {
		return result, err
	}

	err = json.Unmarshal(response.Data, &result)
	return result, err
}

// QueryRaw reads the contract's storage at key directly, without invoking the
// contract.
func QueryRaw(
	clientCtx client.Context, ctx context.Context, addr string, key []byte,
) ([]byte, error) {
	queryClient := wasmtypes.NewQueryClient(clientCtx)

	response, err := queryClient.RawContractState(ctx, &wasmtypes.QueryRawContractStateRequest{
		Address:   addr,
		QueryData: key,
	})
	if err != nil {
		return nil, err
	}
	return response.Data, nil
}

// QueryVaultStandardInfo reads the vault's VaultStandardInfo from its
// well-known storage key. This avoids the cost of a smart query and must
// return the same value as the VaultStandardInfo query variant.
func QueryVaultStandardInfo(
	clientCtx client.Context, ctx context.Context, addr string,
) (vaultstandard.VaultStandardInfo, error) {
	data, err := QueryRaw(clientCtx, ctx, addr, []byte(vaultstandard.VaultStandardInfoKey))
	if err != nil {
		return vaultstandard.VaultStandardInfo{}, err
	}
	return vaultstandard.UnmarshalVaultStandardInfo(data)
}
