package vaultops

import (
	"os"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	"github.com/cosmos/cosmos-sdk/std"
	authtx "github.com/cosmos/cosmos-sdk/x/auth/tx"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"go.uber.org/zap"

	vaultapi "github.com/margined-protocol/cw-vault-standard/vault-api"
	"github.com/margined-protocol/cw-vault-standard/vault-cli/conf"
)

type Service struct {
	Vault     vaultapi.VaultClient
	ClientCtx client.Context
}

func NewService() *Service {
	conf.InitConfig()
	initLogger(conf.C.LogLevel)

	rpcClient, err := client.NewClientFromNode(conf.C.Chain.RPC)
	if err != nil {
		panic(err)
	}

	interfaceRegistry := codectypes.NewInterfaceRegistry()
	std.RegisterInterfaces(interfaceRegistry)
	authtypes.RegisterInterfaces(interfaceRegistry)
	wasmtypes.RegisterInterfaces(interfaceRegistry)
	cdc := codec.NewProtoCodec(interfaceRegistry)

	clientCtx := client.Context{}.
		WithClient(rpcClient).
		WithChainID(conf.C.Chain.ID).
		WithCodec(cdc).
		WithInterfaceRegistry(interfaceRegistry).
		WithTxConfig(authtx.NewTxConfig(cdc, authtx.DefaultSignModes)).
		WithAccountRetriever(authtypes.AccountRetriever{}).
		WithBroadcastMode("sync")

	return &Service{
		Vault:     vaultapi.NewVaultClient(clientCtx, conf.C.Contract.Vault),
		ClientCtx: clientCtx,
	}
}

// WithKey loads the named key from the configured keyring so that execute
// commands can sign.
func (s *Service) WithKey(keyName string) *Service {
	kr, err := keyring.New("vault-cli", conf.C.Account.KeyringBackend, conf.C.Account.KeyDir, os.Stdin, s.ClientCtx.Codec)
	if err != nil {
		panic(err)
	}
	record, err := kr.Key(keyName)
	if err != nil {
		panic(err)
	}
	addr, err := record.GetAddress()
	if err != nil {
		panic(err)
	}

	s.ClientCtx = s.ClientCtx.
		WithKeyring(kr).
		WithFromName(keyName).
		WithFromAddress(addr)
	s.Vault = vaultapi.NewVaultClient(s.ClientCtx, conf.C.Contract.Vault)
	return s
}

func initLogger(level string) {
	cfg := zap.NewProductionConfig()
	if level == "debug" {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}
