package conf

type Conf struct {
	LogLevel string `json:"logLevel"`
	Account  Account
	Chain    Chain
	Contract Contract
}

type Account struct {
	KeyDir         string `json:"keyDir"`
	KeyringBackend string `json:"keyringBackend"`
	Bech32Prefix   string `json:"bech32Prefix"`
}

type Chain struct {
	ID  string `json:"id"`
	RPC string `json:"rpc"`
}

type Contract struct {
	Vault string `json:"vault"`
}

var content = `
logLevel = "info"

[account]
keyDir = "{keyDir}"
keyringBackend = "os"
bech32Prefix = "osmo"

[chain]
id = "osmosis-1" # chain id
rpc = "https://rpc.osmosis.zone:443" # chain rpc url

[contract]
vault = "" # address of the vault contract to operate on
`
