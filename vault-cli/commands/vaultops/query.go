package vaultops

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
)

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(out))
}

func parseAmount(s string) math.Int {
	amount, ok := math.NewIntFromString(s)
	if !ok {
		panic(fmt.Sprintf("amount must be an integer, got %q", s))
	}
	return amount
}

func StandardInfo() {
	s := NewService()
	info, err := s.Vault.VaultStandardInfo(context.Background())
	if err != nil {
		panic(err)
	}
	printJSON(info)
}

// StandardInfoRaw reads the standard info from the vault's storage key
// instead of querying the contract.
func StandardInfoRaw() {
	s := NewService()
	info, err := s.Vault.VaultStandardInfoRaw(context.Background())
	if err != nil {
		panic(err)
	}
	printJSON(info)
}

func Info() {
	s := NewService()
	info, err := s.Vault.Info(context.Background())
	if err != nil {
		panic(err)
	}
	printJSON(info)
}

func PreviewDeposit(amount string) {
	s := NewService()
	shares, err := s.Vault.PreviewDeposit(context.Background(), parseAmount(amount))
	if err != nil {
		panic(err)
	}
	fmt.Printf("Preview deposit: %s shares\n", shares)
}

func PreviewRedeem(amount string) {
	s := NewService()
	assets, err := s.Vault.PreviewRedeem(context.Background(), parseAmount(amount))
	if err != nil {
		panic(err)
	}
	fmt.Printf("Preview redeem: %s assets\n", assets)
}

func MaxDeposit(recipient string) {
	s := NewService()
	limit, err := s.Vault.MaxDeposit(context.Background(), recipient)
	if err != nil {
		panic(err)
	}
	if limit == nil {
		fmt.Println("Max deposit: no limit")
		return
	}
	fmt.Printf("Max deposit: %s\n", limit)
}

func MaxRedeem(owner string) {
	s := NewService()
	limit, err := s.Vault.MaxRedeem(context.Background(), owner)
	if err != nil {
		panic(err)
	}
	if limit == nil {
		fmt.Println("Max redeem: no limit")
		return
	}
	fmt.Printf("Max redeem: %s\n", limit)
}

func TotalAssets() {
	s := NewService()
	total, err := s.Vault.TotalAssets(context.Background())
	if err != nil {
		panic(err)
	}
	fmt.Printf("Total assets: %s\n", total)
}

func TotalVaultTokenSupply() {
	s := NewService()
	total, err := s.Vault.TotalVaultTokenSupply(context.Background())
	if err != nil {
		panic(err)
	}
	fmt.Printf("Total vault token supply: %s\n", total)
}

func ConvertToShares(amount string) {
	s := NewService()
	shares, err := s.Vault.ConvertToShares(context.Background(), parseAmount(amount))
	if err != nil {
		panic(err)
	}
	fmt.Printf("Shares: %s\n", shares)
}

func ConvertToAssets(amount string) {
	s := NewService()
	assets, err := s.Vault.ConvertToAssets(context.Background(), parseAmount(amount))
	if err != nil {
		panic(err)
	}
	fmt.Printf("Assets: %s\n", assets)
}
