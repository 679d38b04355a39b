package vaultops

import (
	"context"
	"fmt"
)

func Deposit(keyName, amount string, recipient string) {
	s := NewService().WithKey(keyName)

	var rcpt *string
	if recipient != "" {
		rcpt = &recipient
	}
	if err := s.Vault.Deposit(context.Background(), parseAmount(amount), rcpt); err != nil {
		panic(err)
	}
	fmt.Println("Deposit broadcast.")
}

func Redeem(keyName, amount string, recipient string) {
	s := NewService().WithKey(keyName)

	var rcpt *string
	if recipient != "" {
		rcpt = &recipient
	}
	if err := s.Vault.Redeem(context.Background(), parseAmount(amount), rcpt); err != nil {
		panic(err)
	}
	fmt.Println("Redeem broadcast.")
}
