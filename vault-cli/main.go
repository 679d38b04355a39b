package main

import (
	"fmt"
	"os"

	"github.com/margined-protocol/cw-vault-standard/vault-cli/cmd"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Println("error:", r)
			os.Exit(1)
		}
	}()
	rootCmd := cmd.Cmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
