package conf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var C *Conf

func InitConfig() {
	configPath := os.Getenv("VAULT_CLI_CONFIG")
	if configPath == "" {
		home := checkConfig()
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
		viper.AddConfigPath(filepath.Join(home, ".config", "vault-cli"))
	} else {
		viper.SetConfigFile(configPath)
	}

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("Error reading config file:", err)
	}
	if err := viper.Unmarshal(&C); err != nil {
		panic(fmt.Sprintf("config file invalid. %+x", err))
	}
}

// checkConfig seeds a default config file on first run and returns the home
// directory.
func checkConfig() string {
	home, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("Error getting home directory: %s\n", err))
	}
	configDir := filepath.Join(home, ".config", "vault-cli")
	configFile := filepath.Join(configDir, "config.toml")

	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		if err := os.MkdirAll(configDir, os.ModePerm); err != nil {
			panic(fmt.Sprintf("Error creating directory: %s\n", err))
		}
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		file, err := os.Create(configFile)
		if err != nil {
			panic(fmt.Sprintf("Error creating file: %s\n", err))
		}
		defer file.Close()
		config := strings.Replace(content, "{keyDir}", home+"/.osmosisd", 1)
		if _, err = file.WriteString(config); err != nil {
			panic(fmt.Sprintf("Error writing to file: %s\n", err))
		}
	}
	return home
}
