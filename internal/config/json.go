package config

import (
	"encoding/json"
	"os"
	"strings"
)

// JSONConfig is the on-disk shape of the optional config file. Zero values
// are ignored so a file only needs the keys it overrides.
type JSONConfig struct {
	Addr           string `json:"addr"`
	DatabaseDriver string `json:"database_driver"`
	DatabaseDSN    string `json:"database_dsn"`
	SecretKey      string `json:"secret_key"`
	PublicKeyFile  string `json:"public_key_file"`
	PrivateKeyFile string `json:"private_key_file"`
	StaticDir      string `json:"static_dir"`
	BcryptCost     int    `json:"bcrypt_cost"`
	LogLevel       string `json:"log_level"`
}

func parseJSON(c *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var j JSONConfig
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}

	setString(&c.Addr, j.Addr)
	setString(&c.DatabaseDriver, j.DatabaseDriver)
	setString(&c.DatabaseDSN, j.DatabaseDSN)
	setString(&c.SecretKey, j.SecretKey)
	setString(&c.PublicKeyFile, j.PublicKeyFile)
	setString(&c.PrivateKeyFile, j.PrivateKeyFile)
	setString(&c.StaticDir, j.StaticDir)
	setString(&c.LogLevel, j.LogLevel)
	if j.BcryptCost != 0 {
		c.BcryptCost = j.BcryptCost
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// jsonConfigPath finds -c/-config in args without parsing the other flags.
func jsonConfigPath(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		for _, name := range []string{"-c", "--c", "-config", "--config"} {
			if strings.HasPrefix(arg, name+"=") {
				return strings.TrimPrefix(arg, name+"=")
			}
			if arg == name && i+1 < len(args) {
				return args[i+1]
			}
		}
	}
	return ""
}
