package config

import (
	"fmt"
	"strconv"
)

// parseEnv overlays values from the environment. Unset variables leave the
// current value alone.
func parseEnv(c *Config, getenv func(string) string) error {
	if getenv == nil {
		return nil
	}

	str := map[string]*string{
		"ADDR":             &c.Addr,
		"DATABASE_DRIVER":  &c.DatabaseDriver,
		"DATABASE_DSN":     &c.DatabaseDSN,
		"JWT_SECRET":       &c.SecretKey,
		"PUBLIC_KEY":       &c.PublicKey,
		"PRIVATE_KEY":      &c.PrivateKey,
		"PUBLIC_KEY_FILE":  &c.PublicKeyFile,
		"PRIVATE_KEY_FILE": &c.PrivateKeyFile,
		"STATIC_DIR":       &c.StaticDir,
		"LOG_LEVEL":        &c.LogLevel,
	}
	for name, dst := range str {
		if v := getenv(name); v != "" {
			*dst = v
		}
	}

	if v := getenv("BCRYPT_COST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BCRYPT_COST: %w", err)
		}
		c.BcryptCost = n
	}
	return nil
}
