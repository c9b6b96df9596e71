// Package config builds the server configuration from defaults, an optional
// JSON file, the environment and command-line flags, in that order of
// precedence (later wins).
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/akash4797/secure-encryption-decyrption-app/internal/apperr"
)

// Config holds runtime settings.
//
// Fields:
//   - Addr: HTTP bind address.
//   - DatabaseDriver / DatabaseDSN: "sqlite3" or "pgx" and its DSN.
//   - SecretKey: HMAC secret for session tokens (HS256). Required.
//   - PublicKey / PrivateKey: PEM RSA keypair for field encryption. Required,
//     either inline or through PublicKeyFile / PrivateKeyFile.
//   - StaticDir: directory holding the page templates.
//   - BcryptCost: password hashing cost.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	Addr           string
	DatabaseDriver string
	DatabaseDSN    string
	SecretKey      string
	PublicKey      string
	PrivateKey     string
	PublicKeyFile  string
	PrivateKeyFile string
	StaticDir      string
	BcryptCost     int
	LogLevel       string
	GenerateKeys   bool
}

// LoadDefaults populates Config with development defaults. There is no
// default secret or keypair; those must be supplied.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.DatabaseDriver = "sqlite3"
	c.DatabaseDSN = "profiles.db"
	c.StaticDir = "static"
	c.BcryptCost = 10
	c.LogLevel = "info"
}

// LoadConfig applies defaults, the JSON file named by -c/-config, the
// environment and finally the flags in args.
func LoadConfig(args []string, getenv func(string) string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path := jsonConfigPath(args); path != "" {
		if err := parseJSON(cfg, path); err != nil {
			return nil, apperr.Config("config file", err)
		}
	}
	if err := parseEnv(cfg, getenv); err != nil {
		return nil, apperr.Config("environment", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, apperr.Config("flags", err)
	}
	if err := cfg.resolveKeyFiles(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) resolveKeyFiles() error {
	if c.PublicKey == "" && c.PublicKeyFile != "" {
		b, err := os.ReadFile(c.PublicKeyFile)
		if err != nil {
			return apperr.Config("read public key file", err)
		}
		c.PublicKey = string(b)
	}
	if c.PrivateKey == "" && c.PrivateKeyFile != "" {
		b, err := os.ReadFile(c.PrivateKeyFile)
		if err != nil {
			return apperr.Config("read private key file", err)
		}
		c.PrivateKey = string(b)
	}
	return nil
}

// Validate reports every missing required value at once.
func (c *Config) Validate() error {
	var missing []string
	if c.SecretKey == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if strings.TrimSpace(c.PublicKey) == "" {
		missing = append(missing, "PUBLIC_KEY")
	}
	if strings.TrimSpace(c.PrivateKey) == "" {
		missing = append(missing, "PRIVATE_KEY")
	}
	if c.DatabaseDSN == "" {
		missing = append(missing, "DATABASE_DSN")
	}
	if len(missing) > 0 {
		return apperr.Config(fmt.Sprintf("missing required configuration: %s", strings.Join(missing, ", ")), nil)
	}
	switch c.DatabaseDriver {
	case "sqlite3", "pgx":
	default:
		return apperr.Config(fmt.Sprintf("unsupported database driver %q", c.DatabaseDriver), nil)
	}
	return nil
}
