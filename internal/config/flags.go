package config

import (
	"flag"
	"io"
)

// parseFlags overlays command-line flags.
//
// Supported flags:
//
//	-a string      HTTP bind address
//	-driver string database driver (sqlite3, pgx)
//	-d string      database DSN
//	-s string      session token secret
//	-pub string    path to the PEM public key
//	-priv string   path to the PEM private key
//	-static string page directory
//	-cost int      bcrypt cost
//	-log string    log level
//	-genkeys       print a fresh keypair and exit
//	-c string      JSON config file (read earlier by jsonConfigPath)
func parseFlags(c *Config, args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&c.Addr, "a", c.Addr, "address and port to run server")
	fs.StringVar(&c.DatabaseDriver, "driver", c.DatabaseDriver, "database driver")
	fs.StringVar(&c.DatabaseDSN, "d", c.DatabaseDSN, "database DSN")
	fs.StringVar(&c.SecretKey, "s", c.SecretKey, "session token secret")
	fs.StringVar(&c.PublicKeyFile, "pub", c.PublicKeyFile, "public key file (PEM, SPKI)")
	fs.StringVar(&c.PrivateKeyFile, "priv", c.PrivateKeyFile, "private key file (PEM, PKCS#8)")
	fs.StringVar(&c.StaticDir, "static", c.StaticDir, "page directory")
	fs.IntVar(&c.BcryptCost, "cost", c.BcryptCost, "bcrypt cost")
	fs.StringVar(&c.LogLevel, "log", c.LogLevel, "log level")
	fs.BoolVar(&c.GenerateKeys, "genkeys", false, "print a new RSA keypair and exit")
	fs.String("c", "", "JSON config file")
	fs.String("config", "", "JSON config file")

	return fs.Parse(args)
}
