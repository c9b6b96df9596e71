package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/akash4797/secure-encryption-decyrption-app/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(nil, envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "sqlite3", cfg.DatabaseDriver)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Empty(t, cfg.SecretKey, "there must be no default secret")

	err = cfg.Validate()
	require.Error(t, err)
	assert.Equal(t, apperr.KindConfig, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "PUBLIC_KEY")
	assert.Contains(t, err.Error(), "PRIVATE_KEY")
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{
		"addr": ":7000",
		"database_dsn": "from-json.db",
		"secret_key": "json-secret",
		"bcrypt_cost": 11,
		"log_level": "warn"
	}`), 0o600))

	env := envMap(map[string]string{
		"DATABASE_DSN": "from-env.db",
		"PUBLIC_KEY":   "pub-pem",
		"PRIVATE_KEY":  "priv-pem",
		"BCRYPT_COST":  "12",
	})

	cfg, err := LoadConfig([]string{"-c", jsonPath, "-a", ":9000"}, env)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr, "flag beats json")
	assert.Equal(t, "from-env.db", cfg.DatabaseDSN, "env beats json")
	assert.Equal(t, "json-secret", cfg.SecretKey, "json beats default")
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_KeyFiles(t *testing.T) {
	dir := t.TempDir()
	pub := filepath.Join(dir, "pub.pem")
	priv := filepath.Join(dir, "priv.pem")
	require.NoError(t, os.WriteFile(pub, []byte("PUBLIC"), 0o600))
	require.NoError(t, os.WriteFile(priv, []byte("PRIVATE"), 0o600))

	cfg, err := LoadConfig([]string{"-pub", pub, "-priv=" + priv, "-s", "k"}, envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, "PUBLIC", cfg.PublicKey)
	assert.Equal(t, "PRIVATE", cfg.PrivateKey)
	assert.NoError(t, cfg.Validate())

	_, err = LoadConfig([]string{"-pub", filepath.Join(dir, "missing.pem")}, envMap(nil))
	require.Error(t, err)
	assert.Equal(t, apperr.KindConfig, apperr.KindOf(err))
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(nil, envMap(map[string]string{"BCRYPT_COST": "ten"}))
	assert.Equal(t, apperr.KindConfig, apperr.KindOf(err))

	_, err = LoadConfig([]string{"-unknown"}, envMap(nil))
	assert.Equal(t, apperr.KindConfig, apperr.KindOf(err))

	_, err = LoadConfig([]string{"-c", filepath.Join(t.TempDir(), "nope.json")}, envMap(nil))
	assert.Equal(t, apperr.KindConfig, apperr.KindOf(err))
}

func TestValidate_Driver(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.SecretKey, cfg.PublicKey, cfg.PrivateKey = "s", "pub", "priv"

	cfg.DatabaseDriver = "pgx"
	assert.NoError(t, cfg.Validate())

	cfg.DatabaseDriver = "mysql"
	assert.Error(t, cfg.Validate())
}

func TestJSONConfigPath(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"-c", "a.json"}, "a.json"},
		{[]string{"-config=b.json"}, "b.json"},
		{[]string{"--config", "c.json", "-a", ":1"}, "c.json"},
		{[]string{"-a", ":1"}, ""},
		{[]string{"-c"}, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, jsonConfigPath(tt.args), "args %v", tt.args)
	}
}
