package fieldcipher

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"

	"github.com/akash4797/secure-encryption-decyrption-app/internal/apperr"
)

var (
	ErrMissingKey  = errors.New("key material is empty")
	ErrNotRSA      = errors.New("key is not an RSA key")
	ErrKeyMismatch = errors.New("private key does not match public key")
)

const minKeyBits = 2048

// parsePublicKey decodes a PEM "PUBLIC KEY" (SPKI) block holding an RSA key.
func parsePublicKey(data string) (*rsa.PublicKey, error) {
	block, err := decodePEM(data)
	if err != nil {
		return nil, err
	}
	key, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}
	pub, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, ErrNotRSA
	}
	return pub, nil
}

// parsePrivateKey decodes a PEM "PRIVATE KEY" (PKCS#8) block holding an RSA key.
func parsePrivateKey(data string) (*rsa.PrivateKey, error) {
	block, err := decodePEM(data)
	if err != nil {
		return nil, err
	}
	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	priv, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, ErrNotRSA
	}
	return priv, nil
}

func decodePEM(data string) (*pem.Block, error) {
	// env vars usually carry the PEM with literal "\n" sequences
	data = strings.TrimSpace(strings.ReplaceAll(data, `\n`, "\n"))
	if data == "" {
		return nil, ErrMissingKey
	}
	block, _ := pem.Decode([]byte(data))
	if block == nil {
		return nil, errors.New("no PEM block found")
	}
	return block, nil
}

// GenerateKeyPEM creates a fresh RSA keypair and returns it PEM-encoded as
// SPKI public and PKCS#8 private keys, the formats LoadKeys expects.
func GenerateKeyPEM(bits int) (publicPEM, privatePEM string, err error) {
	if bits < minKeyBits {
		bits = minKeyBits
	}
	priv, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return "", "", apperr.Internal("generate rsa key", err)
	}

	pubDER, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		return "", "", apperr.Internal("marshal public key", err)
	}
	privDER, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return "", "", apperr.Internal("marshal private key", err)
	}

	publicPEM = string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER}))
	privatePEM = string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privDER}))
	return publicPEM, privatePEM, nil
}
