// Package fieldcipher encrypts individual profile fields at rest.
//
// Each field is a JWE in compact serialization, key-wrapped with RSA-OAEP-256
// and content-encrypted with A256GCM. Both algorithms travel in the protected
// header, so a stored value can be decrypted with nothing but the private key.
package fieldcipher

import (
	"crypto/rsa"

	"github.com/akash4797/secure-encryption-decyrption-app/internal/apperr"
	"github.com/go-jose/go-jose/v4"
)

const (
	keyAlgorithm     = jose.RSA_OAEP_256
	contentAlgorithm = jose.A256GCM
)

// Cipher holds one immutable RSA keypair; it is safe for concurrent use.
type Cipher struct {
	public  *rsa.PublicKey
	private *rsa.PrivateKey
}

// LoadKeys builds a Cipher from a PEM SPKI public key and a PEM PKCS#8
// private key. Every failure here is a configuration error.
func LoadKeys(publicPEM, privatePEM string) (*Cipher, error) {
	pub, err := parsePublicKey(publicPEM)
	if err != nil {
		return nil, apperr.Config("invalid public key", err)
	}
	priv, err := parsePrivateKey(privatePEM)
	if err != nil {
		return nil, apperr.Config("invalid private key", err)
	}
	if !priv.PublicKey.Equal(pub) {
		return nil, apperr.Config("inconsistent keypair", ErrKeyMismatch)
	}
	if pub.N.BitLen() < minKeyBits {
		return nil, apperr.Config("rsa key too small", nil)
	}

	return &Cipher{public: pub, private: priv}, nil
}

func (c *Cipher) Encrypt(plaintext string) (string, error) {
	enc, err := jose.NewEncrypter(contentAlgorithm, jose.Recipient{Algorithm: keyAlgorithm, Key: c.public}, nil)
	if err != nil {
		return "", apperr.Internal("init encrypter", err)
	}
	obj, err := enc.Encrypt([]byte(plaintext))
	if err != nil {
		return "", apperr.Internal("encrypt field", err)
	}
	out, err := obj.CompactSerialize()
	if err != nil {
		return "", apperr.Internal("serialize field", err)
	}
	return out, nil
}

// Decrypt fails with a KindDecryption error for empty input, malformed
// envelopes and envelopes addressed to a different key.
func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	if ciphertext == "" {
		return "", apperr.Decryption(nil)
	}
	obj, err := jose.ParseEncrypted(ciphertext,
		[]jose.KeyAlgorithm{keyAlgorithm},
		[]jose.ContentEncryption{contentAlgorithm},
	)
	if err != nil {
		return "", apperr.Decryption(err)
	}
	plaintext, err := obj.Decrypt(c.private)
	if err != nil {
		return "", apperr.Decryption(err)
	}
	return string(plaintext), nil
}

// EncryptField stores an empty value as the empty string and never passes it
// through the cipher.
func (c *Cipher) EncryptField(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}
	return c.Encrypt(plaintext)
}

// DecryptField reads an absent (empty) stored value as "".
func (c *Cipher) DecryptField(stored string) (string, error) {
	if stored == "" {
		return "", nil
	}
	return c.Decrypt(stored)
}
