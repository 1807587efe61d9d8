package handshake

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

// TokenProtectorKey is the key used to seal address validation tokens.
type TokenProtectorKey [32]byte

const (
	tokenNonceSize = 32
	tokenTagSize   = 16 // AES-GCM
)

const tokenProtectorHKDFInfo = "quicgate token source"

// tokenProtector derives a fresh AEAD for every token from the long-lived key
// and a per-token nonce, so nonce reuse across tokens is never a concern.
type tokenProtector struct {
	key TokenProtectorKey
}

func newTokenProtector(key TokenProtectorKey) *tokenProtector {
	return &tokenProtector{key: key}
}

// sealTag appends the authentication tag over aad, for the given nonce, to b.
func (s *tokenProtector) sealTag(b, nonce, aad []byte) ([]byte, error) {
	aead, aeadNonce, err := s.createAEAD(nonce)
	if err != nil {
		return nil, err
	}
	return aead.Seal(b, aeadNonce, nil, aad), nil
}

// verifyTag checks the authentication tag over aad, for the given nonce.
func (s *tokenProtector) verifyTag(tag, nonce, aad []byte) bool {
	aead, aeadNonce, err := s.createAEAD(nonce)
	if err != nil {
		return false
	}
	_, err = aead.Open(nil, aeadNonce, tag, aad)
	return err == nil
}

func (s *tokenProtector) createAEAD(nonce []byte) (cipher.AEAD, []byte, error) {
	h := hkdf.New(sha256.New, s.key[:], nonce, []byte(tokenProtectorHKDFInfo))
	// expand to get key (32 bytes) and nonce (12 bytes) in one HKDF call
	expanded := make([]byte, 32+12)
	if _, err := io.ReadFull(h, expanded); err != nil {
		return nil, nil, err
	}

	key := expanded[:32] // use a 32 byte key, in order to select AES-256
	aeadNonce := expanded[32:]

	c, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, err
	}
	aead, err := cipher.NewGCM(c)
	if err != nil {
		return nil, nil, err
	}
	return aead, aeadNonce, nil
}
