// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/canonical/ops-console/internal/logging"
	"github.com/canonical/ops-console/internal/types"
)

const (
	// AES-256 master key, supplied base64 encoded.
	requiredKeyLength = 32
	// Recommended AES-GCM nonce size (96 bits).
	nonceSize = 12
	// Ciphertext layout: base64(nonce)|base64(ciphertext).
	sep = "|"
)

// Secret is a vault-encrypted value. The ciphertext is only reachable via
// Ciphertext() for persistence, and the type prints redacted so a stray log
// statement can never leak it.
type Secret struct {
	ciphertext string
}

// FromCiphertext rehydrates a Secret loaded from storage.
func FromCiphertext(ciphertext string) Secret {
	return Secret{ciphertext: ciphertext}
}

func (s Secret) Ciphertext() string {
	return s.ciphertext
}

func (s Secret) String() string {
	return "[REDACTED]"
}

var _ VaultInterface = (*Vault)(nil)

// Vault performs symmetric encryption of tenant database credentials with a
// process-wide AES-256-GCM key.
type Vault struct {
	key []byte

	logger logging.LoggerInterface
}

// NewVault decodes and validates the base64 master key. A misconfigured key
// is a startup-fatal condition, not a per-request one, so the error must be
// handled before serving traffic.
func NewVault(masterKeyB64 string, logger logging.LoggerInterface) (*Vault, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(masterKeyB64))
	if err != nil {
		return nil, fmt.Errorf("failed to decode vault master key: %w", err)
	}
	if len(key) != requiredKeyLength {
		return nil, fmt.Errorf("vault master key must decode to %d bytes, got %d", requiredKeyLength, len(key))
	}

	v := new(Vault)
	v.key = key
	v.logger = logger

	return v, nil
}

// Store encrypts a plaintext password and returns the opaque secret.
func (v *Vault) Store(plaintext string) (Secret, error) {
	aead, err := v.aead()
	if err != nil {
		return Secret{}, err
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return Secret{}, fmt.Errorf("failed to generate nonce: %w", err)
	}

	ct := aead.Seal(nil, nonce, []byte(plaintext), nil)

	blob := base64.StdEncoding.EncodeToString(nonce) + sep + base64.StdEncoding.EncodeToString(ct)
	return Secret{ciphertext: blob}, nil
}

// Reveal decrypts a secret. A malformed blob or a key mismatch (rotation)
// yields ErrDecryption, never a panic.
func (v *Vault) Reveal(s Secret) (string, error) {
	parts := strings.SplitN(s.ciphertext, sep, 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("malformed blob: %w", types.ErrDecryption)
	}

	nonce, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil || len(nonce) != nonceSize {
		return "", fmt.Errorf("malformed nonce: %w", types.ErrDecryption)
	}

	ct, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", fmt.Errorf("malformed ciphertext: %w", types.ErrDecryption)
	}

	aead, err := v.aead()
	if err != nil {
		return "", err
	}

	plaintext, err := aead.Open(nil, nonce, ct, nil)
	if err != nil {
		// Wrong key or tampered blob, indistinguishable by design.
		return "", types.ErrDecryption
	}

	return string(plaintext), nil
}

func (v *Vault) aead() (cipher.AEAD, error) {
	block, err := aes.NewCipher(v.key)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cipher: %w", err)
	}

	return cipher.NewGCM(block)
}
