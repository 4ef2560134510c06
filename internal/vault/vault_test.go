// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package vault

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/canonical/ops-console/internal/logging"
	"github.com/canonical/ops-console/internal/types"
)

func testKey(t *testing.T) string {
	t.Helper()
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		t.Fatal(err)
	}
	return base64.StdEncoding.EncodeToString(key)
}

func TestNewVaultRejectsBadKeys(t *testing.T) {
	logger := logging.NewNoopLogger()

	if _, err := NewVault("not base64!!", logger); err == nil {
		t.Fatal("expected error for invalid base64 key")
	}
	if _, err := NewVault(base64.StdEncoding.EncodeToString([]byte("short")), logger); err == nil {
		t.Fatal("expected error for short key")
	}
}

func TestStoreRevealRoundTrip(t *testing.T) {
	v, err := NewVault(testKey(t), logging.NewNoopLogger())
	if err != nil {
		t.Fatal(err)
	}

	secret, err := v.Store("s3cr3t-password")
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(secret.Ciphertext(), "s3cr3t-password") {
		t.Fatal("ciphertext contains plaintext")
	}
	if secret.String() != "[REDACTED]" {
		t.Fatalf("Secret must print redacted, got %q", secret.String())
	}

	plain, err := v.Reveal(secret)
	if err != nil {
		t.Fatal(err)
	}
	if plain != "s3cr3t-password" {
		t.Fatalf("expected round trip, got %q", plain)
	}
}

func TestRevealFailsOnMalformedBlob(t *testing.T) {
	v, err := NewVault(testKey(t), logging.NewNoopLogger())
	if err != nil {
		t.Fatal(err)
	}

	for _, blob := range []string{"", "no-separator", "x|y", "AAAA|%%%"} {
		if _, err := v.Reveal(FromCiphertext(blob)); !errors.Is(err, types.ErrDecryption) {
			t.Errorf("blob %q: expected ErrDecryption, got %v", blob, err)
		}
	}
}

func TestRevealFailsAfterKeyRotation(t *testing.T) {
	logger := logging.NewNoopLogger()

	v1, err := NewVault(testKey(t), logger)
	if err != nil {
		t.Fatal(err)
	}
	v2, err := NewVault(testKey(t), logger)
	if err != nil {
		t.Fatal(err)
	}

	secret, err := v1.Store("rotated-away")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := v2.Reveal(secret); !errors.Is(err, types.ErrDecryption) {
		t.Fatalf("expected ErrDecryption under a different key, got %v", err)
	}
}

func TestConnectionDescriptorDSN(t *testing.T) {
	v, err := NewVault(testKey(t), logging.NewNoopLogger())
	if err != nil {
		t.Fatal(err)
	}

	d := v.BuildConnectionDescriptor("10.0.0.5:5432", "acme_admin", "p@ss/word", "Acme", 0)

	dsn := d.DSN()
	for _, want := range []string{"connect_timeout=30", "sslmode=require", "10.0.0.5:5432", "/Acme"} {
		if !strings.Contains(dsn, want) {
			t.Errorf("DSN missing %q: %s", want, dsn)
		}
	}
	if strings.Contains(d.String(), "p@ss/word") {
		t.Fatal("descriptor String must not leak the password")
	}
	if !strings.Contains(dsn, "p%40ss%2Fword") {
		t.Errorf("DSN should carry the escaped password: %s", dsn)
	}

	custom := v.BuildConnectionDescriptor("h", "u", "p", "d", 5*time.Second)
	if !strings.Contains(custom.DSN(), "connect_timeout=5") {
		t.Errorf("custom timeout not honored: %s", custom.DSN())
	}
}
