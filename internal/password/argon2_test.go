// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package password

import (
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	phc, err := Hash(Default, "correct horse battery staple")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(phc, "$argon2id$v=19$") {
		t.Fatalf("unexpected PHC format: %s", phc)
	}
	if !Verify("correct horse battery staple", phc) {
		t.Fatal("expected verification to succeed")
	}
	if Verify("wrong password", phc) {
		t.Fatal("expected verification to fail")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	for _, phc := range []string{"", "$argon2id$", "$argon2i$v=19$m=1,t=1,p=1$a$b", "plain"} {
		if Verify("anything", phc) {
			t.Errorf("Verify accepted malformed hash %q", phc)
		}
	}
}

func TestHashRejectsEmptyPassword(t *testing.T) {
	if _, err := Hash(Default, ""); err == nil {
		t.Fatal("expected error for empty password")
	}
}
