// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package vault

import (
	"time"
)

type VaultInterface interface {
	Store(plaintext string) (Secret, error)
	Reveal(s Secret) (string, error)
	BuildConnectionDescriptor(host, user, password, database string, timeout time.Duration) ConnectionDescriptor
}
