// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package vault

import (
	"fmt"
	"net/url"
	"time"
)

const defaultConnTimeout = 30 * time.Second

// ConnectionDescriptor is a pure value describing how to reach one remote
// tenant database. Building it performs no I/O.
type ConnectionDescriptor struct {
	Host     string
	Database string
	User     string
	Timeout  time.Duration

	password string
}

// BuildConnectionDescriptor assembles a descriptor for a remote tenant
// database. Credentials are always explicit (no OS-integrated auth) and the
// server certificate is not verified against a CA, suiting the self-signed
// deployments these tenant servers run.
func (v *Vault) BuildConnectionDescriptor(host, user, password, database string, timeout time.Duration) ConnectionDescriptor {
	if timeout <= 0 {
		timeout = defaultConnTimeout
	}

	return ConnectionDescriptor{
		Host:     host,
		Database: database,
		User:     user,
		Timeout:  timeout,
		password: password,
	}
}

// DSN renders the descriptor for the pgx stdlib driver.
func (d ConnectionDescriptor) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.password),
		Host:   d.Host,
		Path:   "/" + d.Database,
	}

	q := u.Query()
	q.Set("connect_timeout", fmt.Sprintf("%d", int(d.Timeout.Seconds())))
	q.Set("sslmode", "require")
	u.RawQuery = q.Encode()

	return u.String()
}

// String redacts the embedded credential.
func (d ConnectionDescriptor) String() string {
	return fmt.Sprintf("postgres://%s:[REDACTED]@%s/%s", d.User, d.Host, d.Database)
}
