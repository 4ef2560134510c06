package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"false"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// VaultMasterKey is the base64 encoded AES-256 key used to encrypt
	// tenant database credentials at rest. Generate one with `app keygen`.
	VaultMasterKey string `envconfig:"vault_master_key" required:"true"`

	// SessionLifetime is the fixed TTL of a session from login.
	SessionLifetime time.Duration `envconfig:"session_lifetime" default:"24h"`

	// CookieSecure controls the Secure attribute on the session cookie.
	// Disable only on local plain-http deployments.
	CookieSecure bool `envconfig:"cookie_secure" default:"true"`

	// FanoutConcurrency bounds the diagnostic fan-out worker pool.
	// 0 disables the bound and reproduces the legacy unbounded probe.
	FanoutConcurrency int `envconfig:"fanout_concurrency" default:"16"`

	// RemoteConnTimeout is the per-connection timeout baked into
	// generated connection descriptors.
	RemoteConnTimeout time.Duration `envconfig:"remote_conn_timeout" default:"30s"`
}
