// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevelFallsBackToError(t *testing.T) {
	if got := parseLevel("invalid"); got != zapcore.ErrorLevel {
		t.Fatalf("expected error level fallback, got %v", got)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
	}

	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNoopSecurityLogger(t *testing.T) {
	l := NewNoopLogger()
	// Must not panic on any audit event.
	l.Security().SystemStartup()
	l.Security().LoginFailure("user@example.com")
	l.Security().AccessDenied("user-1", "requests.accept")
	l.Security().SystemShutdown()
}
