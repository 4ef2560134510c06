// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// Sync flushes buffered log entries, safe to defer on shutdown.
func (l *Logger) Sync() error {
	return l.SugaredLogger.Sync()
}

func NewLogger(level string) *Logger {
	l := new(Logger)

	zapLogger := newZapLogger(level)
	l.SugaredLogger = zapLogger.Sugar()
	l.security = &SecurityLogger{l: zapLogger.Named("security")}

	return l
}

func newZapLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return logger
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "INFO":
		return zapcore.InfoLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.ErrorLevel
	}
}

// SecurityLogger emits structured audit events on a named zap channel.
// Credentials and tokens must never be passed to it.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "system.startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "system.shutdown"))
}

func (s *SecurityLogger) LoginSuccess(userID string) {
	s.l.Info("login success", zap.String("event", "auth.login.success"), zap.String("user_id", userID))
}

func (s *SecurityLogger) LoginFailure(email string) {
	s.l.Warn("login failure", zap.String("event", "auth.login.failure"), zap.String("email", email))
}

func (s *SecurityLogger) SessionRevoked(userID string) {
	s.l.Info("session revoked", zap.String("event", "auth.session.revoked"), zap.String("user_id", userID))
}

func (s *SecurityLogger) AccessDenied(userID, operation string) {
	s.l.Warn("access denied", zap.String("event", "authz.denied"), zap.String("user_id", userID), zap.String("operation", operation))
}
