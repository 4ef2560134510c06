// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	Fatalf(template string, args ...interface{})
	Security() SecurityLoggerInterface
}

// SecurityLoggerInterface is the audit channel for security relevant events.
type SecurityLoggerInterface interface {
	SystemStartup()
	SystemShutdown()
	LoginSuccess(userID string)
	LoginFailure(email string)
	SessionRevoked(userID string)
	AccessDenied(userID, operation string)
}
