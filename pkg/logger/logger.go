// Package logger wraps zap with the module's standard configuration.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a sugared production logger tagged with the service name.
// Falls back to a no-op logger if construction fails, so callers never
// need to handle a logging error at startup.
func New(service string) *zap.SugaredLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true
	config.InitialFields = map[string]any{"service": service}

	log, err := config.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return log.Sugar()
}
