// Package logger provides the structured logger used by the tracer resolver and
// its providers.
//
// It wraps go.uber.org/zap behind a small Logger interface taking a message, an
// optional error and optional field maps:
//
//	log := logger.NewLoggerClient(logger.Config{Level: logger.Debug, ServiceName: "api"})
//	log.Warn("tracer resolver failed", err, map[string]interface{}{
//	    "candidate": "otel-env",
//	})
//
// Libraries in this module default to NewNop so nothing is written unless the
// application passes a real logger. Tests usually build one over zaptest/observer
// with NewFromZap and assert on the captured entries.
//
// # FX Integration
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Supply(logger.Config{Level: logger.Info, ServiceName: "api"}),
//	)
package logger
