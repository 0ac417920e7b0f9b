package logger

import (
	"go.uber.org/zap"
)

// convertToZapFields turns the error and field maps into zap fields.
// Duplicate keys across maps are all kept, in order.
func (l *LoggerClient) convertToZapFields(err error, fields ...map[string]interface{}) []zap.Field {
	var zapFields []zap.Field
	if err != nil {
		zapFields = append(zapFields, zap.Error(err))
	}
	for _, fieldMap := range fields {
		for key, value := range fieldMap {
			zapFields = append(zapFields, zap.Any(key, value))
		}
	}
	return zapFields
}

// Debug logs a debug-level message.
func (l *LoggerClient) Debug(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Debug(msg, l.convertToZapFields(err, fields...)...)
}

// Info logs an info-level message.
func (l *LoggerClient) Info(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Info(msg, l.convertToZapFields(err, fields...)...)
}

// Warn logs a warning.
func (l *LoggerClient) Warn(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Warn(msg, l.convertToZapFields(err, fields...)...)
}

// Error logs an error-level message.
func (l *LoggerClient) Error(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Error(msg, l.convertToZapFields(err, fields...)...)
}

// With returns a child logger carrying fields on every entry.
func (l *LoggerClient) With(fields map[string]interface{}) Logger {
	return &LoggerClient{Zap: l.Zap.With(l.convertToZapFields(nil, fields)...)}
}

// Sync flushes buffered entries.
func (l *LoggerClient) Sync() error {
	return l.Zap.Sync()
}
