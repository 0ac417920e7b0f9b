package logger

// Logger is the structured logging contract used across the module.
// Every method takes a message, an optional error and any number of field maps.
//
// This interface is implemented by the concrete *LoggerClient type.
type Logger interface {
	// Debug logs diagnostic detail, such as which candidate produced a tracer.
	Debug(msg string, err error, fields ...map[string]interface{})

	// Info logs general progress.
	Info(msg string, err error, fields ...map[string]interface{})

	// Warn logs recoverable problems, such as a candidate that failed and was skipped.
	Warn(msg string, err error, fields ...map[string]interface{})

	// Error logs failures that need attention.
	Error(msg string, err error, fields ...map[string]interface{})

	// With returns a child logger that adds fields to every entry.
	With(fields map[string]interface{}) Logger
}
