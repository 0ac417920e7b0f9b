package logger

// Log level constants accepted by Config.Level.
const (
	// Debug enables every message, including per-candidate resolution details.
	Debug = "debug"

	// Info is the default level.
	Info = "info"

	// Warning suppresses debug and info messages.
	Warning = "warning"

	// Error only emits error messages.
	Error = "error"
)

// Config defines how the zap-backed logger is built.
type Config struct {
	// Level is the minimum level that will be written.
	// One of "debug", "info", "warning" or "error". Unknown values fall back to "info".
	Level string `yaml:"level" envconfig:"LOGGER_LEVEL"`

	// ServiceName populates the "service" field on every entry.
	ServiceName string `yaml:"service_name" envconfig:"LOGGER_SERVICE_NAME"`

	// Development switches the encoder to zap's human readable console format.
	// JSON is used otherwise.
	Development bool `yaml:"development" envconfig:"LOGGER_DEVELOPMENT"`

	// CallerSkip controls how many stack frames are skipped when reporting the caller.
	// Raise it when the logger is wrapped by another layer. Values <= 0 mean 1.
	CallerSkip int `yaml:"caller_skip" envconfig:"LOGGER_CALLER_SKIP"`
}
