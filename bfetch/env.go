package bfetch

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"
)

// Environment holds the fetcher configuration, parsed from environment variables.
type Environment struct {
	// UserAgent is sent on every outbound request.
	UserAgent string `env:"BD_USER_AGENT" envDefault:"bdrain/1.0"`
	// BufferSize sizes the accumulator's working buffer and the per-pull chunk size.
	BufferSize int `env:"BD_BUFFER_SIZE" envDefault:"8192"`
	// Timeout bounds the whole request, including draining the body.
	Timeout time.Duration `env:"BD_TIMEOUT" envDefault:"30s"`
	// LogLevel controls the level (debug, info, warn, error).
	LogLevel zapcore.Level `env:"BD_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv parses the environment variables into an [Environment].
func ParseEnv() (Environment, error) {
	var e Environment
	if err := env.Parse(&e); err != nil {
		return e, errors.Wrap(err, "failed to parse environment")
	}
	return e, nil
}
