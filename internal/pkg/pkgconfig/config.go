package pkgconfig

import (
	"io"
	"time"
)

// Config reads application configuration values by dotted key. Business code
// should depend on this interface rather than a concrete implementation so it
// stays easy to test and does not care where values come from.
type Config interface {
	io.Closer

	// GetInt returns the value for key as int64.
	GetInt(key string) int64

	// GetBool returns the value for key as bool.
	GetBool(key string) bool

	// GetString returns the value for key as string.
	GetString(key string) string

	// GetDuration returns the value for key as a time.Duration.
	GetDuration(key string) time.Duration

	// GetArray returns the value for key as a list of strings.
	GetArray(key string) []string
}
