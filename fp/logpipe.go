package fp

import "github.com/rs/zerolog"

// LogPipe returns an identity pipeline stage that logs every value flowing
// through it at debug level, tagged with label. It is a development-time
// tracing aid, not an error channel.
//
// Example:
//
//	logger := zerolog.New(os.Stderr)
//	fn := Pipe(double, LogPipe[int](logger, "after double"), addOne)
func LogPipe[T any](logger zerolog.Logger, label string) func(T) T {
	return func(value T) T {
		logger.Debug().Str("stage", label).Interface("value", value).Msg("logpipe")
		return value
	}
}
