package obs

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID stores the request id for downstream log lines.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Logger returns the global logger tagged with the request id, if any.
func Logger(ctx context.Context) *zerolog.Logger {
	l := log.Logger
	if id := RequestID(ctx); id != "" {
		l = l.With().Str("req_id", id).Logger()
	}
	return &l
}

// Time logs the duration of an operation. Use as
//
//	defer obs.Time(ctx, "op")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)
		opDuration.WithLabelValues(name).Observe(dur.Seconds())

		if errp != nil && *errp != nil {
			Logger(ctx).Error().Str("op", name).Int64("dur_ms", dur.Milliseconds()).Err(*errp).Send()
			return
		}
		Logger(ctx).Debug().Str("op", name).Int64("dur_ms", dur.Milliseconds()).Send()
	}
}
