package obs

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID tags ctx so that timings logged under it can be correlated.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// Time starts timing an operation. Call the returned func with a pointer
// to the operation's named error result, usually via defer.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Warn().
				Str("req_id", reqID).
				Str("op", name).
				Int64("dur_ms", dur.Milliseconds()).
				Err(*errp).
				Msg("operation failed")
			return
		}
		log.Debug().
			Str("req_id", reqID).
			Str("op", name).
			Int64("dur_ms", dur.Milliseconds()).
			Msg("operation done")
	}
}
