package gen

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/on-the-ground/fakir_go/random"
	"github.com/rickb777/date/v2/timespan"
)

// UUID yields version 4 UUIDs built from the random source, so they are as
// reproducible as any other draw.
func UUID() *Generator[uuid.UUID] {
	return Custom(func(env *Env) (uuid.UUID, error) {
		id, err := uuid.NewRandomFromReader(env.Source())
		if err != nil {
			return uuid.Nil, fmt.Errorf("uuid from source: %w", err)
		}
		return id, nil
	})
}

// Instant draws a time uniformly from [span.Start(), span.End()). An empty
// span always yields its start.
func Instant(span timespan.TimeSpan) *Generator[time.Time] {
	start, d := span.Start(), span.Duration()
	return FromSource(func(src random.Source) time.Time {
		if d <= 0 {
			return start
		}
		offset := time.Duration(src.Float64() * float64(d))
		if offset >= d {
			offset = d - 1
		}
		return start.Add(offset)
	})
}

// Between is Instant over the span between from and to, in either order.
func Between(from, to time.Time) *Generator[time.Time] {
	return Instant(timespan.BetweenTimes(from, to))
}
