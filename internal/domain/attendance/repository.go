package attendance

import (
	"context"
	"time"
)

type PunchRepository interface {
	// ListRawPunches returns device punches between from and to, optionally
	// filtered by source.
	ListRawPunches(ctx context.Context, source string, from, to time.Time) ([]RawPunch, error)
}

type OverrideRepository interface {
	// ListOverrides returns manual day corrections overlapping [from, to].
	ListOverrides(ctx context.Context, source string, from, to time.Time) ([]OverrideEntry, error)
}
