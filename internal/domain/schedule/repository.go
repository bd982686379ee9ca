package schedule

import (
	"context"

	"github.com/cmlabs-hris/attendance-recon-go/internal/pkg/timeutil"
)

type RuleRepository interface {
	// GetRuleSet materializes every rule layer plus the rotational-off
	// calendar overlapping the period.
	GetRuleSet(ctx context.Context, period timeutil.Period) (*RuleSet, error)
}
