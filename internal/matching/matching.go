// Package matching narrows the job catalogue down to listings relevant for
// one seeker profile, as a sequence of independent filter steps.
package matching

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kaamkhoj/kaamkhoj/internal/profile"
)

// Filter represents a single filtering step applied to job listings.
type Filter interface {
	Name() string
	Apply(ctx context.Context, deps Deps, jobs []profile.Job) ([]profile.Job, Step, error)
}

// Deps aggregates dependencies shared across all filtering steps.
type Deps struct {
	Logger *zap.Logger
	Seeker profile.Profile
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// DefaultFilters is the standard pipeline: location first because it is the
// hardest constraint for this audience, then skills.
func DefaultFilters() []Filter {
	return []Filter{
		NewLocation(),
		NewSkills(),
	}
}

// Run executes the supplied filters sequentially and returns the surviving
// listings.
func Run(ctx context.Context, deps Deps, steps []Filter, jobs []profile.Job) ([]profile.Job, error) {
	for _, step := range steps {
		next, info, err := step.Apply(ctx, deps, jobs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if deps.Logger != nil {
			deps.Logger.Info("filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		jobs = next
	}

	return jobs, nil
}
