package matching

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/kaamkhoj/kaamkhoj/internal/extract"
	"github.com/kaamkhoj/kaamkhoj/internal/lexicon"
	"github.com/kaamkhoj/kaamkhoj/internal/profile"
)

type locationFilter struct{}

// NewLocation creates a filter that keeps jobs in the seeker's city. With
// no city on either side the listing passes through: missing data must
// never hide work from someone.
func NewLocation() Filter {
	return &locationFilter{}
}

func (f *locationFilter) Name() string { return "location" }

func (f *locationFilter) Apply(_ context.Context, deps Deps, jobs []profile.Job) ([]profile.Job, Step, error) {
	initial := len(jobs)

	city, ok := extract.City(deps.Seeker.Address)
	if !ok {
		return jobs, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	needle := strings.ToLower(city)
	kept := make([]profile.Job, 0, initial)
	for _, job := range jobs {
		if job.Location == "" || strings.Contains(strings.ToLower(job.Location), needle) {
			kept = append(kept, job)
		}
	}

	if deps.Logger != nil && len(kept) < initial {
		deps.Logger.Info("excluding jobs outside seeker city",
			zap.String("city", city),
			zap.Int("jobs_left", len(kept)),
		)
	}

	return kept, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}, nil
}

type skillsFilter struct{}

// NewSkills creates a filter that keeps jobs sharing at least one skill
// with the seeker.
func NewSkills() Filter {
	return &skillsFilter{}
}

func (f *skillsFilter) Name() string { return "skills" }

func (f *skillsFilter) Apply(_ context.Context, deps Deps, jobs []profile.Job) ([]profile.Job, Step, error) {
	initial := len(jobs)

	seekerSkills := skillTokens(deps.Seeker.Skills)
	if len(seekerSkills) == 0 {
		return jobs, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	kept := make([]profile.Job, 0, initial)
	for _, job := range jobs {
		jobSkills := skillTokens(job.Skills)
		if len(jobSkills) == 0 || overlaps(seekerSkills, jobSkills) {
			kept = append(kept, job)
		}
	}

	return kept, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}, nil
}

// skillTokens normalizes a comma-separated skill string into comparable
// tokens. Free-text entries additionally resolve through the skill
// categorizer so "driving auto rickshaw" and "transportation" can match.
func skillTokens(skills string) []string {
	var tokens []string
	for _, raw := range strings.Split(skills, ",") {
		token := strings.ToLower(strings.TrimSpace(raw))
		if token == "" {
			continue
		}
		tokens = append(tokens, token)

		if category, ok := extract.Skills(token, lexicon.EnglishIN); ok {
			category = strings.ToLower(category)
			if category != token {
				tokens = append(tokens, category)
			}
		}
	}
	return tokens
}

func overlaps(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y || strings.Contains(x, y) || strings.Contains(y, x) {
				return true
			}
		}
	}
	return false
}
