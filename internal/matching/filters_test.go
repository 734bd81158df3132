package matching

import (
	"context"
	"testing"

	"github.com/kaamkhoj/kaamkhoj/internal/profile"
)

func jobList() []profile.Job {
	return []profile.Job{
		{ID: "j1", Title: "Driver", Location: "Mumbai, Maharashtra", Skills: "driving"},
		{ID: "j2", Title: "Cook", Location: "Delhi", Skills: "cooking"},
		{ID: "j3", Title: "Helper", Location: "", Skills: ""},
	}
}

func ids(jobs []profile.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

func TestLocationFilter(t *testing.T) {
	t.Parallel()

	deps := Deps{Seeker: profile.Profile{Address: "12 Gandhi Nagar, Mumbai, Maharashtra"}}

	kept, step, err := NewLocation().Apply(context.Background(), deps, jobList())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if step.Dropped != 1 || len(kept) != 2 {
		t.Fatalf("unexpected step: %+v, kept %v", step, ids(kept))
	}
	// The Delhi job goes; the unlocated job stays.
	if kept[0].ID != "j1" || kept[1].ID != "j3" {
		t.Fatalf("unexpected jobs kept: %v", ids(kept))
	}
}

func TestLocationFilterNoSeekerCity(t *testing.T) {
	t.Parallel()

	deps := Deps{Seeker: profile.Profile{Address: ""}}

	kept, step, err := NewLocation().Apply(context.Background(), deps, jobList())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if step.Dropped != 0 || len(kept) != 3 {
		t.Fatalf("filter must pass everything without a seeker city: %+v", step)
	}
}

func TestSkillsFilter(t *testing.T) {
	t.Parallel()

	deps := Deps{Seeker: profile.Profile{Skills: "driving auto rickshaw"}}

	kept, step, err := NewSkills().Apply(context.Background(), deps, jobList())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if step.Dropped != 1 {
		t.Fatalf("unexpected step: %+v, kept %v", step, ids(kept))
	}
	// The driver job matches through the transportation category; the
	// skill-less job passes; the cook job goes.
	if kept[0].ID != "j1" || kept[1].ID != "j3" {
		t.Fatalf("unexpected jobs kept: %v", ids(kept))
	}
}

func TestSkillsFilterNoSeekerSkills(t *testing.T) {
	t.Parallel()

	deps := Deps{Seeker: profile.Profile{}}

	kept, _, err := NewSkills().Apply(context.Background(), deps, jobList())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(kept) != 3 {
		t.Fatal("filter must pass everything without seeker skills")
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	deps := Deps{Seeker: profile.Profile{
		Address: "Mumbai, Maharashtra",
		Skills:  "driving",
	}}

	kept, err := Run(context.Background(), deps, DefaultFilters(), jobList())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(kept) != 2 || kept[0].ID != "j1" || kept[1].ID != "j3" {
		t.Fatalf("unexpected pipeline result: %v", ids(kept))
	}
}
