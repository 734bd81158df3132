// Package profile persists completed intake results and the job listings
// they are matched against, as JSON documents in redis keyed by generated
// IDs.
package profile

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Profile is one job seeker's collected intake answers. Numeric fields
// arrive from the intake flow as strings about as often as numbers, so
// decoding is weakly typed.
type Profile struct {
	ID           string    `json:"id" mapstructure:"id"`
	Name         string    `json:"name" mapstructure:"name"`
	Gender       string    `json:"gender" mapstructure:"gender"`
	Age          int       `json:"age" mapstructure:"age"`
	Address      string    `json:"address" mapstructure:"address"`
	Phone        string    `json:"phone" mapstructure:"phone"`
	Experience   int       `json:"experience" mapstructure:"experience"`
	Education    string    `json:"education" mapstructure:"education"`
	Skills       string    `json:"skills" mapstructure:"skills"`
	Availability string    `json:"availability" mapstructure:"availability"`
	Language     string    `json:"language" mapstructure:"language"`
	CreatedAt    time.Time `json:"createdAt" mapstructure:"-"`
}

// Job is one listing shown to seekers after intake completes.
type Job struct {
	ID       string `json:"id" mapstructure:"id"`
	Title    string `json:"title" mapstructure:"title"`
	Company  string `json:"company" mapstructure:"company"`
	Location string `json:"location" mapstructure:"location"`
	Salary   string `json:"salary" mapstructure:"salary"`
	Skills   string `json:"skills" mapstructure:"skills"`
	Details  string `json:"details" mapstructure:"details"`
}

// DecodeProfile builds a Profile from loosely typed request data. String
// numbers ("25") and float JSON numbers both land in the int fields.
func DecodeProfile(data map[string]any) (Profile, error) {
	var p Profile

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &p,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Profile{}, fmt.Errorf("build decoder: %w", err)
	}

	if err := decoder.Decode(data); err != nil {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}

	return p, nil
}

// DecodeJobs builds job listings from loosely typed request data.
func DecodeJobs(data []map[string]any) ([]Job, error) {
	jobs := make([]Job, 0, len(data))
	for i, item := range data {
		var job Job
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &job,
			WeaklyTypedInput: true,
		})
		if err != nil {
			return nil, fmt.Errorf("build decoder: %w", err)
		}
		if err := decoder.Decode(item); err != nil {
			return nil, fmt.Errorf("decode job %d: %w", i, err)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}
