package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	profileKeyPrefix = "profile:"
	jobKeyPrefix     = "job:"
	jobIndexKey      = "jobs:index"
)

// ErrNotFound is returned when no document exists for the requested ID.
var ErrNotFound = errors.New("profile: not found")

// Store keeps profiles and jobs as JSON documents in redis. Each document
// lives under its own key; jobs additionally register in a set index so
// listing does not need a keyspace scan.
type Store struct {
	client *redis.Client
	logger *zap.Logger
}

func NewStore(client *redis.Client, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{client: client, logger: logger}
}

// Save persists the profile, assigning an ID and creation time when absent,
// and returns the stored document.
func (s *Store) Save(ctx context.Context, p Profile) (Profile, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(p)
	if err != nil {
		return Profile{}, fmt.Errorf("marshal profile: %w", err)
	}

	if err := s.client.Set(ctx, profileKeyPrefix+p.ID, payload, 0).Err(); err != nil {
		return Profile{}, fmt.Errorf("save profile: %w", err)
	}

	s.logger.Info("profile saved", zap.String("id", p.ID), zap.String("name", p.Name))

	return p, nil
}

// Get loads a profile by ID.
func (s *Store) Get(ctx context.Context, id string) (Profile, error) {
	payload, err := s.client.Get(ctx, profileKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, fmt.Errorf("load profile: %w", err)
	}

	var p Profile
	if err := json.Unmarshal(payload, &p); err != nil {
		return Profile{}, fmt.Errorf("unmarshal profile: %w", err)
	}

	return p, nil
}

// ListJobs returns every job currently registered in the index. Jobs whose
// document vanished while still indexed are skipped.
func (s *Store) ListJobs(ctx context.Context) ([]Job, error) {
	ids, err := s.client.SMembers(ctx, jobIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list job index: %w", err)
	}

	jobs := make([]Job, 0, len(ids))
	for _, id := range ids {
		payload, err := s.client.Get(ctx, jobKeyPrefix+id).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load job %s: %w", id, err)
		}

		var job Job
		if err := json.Unmarshal(payload, &job); err != nil {
			return nil, fmt.Errorf("unmarshal job %s: %w", id, err)
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}

// ReplaceJobs swaps the whole job catalogue for the provided listings,
// assigning IDs where absent.
func (s *Store) ReplaceJobs(ctx context.Context, jobs []Job) ([]Job, error) {
	old, err := s.client.SMembers(ctx, jobIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list job index: %w", err)
	}

	pipe := s.client.TxPipeline()
	for _, id := range old {
		pipe.Del(ctx, jobKeyPrefix+id)
	}
	pipe.Del(ctx, jobIndexKey)

	for i := range jobs {
		if jobs[i].ID == "" {
			jobs[i].ID = uuid.NewString()
		}
		payload, err := json.Marshal(jobs[i])
		if err != nil {
			return nil, fmt.Errorf("marshal job %s: %w", jobs[i].ID, err)
		}
		pipe.Set(ctx, jobKeyPrefix+jobs[i].ID, payload, 0)
		pipe.SAdd(ctx, jobIndexKey, jobs[i].ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("replace jobs: %w", err)
	}

	s.logger.Info("job catalogue replaced", zap.Int("count", len(jobs)))

	return jobs, nil
}
