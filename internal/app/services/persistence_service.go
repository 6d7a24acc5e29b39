package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/coachdesk/internal/app/repositories"
)

// SnapshotStore is the durable side of the record store.
// repositories.SnapshotRepository implements it over PostgreSQL.
type SnapshotStore interface {
	Save(ctx context.Context, snaps []repositories.EntitySnapshot) error
	Load(ctx context.Context) ([]repositories.EntitySnapshot, error)
}

// PersistenceService mirrors the in-memory collections into a SnapshotStore.
type PersistenceService struct {
	repos  *repositories.Repositories
	store  SnapshotStore
	logger zerolog.Logger
}

func NewPersistenceService(repos *repositories.Repositories, store SnapshotStore, logger zerolog.Logger) *PersistenceService {
	return &PersistenceService{
		repos:  repos,
		store:  store,
		logger: logger.With().Str("component", "persistence").Logger(),
	}
}

// Restore loads the last snapshot. An empty store leaves the collections
// untouched.
func (s *PersistenceService) Restore(ctx context.Context) error {
	snaps, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}
	if err := s.repos.Restore(snaps); err != nil {
		return err
	}

	total := 0
	for _, snap := range snaps {
		total += len(snap.Records)
	}
	s.logger.Info().Int("entities", len(snaps)).Int("records", total).Msg("Record store restored")
	return nil
}

// Flush writes the current contents of every collection.
func (s *PersistenceService) Flush(ctx context.Context) error {
	snaps, err := s.repos.Snapshot()
	if err != nil {
		return fmt.Errorf("failed to snapshot record store: %w", err)
	}
	if err := s.store.Save(ctx, snaps); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	s.logger.Debug().Msg("Record store flushed")
	return nil
}

// Run flushes every interval until ctx is cancelled. Failed flushes are
// logged and retried on the next tick.
func (s *PersistenceService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Flush(ctx); err != nil {
				s.logger.Error().Err(err).Msg("Periodic flush failed")
			}
		}
	}
}
