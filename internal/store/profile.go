package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rsoarez/planista/internal/scoring"
	"github.com/rsoarez/planista/internal/studyplan"
)

// snapshotVersion is bumped when SnapshotData changes shape.
const snapshotVersion = 1

// snapshotKeep bounds how many snapshots are retained after a save.
const snapshotKeep = 10

// LoadTracker restores the adaptive scoring state: the latest snapshot
// plus a replay of completion events recorded after it. With no
// snapshot the whole log is replayed.
func LoadTracker(ctx context.Context, s *Store, subjects []studyplan.Subject) (*scoring.Tracker, error) {
	snap, err := s.SnapshotRepo().Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var profiles []*scoring.Profile
	var after int64
	if snap != nil {
		after = snap.Sequence
		for _, p := range snap.Data.Profiles {
			profiles = append(profiles, p)
		}
	}
	tracker := scoring.NewTracker(profiles)

	events, err := s.EventRepo().ListCompletions(ctx, QueryOpts{After: after})
	if err != nil {
		return nil, fmt.Errorf("replay completions: %w", err)
	}

	byID := make(map[string]studyplan.Subject, len(subjects))
	for _, sub := range subjects {
		byID[sub.ID] = sub
	}

	for _, e := range events {
		if e.Skipped {
			continue
		}
		sub, ok := byID[e.SubjectID]
		if !ok {
			continue // archived or deleted subject
		}
		// Accuracy inference is deterministic from kind and minutes, so
		// rebuilding from the event fields reproduces the live update.
		unit := studyplan.StudyUnit{
			ID:              e.UnitID,
			SubjectID:       e.SubjectID,
			Kind:            studyplan.UnitKind(e.Kind),
			TopicName:       e.TopicName,
			DurationMinutes: e.PlannedMinutes,
		}
		tracker.RecordCompletion(unit, sub, e.SpentMinutes, e.Timestamp)
	}

	return tracker, nil
}

// SaveTrackerSnapshot persists the tracker state as a new snapshot and
// prunes old ones.
func SaveTrackerSnapshot(ctx context.Context, s *Store, tracker *scoring.Tracker, now time.Time) error {
	var seq int64
	err := s.DB().QueryRowContext(ctx,
		`SELECT next_val - 1 FROM global_sequence WHERE id = 1`,
	).Scan(&seq)
	if err != nil {
		return fmt.Errorf("read sequence: %w", err)
	}

	profiles := make(map[string]*scoring.Profile)
	for _, p := range tracker.All() {
		profiles[p.SubjectID] = p
	}

	repo := s.SnapshotRepo()
	err = repo.Save(ctx, &Snapshot{
		Sequence:  seq,
		Timestamp: now,
		Data:      SnapshotData{Version: snapshotVersion, Profiles: profiles},
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return repo.Prune(ctx, snapshotKeep)
}
