package store

import (
	"context"
	"fmt"

	"github.com/rsoarez/planista/ent"
	"github.com/rsoarez/planista/ent/completionevent"
)

func (r *eventRepo) AppendCompletion(ctx context.Context, data CompletionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CompletionEvent.Create().
		SetSequence(seqNum).
		SetUnitID(data.UnitID).
		SetSubjectID(data.SubjectID).
		SetKind(data.Kind).
		SetTopicName(data.TopicName).
		SetPlannedMinutes(data.PlannedMinutes).
		SetSpentMinutes(data.SpentMinutes).
		SetAccuracy(data.Accuracy).
		SetSkipped(data.Skipped).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save completion event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListCompletions(ctx context.Context, opts QueryOpts) ([]CompletionEvent, error) {
	q := r.client.CompletionEvent.Query().
		Order(ent.Asc(completionevent.FieldSequence))
	if opts.After > 0 {
		q = q.Where(completionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(completionevent.SequenceLT(opts.Before))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completion events: %w", err)
	}

	events := make([]CompletionEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, CompletionEvent{
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			CompletionEventData: CompletionEventData{
				UnitID:         row.UnitID,
				SubjectID:      row.SubjectID,
				Kind:           row.Kind,
				TopicName:      row.TopicName,
				PlannedMinutes: row.PlannedMinutes,
				SpentMinutes:   row.SpentMinutes,
				Accuracy:       row.Accuracy,
				Skipped:        row.Skipped,
			},
		})
	}
	return events, nil
}
