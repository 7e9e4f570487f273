package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendPlan(ctx context.Context, data PlanEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PlanEvent.Create().
		SetSequence(seqNum).
		SetFingerprint(data.Fingerprint).
		SetRangeStart(data.RangeStart).
		SetRangeEnd(data.RangeEnd).
		SetUnitCount(data.UnitCount).
		SetTotalHours(data.TotalHours).
		SetCacheHit(data.CacheHit).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save plan event: %w", err)
	}
	return nil
}
