package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendReschedule(ctx context.Context, data RescheduleEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.RescheduleEvent.Create().
		SetSequence(seqNum).
		SetUnitID(data.UnitID).
		SetSubjectID(data.SubjectID).
		SetFromDate(data.FromDate).
		SetToDate(data.ToDate).
		SetDaysOverdue(data.DaysOverdue).
		SetPriorityScore(data.PriorityScore).
		SetReason(data.Reason).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save reschedule event: %w", err)
	}
	return nil
}
