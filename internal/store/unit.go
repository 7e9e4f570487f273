package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rsoarez/planista/ent"
	"github.com/rsoarez/planista/ent/studyunit"
	"github.com/rsoarez/planista/internal/studyplan"
)

// unitRepo implements UnitRepo using the ent client.
type unitRepo struct {
	client *ent.Client
}

func (r *unitRepo) SaveUnits(ctx context.Context, units []studyplan.StudyUnit) error {
	builders := make([]*ent.StudyUnitCreate, 0, len(units))
	for _, u := range units {
		builders = append(builders, unitCreate(r.client, u))
	}
	if _, err := r.client.StudyUnit.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("save units: %w", err)
	}
	return nil
}

func (r *unitRepo) ReplacePlan(ctx context.Context, from, to time.Time, units []studyplan.StudyUnit) error {
	_, err := r.client.StudyUnit.Delete().
		Where(
			studyunit.DateGTE(studyplan.DateOnly(from)),
			studyunit.DateLTE(studyplan.DateOnly(to)),
			studyunit.StatusNotIn(
				string(studyplan.StatusCompleted),
				string(studyplan.StatusInProgress),
			),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear plan range: %w", err)
	}
	return r.SaveUnits(ctx, units)
}

func (r *unitRepo) Get(ctx context.Context, unitID string) (studyplan.StudyUnit, error) {
	row, err := r.client.StudyUnit.Query().
		Where(studyunit.UnitID(unitID)).
		Only(ctx)
	if err != nil {
		return studyplan.StudyUnit{}, fmt.Errorf("get unit %s: %w", unitID, err)
	}
	return unitFromRow(row), nil
}

func (r *unitRepo) ListRange(ctx context.Context, from, to time.Time) ([]studyplan.StudyUnit, error) {
	rows, err := r.client.StudyUnit.Query().
		Where(
			studyunit.DateGTE(studyplan.DateOnly(from)),
			studyunit.DateLTE(studyplan.DateOnly(to)),
		).
		Order(ent.Asc(studyunit.FieldDate), ent.Asc(studyunit.FieldStartMinute)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list units in range: %w", err)
	}
	return unitsFromRows(rows), nil
}

func (r *unitRepo) ListPending(ctx context.Context) ([]studyplan.StudyUnit, error) {
	rows, err := r.client.StudyUnit.Query().
		Where(studyunit.StatusIn(
			string(studyplan.StatusScheduled),
			string(studyplan.StatusInProgress),
			string(studyplan.StatusRescheduled),
			string(studyplan.StatusSkipped),
		)).
		Order(ent.Asc(studyunit.FieldDate), ent.Asc(studyunit.FieldStartMinute)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending units: %w", err)
	}
	return unitsFromRows(rows), nil
}

func (r *unitRepo) SetStatus(ctx context.Context, unitID string, status studyplan.Status, at time.Time) error {
	upd := r.client.StudyUnit.Update().
		Where(studyunit.UnitID(unitID)).
		SetStatus(string(status)).
		SetUpdatedAt(at)
	if status == studyplan.StatusCompleted {
		upd = upd.SetCompletedAt(at)
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return fmt.Errorf("set unit %s status: %w", unitID, err)
	}
	if n == 0 {
		return fmt.Errorf("set unit %s status: not found", unitID)
	}
	return nil
}

func (r *unitRepo) ApplyMoves(ctx context.Context, units []studyplan.StudyUnit) error {
	for _, u := range units {
		upd := r.client.StudyUnit.Update().
			Where(studyunit.UnitID(u.ID)).
			SetDate(u.Date).
			SetStartMinute(u.Start.Minutes()).
			SetEndMinute(u.End.Minutes()).
			SetStatus(string(u.Status)).
			SetRescheduleCount(u.RescheduleCount).
			SetUpdatedAt(u.UpdatedAt)
		if !u.OriginalDate.IsZero() {
			upd = upd.SetOriginalDate(u.OriginalDate)
		}
		if _, err := upd.Save(ctx); err != nil {
			return fmt.Errorf("apply move for unit %s: %w", u.ID, err)
		}
	}
	return nil
}

func unitCreate(client *ent.Client, u studyplan.StudyUnit) *ent.StudyUnitCreate {
	c := client.StudyUnit.Create().
		SetUnitID(u.ID).
		SetSubjectID(u.SubjectID).
		SetRelatedSubjectID(u.RelatedSubjectID).
		SetDate(u.Date).
		SetStartMinute(u.Start.Minutes()).
		SetEndMinute(u.End.Minutes()).
		SetDurationMinutes(u.DurationMinutes).
		SetIsBreak(u.IsBreak).
		SetKind(string(u.Kind)).
		SetSessionType(string(u.SessionType)).
		SetStatus(string(u.Status)).
		SetPhase(u.Phase).
		SetTopicName(u.TopicName).
		SetStageIndex(u.StageIndex).
		SetStageTarget(u.StageTarget).
		SetRescheduleCount(u.RescheduleCount)
	if !u.OriginalDate.IsZero() {
		c = c.SetOriginalDate(u.OriginalDate)
	}
	if u.CompletedAt != nil {
		c = c.SetCompletedAt(*u.CompletedAt)
	}
	return c
}

func unitFromRow(row *ent.StudyUnit) studyplan.StudyUnit {
	u := studyplan.StudyUnit{
		ID:               row.UnitID,
		SubjectID:        row.SubjectID,
		RelatedSubjectID: row.RelatedSubjectID,
		Date:             row.Date,
		Start:            studyplan.Clock(row.StartMinute),
		End:              studyplan.Clock(row.EndMinute),
		DurationMinutes:  row.DurationMinutes,
		IsBreak:          row.IsBreak,
		Kind:             studyplan.UnitKind(row.Kind),
		SessionType:      studyplan.SessionType(row.SessionType),
		Status:           studyplan.Status(row.Status),
		Phase:            row.Phase,
		TopicName:        row.TopicName,
		StageIndex:       row.StageIndex,
		StageTarget:      row.StageTarget,
		RescheduleCount:  row.RescheduleCount,
		UpdatedAt:        row.UpdatedAt,
		CompletedAt:      row.CompletedAt,
	}
	if row.OriginalDate != nil {
		u.OriginalDate = *row.OriginalDate
	}
	return u
}

func unitsFromRows(rows []*ent.StudyUnit) []studyplan.StudyUnit {
	units := make([]studyplan.StudyUnit, 0, len(rows))
	for _, row := range rows {
		units = append(units, unitFromRow(row))
	}
	return units
}
