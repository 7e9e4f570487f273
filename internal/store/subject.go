package store

import (
	"context"
	"fmt"

	"github.com/rsoarez/planista/ent"
	"github.com/rsoarez/planista/ent/subject"
	"github.com/rsoarez/planista/internal/studyplan"
)

// subjectRepo implements SubjectRepo using the ent client.
type subjectRepo struct {
	client *ent.Client
}

func (r *subjectRepo) Save(ctx context.Context, s studyplan.Subject) error {
	existing, err := r.client.Subject.Query().
		Where(subject.SubjectID(s.ID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query subject: %w", err)
	}

	if existing != nil {
		_, err = existing.Update().
			SetName(s.Name).
			SetPriority(s.Priority).
			SetDifficulty(s.Difficulty).
			SetWeeklyTargetHours(s.WeeklyTargetHours).
			SetArea(string(s.Area)).
			SetLevel(string(s.Level)).
			SetExamWeight(s.ExamWeight).
			SetCompletedHours(s.CompletedHours).
			SetSessionCount(s.SessionCount).
			SetAverageScore(s.AverageScore).
			SetArchived(false).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update subject: %w", err)
		}
		return nil
	}

	_, err = r.client.Subject.Create().
		SetSubjectID(s.ID).
		SetName(s.Name).
		SetPriority(s.Priority).
		SetDifficulty(s.Difficulty).
		SetWeeklyTargetHours(s.WeeklyTargetHours).
		SetArea(string(s.Area)).
		SetLevel(string(s.Level)).
		SetExamWeight(s.ExamWeight).
		SetCompletedHours(s.CompletedHours).
		SetSessionCount(s.SessionCount).
		SetAverageScore(s.AverageScore).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create subject: %w", err)
	}
	return nil
}

func (r *subjectRepo) Get(ctx context.Context, subjectID string) (studyplan.Subject, error) {
	row, err := r.client.Subject.Query().
		Where(subject.SubjectID(subjectID)).
		Only(ctx)
	if err != nil {
		return studyplan.Subject{}, fmt.Errorf("get subject %s: %w", subjectID, err)
	}
	return subjectFromRow(row), nil
}

func (r *subjectRepo) List(ctx context.Context) ([]studyplan.Subject, error) {
	rows, err := r.client.Subject.Query().
		Where(subject.Archived(false)).
		Order(ent.Asc(subject.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}

	subjects := make([]studyplan.Subject, 0, len(rows))
	for _, row := range rows {
		subjects = append(subjects, subjectFromRow(row))
	}
	return subjects, nil
}

func (r *subjectRepo) Archive(ctx context.Context, subjectID string) error {
	n, err := r.client.Subject.Update().
		Where(subject.SubjectID(subjectID)).
		SetArchived(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("archive subject %s: %w", subjectID, err)
	}
	if n == 0 {
		return fmt.Errorf("archive subject %s: not found", subjectID)
	}
	return nil
}

func subjectFromRow(row *ent.Subject) studyplan.Subject {
	return studyplan.Subject{
		ID:                row.SubjectID,
		Name:              row.Name,
		Priority:          row.Priority,
		Difficulty:        row.Difficulty,
		WeeklyTargetHours: row.WeeklyTargetHours,
		Area:              studyplan.Area(row.Area),
		Level:             studyplan.Level(row.Level),
		ExamWeight:        row.ExamWeight,
		CompletedHours:    row.CompletedHours,
		SessionCount:      row.SessionCount,
		AverageScore:      row.AverageScore,
	}
}
