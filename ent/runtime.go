// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/rsoarez/planista/ent/completionevent"
	"github.com/rsoarez/planista/ent/llmrequestevent"
	"github.com/rsoarez/planista/ent/planevent"
	"github.com/rsoarez/planista/ent/rescheduleevent"
	"github.com/rsoarez/planista/ent/schema"
	"github.com/rsoarez/planista/ent/snapshot"
	"github.com/rsoarez/planista/ent/studyunit"
	"github.com/rsoarez/planista/ent/subject"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	completioneventMixin := schema.CompletionEvent{}.Mixin()
	completioneventMixinFields0 := completioneventMixin[0].Fields()
	_ = completioneventMixinFields0
	completioneventFields := schema.CompletionEvent{}.Fields()
	_ = completioneventFields
	// completioneventDescTimestamp is the schema descriptor for timestamp field.
	completioneventDescTimestamp := completioneventMixinFields0[1].Descriptor()
	// completionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	completionevent.DefaultTimestamp = completioneventDescTimestamp.Default.(func() time.Time)
	// completioneventDescUnitID is the schema descriptor for unit_id field.
	completioneventDescUnitID := completioneventFields[0].Descriptor()
	// completionevent.UnitIDValidator is a validator for the "unit_id" field. It is called by the builders before save.
	completionevent.UnitIDValidator = completioneventDescUnitID.Validators[0].(func(string) error)
	// completioneventDescSubjectID is the schema descriptor for subject_id field.
	completioneventDescSubjectID := completioneventFields[1].Descriptor()
	// completionevent.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	completionevent.SubjectIDValidator = completioneventDescSubjectID.Validators[0].(func(string) error)
	// completioneventDescKind is the schema descriptor for kind field.
	completioneventDescKind := completioneventFields[2].Descriptor()
	// completionevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	completionevent.KindValidator = completioneventDescKind.Validators[0].(func(string) error)
	// completioneventDescTopicName is the schema descriptor for topic_name field.
	completioneventDescTopicName := completioneventFields[3].Descriptor()
	// completionevent.DefaultTopicName holds the default value on creation for the topic_name field.
	completionevent.DefaultTopicName = completioneventDescTopicName.Default.(string)
	// completioneventDescPlannedMinutes is the schema descriptor for planned_minutes field.
	completioneventDescPlannedMinutes := completioneventFields[4].Descriptor()
	// completionevent.DefaultPlannedMinutes holds the default value on creation for the planned_minutes field.
	completionevent.DefaultPlannedMinutes = completioneventDescPlannedMinutes.Default.(int)
	// completioneventDescSpentMinutes is the schema descriptor for spent_minutes field.
	completioneventDescSpentMinutes := completioneventFields[5].Descriptor()
	// completionevent.DefaultSpentMinutes holds the default value on creation for the spent_minutes field.
	completionevent.DefaultSpentMinutes = completioneventDescSpentMinutes.Default.(int)
	// completioneventDescAccuracy is the schema descriptor for accuracy field.
	completioneventDescAccuracy := completioneventFields[6].Descriptor()
	// completionevent.DefaultAccuracy holds the default value on creation for the accuracy field.
	completionevent.DefaultAccuracy = completioneventDescAccuracy.Default.(float64)
	// completioneventDescSkipped is the schema descriptor for skipped field.
	completioneventDescSkipped := completioneventFields[7].Descriptor()
	// completionevent.DefaultSkipped holds the default value on creation for the skipped field.
	completionevent.DefaultSkipped = completioneventDescSkipped.Default.(bool)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	planeventMixin := schema.PlanEvent{}.Mixin()
	planeventMixinFields0 := planeventMixin[0].Fields()
	_ = planeventMixinFields0
	planeventFields := schema.PlanEvent{}.Fields()
	_ = planeventFields
	// planeventDescTimestamp is the schema descriptor for timestamp field.
	planeventDescTimestamp := planeventMixinFields0[1].Descriptor()
	// planevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	planevent.DefaultTimestamp = planeventDescTimestamp.Default.(func() time.Time)
	// planeventDescFingerprint is the schema descriptor for fingerprint field.
	planeventDescFingerprint := planeventFields[0].Descriptor()
	// planevent.FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	planevent.FingerprintValidator = planeventDescFingerprint.Validators[0].(func(string) error)
	// planeventDescUnitCount is the schema descriptor for unit_count field.
	planeventDescUnitCount := planeventFields[3].Descriptor()
	// planevent.DefaultUnitCount holds the default value on creation for the unit_count field.
	planevent.DefaultUnitCount = planeventDescUnitCount.Default.(int)
	// planeventDescTotalHours is the schema descriptor for total_hours field.
	planeventDescTotalHours := planeventFields[4].Descriptor()
	// planevent.DefaultTotalHours holds the default value on creation for the total_hours field.
	planevent.DefaultTotalHours = planeventDescTotalHours.Default.(float64)
	// planeventDescCacheHit is the schema descriptor for cache_hit field.
	planeventDescCacheHit := planeventFields[5].Descriptor()
	// planevent.DefaultCacheHit holds the default value on creation for the cache_hit field.
	planevent.DefaultCacheHit = planeventDescCacheHit.Default.(bool)
	rescheduleeventMixin := schema.RescheduleEvent{}.Mixin()
	rescheduleeventMixinFields0 := rescheduleeventMixin[0].Fields()
	_ = rescheduleeventMixinFields0
	rescheduleeventFields := schema.RescheduleEvent{}.Fields()
	_ = rescheduleeventFields
	// rescheduleeventDescTimestamp is the schema descriptor for timestamp field.
	rescheduleeventDescTimestamp := rescheduleeventMixinFields0[1].Descriptor()
	// rescheduleevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	rescheduleevent.DefaultTimestamp = rescheduleeventDescTimestamp.Default.(func() time.Time)
	// rescheduleeventDescUnitID is the schema descriptor for unit_id field.
	rescheduleeventDescUnitID := rescheduleeventFields[0].Descriptor()
	// rescheduleevent.UnitIDValidator is a validator for the "unit_id" field. It is called by the builders before save.
	rescheduleevent.UnitIDValidator = rescheduleeventDescUnitID.Validators[0].(func(string) error)
	// rescheduleeventDescSubjectID is the schema descriptor for subject_id field.
	rescheduleeventDescSubjectID := rescheduleeventFields[1].Descriptor()
	// rescheduleevent.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	rescheduleevent.SubjectIDValidator = rescheduleeventDescSubjectID.Validators[0].(func(string) error)
	// rescheduleeventDescDaysOverdue is the schema descriptor for days_overdue field.
	rescheduleeventDescDaysOverdue := rescheduleeventFields[4].Descriptor()
	// rescheduleevent.DefaultDaysOverdue holds the default value on creation for the days_overdue field.
	rescheduleevent.DefaultDaysOverdue = rescheduleeventDescDaysOverdue.Default.(int)
	// rescheduleeventDescPriorityScore is the schema descriptor for priority_score field.
	rescheduleeventDescPriorityScore := rescheduleeventFields[5].Descriptor()
	// rescheduleevent.DefaultPriorityScore holds the default value on creation for the priority_score field.
	rescheduleevent.DefaultPriorityScore = rescheduleeventDescPriorityScore.Default.(float64)
	// rescheduleeventDescReason is the schema descriptor for reason field.
	rescheduleeventDescReason := rescheduleeventFields[6].Descriptor()
	// rescheduleevent.DefaultReason holds the default value on creation for the reason field.
	rescheduleevent.DefaultReason = rescheduleeventDescReason.Default.(string)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	studyunitFields := schema.StudyUnit{}.Fields()
	_ = studyunitFields
	// studyunitDescUnitID is the schema descriptor for unit_id field.
	studyunitDescUnitID := studyunitFields[0].Descriptor()
	// studyunit.UnitIDValidator is a validator for the "unit_id" field. It is called by the builders before save.
	studyunit.UnitIDValidator = studyunitDescUnitID.Validators[0].(func(string) error)
	// studyunitDescSubjectID is the schema descriptor for subject_id field.
	studyunitDescSubjectID := studyunitFields[1].Descriptor()
	// studyunit.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	studyunit.SubjectIDValidator = studyunitDescSubjectID.Validators[0].(func(string) error)
	// studyunitDescRelatedSubjectID is the schema descriptor for related_subject_id field.
	studyunitDescRelatedSubjectID := studyunitFields[2].Descriptor()
	// studyunit.DefaultRelatedSubjectID holds the default value on creation for the related_subject_id field.
	studyunit.DefaultRelatedSubjectID = studyunitDescRelatedSubjectID.Default.(string)
	// studyunitDescIsBreak is the schema descriptor for is_break field.
	studyunitDescIsBreak := studyunitFields[7].Descriptor()
	// studyunit.DefaultIsBreak holds the default value on creation for the is_break field.
	studyunit.DefaultIsBreak = studyunitDescIsBreak.Default.(bool)
	// studyunitDescKind is the schema descriptor for kind field.
	studyunitDescKind := studyunitFields[8].Descriptor()
	// studyunit.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	studyunit.KindValidator = studyunitDescKind.Validators[0].(func(string) error)
	// studyunitDescSessionType is the schema descriptor for session_type field.
	studyunitDescSessionType := studyunitFields[9].Descriptor()
	// studyunit.DefaultSessionType holds the default value on creation for the session_type field.
	studyunit.DefaultSessionType = studyunitDescSessionType.Default.(string)
	// studyunitDescStatus is the schema descriptor for status field.
	studyunitDescStatus := studyunitFields[10].Descriptor()
	// studyunit.DefaultStatus holds the default value on creation for the status field.
	studyunit.DefaultStatus = studyunitDescStatus.Default.(string)
	// studyunitDescPhase is the schema descriptor for phase field.
	studyunitDescPhase := studyunitFields[11].Descriptor()
	// studyunit.DefaultPhase holds the default value on creation for the phase field.
	studyunit.DefaultPhase = studyunitDescPhase.Default.(string)
	// studyunitDescTopicName is the schema descriptor for topic_name field.
	studyunitDescTopicName := studyunitFields[12].Descriptor()
	// studyunit.DefaultTopicName holds the default value on creation for the topic_name field.
	studyunit.DefaultTopicName = studyunitDescTopicName.Default.(string)
	// studyunitDescStageIndex is the schema descriptor for stage_index field.
	studyunitDescStageIndex := studyunitFields[13].Descriptor()
	// studyunit.DefaultStageIndex holds the default value on creation for the stage_index field.
	studyunit.DefaultStageIndex = studyunitDescStageIndex.Default.(int)
	// studyunitDescStageTarget is the schema descriptor for stage_target field.
	studyunitDescStageTarget := studyunitFields[14].Descriptor()
	// studyunit.DefaultStageTarget holds the default value on creation for the stage_target field.
	studyunit.DefaultStageTarget = studyunitDescStageTarget.Default.(int)
	// studyunitDescRescheduleCount is the schema descriptor for reschedule_count field.
	studyunitDescRescheduleCount := studyunitFields[15].Descriptor()
	// studyunit.DefaultRescheduleCount holds the default value on creation for the reschedule_count field.
	studyunit.DefaultRescheduleCount = studyunitDescRescheduleCount.Default.(int)
	// studyunitDescUpdatedAt is the schema descriptor for updated_at field.
	studyunitDescUpdatedAt := studyunitFields[18].Descriptor()
	// studyunit.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	studyunit.DefaultUpdatedAt = studyunitDescUpdatedAt.Default.(func() time.Time)
	// studyunit.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	studyunit.UpdateDefaultUpdatedAt = studyunitDescUpdatedAt.UpdateDefault.(func() time.Time)
	subjectFields := schema.Subject{}.Fields()
	_ = subjectFields
	// subjectDescSubjectID is the schema descriptor for subject_id field.
	subjectDescSubjectID := subjectFields[0].Descriptor()
	// subject.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	subject.SubjectIDValidator = subjectDescSubjectID.Validators[0].(func(string) error)
	// subjectDescName is the schema descriptor for name field.
	subjectDescName := subjectFields[1].Descriptor()
	// subject.NameValidator is a validator for the "name" field. It is called by the builders before save.
	subject.NameValidator = subjectDescName.Validators[0].(func(string) error)
	// subjectDescPriority is the schema descriptor for priority field.
	subjectDescPriority := subjectFields[2].Descriptor()
	// subject.DefaultPriority holds the default value on creation for the priority field.
	subject.DefaultPriority = subjectDescPriority.Default.(int)
	// subjectDescDifficulty is the schema descriptor for difficulty field.
	subjectDescDifficulty := subjectFields[3].Descriptor()
	// subject.DefaultDifficulty holds the default value on creation for the difficulty field.
	subject.DefaultDifficulty = subjectDescDifficulty.Default.(int)
	// subjectDescWeeklyTargetHours is the schema descriptor for weekly_target_hours field.
	subjectDescWeeklyTargetHours := subjectFields[4].Descriptor()
	// subject.DefaultWeeklyTargetHours holds the default value on creation for the weekly_target_hours field.
	subject.DefaultWeeklyTargetHours = subjectDescWeeklyTargetHours.Default.(float64)
	// subjectDescArea is the schema descriptor for area field.
	subjectDescArea := subjectFields[5].Descriptor()
	// subject.DefaultArea holds the default value on creation for the area field.
	subject.DefaultArea = subjectDescArea.Default.(string)
	// subjectDescLevel is the schema descriptor for level field.
	subjectDescLevel := subjectFields[6].Descriptor()
	// subject.DefaultLevel holds the default value on creation for the level field.
	subject.DefaultLevel = subjectDescLevel.Default.(string)
	// subjectDescExamWeight is the schema descriptor for exam_weight field.
	subjectDescExamWeight := subjectFields[7].Descriptor()
	// subject.DefaultExamWeight holds the default value on creation for the exam_weight field.
	subject.DefaultExamWeight = subjectDescExamWeight.Default.(float64)
	// subjectDescCompletedHours is the schema descriptor for completed_hours field.
	subjectDescCompletedHours := subjectFields[8].Descriptor()
	// subject.DefaultCompletedHours holds the default value on creation for the completed_hours field.
	subject.DefaultCompletedHours = subjectDescCompletedHours.Default.(float64)
	// subjectDescSessionCount is the schema descriptor for session_count field.
	subjectDescSessionCount := subjectFields[9].Descriptor()
	// subject.DefaultSessionCount holds the default value on creation for the session_count field.
	subject.DefaultSessionCount = subjectDescSessionCount.Default.(int)
	// subjectDescAverageScore is the schema descriptor for average_score field.
	subjectDescAverageScore := subjectFields[10].Descriptor()
	// subject.DefaultAverageScore holds the default value on creation for the average_score field.
	subject.DefaultAverageScore = subjectDescAverageScore.Default.(float64)
	// subjectDescArchived is the schema descriptor for archived field.
	subjectDescArchived := subjectFields[11].Descriptor()
	// subject.DefaultArchived holds the default value on creation for the archived field.
	subject.DefaultArchived = subjectDescArchived.Default.(bool)
	// subjectDescCreatedAt is the schema descriptor for created_at field.
	subjectDescCreatedAt := subjectFields[12].Descriptor()
	// subject.DefaultCreatedAt holds the default value on creation for the created_at field.
	subject.DefaultCreatedAt = subjectDescCreatedAt.Default.(func() time.Time)
	// subjectDescUpdatedAt is the schema descriptor for updated_at field.
	subjectDescUpdatedAt := subjectFields[13].Descriptor()
	// subject.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subject.DefaultUpdatedAt = subjectDescUpdatedAt.Default.(func() time.Time)
	// subject.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	subject.UpdateDefaultUpdatedAt = subjectDescUpdatedAt.UpdateDefault.(func() time.Time)
}
