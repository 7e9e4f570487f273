// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CompletionEventsColumns holds the columns for the "completion_events" table.
	CompletionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "unit_id", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "topic_name", Type: field.TypeString, Default: ""},
		{Name: "planned_minutes", Type: field.TypeInt, Default: 0},
		{Name: "spent_minutes", Type: field.TypeInt, Default: 0},
		{Name: "accuracy", Type: field.TypeFloat64, Default: 0},
		{Name: "skipped", Type: field.TypeBool, Default: false},
	}
	// CompletionEventsTable holds the schema information for the "completion_events" table.
	CompletionEventsTable = &schema.Table{
		Name:       "completion_events",
		Columns:    CompletionEventsColumns,
		PrimaryKey: []*schema.Column{CompletionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "completionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[1]},
			},
			{
				Name:    "completionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[2]},
			},
			{
				Name:    "completionevent_subject_id",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[4]},
			},
			{
				Name:    "completionevent_unit_id",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// PlanEventsColumns holds the columns for the "plan_events" table.
	PlanEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "fingerprint", Type: field.TypeString},
		{Name: "range_start", Type: field.TypeTime},
		{Name: "range_end", Type: field.TypeTime},
		{Name: "unit_count", Type: field.TypeInt, Default: 0},
		{Name: "total_hours", Type: field.TypeFloat64, Default: 0},
		{Name: "cache_hit", Type: field.TypeBool, Default: false},
	}
	// PlanEventsTable holds the schema information for the "plan_events" table.
	PlanEventsTable = &schema.Table{
		Name:       "plan_events",
		Columns:    PlanEventsColumns,
		PrimaryKey: []*schema.Column{PlanEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "planevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PlanEventsColumns[1]},
			},
			{
				Name:    "planevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PlanEventsColumns[2]},
			},
			{
				Name:    "planevent_fingerprint",
				Unique:  false,
				Columns: []*schema.Column{PlanEventsColumns[3]},
			},
		},
	}
	// RescheduleEventsColumns holds the columns for the "reschedule_events" table.
	RescheduleEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "unit_id", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "from_date", Type: field.TypeTime},
		{Name: "to_date", Type: field.TypeTime},
		{Name: "days_overdue", Type: field.TypeInt, Default: 0},
		{Name: "priority_score", Type: field.TypeFloat64, Default: 0},
		{Name: "reason", Type: field.TypeString, Default: ""},
	}
	// RescheduleEventsTable holds the schema information for the "reschedule_events" table.
	RescheduleEventsTable = &schema.Table{
		Name:       "reschedule_events",
		Columns:    RescheduleEventsColumns,
		PrimaryKey: []*schema.Column{RescheduleEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "rescheduleevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{RescheduleEventsColumns[1]},
			},
			{
				Name:    "rescheduleevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RescheduleEventsColumns[2]},
			},
			{
				Name:    "rescheduleevent_unit_id",
				Unique:  false,
				Columns: []*schema.Column{RescheduleEventsColumns[3]},
			},
			{
				Name:    "rescheduleevent_subject_id",
				Unique:  false,
				Columns: []*schema.Column{RescheduleEventsColumns[4]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// StudyUnitsColumns holds the columns for the "study_units" table.
	StudyUnitsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "unit_id", Type: field.TypeString, Unique: true},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "related_subject_id", Type: field.TypeString, Default: ""},
		{Name: "date", Type: field.TypeTime},
		{Name: "start_minute", Type: field.TypeInt},
		{Name: "end_minute", Type: field.TypeInt},
		{Name: "duration_minutes", Type: field.TypeInt},
		{Name: "is_break", Type: field.TypeBool, Default: false},
		{Name: "kind", Type: field.TypeString},
		{Name: "session_type", Type: field.TypeString, Default: ""},
		{Name: "status", Type: field.TypeString, Default: "scheduled"},
		{Name: "phase", Type: field.TypeString, Default: ""},
		{Name: "topic_name", Type: field.TypeString, Default: ""},
		{Name: "stage_index", Type: field.TypeInt, Default: 0},
		{Name: "stage_target", Type: field.TypeInt, Default: 0},
		{Name: "reschedule_count", Type: field.TypeInt, Default: 0},
		{Name: "original_date", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StudyUnitsTable holds the schema information for the "study_units" table.
	StudyUnitsTable = &schema.Table{
		Name:       "study_units",
		Columns:    StudyUnitsColumns,
		PrimaryKey: []*schema.Column{StudyUnitsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studyunit_unit_id",
				Unique:  true,
				Columns: []*schema.Column{StudyUnitsColumns[1]},
			},
			{
				Name:    "studyunit_subject_id",
				Unique:  false,
				Columns: []*schema.Column{StudyUnitsColumns[2]},
			},
			{
				Name:    "studyunit_date",
				Unique:  false,
				Columns: []*schema.Column{StudyUnitsColumns[4]},
			},
			{
				Name:    "studyunit_status",
				Unique:  false,
				Columns: []*schema.Column{StudyUnitsColumns[11]},
			},
		},
	}
	// SubjectsColumns holds the columns for the "subjects" table.
	SubjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "subject_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "priority", Type: field.TypeInt, Default: 5},
		{Name: "difficulty", Type: field.TypeInt, Default: 5},
		{Name: "weekly_target_hours", Type: field.TypeFloat64, Default: 0},
		{Name: "area", Type: field.TypeString, Default: ""},
		{Name: "level", Type: field.TypeString, Default: "intermediate"},
		{Name: "exam_weight", Type: field.TypeFloat64, Default: 0},
		{Name: "completed_hours", Type: field.TypeFloat64, Default: 0},
		{Name: "session_count", Type: field.TypeInt, Default: 0},
		{Name: "average_score", Type: field.TypeFloat64, Default: 0},
		{Name: "archived", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SubjectsTable holds the schema information for the "subjects" table.
	SubjectsTable = &schema.Table{
		Name:       "subjects",
		Columns:    SubjectsColumns,
		PrimaryKey: []*schema.Column{SubjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subject_subject_id",
				Unique:  true,
				Columns: []*schema.Column{SubjectsColumns[1]},
			},
			{
				Name:    "subject_archived",
				Unique:  false,
				Columns: []*schema.Column{SubjectsColumns[12]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CompletionEventsTable,
		LlmRequestEventsTable,
		PlanEventsTable,
		RescheduleEventsTable,
		SnapshotsTable,
		StudyUnitsTable,
		SubjectsTable,
	}
)

func init() {
}
