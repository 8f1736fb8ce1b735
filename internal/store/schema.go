package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// KVEntriesColumns holds the columns for the "kv_entries" table.
	KVEntriesColumns = []*schema.Column{
		{Name: "key", Type: field.TypeString, Size: 255},
		{Name: "value", Type: field.TypeString, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// KVEntriesTable holds the schema information for the "kv_entries" table.
	KVEntriesTable = &schema.Table{
		Name:       "kv_entries",
		Columns:    KVEntriesColumns,
		PrimaryKey: []*schema.Column{KVEntriesColumns[0]},
	}

	// SessionResultsColumns holds the columns for the "session_results" table.
	SessionResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Size: 36},
		{Name: "username", Type: field.TypeString, Size: 64},
		{Name: "avatar_id", Type: field.TypeInt},
		{Name: "score", Type: field.TypeInt},
		{Name: "best_streak", Type: field.TypeInt},
		{Name: "questions", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeInt},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime},
	}
	// SessionResultsTable holds the schema information for the "session_results" table.
	SessionResultsTable = &schema.Table{
		Name:       "session_results",
		Columns:    SessionResultsColumns,
		PrimaryKey: []*schema.Column{SessionResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionresult_ended_at",
				Unique:  false,
				Columns: []*schema.Column{SessionResultsColumns[8]},
			},
			{
				Name:    "sessionresult_username",
				Unique:  false,
				Columns: []*schema.Column{SessionResultsColumns[1]},
			},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		KVEntriesTable,
		SessionResultsTable,
	}
)
