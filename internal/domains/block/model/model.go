package model

import (
	"time"

	"manege/shared/interval"
	"manege/shared/model"
)

const (
	TableName  = "blocks"
	EntityName = "block"

	FieldID             = "id"
	FieldResourceID     = "resource_id"
	FieldReason         = "reason"
	FieldStartTime      = "start_time"
	FieldEndTime        = "end_time"
	FieldRecurring      = "recurring"
	FieldRecurrenceRule = "recurrence_rule"
)

// Block is an administrative closure of a resource, such as maintenance or a
// private lesson. Blocks always win: no reservation may overlap one.
// Recurring blocks are stored as materialized occurrences; the recurrence
// rule is bookkeeping carried on every occurrence, not an expansion engine.
type Block struct {
	ID             string    `db:"id"`
	ResourceID     string    `db:"resource_id"`
	Reason         string    `db:"reason"`
	StartTime      time.Time `db:"start_time"`
	EndTime        time.Time `db:"end_time"`
	Recurring      bool      `db:"recurring"`
	RecurrenceRule string    `db:"recurrence_rule"`
	model.Metadata
}

// Interval returns the half-open closure span [StartTime, EndTime).
func (b *Block) Interval() interval.Interval {
	return interval.Interval{Start: b.StartTime, End: b.EndTime}
}
