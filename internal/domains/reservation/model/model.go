package model

import (
	"time"

	"manege/shared/interval"
	"manege/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID           = "id"
	FieldResourceID   = "resource_id"
	FieldRiderName    = "rider_name"
	FieldRiderEmail   = "rider_email"
	FieldRiderPhone   = "rider_phone"
	FieldStartTime    = "start_time"
	FieldEndTime      = "end_time"
	FieldPurpose      = "purpose"
	FieldStatus       = "status"
	FieldCancelledAt  = "cancelled_at"
	FieldCancelledBy  = "cancelled_by"
	FieldCancelReason = "cancel_reason"
	FieldCreatedBy    = "created_by"
)

// Status is the lifecycle state of a reservation. Transitions are one-way:
// pending can be confirmed or cancelled, confirmed can only be cancelled,
// cancelled is terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled
	default:
		return false
	}
}

// Blocking reports whether a reservation in this status occupies its time
// slot. Cancelled reservations never take part in conflict checks.
func (s Status) Blocking() bool {
	return s == StatusPending || s == StatusConfirmed
}

// BlockingStatuses lists the statuses that occupy a time slot, for use in
// window queries.
func BlockingStatuses() []string {
	all := []Status{StatusPending, StatusConfirmed, StatusCancelled}

	blocking := make([]string, 0, len(all))
	for _, status := range all {
		if status.Blocking() {
			blocking = append(blocking, string(status))
		}
	}

	return blocking
}

type Reservation struct {
	ID           string     `db:"id"`
	ResourceID   string     `db:"resource_id"`
	RiderName    string     `db:"rider_name"`
	RiderEmail   string     `db:"rider_email"`
	RiderPhone   string     `db:"rider_phone"`
	StartTime    time.Time  `db:"start_time"`
	EndTime      time.Time  `db:"end_time"`
	Purpose      string     `db:"purpose"`
	Status       string     `db:"status"`
	CancelledAt  *time.Time `db:"cancelled_at"`
	CancelledBy  *string    `db:"cancelled_by"`
	CancelReason *string    `db:"cancel_reason"`
	model.Metadata
}

// Interval returns the half-open occupied span [StartTime, EndTime).
func (r *Reservation) Interval() interval.Interval {
	return interval.Interval{Start: r.StartTime, End: r.EndTime}
}
