package dto

import (
	"time"

	blockModel "manege/internal/domains/block/model"
	reservationModel "manege/internal/domains/reservation/model"
	"manege/shared/constant"
	"manege/shared/interval"
)

type CheckOverlapsRequest struct {
	ResourceID string `json:"resource_id" validate:"required"`
	Start      string `json:"start"       validate:"required"`
	End        string `json:"end"         validate:"required"`
	ExcludeID  string `json:"exclude_id"  validate:"omitempty"`
}

func (c *CheckOverlapsRequest) Interval() (interval.Interval, error) {
	start, err := time.Parse(constant.DateFormat, c.Start)
	if err != nil {
		return interval.Interval{}, err
	}

	end, err := time.Parse(constant.DateFormat, c.End)
	if err != nil {
		return interval.Interval{}, err
	}

	return interval.New(start, end)
}

type ConflictingReservation struct {
	ID        string `json:"id"`
	RiderName string `json:"rider_name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Purpose   string `json:"purpose"`
	Status    string `json:"status"`
}

func (c *ConflictingReservation) FromModel(model reservationModel.Reservation) {
	c.ID = model.ID
	c.RiderName = model.RiderName
	c.StartTime = model.StartTime.Format(constant.DateFormat)
	c.EndTime = model.EndTime.Format(constant.DateFormat)
	c.Purpose = model.Purpose
	c.Status = model.Status
}

type ConflictingBlock struct {
	ID        string `json:"id"`
	Reason    string `json:"reason"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (c *ConflictingBlock) FromModel(model blockModel.Block) {
	c.ID = model.ID
	c.Reason = model.Reason
	c.StartTime = model.StartTime.Format(constant.DateFormat)
	c.EndTime = model.EndTime.Format(constant.DateFormat)
}

// CheckOverlapsResponse is the verdict of an availability check. A conflict
// is data, not an error: the response carries every overlapping reservation
// and block, both ordered by start time.
type CheckOverlapsResponse struct {
	ResourceID              string                   `json:"resource_id"`
	Start                   string                   `json:"start"`
	End                     string                   `json:"end"`
	HasConflict             bool                     `json:"has_conflict"`
	ConflictingReservations []ConflictingReservation `json:"conflicting_reservations"`
	ConflictingBlocks       []ConflictingBlock       `json:"conflicting_blocks"`
}
