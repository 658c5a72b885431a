package dto

import (
	"time"

	"github.com/google/uuid"

	"manege/internal/domains/reservation/model"
	"manege/shared"
	"manege/shared/constant"
	gDto "manege/shared/dto"
	"manege/shared/interval"
	gModel "manege/shared/model"
	"manege/shared/timezone"
)

type CreateReservationRequest struct {
	ResourceID string `json:"resource_id" validate:"required"`
	RiderName  string `json:"rider_name"  validate:"required,max=100"`
	RiderEmail string `json:"rider_email" validate:"omitempty,email,max=100"`
	RiderPhone string `json:"rider_phone" validate:"omitempty,max=20"`
	StartTime  string `json:"start_time"  validate:"required"`
	EndTime    string `json:"end_time"    validate:"required"`
	Purpose    string `json:"purpose"     validate:"omitempty,max=200"`
	Status     string `json:"status"      validate:"omitempty,oneof=pending confirmed"`
}

// Interval parses the requested time span. Invalid timestamps and inverted
// or zero-length spans are rejected here, before any store is consulted.
func (c *CreateReservationRequest) Interval() (interval.Interval, error) {
	start, err := time.Parse(constant.DateFormat, c.StartTime)
	if err != nil {
		return interval.Interval{}, err
	}

	end, err := time.Parse(constant.DateFormat, c.EndTime)
	if err != nil {
		return interval.Interval{}, err
	}

	return interval.New(start, end)
}

func (c *CreateReservationRequest) ToModel(user string, span interval.Interval) model.Reservation {
	status := model.StatusPending
	if c.Status != "" {
		status = model.Status(c.Status)
	}

	return model.Reservation{
		ID:         uuid.NewString(),
		ResourceID: c.ResourceID,
		RiderName:  c.RiderName,
		RiderEmail: c.RiderEmail,
		RiderPhone: c.RiderPhone,
		StartTime:  span.Start,
		EndTime:    span.End,
		Purpose:    c.Purpose,
		Status:     string(status),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateReservationRequest struct {
	RiderName  string `db:"rider_name"  json:"rider_name"  validate:"omitempty,max=100"`
	RiderEmail string `db:"rider_email" json:"rider_email" validate:"omitempty,email,max=100"`
	RiderPhone string `db:"rider_phone" json:"rider_phone" validate:"omitempty,max=20"`
	StartTime  string `json:"start_time" validate:"omitempty"`
	EndTime    string `json:"end_time"   validate:"omitempty"`
	Purpose    string `db:"purpose"     json:"purpose"     validate:"omitempty,max=200"`
}

// ReschedulesTime reports whether the update touches the reserved time span.
func (u *UpdateReservationRequest) ReschedulesTime() bool {
	return u.StartTime != "" || u.EndTime != ""
}

// Interval merges the requested times with the stored ones and validates the
// resulting span.
func (u *UpdateReservationRequest) Interval(current model.Reservation) (interval.Interval, error) {
	start := current.StartTime
	end := current.EndTime

	if u.StartTime != "" {
		parsed, err := time.Parse(constant.DateFormat, u.StartTime)
		if err != nil {
			return interval.Interval{}, err
		}

		start = parsed
	}

	if u.EndTime != "" {
		parsed, err := time.Parse(constant.DateFormat, u.EndTime)
		if err != nil {
			return interval.Interval{}, err
		}

		end = parsed
	}

	return interval.New(start, end)
}

type CancelReservationRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=200"`
}

type ReservationResponse struct {
	ID           string  `json:"id"`
	ResourceID   string  `json:"resource_id"`
	RiderName    string  `json:"rider_name"`
	RiderEmail   string  `json:"rider_email"`
	RiderPhone   string  `json:"rider_phone"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	Purpose      string  `json:"purpose"`
	Status       string  `json:"status"`
	CancelledAt  *string `json:"cancelled_at,omitempty"`
	CancelledBy  *string `json:"cancelled_by,omitempty"`
	CancelReason *string `json:"cancel_reason,omitempty"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.ResourceID = model.ResourceID
	r.RiderName = model.RiderName
	r.RiderEmail = model.RiderEmail
	r.RiderPhone = model.RiderPhone
	r.StartTime = model.StartTime.Format(constant.DateFormat)
	r.EndTime = model.EndTime.Format(constant.DateFormat)
	r.Purpose = model.Purpose
	r.Status = model.Status

	if model.CancelledAt != nil {
		cancelledAt := model.CancelledAt.Format(constant.DateFormat)
		r.CancelledAt = &cancelledAt
	}

	r.CancelledBy = model.CancelledBy
	r.CancelReason = model.CancelReason
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}
