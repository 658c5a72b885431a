package dto

import (
	"time"

	"github.com/google/uuid"

	"manege/internal/domains/block/model"
	"manege/shared"
	"manege/shared/constant"
	gDto "manege/shared/dto"
	"manege/shared/interval"
	gModel "manege/shared/model"
	"manege/shared/timezone"
)

type CreateBlockRequest struct {
	ResourceID     string `json:"resource_id"     validate:"required"`
	Reason         string `json:"reason"          validate:"required,max=200"`
	StartTime      string `json:"start_time"      validate:"required"`
	EndTime        string `json:"end_time"        validate:"required"`
	Recurring      *bool  `json:"recurring"       validate:"omitempty"`
	RecurrenceRule string `json:"recurrence_rule" validate:"omitempty,max=255"`
}

func (c *CreateBlockRequest) Interval() (interval.Interval, error) {
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

func (c *CreateBlockRequest) ToModel(user string, span interval.Interval) model.Block {
	recurring := false
	if c.Recurring != nil {
		recurring = *c.Recurring
	}

	return model.Block{
		ID:             uuid.NewString(),
		ResourceID:     c.ResourceID,
		Reason:         c.Reason,
		StartTime:      span.Start,
		EndTime:        span.End,
		Recurring:      recurring,
		RecurrenceRule: c.RecurrenceRule,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBlockRequest struct {
	Reason         string `db:"reason"          json:"reason"          validate:"omitempty,max=200"`
	StartTime      string `json:"start_time" validate:"omitempty"`
	EndTime        string `json:"end_time"   validate:"omitempty"`
	Recurring      *bool  `db:"recurring"       json:"recurring"       validate:"omitempty"`
	RecurrenceRule string `db:"recurrence_rule" json:"recurrence_rule" validate:"omitempty,max=255"`
}

func (u *UpdateBlockRequest) ReschedulesTime() bool {
	return u.StartTime != "" || u.EndTime != ""
}

func (u *UpdateBlockRequest) Interval(current model.Block) (interval.Interval, error) {
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

type BlockResponse struct {
	ID             string `json:"id"`
	ResourceID     string `json:"resource_id"`
	Reason         string `json:"reason"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Recurring      bool   `json:"recurring"`
	RecurrenceRule string `json:"recurrence_rule,omitempty"`
	gDto.Metadata
}

func (r *BlockResponse) FromModel(model model.Block) {
	r.ID = model.ID
	r.ResourceID = model.ResourceID
	r.Reason = model.Reason
	r.StartTime = model.StartTime.Format(constant.DateFormat)
	r.EndTime = model.EndTime.Format(constant.DateFormat)
	r.Recurring = model.Recurring
	r.RecurrenceRule = model.RecurrenceRule
	r.Metadata.FromModel(model.Metadata)
}

type GetBlocksResponse struct {
	Blocks    []BlockResponse `json:"blocks"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetBlocksResponse) FromModels(models []model.Block, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Blocks = make([]BlockResponse, len(models))
	for i, mod := range models {
		r.Blocks[i].FromModel(mod)
	}
}
