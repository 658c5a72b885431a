package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"manege/internal/domains/block/model"
	"manege/internal/domains/block/model/dto"
)

func TestCreateBlockRequest_Interval(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{name: "valid span", start: "2026-09-01T08:00:00Z", end: "2026-09-01T17:00:00Z"},
		{name: "inverted span", start: "2026-09-01T17:00:00Z", end: "2026-09-01T08:00:00Z", wantErr: true},
		{name: "unparseable start", start: "volgende week", end: "2026-09-01T17:00:00Z", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateBlockRequest{StartTime: tt.start, EndTime: tt.end}

			span, err := req.Interval()

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.True(t, span.Start.Before(span.End))
		})
	}
}

func TestCreateBlockRequest_ToModel(t *testing.T) {
	recurring := true

	req := dto.CreateBlockRequest{
		ResourceID:     "resource-id",
		Reason:         "wekelijkse springles",
		StartTime:      "2026-09-01T19:00:00Z",
		EndTime:        "2026-09-01T20:00:00Z",
		Recurring:      &recurring,
		RecurrenceRule: "FREQ=WEEKLY;BYDAY=TU",
	}

	span, err := req.Interval()
	assert.NoError(t, err)

	block := req.ToModel("admin-id", span)

	assert.NotEmpty(t, block.ID)
	assert.True(t, block.Recurring)
	assert.Equal(t, "FREQ=WEEKLY;BYDAY=TU", block.RecurrenceRule)
	assert.Equal(t, "admin-id", block.CreatedBy)
}

func TestCreateBlockRequest_ToModelDefaults(t *testing.T) {
	req := dto.CreateBlockRequest{
		ResourceID: "resource-id",
		Reason:     "onderhoud",
		StartTime:  "2026-09-01T08:00:00Z",
		EndTime:    "2026-09-01T17:00:00Z",
	}

	span, err := req.Interval()
	assert.NoError(t, err)

	block := req.ToModel("admin-id", span)

	assert.False(t, block.Recurring)
	assert.Empty(t, block.RecurrenceRule)
}

func TestUpdateBlockRequest_Interval(t *testing.T) {
	current := model.Block{
		StartTime: time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 9, 1, 17, 0, 0, 0, time.UTC),
	}

	span, err := (&dto.UpdateBlockRequest{EndTime: "2026-09-01T12:00:00Z"}).Interval(current)
	assert.NoError(t, err)
	assert.True(t, span.Start.Equal(current.StartTime))
	assert.True(t, span.End.Equal(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)))

	_, err = (&dto.UpdateBlockRequest{StartTime: "2026-09-01T18:00:00Z"}).Interval(current)
	assert.Error(t, err)
}

func TestUpdateBlockRequest_ReschedulesTime(t *testing.T) {
	assert.False(t, (&dto.UpdateBlockRequest{Reason: "onderhoud"}).ReschedulesTime())
	assert.True(t, (&dto.UpdateBlockRequest{StartTime: "2026-09-01T08:00:00Z"}).ReschedulesTime())
}
