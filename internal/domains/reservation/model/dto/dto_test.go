package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"manege/internal/domains/reservation/model"
	"manege/internal/domains/reservation/model/dto"
)

func TestCreateReservationRequest_Interval(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{name: "valid span", start: "2026-09-01T09:00:00Z", end: "2026-09-01T10:00:00Z"},
		{name: "inverted span", start: "2026-09-01T10:00:00Z", end: "2026-09-01T09:00:00Z", wantErr: true},
		{name: "zero length span", start: "2026-09-01T09:00:00Z", end: "2026-09-01T09:00:00Z", wantErr: true},
		{name: "unparseable start", start: "morgen om negen", end: "2026-09-01T10:00:00Z", wantErr: true},
		{name: "unparseable end", start: "2026-09-01T09:00:00Z", end: "overmorgen", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateReservationRequest{StartTime: tt.start, EndTime: tt.end}

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

func TestCreateReservationRequest_ToModel(t *testing.T) {
	req := dto.CreateReservationRequest{
		ResourceID: "resource-id",
		RiderName:  "Sanne de Vries",
		StartTime:  "2026-09-01T09:00:00Z",
		EndTime:    "2026-09-01T10:00:00Z",
	}

	span, err := req.Interval()
	assert.NoError(t, err)

	res := req.ToModel("user-id", span)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, string(model.StatusPending), res.Status)
	assert.Equal(t, "user-id", res.CreatedBy)

	req.Status = string(model.StatusConfirmed)
	res = req.ToModel("user-id", span)

	assert.Equal(t, string(model.StatusConfirmed), res.Status)
}

func TestUpdateReservationRequest_Interval(t *testing.T) {
	current := model.Reservation{
		StartTime: time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name      string
		req       dto.UpdateReservationRequest
		wantStart time.Time
		wantEnd   time.Time
		wantErr   bool
	}{
		{
			name:      "only start moves",
			req:       dto.UpdateReservationRequest{StartTime: "2026-09-01T09:30:00Z"},
			wantStart: time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC),
			wantEnd:   current.EndTime,
		},
		{
			name:      "only end moves",
			req:       dto.UpdateReservationRequest{EndTime: "2026-09-01T11:00:00Z"},
			wantStart: current.StartTime,
			wantEnd:   time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC),
		},
		{
			name: "both move",
			req: dto.UpdateReservationRequest{
				StartTime: "2026-09-01T14:00:00Z",
				EndTime:   "2026-09-01T15:00:00Z",
			},
			wantStart: time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC),
		},
		{
			name:    "new start inverts the stored span",
			req:     dto.UpdateReservationRequest{StartTime: "2026-09-01T10:30:00Z"},
			wantErr: true,
		},
		{
			name:    "unparseable start",
			req:     dto.UpdateReservationRequest{StartTime: "vanmiddag"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, err := tt.req.Interval(current)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.True(t, span.Start.Equal(tt.wantStart))
			assert.True(t, span.End.Equal(tt.wantEnd))
		})
	}
}

func TestUpdateReservationRequest_ReschedulesTime(t *testing.T) {
	assert.False(t, (&dto.UpdateReservationRequest{Purpose: "springles"}).ReschedulesTime())
	assert.True(t, (&dto.UpdateReservationRequest{StartTime: "2026-09-01T09:00:00Z"}).ReschedulesTime())
	assert.True(t, (&dto.UpdateReservationRequest{EndTime: "2026-09-01T10:00:00Z"}).ReschedulesTime())
}
