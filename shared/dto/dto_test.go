package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"manege/shared/dto"
)

func TestFilterGetWhereClause(t *testing.T) {
	windowStart := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equality",
			filter:    dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "confirmed", Table: "reservations"},
			wantWhere: "reservations.status = :status",
			wantArgs:  map[string]any{"status": "confirmed"},
		},
		{
			name:      "not equal",
			filter:    dto.Filter{Field: "status", Operator: dto.FilterOperatorNotEq, Value: "cancelled"},
			wantWhere: "status != :status",
			wantArgs:  map[string]any{"status": "cancelled"},
		},
		{
			name:      "strict less than",
			filter:    dto.Filter{ArgName: "window_end", Field: "start_time", Operator: dto.FilterOperatorLess, Value: windowStart},
			wantWhere: "start_time < :window_end",
			wantArgs:  map[string]any{"window_end": windowStart},
		},
		{
			name:      "strict greater than",
			filter:    dto.Filter{ArgName: "window_start", Field: "end_time", Operator: dto.FilterOperatorGreater, Value: windowStart},
			wantWhere: "end_time > :window_start",
			wantArgs:  map[string]any{"window_start": windowStart},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroupGetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "resource_id", Operator: dto.FilterOperatorEq, Value: "rijhal-binnen"},
			dto.Filter{Field: "status", Operator: dto.FilterOperatorNotEq, Value: "cancelled"},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(resource_id = :resource_id AND status != :status)", where)
	assert.Len(t, args, 2)
}

func TestFilterGroupEmpty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestQueryParamsFromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/reservations?page=2&limit=25&sort_by=start_time&sort_dir=asc", nil)

	q := dto.QueryParams{}
	q.FromRequest(r, true)

	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 25, q.Limit)
	assert.Equal(t, "start_time", q.SortBy)
	assert.Equal(t, dto.SortDirAsc, q.SortDir)
}

func TestQueryParamsDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/reservations", nil)

	q := dto.QueryParams{}
	q.FromRequest(r, true)

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
}
