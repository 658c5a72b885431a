package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"manege/internal/domains/reservation/model"
	"manege/internal/domains/reservation/repository"
	"manege/shared/interval"
)

func testWindow(t *testing.T) interval.Interval {
	t.Helper()

	window, err := interval.New(
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
	)
	assert.NoError(t, err)

	return window
}

func TestWindowFilter(t *testing.T) {
	window := testWindow(t)

	filter := repository.WindowFilter("resource-id", window, "")
	where, args := filter.GetWhereClause()

	assert.Contains(t, where, "reservations.resource_id = :resource_id")
	assert.Equal(t, "resource-id", args["resource_id"])

	// Only blocking statuses qualify; cancelled reservations are invisible
	// to conflict checks.
	assert.Contains(t, where, "reservations.status IN (:status_0, :status_1)")
	assert.Equal(t, string(model.StatusPending), args["status_0"])
	assert.Equal(t, string(model.StatusConfirmed), args["status_1"])

	for _, value := range args {
		assert.NotEqual(t, string(model.StatusCancelled), value)
	}

	// Strict comparisons keep the window half-open on both sides.
	assert.Contains(t, where, "reservations.start_time < :window_end")
	assert.Contains(t, where, "reservations.end_time > :window_start")
	assert.Equal(t, window.End, args["window_end"])
	assert.Equal(t, window.Start, args["window_start"])

	assert.NotContains(t, where, "exclude_id")
}

func TestWindowFilterExcludesReservation(t *testing.T) {
	window := testWindow(t)

	filter := repository.WindowFilter("resource-id", window, "existing-id")
	where, args := filter.GetWhereClause()

	assert.Contains(t, where, "reservations.id != :exclude_id")
	assert.Equal(t, "existing-id", args["exclude_id"])
}

func TestBlockingStatuses(t *testing.T) {
	statuses := model.BlockingStatuses()

	assert.ElementsMatch(t, []string{
		string(model.StatusPending),
		string(model.StatusConfirmed),
	}, statuses)
	assert.NotContains(t, statuses, string(model.StatusCancelled))
}
