package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"manege/infras/otel"
	"manege/infras/postgres"
	"manege/internal/domains/reservation/model"
	"manege/shared/constant"
	gDto "manege/shared/dto"
	"manege/shared/interval"
	gRepo "manege/shared/repository"
)

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ListInWindow(ctx context.Context, resourceID string, window interval.Interval, excludeID string) ([]model.Reservation, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// WindowFilter matches the blocking reservations of a resource whose span
// intersects the window. Only blocking statuses qualify, so cancelled
// reservations never show up in conflict results. The time comparisons stay
// strict, keeping the match half-open on both sides. excludeID leaves out one
// reservation so a reschedule never collides with itself.
func WindowFilter(resourceID string, window interval.Interval, excludeID string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldResourceID,
			Value:    resourceID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldStatus,
			Value:    model.BlockingStatuses(),
			Operator: gDto.FilterOperatorIn,
			Table:    model.TableName,
		},
		gDto.Filter{
			ArgName:  "window_end",
			Field:    model.FieldStartTime,
			Value:    window.End,
			Operator: gDto.FilterOperatorLess,
			Table:    model.TableName,
		},
		gDto.Filter{
			ArgName:  "window_start",
			Field:    model.FieldEndTime,
			Value:    window.Start,
			Operator: gDto.FilterOperatorGreater,
			Table:    model.TableName,
		},
	}

	if excludeID != constant.Empty {
		filters = append(filters, gDto.Filter{
			ArgName:  "exclude_id",
			Field:    model.FieldID,
			Value:    excludeID,
			Operator: gDto.FilterOperatorNotEq,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{
		Filters:  filters,
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

// ListInWindow returns the blocking reservations of a resource intersecting
// the window, ordered by start time.
func (repo *repositoryImpl) ListInWindow(ctx context.Context, resourceID string, window interval.Interval, excludeID string) ([]model.Reservation, error) {
	params := gDto.QueryParams{
		SortBy:  model.FieldStartTime,
		SortDir: "ASC",
	}

	return repo.GetAll(ctx, params, WindowFilter(resourceID, window, excludeID))
}
