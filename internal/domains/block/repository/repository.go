package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"manege/infras/otel"
	"manege/infras/postgres"
	"manege/internal/domains/block/model"
	gDto "manege/shared/dto"
	"manege/shared/interval"
	gRepo "manege/shared/repository"
)

type Block interface {
	Insert(ctx context.Context, model model.Block) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Block, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Block, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ListInWindow(ctx context.Context, resourceID string, window interval.Interval, excludeID string) ([]model.Block, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Block]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Block {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Block](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ListInWindow returns the blocks of a resource intersecting the window,
// ordered by start time. excludeID leaves out one block so rescheduling a
// block never collides with itself.
func (repo *repositoryImpl) ListInWindow(ctx context.Context, resourceID string, window interval.Interval, excludeID string) ([]model.Block, error) {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldResourceID,
			Value:    resourceID,
			Operator: gDto.FilterOperatorEq,
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

	if excludeID != "" {
		filters = append(filters, gDto.Filter{
			ArgName:  "exclude_id",
			Field:    model.FieldID,
			Value:    excludeID,
			Operator: gDto.FilterOperatorNotEq,
			Table:    model.TableName,
		})
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldStartTime,
		SortDir: "ASC",
	}

	return repo.GetAll(ctx, params, gDto.FilterGroup{
		Filters:  filters,
		Operator: gDto.FilterGroupOperatorAnd,
	})
}
