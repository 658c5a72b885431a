package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"manege/infras/otel"
	"manege/internal/domains/availability/model/dto"
	blockRepo "manege/internal/domains/block/repository"
	reservationRepo "manege/internal/domains/reservation/repository"
	resourceModel "manege/internal/domains/resource/model"
	resourceRepo "manege/internal/domains/resource/repository"
	"manege/shared"
	"manege/shared/constant"
	"manege/shared/failure"
	"manege/shared/interval"
)

// Checker answers whether a time span on a resource is free. It is consulted
// directly by the availability endpoint and by the reservation write path as
// an advisory pre-check; the database exclusion constraint remains the
// authority under concurrency. Results are never cached: a stale verdict is
// worse than a slower one.
type Checker interface {
	CheckOverlaps(ctx context.Context, req dto.CheckOverlapsRequest) (dto.CheckOverlapsResponse, error)
}

type serviceImpl struct {
	reservations reservationRepo.Reservation
	blocks       blockRepo.Block
	resources    resourceRepo.Resource
	otel         otel.Otel
}

func New(reservations reservationRepo.Reservation, blocks blockRepo.Block, resources resourceRepo.Resource, otel otel.Otel) Checker {
	return &serviceImpl{
		reservations: reservations,
		blocks:       blocks,
		resources:    resources,
		otel:         otel,
	}
}

func (s *serviceImpl) CheckOverlaps(ctx context.Context, req dto.CheckOverlapsRequest) (res dto.CheckOverlapsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOverlaps")
	defer scope.End()
	defer scope.TraceIfError(err)

	span, err := req.Interval()
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid time span: %v", err)) //nolint:wrapcheck
	}

	exist, err := s.resources.Exist(ctx, shared.FilterByID(req.ResourceID, resourceModel.FieldID, resourceModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if resource exists")

		return res, fmt.Errorf("failed to check if resource exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("resource not found") //nolint:wrapcheck
	}

	// Candidate rows come from a day-widened window; the half-open predicate
	// below gives the exact verdict.
	window := span.WidenToDays()

	reservations, err := s.reservations.ListInWindow(ctx, req.ResourceID, window, req.ExcludeID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list reservations in window")

		return res, fmt.Errorf("failed to list reservations in window: %w", err)
	}

	blocks, err := s.blocks.ListInWindow(ctx, req.ResourceID, window, constant.Empty)
	if err != nil {
		log.Error().Err(err).Msg("failed to list blocks in window")

		return res, fmt.Errorf("failed to list blocks in window: %w", err)
	}

	res.ResourceID = req.ResourceID
	res.Start = span.Start.Format(constant.DateFormat)
	res.End = span.End.Format(constant.DateFormat)
	res.ConflictingReservations = []dto.ConflictingReservation{}
	res.ConflictingBlocks = []dto.ConflictingBlock{}

	for _, reservation := range reservations {
		if !interval.Overlaps(span, reservation.Interval()) {
			continue
		}

		var conflict dto.ConflictingReservation
		conflict.FromModel(reservation)
		res.ConflictingReservations = append(res.ConflictingReservations, conflict)
	}

	for _, block := range blocks {
		if !interval.Overlaps(span, block.Interval()) {
			continue
		}

		var conflict dto.ConflictingBlock
		conflict.FromModel(block)
		res.ConflictingBlocks = append(res.ConflictingBlocks, conflict)
	}

	res.HasConflict = len(res.ConflictingReservations) > 0 || len(res.ConflictingBlocks) > 0

	return res, nil
}
