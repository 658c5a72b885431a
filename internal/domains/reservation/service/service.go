package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"manege/config"
	"manege/infras/otel"
	auditModel "manege/internal/domains/audit/model"
	auditService "manege/internal/domains/audit/service"
	availabilityDto "manege/internal/domains/availability/model/dto"
	availabilityService "manege/internal/domains/availability/service"
	"manege/internal/domains/reservation/model"
	"manege/internal/domains/reservation/model/dto"
	"manege/internal/domains/reservation/repository"
	resourceModel "manege/internal/domains/resource/model"
	resourceRepo "manege/internal/domains/resource/repository"
	"manege/shared"
	"manege/shared/cache"
	"manege/shared/constant"
	gDto "manege/shared/dto"
	"manege/shared/failure"
	"manege/shared/timezone"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"

	msgSlotTaken = "time slot was just taken, please try again"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	GetMine(ctx context.Context, req gDto.QueryParams) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Update(ctx context.Context, req dto.UpdateReservationRequest, id string) error
	Confirm(ctx context.Context, id string) error
	Cancel(ctx context.Context, req dto.CancelReservationRequest, id string) error
}

type serviceImpl struct {
	repo         repository.Reservation
	resourceRepo resourceRepo.Resource
	checker      availabilityService.Checker
	audit        auditService.Recorder
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Reservation,
	resourceRepo resourceRepo.Resource,
	checker availabilityService.Checker,
	audit auditService.Recorder,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:         repo,
		resourceRepo: resourceRepo,
		checker:      checker,
		audit:        audit,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Create books a time slot. The availability check here is advisory: it turns
// most double bookings into a friendly conflict response before touching the
// database. Two requests can still pass the check concurrently, so the insert
// maps the exclusion constraint violation to the same conflict failure.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	span, err := req.Interval()
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid time span: %v", err)) //nolint:wrapcheck
	}

	resource, err := s.resourceRepo.Get(ctx, shared.FilterByID(req.ResourceID, resourceModel.FieldID, resourceModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get resource")

		return res, fmt.Errorf("failed to get resource: %w", err)
	}

	if resource.ID == constant.Empty {
		return res, failure.BadRequestFromString("resource does not exist") //nolint:wrapcheck
	}

	if !resource.Active {
		return res, failure.BadRequestFromString("resource is not active") //nolint:wrapcheck
	}

	verdict, err := s.checker.CheckOverlaps(ctx, availabilityDto.CheckOverlapsRequest{
		ResourceID: req.ResourceID,
		Start:      req.StartTime,
		End:        req.EndTime,
	})
	if err != nil {
		return res, err
	}

	if verdict.HasConflict {
		return res, failure.Conflict("requested time slot is not available") //nolint:wrapcheck
	}

	reservation := req.ToModel(user, span)

	if err = s.repo.Insert(ctx, reservation); err != nil {
		if isExclusionViolation(err) {
			log.Warn().Str("resourceID", req.ResourceID).Msg("reservation lost the race for a time slot")

			return res, failure.Conflict(msgSlotTaken) //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	s.audit.Record(ctx, auditModel.ActionCreate, model.EntityName, reservation.ID, reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetMine(ctx context.Context, req gDto.QueryParams) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.Unauthorized("missing user identity") //nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCreatedBy,
				Value:    user,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	return s.GetAll(ctx, req, filter)
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") //nolint:wrapcheck
	}

	if err = s.authorize(ctx, reservation); err != nil {
		return res, err
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

// Update reschedules or edits a reservation. When the time span changes the
// slot is re-checked with the reservation itself excluded, so a reservation
// never conflicts with its own row.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReservationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateReservationRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("reservation not found") //nolint:wrapcheck
	}

	if err = s.authorize(ctx, current); err != nil {
		return err
	}

	if model.Status(current.Status) == model.StatusCancelled {
		return failure.Conflict("cancelled reservation cannot be modified") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if req.ReschedulesTime() {
		span, err := req.Interval(current)
		if err != nil {
			return failure.BadRequestFromString(fmt.Sprintf("invalid time span: %v", err)) //nolint:wrapcheck
		}

		verdict, err := s.checker.CheckOverlaps(ctx, availabilityDto.CheckOverlapsRequest{
			ResourceID: current.ResourceID,
			Start:      span.Start.Format(constant.DateFormat),
			End:        span.End.Format(constant.DateFormat),
			ExcludeID:  current.ID,
		})
		if err != nil {
			return err
		}

		if verdict.HasConflict {
			return failure.Conflict("requested time slot is not available") //nolint:wrapcheck
		}

		updatedFields[model.FieldStartTime] = span.Start
		updatedFields[model.FieldEndTime] = span.End
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		if isExclusionViolation(err) {
			log.Warn().Str("reservationID", id).Msg("reschedule lost the race for a time slot")

			return failure.Conflict(msgSlotTaken) //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update reservation")

		return fmt.Errorf("failed to update reservation: %w", err)
	}

	s.audit.Record(ctx, auditModel.ActionUpdate, model.EntityName, id, updatedFields)

	s.invalidate(ctx, id)

	return nil
}

// Confirm moves a pending reservation to confirmed.
func (s *serviceImpl) Confirm(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("reservation not found") //nolint:wrapcheck
	}

	if !model.Status(current.Status).CanTransitionTo(model.StatusConfirmed) {
		return failure.Conflict(fmt.Sprintf("cannot confirm a %s reservation", current.Status)) //nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        string(model.StatusConfirmed),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to confirm reservation")

		return fmt.Errorf("failed to confirm reservation: %w", err)
	}

	s.audit.Record(ctx, auditModel.ActionConfirm, model.EntityName, id, updatedFields)

	s.invalidate(ctx, id)

	return nil
}

// Cancel releases the time slot. Cancelled is terminal and the row keeps who
// cancelled, when and why; the exclusion constraint ignores cancelled rows so
// the slot frees up immediately.
func (s *serviceImpl) Cancel(ctx context.Context, req dto.CancelReservationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("reservation not found") //nolint:wrapcheck
	}

	if err = s.authorize(ctx, current); err != nil {
		return err
	}

	if !model.Status(current.Status).CanTransitionTo(model.StatusCancelled) {
		return failure.Conflict("reservation is already cancelled") //nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        string(model.StatusCancelled),
		model.FieldCancelledAt:   timezone.Now(),
		model.FieldCancelledBy:   user,
		model.FieldCancelReason:  req.Reason,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to cancel reservation")

		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	s.audit.Record(ctx, auditModel.ActionCancel, model.EntityName, id, updatedFields)

	s.invalidate(ctx, id)

	return nil
}

// authorize lets members touch only their own reservations; staff see all.
func (s *serviceImpl) authorize(ctx context.Context, reservation model.Reservation) error {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role != constant.RoleMember {
		return nil
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if reservation.CreatedBy != user {
		return failure.Forbidden("reservation belongs to another rider") //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()
}

func isExclusionViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeExclusionViolation
}
