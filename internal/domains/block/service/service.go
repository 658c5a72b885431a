package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"manege/config"
	"manege/infras/otel"
	"manege/internal/domains/block/model"
	"manege/internal/domains/block/model/dto"
	"manege/internal/domains/block/repository"
	resourceModel "manege/internal/domains/resource/model"
	resourceRepo "manege/internal/domains/resource/repository"
	"manege/shared"
	"manege/shared/cache"
	"manege/shared/constant"
	gDto "manege/shared/dto"
	"manege/shared/failure"
)

const (
	cacheGetBlock    = "block:get"
	cacheGetAllBlock = "block:gets"
	cacheCountBlock  = "block:count"
)

// Block manages administrative closures. A block may be placed over existing
// reservations: blocks always win, and affected riders are handled out of
// band by the staff.
type Block interface {
	Create(ctx context.Context, req dto.CreateBlockRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBlocksResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BlockResponse, error)
	Update(ctx context.Context, req dto.UpdateBlockRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Block
	resourceRepo resourceRepo.Resource
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.Block, resourceRepo resourceRepo.Resource, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Block {
	return &serviceImpl{
		repo:         repo,
		resourceRepo: resourceRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBlockRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	span, err := req.Interval()
	if err != nil {
		return failure.BadRequestFromString(fmt.Sprintf("invalid time span: %v", err)) //nolint:wrapcheck
	}

	exist, err := s.resourceRepo.Exist(ctx, shared.FilterByID(req.ResourceID, resourceModel.FieldID, resourceModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if resource exists")

		return fmt.Errorf("failed to check if resource exists: %w", err)
	}

	if !exist {
		return failure.BadRequestFromString("resource does not exist") //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user, span)); err != nil {
		log.Error().Err(err).Msg("failed to create block")

		return fmt.Errorf("failed to create block: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBlock)
		shared.InvalidateCaches(c, s.cache, cacheCountBlock)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBlocksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBlock, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for blocks")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count blocks")

		return res, fmt.Errorf("failed to count blocks: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get blocks")

		return res, fmt.Errorf("failed to get blocks: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save blocks to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBlock, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for block count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count blocks")

		return res, fmt.Errorf("failed to count blocks: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save block count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BlockResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBlock, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for block")

		return res, nil
	}

	block, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get block")

		return res, fmt.Errorf("failed to get block: %w", err)
	}

	if block.ID == constant.Empty {
		return res, failure.NotFound("block not found") //nolint:wrapcheck
	}

	res.FromModel(block)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save block to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBlockRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBlockRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get block")

		return fmt.Errorf("failed to get block: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("block not found") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if req.ReschedulesTime() {
		span, err := req.Interval(current)
		if err != nil {
			return failure.BadRequestFromString(fmt.Sprintf("invalid time span: %v", err)) //nolint:wrapcheck
		}

		updatedFields[model.FieldStartTime] = span.Start
		updatedFields[model.FieldEndTime] = span.End
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update block")

		return fmt.Errorf("failed to update block: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBlock, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete block from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBlock)
		shared.InvalidateCaches(c, s.cache, cacheCountBlock)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if block exists")

		return fmt.Errorf("failed to check if block exists: %w", err)
	}

	if !exist {
		log.Error().Msg("block not found")

		return failure.NotFound("block not found") //nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete block")

		return fmt.Errorf("failed to delete block: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBlock, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete block from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBlock)
		shared.InvalidateCaches(c, s.cache, cacheCountBlock)
	}()

	return nil
}
