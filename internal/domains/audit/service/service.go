package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"manege/config"
	"manege/infras/kafka"
	"manege/infras/otel"
	"manege/internal/domains/audit/model"
	"manege/internal/domains/audit/model/dto"
	"manege/internal/domains/audit/repository"
	"manege/shared/constant"
	gDto "manege/shared/dto"
	gModel "manege/shared/model"
	"manege/shared/timezone"
)

// Recorder writes the audit trail for reservation lifecycle changes. Record
// never fails the caller: an unwritable audit row is logged and dropped, the
// business operation has already happened.
type Recorder interface {
	Record(ctx context.Context, action, entityType, entityID string, changes any)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEntriesResponse, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type serviceImpl struct {
	repo  repository.Audit
	cfg   *config.Config
	kafka kafka.Client
	otel  otel.Otel
}

func New(repo repository.Audit, cfg *config.Config, kafkaClient kafka.Client, otel otel.Otel) Recorder {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		kafka: kafkaClient,
		otel:  otel,
	}
}

func (s *serviceImpl) Record(ctx context.Context, action, entityType, entityID string, changes any) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Record")
	defer scope.End()

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	encoded, err := json.Marshal(changes)
	if err != nil {
		log.Error().Err(err).Str("action", action).Str("entityID", entityID).Msg("failed to encode audit changes")

		encoded = []byte("{}")
	}

	entry := model.Entry{
		ID:         uuid.NewString(),
		ActorID:    actor,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Changes:    string(encoded),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		log.Error().Err(err).Str("action", action).Str("entityID", entityID).Msg("failed to write audit entry")

		return
	}

	go s.publish(context.WithoutCancel(ctx), entry)
}

func (s *serviceImpl) publish(ctx context.Context, entry model.Entry) {
	if s.cfg.Kafka.AuditTopic == constant.Empty {
		return
	}

	event := dto.AuditEvent{
		ID:         entry.ID,
		ActorID:    entry.ActorID,
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Changes:    json.RawMessage(entry.Changes),
		OccurredAt: entry.CreatedAt.Format(constant.DateFormat),
	}

	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.AuditTopic, kafka.Message{
		Key:   entry.EntityID,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("topic", s.cfg.Kafka.AuditTopic).Msg("failed to publish audit event")
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEntriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count audit entries")

		return res, fmt.Errorf("failed to count audit entries: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get audit entries")

		return res, fmt.Errorf("failed to get audit entries: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count audit entries")

		return res, fmt.Errorf("failed to count audit entries: %w", err)
	}

	return res, nil
}
