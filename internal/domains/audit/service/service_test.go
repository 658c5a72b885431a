package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"manege/config"
	"manege/infras/kafka"
	kafkaMocks "manege/infras/kafka/mocks"
	"manege/infras/otel/mocks"
	auditMocks "manege/internal/domains/audit/mocks"
	"manege/internal/domains/audit/model"
	"manege/internal/domains/audit/service"
	"manege/shared/constant"
	gDto "manege/shared/dto"
)

func newTestService(t *testing.T, cfg *config.Config) (
	service.Recorder,
	*auditMocks.MockAudit,
	*kafkaMocks.MockClient,
) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := auditMocks.NewMockAudit(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, cfg, mockKafka, mockOtel)

	return svc, mockRepo, mockKafka
}

func TestAuditService_Record(t *testing.T) {
	t.Run("entry is written with the acting user", func(t *testing.T) {
		svc, mockRepo, _ := newTestService(t, &config.Config{})

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry model.Entry) error {
				assert.Equal(t, "actor-id", entry.ActorID)
				assert.Equal(t, "reservation.created", entry.Action)
				assert.Equal(t, "reservation", entry.EntityType)
				assert.Equal(t, "reservation-id", entry.EntityID)
				assert.JSONEq(t, `{"status":"pending"}`, entry.Changes)

				return nil
			})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "actor-id")
		svc.Record(ctx, "reservation.created", "reservation", "reservation-id", map[string]string{"status": "pending"})
	})

	t.Run("write failure never reaches the caller", func(t *testing.T) {
		svc, mockRepo, _ := newTestService(t, &config.Config{})

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		svc.Record(context.Background(), "reservation.created", "reservation", "reservation-id", nil)
	})

	t.Run("entry is published when a topic is configured", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Kafka.AuditTopic = "manege.audit"

		svc, mockRepo, mockKafka := newTestService(t, cfg)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		published := make(chan struct{})

		mockKafka.EXPECT().
			SendMessages(gomock.Any(), "manege.audit", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ ...kafka.Message) error {
				close(published)

				return nil
			})

		svc.Record(context.Background(), "reservation.cancelled", "reservation", "reservation-id", nil)

		select {
		case <-published:
		case <-time.After(time.Second):
			t.Fatal("audit event was not published")
		}
	})
}

func TestAuditService_GetAll(t *testing.T) {
	svc, mockRepo, _ := newTestService(t, &config.Config{})

	entries := []model.Entry{
		{ID: "entry-id", Action: "reservation.created", EntityType: "reservation", EntityID: "reservation-id", Changes: "{}"},
	}

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(entries, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Entries, 1)
	assert.Equal(t, "reservation.created", res.Entries[0].Action)
}
