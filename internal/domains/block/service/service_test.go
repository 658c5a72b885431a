package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"manege/config"
	"manege/infras/otel/mocks"
	blockMocks "manege/internal/domains/block/mocks"
	"manege/internal/domains/block/model"
	"manege/internal/domains/block/model/dto"
	"manege/internal/domains/block/service"
	resourceMocks "manege/internal/domains/resource/mocks"
	cacheMocks "manege/shared/cache/mocks"
	"manege/shared/constant"
	"manege/shared/failure"
)

func newTestService(t *testing.T) (
	service.Block,
	*blockMocks.MockBlock,
	*resourceMocks.MockResource,
	*cacheMocks.MockRedisCache,
) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := blockMocks.NewMockBlock(ctrl)
	mockResourceRepo := resourceMocks.NewMockResource(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockResourceRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockResourceRepo, mockCache
}

func TestBlockService_Create(t *testing.T) {
	svc, mockRepo, mockResourceRepo, mockCache := newTestService(t)

	req := dto.CreateBlockRequest{
		ResourceID: "resource-id",
		Reason:     "maintenance",
		StartTime:  "2026-09-01T08:00:00Z",
		EndTime:    "2026-09-01T17:00:00Z",
	}

	tests := []struct {
		name      string
		req       dto.CreateBlockRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "block is placed without any overlap check",
			req:  req,
			setupMock: func() {
				mockResourceRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "invalid time span",
			req: dto.CreateBlockRequest{
				ResourceID: "resource-id",
				Reason:     "maintenance",
				StartTime:  "2026-09-01T17:00:00Z",
				EndTime:    "2026-09-01T08:00:00Z",
			},
			setupMock: func() {
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "resource does not exist",
			req:  req,
			setupMock: func() {
				mockResourceRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "insert error",
			req:  req,
			setupMock: func() {
				mockResourceRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestBlockService_Update(t *testing.T) {
	svc, mockRepo, _, mockCache := newTestService(t)

	tests := []struct {
		name      string
		req       dto.UpdateBlockRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update",
			req:  dto.UpdateBlockRequest{Reason: "private event"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Block{ID: "block-id"}, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "empty update request",
			req:  dto.UpdateBlockRequest{},
			setupMock: func() {
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "block not found",
			req:  dto.UpdateBlockRequest{Reason: "private event"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Block{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
			err := svc.Update(ctx, tt.req, "block-id")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestBlockService_Delete(t *testing.T) {
	svc, mockRepo, _, mockCache := newTestService(t)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful deletion",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "block not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "block-id")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}
