package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"manege/config"
	"manege/infras/otel/mocks"
	s3Mocks "manege/infras/s3/mocks"
	photoMocks "manege/internal/domains/photo/mocks"
	"manege/internal/domains/photo/model"
	"manege/internal/domains/photo/model/dto"
	"manege/internal/domains/photo/service"
	resourceMocks "manege/internal/domains/resource/mocks"
	cacheMocks "manege/shared/cache/mocks"
	"manege/shared/constant"
	"manege/shared/failure"
)

func newTestService(t *testing.T) (
	service.Photo,
	*photoMocks.MockPhoto,
	*resourceMocks.MockResource,
	*s3Mocks.MockS3,
	*cacheMocks.MockRedisCache,
) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := photoMocks.NewMockPhoto(ctrl)
	mockResourceRepo := resourceMocks.NewMockResource(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "manege-photos"

	svc := service.New(mockRepo, mockResourceRepo, cfg, mockCache, mockOtel, mockS3)

	return svc, mockRepo, mockResourceRepo, mockS3, mockCache
}

func TestPhotoService_Create(t *testing.T) {
	svc, mockRepo, mockResourceRepo, mockS3, mockCache := newTestService(t)

	req := dto.CreatePhotoRequest{
		ResourceID: "resource-id",
		Title:      "Rijhal Binnen",
		Image:      &multipart.FileHeader{Filename: "rijhal.jpg"},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful upload",
			setupMock: func() {
				mockResourceRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockS3.EXPECT().
					UploadFile(gomock.Any(), "manege-photos", model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/photo/abc.jpg", nil)

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
			name: "resource does not exist",
			setupMock: func() {
				mockResourceRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "upload error",
			setupMock: func() {
				mockResourceRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockS3.EXPECT().
					UploadFile(gomock.Any(), "manege-photos", model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("upload failed"))
			},
			wantErr: true,
		},
		{
			name: "insert failure removes the uploaded file",
			setupMock: func() {
				mockResourceRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockS3.EXPECT().
					UploadFile(gomock.Any(), "manege-photos", model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/photo/abc.jpg", nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))

				mockS3.EXPECT().
					DeleteFile(gomock.Any(), "manege-photos", model.EntityName, gomock.Any()).
					Return(nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
			err := svc.Create(ctx, req)

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

func TestPhotoService_Delete(t *testing.T) {
	svc, mockRepo, _, mockS3, mockCache := newTestService(t)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful deletion removes the stored file",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Photo{ID: "photo-id", URL: "https://cdn.example.com/photo/abc.jpg"}, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockS3.EXPECT().
					GetObjectNameFromURL("manege-photos", "https://cdn.example.com/photo/abc.jpg").
					Return("abc.jpg")

				mockS3.EXPECT().
					DeleteFile(gomock.Any(), "manege-photos", model.EntityName, "abc.jpg").
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "photo not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Photo{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "photo-id")

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
