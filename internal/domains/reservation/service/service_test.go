package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"manege/config"
	"manege/infras/otel/mocks"
	auditMocks "manege/internal/domains/audit/mocks"
	availabilityMocks "manege/internal/domains/availability/mocks"
	availabilityDto "manege/internal/domains/availability/model/dto"
	reservationMocks "manege/internal/domains/reservation/mocks"
	"manege/internal/domains/reservation/model"
	"manege/internal/domains/reservation/model/dto"
	"manege/internal/domains/reservation/service"
	resourceMocks "manege/internal/domains/resource/mocks"
	resourceModel "manege/internal/domains/resource/model"
	cacheMocks "manege/shared/cache/mocks"
	"manege/shared/constant"
	gDto "manege/shared/dto"
	"manege/shared/failure"
	gModel "manege/shared/model"
	"manege/shared/timezone"
)

func newTestService(t *testing.T) (
	service.Reservation,
	*reservationMocks.MockReservation,
	*resourceMocks.MockResource,
	*availabilityMocks.MockChecker,
	*auditMocks.MockRecorder,
	*cacheMocks.MockRedisCache,
) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockResourceRepo := resourceMocks.NewMockResource(ctrl)
	mockChecker := availabilityMocks.NewMockChecker(ctrl)
	mockAudit := auditMocks.NewMockRecorder(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockResourceRepo, mockChecker, mockAudit, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockResourceRepo, mockChecker, mockAudit, mockCache
}

func memberContext(userID string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleMember)
}

func adminContext(userID string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)
}

func activeResource(id string) resourceModel.Resource {
	return resourceModel.Resource{
		ID:     id,
		Name:   "Rijhal Binnen",
		Code:   "rijhal-binnen",
		Active: true,
	}
}

func noConflictVerdict() availabilityDto.CheckOverlapsResponse {
	return availabilityDto.CheckOverlapsResponse{
		HasConflict:             false,
		ConflictingReservations: []availabilityDto.ConflictingReservation{},
		ConflictingBlocks:       []availabilityDto.ConflictingBlock{},
	}
}

func TestReservationService_Create(t *testing.T) {
	svc, mockRepo, mockResourceRepo, mockChecker, mockAudit, mockCache := newTestService(t)

	req := dto.CreateReservationRequest{
		ResourceID: "resource-id",
		RiderName:  "Sanne de Vries",
		RiderEmail: "sanne@example.com",
		StartTime:  "2026-09-01T09:00:00Z",
		EndTime:    "2026-09-01T10:00:00Z",
		Purpose:    "dressage training",
	}

	tests := []struct {
		name      string
		req       dto.CreateReservationRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  req,
			setupMock: func() {
				mockResourceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeResource("resource-id"), nil)

				mockChecker.EXPECT().
					CheckOverlaps(gomock.Any(), gomock.Any()).
					Return(noConflictVerdict(), nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockAudit.EXPECT().
					Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "invalid time span",
			req: dto.CreateReservationRequest{
				ResourceID: "resource-id",
				RiderName:  "Sanne de Vries",
				StartTime:  "2026-09-01T10:00:00Z",
				EndTime:    "2026-09-01T09:00:00Z",
			},
			setupMock: func() {
				// Rejected before any store is consulted.
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "resource does not exist",
			req:  req,
			setupMock: func() {
				mockResourceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(resourceModel.Resource{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "resource is not active",
			req:  req,
			setupMock: func() {
				resource := activeResource("resource-id")
				resource.Active = false

				mockResourceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(resource, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "advisory check finds a conflict",
			req:  req,
			setupMock: func() {
				mockResourceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeResource("resource-id"), nil)

				verdict := noConflictVerdict()
				verdict.HasConflict = true
				verdict.ConflictingReservations = []availabilityDto.ConflictingReservation{{ID: "other-id"}}

				mockChecker.EXPECT().
					CheckOverlaps(gomock.Any(), gomock.Any()).
					Return(verdict, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "lost race maps exclusion violation to conflict",
			req:  req,
			setupMock: func() {
				mockResourceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeResource("resource-id"), nil)

				mockChecker.EXPECT().
					CheckOverlaps(gomock.Any(), gomock.Any()).
					Return(noConflictVerdict(), nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeExclusionViolation)})
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "insert error",
			req:  req,
			setupMock: func() {
				mockResourceRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeResource("resource-id"), nil)

				mockChecker.EXPECT().
					CheckOverlaps(gomock.Any(), gomock.Any()).
					Return(noConflictVerdict(), nil)

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

			res, err := svc.Create(memberContext("rider-id"), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.req.ResourceID, res.ResourceID)
			assert.Equal(t, string(model.StatusPending), res.Status)
		})
	}
}

func TestReservationService_Update(t *testing.T) {
	svc, mockRepo, _, mockChecker, mockAudit, mockCache := newTestService(t)

	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	current := model.Reservation{
		ID:         "reservation-id",
		ResourceID: "resource-id",
		RiderName:  "Sanne de Vries",
		StartTime:  start,
		EndTime:    end,
		Status:     string(model.StatusPending),
		Metadata: gModel.Metadata{
			CreatedBy: "rider-id",
		},
	}

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.UpdateReservationRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "empty update request",
			ctx:  memberContext("rider-id"),
			req:  dto.UpdateReservationRequest{},
			setupMock: func() {
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "update rider details without reschedule",
			ctx:  memberContext("rider-id"),
			req:  dto.UpdateReservationRequest{Purpose: "jumping practice"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockAudit.EXPECT().
					Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

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
			name: "reschedule re-checks the slot excluding itself",
			ctx:  memberContext("rider-id"),
			req:  dto.UpdateReservationRequest{StartTime: "2026-09-01T11:00:00Z", EndTime: "2026-09-01T12:00:00Z"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)

				mockChecker.EXPECT().
					CheckOverlaps(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req availabilityDto.CheckOverlapsRequest) (availabilityDto.CheckOverlapsResponse, error) {
						assert.Equal(t, current.ID, req.ExcludeID)

						return noConflictVerdict(), nil
					})

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockAudit.EXPECT().
					Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

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
			name: "reschedule into an occupied slot",
			ctx:  memberContext("rider-id"),
			req:  dto.UpdateReservationRequest{StartTime: "2026-09-01T11:00:00Z", EndTime: "2026-09-01T12:00:00Z"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)

				verdict := noConflictVerdict()
				verdict.HasConflict = true

				mockChecker.EXPECT().
					CheckOverlaps(gomock.Any(), gomock.Any()).
					Return(verdict, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "reschedule loses the race",
			ctx:  memberContext("rider-id"),
			req:  dto.UpdateReservationRequest{StartTime: "2026-09-01T11:00:00Z", EndTime: "2026-09-01T12:00:00Z"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)

				mockChecker.EXPECT().
					CheckOverlaps(gomock.Any(), gomock.Any()).
					Return(noConflictVerdict(), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeExclusionViolation)})
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "cancelled reservation cannot be modified",
			ctx:  memberContext("rider-id"),
			req:  dto.UpdateReservationRequest{Purpose: "jumping practice"},
			setupMock: func() {
				cancelled := current
				cancelled.Status = string(model.StatusCancelled)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "member cannot touch another rider's reservation",
			ctx:  memberContext("other-rider"),
			req:  dto.UpdateReservationRequest{Purpose: "jumping practice"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "reservation not found",
			ctx:  memberContext("rider-id"),
			req:  dto.UpdateReservationRequest{Purpose: "jumping practice"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(tt.ctx, tt.req, "reservation-id")

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

func TestReservationService_Confirm(t *testing.T) {
	svc, mockRepo, _, _, mockAudit, mockCache := newTestService(t)

	pending := model.Reservation{
		ID:         "reservation-id",
		ResourceID: "resource-id",
		Status:     string(model.StatusPending),
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "pending reservation is confirmed",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockAudit.EXPECT().
					Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

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
			name: "confirmed reservation cannot be confirmed again",
			setupMock: func() {
				confirmed := pending
				confirmed.Status = string(model.StatusConfirmed)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmed, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "cancelled reservation cannot be confirmed",
			setupMock: func() {
				cancelled := pending
				cancelled.Status = string(model.StatusCancelled)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "reservation not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Confirm(adminContext("admin-id"), "reservation-id")

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

func TestReservationService_Cancel(t *testing.T) {
	svc, mockRepo, _, _, mockAudit, mockCache := newTestService(t)

	confirmed := model.Reservation{
		ID:         "reservation-id",
		ResourceID: "resource-id",
		Status:     string(model.StatusConfirmed),
		Metadata: gModel.Metadata{
			CreatedBy: "rider-id",
		},
	}

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "rider cancels their own reservation",
			ctx:  memberContext("rider-id"),
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmed, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, string(model.StatusCancelled), fields[model.FieldStatus])
						assert.NotNil(t, fields[model.FieldCancelledAt])

						return nil
					})

				mockAudit.EXPECT().
					Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

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
			name: "admin cancels any reservation",
			ctx:  adminContext("admin-id"),
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmed, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockAudit.EXPECT().
					Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

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
			name: "member cannot cancel another rider's reservation",
			ctx:  memberContext("other-rider"),
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmed, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "cancelled is terminal",
			ctx:  memberContext("rider-id"),
			setupMock: func() {
				cancelled := confirmed
				cancelled.Status = string(model.StatusCancelled)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Cancel(tt.ctx, dto.CancelReservationRequest{Reason: "horse is injured"}, "reservation-id")

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

func TestReservationService_GetMine(t *testing.T) {
	svc, mockRepo, _, _, _, mockCache := newTestService(t)

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "missing user identity",
			ctx:  context.Background(),
			setupMock: func() {
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "rider's reservations are filtered by creator",
			ctx:  memberContext("rider-id"),
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Reservation, error) {
						assert.Len(t, filter.Filters, 1)

						reservations := []model.Reservation{
							{
								ID:        "reservation-id",
								StartTime: timezone.Now(),
								EndTime:   timezone.Now().Add(time.Hour),
								Status:    string(model.StatusPending),
								Metadata: gModel.Metadata{
									CreatedBy: "rider-id",
								},
							},
						}

						return reservations, nil
					})

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetMine(tt.ctx, gDto.QueryParams{Limit: 10, Page: 1})

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, 1, res.TotalData)
		})
	}
}
