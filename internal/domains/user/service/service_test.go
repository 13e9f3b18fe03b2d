package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/bookmyfield/backend/config"
	"github.com/bookmyfield/backend/internal/domains/user/dto"
	"github.com/bookmyfield/backend/internal/domains/user/mock"
	"github.com/bookmyfield/backend/internal/domains/user/repository"
	"github.com/bookmyfield/backend/pkg/failure"
	log "github.com/bookmyfield/backend/pkg/logger/mock"
	redis "github.com/bookmyfield/backend/pkg/redis/mock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestUserService_Profile(t *testing.T) {
	ctx := context.Background()
	mockError := errors.New("error")
	cfg := &config.Config{}
	cfg.Cache.Duration = 60

	mockID := uuid.New()
	mockUser := repository.User{
		ID:           pgtype.UUID{Bytes: mockID, Valid: true},
		Username:     "testuser1",
		Email:        "test@gmail.com",
		MobileNumber: "9876543210",
		FullName:     "Test User",
		Role:         "Customer",
		CreatedAt:    pgtype.Timestamp{Time: time.Now(), Valid: true},
	}

	t.Run("success: cache hit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockCache := redis.NewMockIRedisCache(ctrl)
		mockLogger := log.NewMockInterface(ctrl)
		service := New(mockPgx, mockQuerier, mockCache, cfg, mockLogger)

		mockCache.EXPECT().
			Get(gomock.Any(), "cache:get_user:test@gmail.com", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res := value.(*dto.UserProfileResponse)
				res.Email = "test@gmail.com"
				res.Username = "testuser1"

				return nil
			})

		mockLogger.EXPECT().Info(gomock.Any(), gomock.Any())

		res, err := service.Profile(ctx, "test@gmail.com")

		assert.NoError(t, err)
		assert.Equal(t, "test@gmail.com", res.Email)
		assert.Equal(t, "testuser1", res.Username)
	})

	t.Run("error: user not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockCache := redis.NewMockIRedisCache(ctrl)
		mockLogger := log.NewMockInterface(ctrl)
		service := New(mockPgx, mockQuerier, mockCache, cfg, mockLogger)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockError)

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(repository.User{}, pgx.ErrNoRows)

		mockLogger.EXPECT().Error(gomock.Any())

		_, err := service.Profile(ctx, "test@gmail.com")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("error: failure getting user by email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockCache := redis.NewMockIRedisCache(ctrl)
		mockLogger := log.NewMockInterface(ctrl)
		service := New(mockPgx, mockQuerier, mockCache, cfg, mockLogger)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockError)

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(repository.User{}, mockError)

		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		_, err := service.Profile(ctx, "test@gmail.com")

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("success: cache miss falls back to database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockCache := redis.NewMockIRedisCache(ctrl)
		mockLogger := log.NewMockInterface(ctrl)
		service := New(mockPgx, mockQuerier, mockCache, cfg, mockLogger)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockError)

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(mockUser, nil)

		// The cache save runs in a goroutine
		mockCache.EXPECT().
			Save(gomock.Any(), "cache:get_user:test@gmail.com", gomock.Any(), cfg.Cache.Duration).
			Return(nil).
			AnyTimes()

		res, err := service.Profile(ctx, "test@gmail.com")

		assert.NoError(t, err)
		assert.Equal(t, "test@gmail.com", res.Email)
		assert.Equal(t, "Test User", res.FullName)
		assert.Equal(t, "Customer", res.Role)
	})
}
