package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/bookmyfield/backend/config"
	"github.com/bookmyfield/backend/internal/domains/bookings/dto"
	"github.com/bookmyfield/backend/internal/domains/bookings/mock"
	"github.com/bookmyfield/backend/internal/domains/bookings/repository"
	fieldsmock "github.com/bookmyfield/backend/internal/domains/fields/mock"
	fieldsrepo "github.com/bookmyfield/backend/internal/domains/fields/repository"
	usermock "github.com/bookmyfield/backend/internal/domains/user/mock"
	userrepo "github.com/bookmyfield/backend/internal/domains/user/repository"
	"github.com/bookmyfield/backend/pkg/constant"
	"github.com/bookmyfield/backend/pkg/failure"
	"github.com/bookmyfield/backend/pkg/gdto"
	"github.com/bookmyfield/backend/pkg/helper"
	log "github.com/bookmyfield/backend/pkg/logger/mock"
	mail "github.com/bookmyfield/backend/pkg/mail/mock"
	redis "github.com/bookmyfield/backend/pkg/redis/mock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type bookingMocks struct {
	pgx       pgxmock.PgxPoolIface
	repo      *mock.MockQuerier
	fieldRepo *fieldsmock.MockQuerier
	userRepo  *usermock.MockQuerier
	cache     *redis.MockIRedisCache
	mail      *mail.MockService
	logger    *log.MockInterface
}

func newBookingService(ctrl *gomock.Controller) (BookingService, bookingMocks) {
	cfg := &config.Config{}
	cfg.Cache.Duration = 60

	m := bookingMocks{
		repo:      mock.NewMockQuerier(ctrl),
		fieldRepo: fieldsmock.NewMockQuerier(ctrl),
		userRepo:  usermock.NewMockQuerier(ctrl),
		cache:     redis.NewMockIRedisCache(ctrl),
		mail:      mail.NewMockService(ctrl),
		logger:    log.NewMockInterface(ctrl),
	}
	m.pgx, _ = pgxmock.NewPool()

	service := New(m.pgx, m.repo, m.fieldRepo, m.userRepo, m.cache, cfg, m.mail, m.logger)

	return service, m
}

func TestBookingService_CheckAvailability(t *testing.T) {
	ctx := context.Background()
	mockError := errors.New("error")

	fieldID := uuid.New().String()
	req := dto.CheckAvailabilityRequest{
		FieldID:     fieldID,
		BookingDate: "2026-09-15",
		Duration:    1,
		TimeSlot:    "10:00 AM - 11:00 AM",
	}

	t.Run("error: malformed time slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newBookingService(ctrl)

		m.logger.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any())

		badReq := req
		badReq.TimeSlot = "morning"

		_, err := service.CheckAvailability(ctx, badReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: failure getting bookings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newBookingService(ctrl)

		m.repo.EXPECT().
			GetBookingsForFieldDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, mockError)

		m.logger.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any())

		_, err := service.CheckAvailability(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("success: overlapping slot reported unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newBookingService(ctrl)

		m.repo.EXPECT().
			GetBookingsForFieldDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]string{"10:30 AM - 11:30 AM"}, nil)

		res, err := service.CheckAvailability(ctx, req)

		assert.NoError(t, err)
		assert.False(t, res.Available)
		assert.Contains(t, res.Message, "10:30 AM - 11:30 AM")
	})

	t.Run("success: full day booking blocks every slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newBookingService(ctrl)

		m.repo.EXPECT().
			GetBookingsForFieldDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]string{constant.TimeSlotFullDay}, nil)

		res, err := service.CheckAvailability(ctx, req)

		assert.NoError(t, err)
		assert.False(t, res.Available)
	})

	t.Run("success: malformed stored slot is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newBookingService(ctrl)

		m.repo.EXPECT().
			GetBookingsForFieldDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]string{"not a slot", "08:00 AM - 09:00 AM"}, nil)

		m.logger.EXPECT().Warn(gomock.Any(), gomock.Any())

		res, err := service.CheckAvailability(ctx, req)

		assert.NoError(t, err)
		assert.True(t, res.Available)
	})

	t.Run("success: slot is available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newBookingService(ctrl)

		m.repo.EXPECT().
			GetBookingsForFieldDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]string{"08:00 AM - 09:00 AM"}, nil)

		res, err := service.CheckAvailability(ctx, req)

		assert.NoError(t, err)
		assert.True(t, res.Available)
	})
}

func TestBookingService_BookField(t *testing.T) {
	ctx := context.Background()
	mockError := errors.New("error")

	fieldID := uuid.New().String()
	customerID := uuid.New().String()
	customerEmail := "customer@gmail.com"

	req := dto.BookFieldRequest{
		FieldID:     fieldID,
		BookingDate: "2026-09-15",
		Duration:    1,
		TimeSlot:    "10:00 AM - 11:00 AM",
		Price:       500,
	}

	mockField := fieldsrepo.Field{
		ID:             helper.PgUUID(fieldID),
		Name:           "Greenfield Turf",
		Location:       "Pune",
		ApprovalStatus: "Approved",
	}

	mockBooking := repository.Booking{
		ID:            pgtype.UUID{Bytes: uuid.New(), Valid: true},
		FieldID:       helper.PgUUID(fieldID),
		CustomerID:    helper.PgUUID(customerID),
		BookingDate:   helper.PgDate("2026-09-15"),
		TimeSlot:      "10:00 AM - 11:00 AM",
		Duration:      1,
		Price:         helper.PgInt64(500),
		BookingStatus: "Confirmed",
		PaymentStatus: "Completed",
		CreatedAt:     pgtype.Timestamp{Time: time.Now(), Valid: true},
	}

	t.Run("error: malformed time slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newBookingService(ctrl)

		m.logger.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any())

		badReq := req
		badReq.TimeSlot = "sometime"

		_, err := service.BookField(ctx, customerID, customerEmail, badReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: transaction begin failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newBookingService(ctrl)

		m.pgx.ExpectBegin().WillReturnError(mockError)

		m.logger.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any())

		_, err := service.BookField(ctx, customerID, customerEmail, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("error: lock acquisition failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newBookingService(ctrl)

		m.pgx.ExpectBegin()
		m.pgx.ExpectRollback()

		m.repo.EXPECT().
			LockFieldDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockError)

		m.logger.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any())

		_, err := service.BookField(ctx, customerID, customerEmail, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("error: field not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newBookingService(ctrl)

		m.pgx.ExpectBegin()
		m.pgx.ExpectRollback()

		m.repo.EXPECT().
			LockFieldDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		m.fieldRepo.EXPECT().
			GetFieldById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(fieldsrepo.Field{}, pgx.ErrNoRows)

		m.logger.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any())

		_, err := service.BookField(ctx, customerID, customerEmail, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("error: slot already booked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newBookingService(ctrl)

		m.pgx.ExpectBegin()
		m.pgx.ExpectRollback()

		m.repo.EXPECT().
			LockFieldDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		m.fieldRepo.EXPECT().
			GetFieldById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockField, nil)

		m.repo.EXPECT().
			GetBookingsForFieldDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]string{"10:00 AM - 11:00 AM"}, nil)

		m.logger.EXPECT().Error(gomock.Any(), gomock.Any())

		_, err := service.BookField(ctx, customerID, customerEmail, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("error: full day taken by existing booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newBookingService(ctrl)

		m.pgx.ExpectBegin()
		m.pgx.ExpectRollback()

		m.repo.EXPECT().
			LockFieldDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		m.fieldRepo.EXPECT().
			GetFieldById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockField, nil)

		m.repo.EXPECT().
			GetBookingsForFieldDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]string{"02:00 PM - 03:00 PM"}, nil)

		m.logger.EXPECT().Error(gomock.Any(), gomock.Any())

		fullDayReq := req
		fullDayReq.TimeSlot = constant.TimeSlotFullDay

		_, err := service.BookField(ctx, customerID, customerEmail, fullDayReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("error: failure inserting booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newBookingService(ctrl)

		m.pgx.ExpectBegin()
		m.pgx.ExpectRollback()

		m.repo.EXPECT().
			LockFieldDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		m.fieldRepo.EXPECT().
			GetFieldById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockField, nil)

		m.repo.EXPECT().
			GetBookingsForFieldDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]string{}, nil)

		m.repo.EXPECT().
			InsertBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.Booking{}, mockError)

		m.logger.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any())

		_, err := service.BookField(ctx, customerID, customerEmail, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("error: transaction commit failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newBookingService(ctrl)

		m.pgx.ExpectBegin()
		m.pgx.ExpectRollback()

		m.repo.EXPECT().
			LockFieldDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		m.fieldRepo.EXPECT().
			GetFieldById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockField, nil)

		m.repo.EXPECT().
			GetBookingsForFieldDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]string{}, nil)

		m.repo.EXPECT().
			InsertBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockBooking, nil)

		m.pgx.ExpectCommit().WillReturnError(mockError)

		m.logger.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any())

		_, err := service.BookField(ctx, customerID, customerEmail, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("success: booking confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newBookingService(ctrl)

		m.pgx.ExpectBegin()

		m.repo.EXPECT().
			LockFieldDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		m.fieldRepo.EXPECT().
			GetFieldById(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockField, nil)

		m.repo.EXPECT().
			GetBookingsForFieldDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]string{"08:00 AM - 09:00 AM"}, nil)

		m.repo.EXPECT().
			InsertBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockBooking, nil)

		m.pgx.ExpectCommit()
		m.pgx.ExpectRollback() // For the deferred rollback function

		// Confirmation email and cache invalidation run in goroutines
		m.userRepo.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), customerEmail).
			Return(fixtureUser(customerEmail), nil).
			AnyTimes()
		m.mail.EXPECT().
			SendBookingConfirmationEmail(customerEmail, gomock.Any()).
			Return(nil).
			AnyTimes()
		m.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := service.BookField(ctx, customerID, customerEmail, req)

		assert.NoError(t, err)
		assert.Equal(t, "10:00 AM - 11:00 AM", res.TimeSlot)
		assert.Equal(t, "Confirmed", res.BookingStatus)
		assert.Equal(t, "Completed", res.PaymentStatus)
	})
}

func TestBookingService_BookingHistory(t *testing.T) {
	ctx := context.Background()
	mockError := errors.New("error")

	customerID := uuid.New().String()
	req := gdto.PaginationRequest{Page: 1, Limit: 10}

	mockRows := []repository.GetBookingsByCustomerRow{
		{
			ID:            pgtype.UUID{Bytes: uuid.New(), Valid: true},
			FieldName:     "Greenfield Turf",
			Location:      "Pune",
			BookingDate:   helper.PgDate("2026-09-15"),
			TimeSlot:      "10:00 AM - 11:00 AM",
			Duration:      1,
			Price:         helper.PgInt64(500),
			BookingStatus: "Confirmed",
			PaymentStatus: "Completed",
		},
	}

	t.Run("success: cache hit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newBookingService(ctrl)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res := value.(*dto.GetBookingHistoryResponse)
				res.TotalItems = 1
				res.Bookings = []dto.BookingHistoryItem{{FieldName: "Greenfield Turf"}}

				return nil
			})

		m.logger.EXPECT().Info(gomock.Any(), gomock.Any(), gomock.Any())

		res, err := service.BookingHistory(ctx, customerID, req)

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalItems)
		assert.Len(t, res.Bookings, 1)
	})

	t.Run("error: failure getting bookings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newBookingService(ctrl)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockError)

		m.repo.EXPECT().
			GetBookingsByCustomer(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, mockError)

		m.logger.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any())

		_, err := service.BookingHistory(ctx, customerID, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("error: failure counting bookings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newBookingService(ctrl)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockError)

		m.repo.EXPECT().
			GetBookingsByCustomer(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockRows, nil)

		m.repo.EXPECT().
			CountBookingsByCustomer(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), mockError)

		m.logger.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any())

		_, err := service.BookingHistory(ctx, customerID, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("success: history fetched from database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newBookingService(ctrl)

		m.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockError)

		m.repo.EXPECT().
			GetBookingsByCustomer(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockRows, nil)

		m.repo.EXPECT().
			CountBookingsByCustomer(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(1), nil)

		// The cache save runs in a goroutine
		m.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := service.BookingHistory(ctx, customerID, req)

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalItems)
		assert.Len(t, res.Bookings, 1)
		assert.Equal(t, "Greenfield Turf", res.Bookings[0].FieldName)
	})
}

func fixtureUser(email string) userrepo.User {
	return userrepo.User{
		ID:       pgtype.UUID{Bytes: uuid.New(), Valid: true},
		Email:    email,
		FullName: "Test Customer",
		Role:     "Customer",
	}
}
