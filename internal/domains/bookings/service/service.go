package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/bookmyfield/backend/config"
	"github.com/bookmyfield/backend/internal/domains/bookings/dto"
	"github.com/bookmyfield/backend/internal/domains/bookings/repository"
	"github.com/bookmyfield/backend/internal/domains/bookings/slot"
	fieldsrepo "github.com/bookmyfield/backend/internal/domains/fields/repository"
	userrepo "github.com/bookmyfield/backend/internal/domains/user/repository"
	"github.com/bookmyfield/backend/pkg/constant"
	"github.com/bookmyfield/backend/pkg/failure"
	"github.com/bookmyfield/backend/pkg/gdto"
	"github.com/bookmyfield/backend/pkg/helper"
	"github.com/bookmyfield/backend/pkg/logger"
	"github.com/bookmyfield/backend/pkg/mail"
	"github.com/bookmyfield/backend/pkg/postgres"
	"github.com/bookmyfield/backend/pkg/redis"
	"github.com/jackc/pgx/v5"
)

type BookingService interface {
	CheckAvailability(ctx context.Context, req dto.CheckAvailabilityRequest) (dto.CheckAvailabilityResponse, error)
	BookField(ctx context.Context, customerID, customerEmail string, req dto.BookFieldRequest) (dto.BookingResponse, error)
	BookingHistory(ctx context.Context, customerID string, req gdto.PaginationRequest) (dto.GetBookingHistoryResponse, error)
}

type bookingService struct {
	db        postgres.PgxIface
	repo      repository.Querier
	fieldRepo fieldsrepo.Querier
	userRepo  userrepo.Querier
	cache     redis.IRedisCache
	cfg       *config.Config
	mail      mail.Service
	logger    logger.Interface
}

func New(
	db postgres.PgxIface,
	repo repository.Querier,
	fieldRepo fieldsrepo.Querier,
	userRepo userrepo.Querier,
	cache redis.IRedisCache,
	cfg *config.Config,
	m mail.Service,
	l logger.Interface,
) BookingService {
	return &bookingService{
		db:        db,
		repo:      repo,
		fieldRepo: fieldRepo,
		userRepo:  userRepo,
		cache:     cache,
		cfg:       cfg,
		mail:      m,
		logger:    l,
	}
}

const (
	cacheBookingHistoryKey = "bookings:history"

	identifier = "service - booking - %s"

	decimalBase = 10
)

func candidateFromRequest(duration int, timeSlot string) (slot.Request, error) {
	req := slot.Request{
		Duration: duration,
		TimeSlot: timeSlot,
	}

	if req.FullDay() {
		return req, nil
	}

	if _, err := slot.ParseRange(timeSlot); err != nil {
		return slot.Request{}, failure.BadRequestFromString("time slot must be \"hh:mm AM - hh:mm PM\" or \"Full Day\"")
	}

	return req, nil
}

func toBooked(rows []string) []slot.Booked {
	existing := make([]slot.Booked, len(rows))
	for i, row := range rows {
		existing[i] = slot.Booked{TimeSlot: row}
	}

	return existing
}

func (s *bookingService) logSkipped(op string, skipped []string) {
	for _, raw := range skipped {
		s.logger.Warn(identifier, op+" - skipping malformed stored slot "+strconv.Quote(raw))
	}
}

func (s *bookingService) CheckAvailability(ctx context.Context, req dto.CheckAvailabilityRequest) (res dto.CheckAvailabilityResponse, err error) {
	candidate, err := candidateFromRequest(req.Duration, req.TimeSlot)
	if err != nil {
		s.logger.Error(identifier, "checkAvailability - invalid candidate slot: %w", err)

		return res, err
	}

	rows, err := s.repo.GetBookingsForFieldDate(ctx, s.db, repository.GetBookingsForFieldDateParams{
		FieldID:     helper.PgUUID(req.FieldID),
		BookingDate: helper.PgDate(req.BookingDate),
	})
	if err != nil {
		s.logger.Error(identifier, "checkAvailability - failed to get bookings: %w", err)

		return res, failure.InternalError(err)
	}

	result := slot.Evaluate(candidate, toBooked(rows))
	s.logSkipped("checkAvailability", result.Skipped)

	if !result.Available {
		return dto.CheckAvailabilityResponse{
			Available: false,
			Message:   fmt.Sprintf("slot conflicts with existing booking %s", result.ConflictsWith),
		}, nil
	}

	return dto.CheckAvailabilityResponse{
		Available: true,
		Message:   "slot is available",
	}, nil
}

func (s *bookingService) BookField(ctx context.Context, customerID, customerEmail string, req dto.BookFieldRequest) (res dto.BookingResponse, err error) {
	candidate, err := candidateFromRequest(req.Duration, req.TimeSlot)
	if err != nil {
		s.logger.Error(identifier, "bookField - invalid candidate slot: %w", err)

		return res, err
	}

	timeSlot := req.TimeSlot
	if candidate.FullDay() {
		timeSlot = constant.TimeSlotFullDay
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error(identifier, "bookField - failed to begin transaction: %w", err)

		return res, failure.InternalError(err)
	}
	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error(identifier, "bookField - failed to rollback transaction: %w", err)
		}
	}(tx, ctx)

	// Serializes concurrent bookings on the same (field, date). The lock is
	// released at commit or rollback.
	err = s.repo.LockFieldDate(ctx, tx, repository.LockFieldDateParams{
		FieldID:     helper.PgUUID(req.FieldID),
		BookingDate: helper.PgDate(req.BookingDate),
	})
	if err != nil {
		s.logger.Error(identifier, "bookField - failed to acquire lock: %w", err)

		return res, failure.InternalError(err)
	}

	field, err := s.fieldRepo.GetFieldById(ctx, tx, helper.PgUUID(req.FieldID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = failure.NotFound(fmt.Sprintf("field %s - not found", req.FieldID))
			s.logger.Error(identifier, "bookField - field not found: %w", err)

			return res, err
		}

		s.logger.Error(identifier, "bookField - failed to get field: %w", err)

		return res, failure.InternalError(err)
	}

	rows, err := s.repo.GetBookingsForFieldDate(ctx, tx, repository.GetBookingsForFieldDateParams{
		FieldID:     helper.PgUUID(req.FieldID),
		BookingDate: helper.PgDate(req.BookingDate),
	})
	if err != nil {
		s.logger.Error(identifier, "bookField - failed to get bookings: %w", err)

		return res, failure.InternalError(err)
	}

	result := slot.Evaluate(candidate, toBooked(rows))
	s.logSkipped("bookField", result.Skipped)

	if !result.Available {
		s.logger.Error(identifier, "bookField - slot conflict with "+result.ConflictsWith)

		return res, failure.Conflict(fmt.Sprintf("slot conflicts with existing booking %s", result.ConflictsWith))
	}

	booking, err := s.repo.InsertBooking(ctx, tx, repository.InsertBookingParams{
		FieldID:     helper.PgUUID(req.FieldID),
		CustomerID:  helper.PgUUID(customerID),
		BookingDate: helper.PgDate(req.BookingDate),
		TimeSlot:    timeSlot,
		Duration:    int32(req.Duration),
		Price:       helper.PgInt64(req.Price),
	})
	if err != nil {
		s.logger.Error(identifier, "bookField - failed to insert booking: %w", err)

		return res, failure.InternalError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error(identifier, "bookField - failed to commit transaction: %w", err)

		return res, failure.InternalError(err)
	}

	go s.sendConfirmation(context.WithoutCancel(ctx), customerEmail, field.Name, booking)

	go func() {
		cacheErr := s.cache.Clear(context.WithoutCancel(ctx), helper.BuildCacheKey(cacheBookingHistoryKey, customerID+":*"))
		if cacheErr != nil {
			s.logger.Error(identifier, "bookField - failed to clear history cache: %w", cacheErr)
		}
	}()

	return res.FromModel(booking), nil
}

func (s *bookingService) sendConfirmation(ctx context.Context, email, fieldName string, booking repository.Booking) {
	customerName := email

	user, err := s.userRepo.GetUserByEmail(ctx, s.db, email)
	if err == nil {
		customerName = user.FullName
	}

	mailErr := s.mail.SendBookingConfirmationEmail(email, mail.BookingConfirmationData{
		CustomerName: customerName,
		FieldName:    fieldName,
		BookingDate:  helper.DateFromPg(booking.BookingDate),
		TimeSlot:     booking.TimeSlot,
		Price:        strconv.FormatInt(helper.Int64FromPg(booking.Price), decimalBase),
	})
	if mailErr != nil {
		s.logger.Error(identifier, "bookField - failed to send confirmation email: %w", mailErr)
	}
}

func (s *bookingService) BookingHistory(ctx context.Context, customerID string, req gdto.PaginationRequest) (res dto.GetBookingHistoryResponse, err error) {
	page, limit := helper.DefaultPagination(req.Page, req.Limit)

	keyArgs := map[string]string{
		"page":  strconv.Itoa(page),
		"limit": strconv.Itoa(limit),
	}
	cacheKey := helper.BuildCacheKey(cacheBookingHistoryKey, customerID+":"+helper.GenerateUniqueKey(keyArgs))

	var cacheRes dto.GetBookingHistoryResponse

	err = s.cache.Get(ctx, cacheKey, &cacheRes)
	if err == nil {
		s.logger.Info(identifier, "bookingHistory - cache hit for customer %s", customerID)

		return cacheRes, nil
	}

	rows, err := s.repo.GetBookingsByCustomer(ctx, s.db, repository.GetBookingsByCustomerParams{
		CustomerID: helper.PgUUID(customerID),
		Limit:      int32(limit),
		Offset:     int32(helper.CalculateOffset(page, limit)),
	})
	if err != nil {
		s.logger.Error(identifier, "bookingHistory - failed to get bookings: %w", err)

		return res, failure.InternalError(err)
	}

	total, err := s.repo.CountBookingsByCustomer(ctx, s.db, helper.PgUUID(customerID))
	if err != nil {
		s.logger.Error(identifier, "bookingHistory - failed to count bookings: %w", err)

		return res, failure.InternalError(err)
	}

	res.FromModel(rows, int(total), limit)

	go func() {
		cacheErr := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration)
		if cacheErr != nil {
			s.logger.Error(identifier, "bookingHistory - failed to save cache: %w", cacheErr)
		}
	}()

	return res, nil
}
