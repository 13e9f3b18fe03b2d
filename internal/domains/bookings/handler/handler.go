package handler

import (
	"github.com/bookmyfield/backend/internal/delivery/http/middleware"
	"github.com/bookmyfield/backend/internal/delivery/http/response"
	"github.com/bookmyfield/backend/internal/domains/bookings/dto"
	"github.com/bookmyfield/backend/internal/domains/bookings/service"
	"github.com/bookmyfield/backend/pkg/constant"
	"github.com/bookmyfield/backend/pkg/failure"
	"github.com/bookmyfield/backend/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service   service.BookingService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.BookingService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	customer := r.Group("/customer", middleware.Jwt(), middleware.CheckRole(constant.RoleCustomer))

	customer.Post("/check-availability", h.CheckAvailability)
	customer.Post("/book-field", h.BookField)
	customer.Get("/booking-history", h.BookingHistory)
}

func (h *Handler) requestID(ctx *fiber.Ctx) string {
	if id, ok := ctx.Locals("request_id").(string); ok {
		return id
	}

	return "unknown"
}

// CheckAvailability godoc
// @Summary Check slot availability
// @Description Check whether a time slot on a field and date is free. Read-only.
// @Tags customer
// @Accept json
// @Produce json
// @Param check body dto.CheckAvailabilityRequest true "Availability request"
// @Success 200 {object} response.Data[dto.CheckAvailabilityResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /customer/check-availability [post]
// @Security BearerAuth
func (h *Handler) CheckAvailability(ctx *fiber.Ctx) error {
	var req dto.CheckAvailabilityRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - bookings - check-availability - body parsing error: " + err.Error())

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - bookings - check-availability - validate error: " + err.Error())

		return response.WithError(ctx, err)
	}

	data, err := h.service.CheckAvailability(ctx.UserContext(), req)
	if err != nil {
		h.logger.Error("http - bookings - check-availability - request_id: " + h.requestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// BookField godoc
// @Summary Book a field
// @Description Book a time slot on a field. The availability check and the insert run in one transaction, so concurrent overlapping requests cannot both succeed.
// @Tags customer
// @Accept json
// @Produce json
// @Param booking body dto.BookFieldRequest true "Booking request"
// @Success 201 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /customer/book-field [post]
// @Security BearerAuth
func (h *Handler) BookField(ctx *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFrom(ctx)
	if !ok {
		return response.WithError(ctx, failure.Unauthorized("unauthorized"))
	}

	var req dto.BookFieldRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - bookings - book-field - body parsing error: " + err.Error())

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - bookings - book-field - validate error: " + err.Error())

		return response.WithError(ctx, err)
	}

	data, err := h.service.BookField(ctx.UserContext(), principal.ID, principal.Email, req)
	if err != nil {
		h.logger.Error("http - bookings - book-field - request_id: " + h.requestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}

// BookingHistory godoc
// @Summary Booking history
// @Description List the caller's bookings, newest first, paginated
// @Tags customer
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Data[dto.GetBookingHistoryResponse]
// @Failure 500 {object} response.Error
// @Router /customer/booking-history [get]
// @Security BearerAuth
func (h *Handler) BookingHistory(ctx *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFrom(ctx)
	if !ok {
		return response.WithError(ctx, failure.Unauthorized("unauthorized"))
	}

	var req dto.GetBookingHistoryRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error("http - bookings - booking-history - query parsing error: " + err.Error())

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - bookings - booking-history - validate error: " + err.Error())

		return response.WithError(ctx, err)
	}

	data, err := h.service.BookingHistory(ctx.UserContext(), principal.ID, req.PaginationRequest)
	if err != nil {
		h.logger.Error("http - bookings - booking-history - request_id: " + h.requestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}
