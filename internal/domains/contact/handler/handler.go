package handler

import (
	"github.com/bookmyfield/backend/internal/delivery/http/middleware"
	"github.com/bookmyfield/backend/internal/delivery/http/response"
	"github.com/bookmyfield/backend/internal/domains/contact/dto"
	"github.com/bookmyfield/backend/internal/domains/contact/service"
	"github.com/bookmyfield/backend/pkg/constant"
	"github.com/bookmyfield/backend/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service   service.ContactService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.ContactService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	customer := r.Group("/customer")

	customer.Post("/contact-us", middleware.Jwt(), middleware.CheckRole(constant.RoleCustomer), h.ContactUs)
}

// ContactUs godoc
// @Summary Submit a contact message
// @Description Persist a contact message from a customer
// @Tags customer
// @Accept json
// @Produce json
// @Param message body dto.ContactUsRequest true "Contact message"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /customer/contact-us [post]
// @Security BearerAuth
func (h *Handler) ContactUs(ctx *fiber.Ctx) error {
	var req dto.ContactUsRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - contact - contact-us - body parsing error: " + err.Error())

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - contact - contact-us - validate error: " + err.Error())

		return response.WithError(ctx, err)
	}

	if err := h.service.Submit(ctx.UserContext(), req); err != nil {
		reqID := "unknown"
		if id, ok := ctx.Locals("request_id").(string); ok {
			reqID = id
		}

		h.logger.Error("http - contact - contact-us - request_id: " + reqID + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithMessage(ctx, fiber.StatusCreated, "message received")
}
