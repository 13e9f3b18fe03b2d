package handler

import (
	"github.com/bookmyfield/backend/internal/delivery/http/middleware"
	"github.com/bookmyfield/backend/internal/delivery/http/response"
	"github.com/bookmyfield/backend/internal/domains/fields/dto"
	"github.com/bookmyfield/backend/internal/domains/fields/service"
	"github.com/bookmyfield/backend/pkg/constant"
	"github.com/bookmyfield/backend/pkg/failure"
	"github.com/bookmyfield/backend/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service   service.FieldService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.FieldService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	fields := r.Group("/fields")

	fields.Post("/", middleware.Jwt(), middleware.CheckRole(constant.RoleFieldOwner), h.Create)
	fields.Get("/my-fields", middleware.Jwt(), middleware.CheckRole(constant.RoleFieldOwner), h.MyFields)
	fields.Get("/approval-status", middleware.Jwt(), middleware.CheckRole(constant.RoleFieldOwner), h.ApprovalStatus)
	fields.Get("/pending", middleware.Jwt(), middleware.CheckRole(constant.RoleAdmin), h.Pending)
	fields.Put("/:id/approval", middleware.Jwt(), middleware.CheckRole(constant.RoleAdmin), h.UpdateApproval)
	fields.Put("/:id", middleware.Jwt(), middleware.CheckRole(constant.RoleFieldOwner), h.Update)
	fields.Delete("/:id", middleware.Jwt(), middleware.CheckRole(constant.RoleFieldOwner), h.Delete)

	customer := r.Group("/customer")

	customer.Get("/fields", middleware.Jwt(), middleware.CheckRole(constant.RoleCustomer), h.ApprovedFields)
	customer.Get("/categories", middleware.Jwt(), middleware.CheckRole(constant.RoleCustomer), h.Categories)
}

func (h *Handler) requestID(ctx *fiber.Ctx) string {
	if id, ok := ctx.Locals("request_id").(string); ok {
		return id
	}

	return "unknown"
}

// Create godoc
// @Summary Create field listing
// @Description Create a field listing with an image. The listing awaits admin approval.
// @Tags fields
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Field name"
// @Param location formData string true "Field location"
// @Param description formData string false "Field description"
// @Param available_timings formData string true "Available timings"
// @Param price_per_hour formData int true "Price per hour"
// @Param category formData string true "Category"
// @Param image formData file true "Field image"
// @Success 201 {object} response.Data[dto.FieldResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /fields [post]
// @Security BearerAuth
func (h *Handler) Create(ctx *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFrom(ctx)
	if !ok {
		return response.WithError(ctx, failure.Unauthorized("unauthorized"))
	}

	var req dto.FieldCreateRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - fields - create - body parsing error: " + err.Error())

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - fields - create - validate error: " + err.Error())

		return response.WithError(ctx, err)
	}

	image, err := ctx.FormFile("image")
	if err != nil {
		h.logger.Error("http - fields - create - missing image: " + err.Error())

		return response.WithError(ctx, failure.BadRequestFromString("image is required"))
	}

	data, err := h.service.Create(ctx.UserContext(), principal.ID, req, image)
	if err != nil {
		h.logger.Error("http - fields - create - request_id: " + h.requestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}

// Update godoc
// @Summary Update field listing
// @Description Update the caller's field listing, optionally replacing the image
// @Tags fields
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Field ID"
// @Param image formData file false "Field image"
// @Success 200 {object} response.Data[dto.FieldResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /fields/{id} [put]
// @Security BearerAuth
func (h *Handler) Update(ctx *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFrom(ctx)
	if !ok {
		return response.WithError(ctx, failure.Unauthorized("unauthorized"))
	}

	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		h.logger.Error("http - fields - update - invalid id: " + err.Error())

		return response.WithError(ctx, err)
	}

	var req dto.FieldUpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - fields - update - body parsing error: " + err.Error())

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - fields - update - validate error: " + err.Error())

		return response.WithError(ctx, err)
	}

	image, err := ctx.FormFile("image")
	if err != nil {
		image = nil
	}

	data, err := h.service.Update(ctx.UserContext(), principal.ID, id, req, image)
	if err != nil {
		h.logger.Error("http - fields - update - request_id: " + h.requestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Delete godoc
// @Summary Delete field listing
// @Description Delete the caller's field listing
// @Tags fields
// @Produce json
// @Param id path string true "Field ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /fields/{id} [delete]
// @Security BearerAuth
func (h *Handler) Delete(ctx *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFrom(ctx)
	if !ok {
		return response.WithError(ctx, failure.Unauthorized("unauthorized"))
	}

	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		h.logger.Error("http - fields - delete - invalid id: " + err.Error())

		return response.WithError(ctx, err)
	}

	if err := h.service.Delete(ctx.UserContext(), principal.ID, id); err != nil {
		h.logger.Error("http - fields - delete - request_id: " + h.requestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithMessage(ctx, fiber.StatusOK, "field deleted")
}

// MyFields godoc
// @Summary List own fields
// @Description List every field owned by the caller
// @Tags fields
// @Produce json
// @Success 200 {object} response.Data[[]dto.FieldResponse]
// @Failure 500 {object} response.Error
// @Router /fields/my-fields [get]
// @Security BearerAuth
func (h *Handler) MyFields(ctx *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFrom(ctx)
	if !ok {
		return response.WithError(ctx, failure.Unauthorized("unauthorized"))
	}

	data, err := h.service.GetMyFields(ctx.UserContext(), principal.ID)
	if err != nil {
		h.logger.Error("http - fields - my-fields - request_id: " + h.requestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// ApprovalStatus godoc
// @Summary List own approval statuses
// @Description List the name and approval status of the caller's fields
// @Tags fields
// @Produce json
// @Success 200 {object} response.Data[[]dto.FieldApprovalStatusResponse]
// @Failure 500 {object} response.Error
// @Router /fields/approval-status [get]
// @Security BearerAuth
func (h *Handler) ApprovalStatus(ctx *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFrom(ctx)
	if !ok {
		return response.WithError(ctx, failure.Unauthorized("unauthorized"))
	}

	data, err := h.service.GetApprovalStatus(ctx.UserContext(), principal.ID)
	if err != nil {
		h.logger.Error("http - fields - approval-status - request_id: " + h.requestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Pending godoc
// @Summary List pending fields
// @Description List every field awaiting approval
// @Tags fields
// @Produce json
// @Success 200 {object} response.Data[[]dto.PendingFieldResponse]
// @Failure 500 {object} response.Error
// @Router /fields/pending [get]
// @Security BearerAuth
func (h *Handler) Pending(ctx *fiber.Ctx) error {
	data, err := h.service.GetPending(ctx.UserContext())
	if err != nil {
		h.logger.Error("http - fields - pending - request_id: " + h.requestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// UpdateApproval godoc
// @Summary Approve or reject a field
// @Description Set a field's approval status to Approved or Rejected
// @Tags fields
// @Accept json
// @Produce json
// @Param id path string true "Field ID"
// @Param approval body dto.FieldApprovalRequest true "Approval request"
// @Success 200 {object} response.Data[dto.FieldResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /fields/{id}/approval [put]
// @Security BearerAuth
func (h *Handler) UpdateApproval(ctx *fiber.Ctx) error {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		h.logger.Error("http - fields - approval - invalid id: " + err.Error())

		return response.WithError(ctx, err)
	}

	var req dto.FieldApprovalRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.logger.Error("http - fields - approval - body parsing error: " + err.Error())

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - fields - approval - validate error: " + err.Error())

		return response.WithError(ctx, err)
	}

	data, err := h.service.UpdateApproval(ctx.UserContext(), id, req)
	if err != nil {
		h.logger.Error("http - fields - approval - request_id: " + h.requestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// ApprovedFields godoc
// @Summary List approved fields
// @Description List approved fields for customers, paginated
// @Tags customer
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Data[dto.GetFieldsResponse]
// @Failure 500 {object} response.Error
// @Router /customer/fields [get]
// @Security BearerAuth
func (h *Handler) ApprovedFields(ctx *fiber.Ctx) error {
	var req dto.GetFieldsRequest
	if err := ctx.QueryParser(&req); err != nil {
		h.logger.Error("http - fields - approved - query parsing error: " + err.Error())

		return response.WithError(ctx, err)
	}

	if err := h.validator.Struct(req); err != nil {
		h.logger.Error("http - fields - approved - validate error: " + err.Error())

		return response.WithError(ctx, err)
	}

	data, err := h.service.GetApprovedFields(ctx.UserContext(), req.PaginationRequest)
	if err != nil {
		h.logger.Error("http - fields - approved - request_id: " + h.requestID(ctx) + " - " + err.Error())

		return response.WithError(ctx, err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Categories godoc
// @Summary List sports categories
// @Description List the fixed sports categories offered to customers
// @Tags customer
// @Produce json
// @Success 200 {object} response.Data[dto.CategoriesResponse]
// @Router /customer/categories [get]
// @Security BearerAuth
func (h *Handler) Categories(ctx *fiber.Ctx) error {
	return response.WithJSON(ctx, fiber.StatusOK, h.service.Categories())
}
