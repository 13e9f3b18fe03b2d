package dto

import "github.com/bookmyfield/backend/pkg/gdto"

type FieldCreateRequest struct {
	Name             string `form:"name" json:"name" validate:"required,min=3,max=255"`
	Location         string `form:"location" json:"location" validate:"required,min=3,max=255"`
	Description      string `form:"description" json:"description" validate:"omitempty"`
	AvailableTimings string `form:"available_timings" json:"available_timings" validate:"required"`
	PricePerHour     int64  `form:"price_per_hour" json:"price_per_hour" validate:"numeric,required,min=1"`
	Category         string `form:"category" json:"category" validate:"required,oneof=Cricket Football Basketball Badminton"`
}

type FieldUpdateRequest struct {
	Name             string `form:"name" json:"name" validate:"omitempty,min=3,max=255"`
	Location         string `form:"location" json:"location" validate:"omitempty,min=3,max=255"`
	Description      string `form:"description" json:"description" validate:"omitempty"`
	AvailableTimings string `form:"available_timings" json:"available_timings" validate:"omitempty"`
	PricePerHour     int64  `form:"price_per_hour" json:"price_per_hour" validate:"omitempty,numeric,min=1"`
	Category         string `form:"category" json:"category" validate:"omitempty,oneof=Cricket Football Basketball Badminton"`
}

type FieldApprovalRequest struct {
	Status string `json:"status" validate:"required,oneof=Approved Rejected"`
}

type GetFieldsRequest struct {
	gdto.PaginationRequest
}
