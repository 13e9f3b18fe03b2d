package dto

import (
	"github.com/bookmyfield/backend/internal/domains/fields/repository"
	"github.com/bookmyfield/backend/pkg/constant"
	"github.com/bookmyfield/backend/pkg/helper"
)

type FieldResponse struct {
	ID               string `json:"id"`
	OwnerID          string `json:"owner_id"`
	Name             string `json:"name"`
	Location         string `json:"location"`
	Description      string `json:"description"`
	AvailableTimings string `json:"available_timings"`
	PricePerHour     int64  `json:"price_per_hour"`
	Category         string `json:"category"`
	ImageURL         string `json:"image_url"`
	ApprovalStatus   string `json:"approval_status"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

func (f FieldResponse) FromModel(model repository.Field) FieldResponse {
	return FieldResponse{
		ID:               model.ID.String(),
		OwnerID:          model.OwnerID.String(),
		Name:             model.Name,
		Location:         model.Location,
		Description:      model.Description.String,
		AvailableTimings: model.AvailableTimings,
		PricePerHour:     helper.Int64FromPg(model.PricePerHour),
		Category:         model.Category,
		ImageURL:         model.ImageUrl,
		ApprovalStatus:   model.ApprovalStatus,
		CreatedAt:        model.CreatedAt.Time.Format(constant.DateFormat),
		UpdatedAt:        model.UpdatedAt.Time.Format(constant.DateFormat),
	}
}

type GetFieldsResponse struct {
	Fields     []FieldResponse `json:"fields"`
	TotalItems int             `json:"total_items"`
	TotalPages int             `json:"total_pages"`
}

func (f *GetFieldsResponse) FromModel(fields []repository.Field, totalItems, limit int) {
	f.TotalItems = totalItems
	f.TotalPages = helper.CalculateTotalPages(totalItems, limit)

	if len(fields) == 0 {
		f.Fields = []FieldResponse{}

		return
	}

	f.Fields = make([]FieldResponse, len(fields))

	for i, field := range fields {
		f.Fields[i] = FieldResponse{}.FromModel(field)
	}
}

type FieldApprovalStatusResponse struct {
	Name           string `json:"name"`
	ApprovalStatus string `json:"approval_status"`
}

func (f FieldApprovalStatusResponse) FromModel(row repository.GetApprovalStatusByOwnerRow) FieldApprovalStatusResponse {
	return FieldApprovalStatusResponse{
		Name:           row.Name,
		ApprovalStatus: row.ApprovalStatus,
	}
}

type PendingFieldResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Location       string `json:"location"`
	PricePerHour   int64  `json:"price_per_hour"`
	ApprovalStatus string `json:"approval_status"`
}

func (p PendingFieldResponse) FromModel(row repository.GetPendingFieldsRow) PendingFieldResponse {
	return PendingFieldResponse{
		ID:             row.ID.String(),
		Name:           row.Name,
		Location:       row.Location,
		PricePerHour:   helper.Int64FromPg(row.PricePerHour),
		ApprovalStatus: row.ApprovalStatus,
	}
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
