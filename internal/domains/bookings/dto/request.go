package dto

import "github.com/bookmyfield/backend/pkg/gdto"

type CheckAvailabilityRequest struct {
	FieldID     string `json:"field_id" validate:"required,uuid"`
	BookingDate string `json:"booking_date" validate:"required,datetime=2006-01-02"`
	Duration    int    `json:"duration" validate:"required,numeric,min=1,max=24"`
	TimeSlot    string `json:"time_slot" validate:"required"`
}

type BookFieldRequest struct {
	FieldID     string `json:"field_id" validate:"required,uuid"`
	BookingDate string `json:"booking_date" validate:"required,datetime=2006-01-02"`
	Duration    int    `json:"duration" validate:"required,numeric,min=1,max=24"`
	TimeSlot    string `json:"time_slot" validate:"required"`
	Price       int64  `json:"price" validate:"required,numeric,min=0"`
}

type GetBookingHistoryRequest struct {
	gdto.PaginationRequest
}
