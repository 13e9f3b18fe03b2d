package dto

import (
	"github.com/bookmyfield/backend/internal/domains/bookings/repository"
	"github.com/bookmyfield/backend/pkg/helper"
)

type CheckAvailabilityResponse struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

type BookingResponse struct {
	ID            string `json:"id"`
	FieldID       string `json:"field_id"`
	BookingDate   string `json:"booking_date"`
	TimeSlot      string `json:"time_slot"`
	Duration      int    `json:"duration"`
	Price         int64  `json:"price"`
	BookingStatus string `json:"booking_status"`
	PaymentStatus string `json:"payment_status"`
}

func (b BookingResponse) FromModel(model repository.Booking) BookingResponse {
	return BookingResponse{
		ID:            model.ID.String(),
		FieldID:       model.FieldID.String(),
		BookingDate:   helper.DateFromPg(model.BookingDate),
		TimeSlot:      model.TimeSlot,
		Duration:      int(model.Duration),
		Price:         helper.Int64FromPg(model.Price),
		BookingStatus: model.BookingStatus,
		PaymentStatus: model.PaymentStatus,
	}
}

type BookingHistoryItem struct {
	ID            string `json:"id"`
	FieldName     string `json:"field_name"`
	Location      string `json:"location"`
	BookingDate   string `json:"booking_date"`
	TimeSlot      string `json:"time_slot"`
	Duration      int    `json:"duration"`
	Price         int64  `json:"price"`
	BookingStatus string `json:"booking_status"`
	PaymentStatus string `json:"payment_status"`
}

func (b BookingHistoryItem) FromModel(row repository.GetBookingsByCustomerRow) BookingHistoryItem {
	return BookingHistoryItem{
		ID:            row.ID.String(),
		FieldName:     row.FieldName,
		Location:      row.Location,
		BookingDate:   helper.DateFromPg(row.BookingDate),
		TimeSlot:      row.TimeSlot,
		Duration:      int(row.Duration),
		Price:         helper.Int64FromPg(row.Price),
		BookingStatus: row.BookingStatus,
		PaymentStatus: row.PaymentStatus,
	}
}

type GetBookingHistoryResponse struct {
	Bookings   []BookingHistoryItem `json:"bookings"`
	TotalItems int                  `json:"total_items"`
	TotalPages int                  `json:"total_pages"`
}

func (g *GetBookingHistoryResponse) FromModel(rows []repository.GetBookingsByCustomerRow, totalItems, limit int) {
	g.TotalItems = totalItems
	g.TotalPages = helper.CalculateTotalPages(totalItems, limit)

	if len(rows) == 0 {
		g.Bookings = []BookingHistoryItem{}

		return
	}

	g.Bookings = make([]BookingHistoryItem, len(rows))

	for i, row := range rows {
		g.Bookings[i] = BookingHistoryItem{}.FromModel(row)
	}
}
