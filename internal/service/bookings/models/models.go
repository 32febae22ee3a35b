package models

import (
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64   `json:"id"`
	CustomerID    int64   `json:"customerId"`
	SalonID       int64   `json:"salonId"`
	StartTime     string  `json:"startTime"` // "2006-01-02T15:04:05"
	EndTime       string  `json:"endTime"`
	ServiceIDs    []int64 `json:"serviceIds"`
	TotalPrice    float64 `json:"totalPrice"`
	Status        string  `json:"status"`
	PaymentStatus *string `json:"paymentStatus,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings      []BookingResponse `json:"bookings"`
	TotalBookings int               `json:"totalBookings"`
}

// BookedSlot занятый интервал в расписании салона
type BookedSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// BookedSlotsResponse ответ со списком занятых интервалов на дату
type BookedSlotsResponse struct {
	Slots []BookedSlot `json:"slots"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:            b.ID,
		CustomerID:    b.CustomerID,
		SalonID:       b.SalonID,
		StartTime:     b.StartTime.Format(domain.DateTimeFormat),
		EndTime:       b.EndTime.Format(domain.DateTimeFormat),
		ServiceIDs:    b.ServiceIDs,
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		PaymentStatus: b.PaymentStatus,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	resp.TotalBookings = len(resp.Bookings)
	return resp
}

// FromDomainBookedSlots конвертирует бронирования в список занятых интервалов
func FromDomainBookedSlots(bookings []*domain.Booking) *BookedSlotsResponse {
	resp := &BookedSlotsResponse{
		Slots: make([]BookedSlot, 0, len(bookings)),
	}

	for _, b := range bookings {
		resp.Slots = append(resp.Slots, BookedSlot{
			StartTime: b.StartTime.Format(domain.DateTimeFormat),
			EndTime:   b.EndTime.Format(domain.DateTimeFormat),
		})
	}

	return resp
}
