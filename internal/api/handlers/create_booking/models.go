package create_booking

import (
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	createBooking "github.com/m04kA/Salon-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerID int64   `json:"customerId"`
	SalonID    int64   `json:"salonId"`
	StartTime  string  `json:"startTime"` // "2025-10-15T10:00:00"
	ServiceIDs []int64 `json:"serviceIds"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	CustomerID      int64   `json:"customerId"`
	SalonID         int64   `json:"salonId"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	ServiceIDs      []int64 `json:"serviceIds"`
	TotalPrice      float64 `json:"totalPrice"`
	Status          string  `json:"status"`
	SalonName       string  `json:"salonName"`
	DurationMinutes int     `json:"durationMinutes"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим время начала визита (локальное время салона, без смещения)
	startTime, err := time.Parse(domain.DateTimeFormat, r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerID: r.CustomerID,
		SalonID:    r.SalonID,
		StartTime:  startTime,
		ServiceIDs: r.ServiceIDs,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		CustomerID:      resp.CustomerID,
		SalonID:         resp.SalonID,
		StartTime:       resp.StartTime.Format(domain.DateTimeFormat),
		EndTime:         resp.EndTime.Format(domain.DateTimeFormat),
		ServiceIDs:      resp.ServiceIDs,
		TotalPrice:      resp.TotalPrice,
		Status:          resp.Status,
		SalonName:       resp.SalonName,
		DurationMinutes: resp.DurationMinutes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
