package salonservice

import "github.com/m04kA/Salon-BookingService/pkg/types"

// Salon модель салона из SalonService
type Salon struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`

	// Рабочие часы салона (одно окно на все дни)
	OpenTime  types.TimeString `json:"open_time"`  // "09:00"
	CloseTime types.TimeString `json:"close_time"` // "18:00"

	OwnerID int64 `json:"owner_id"`
}

// ErrorResponse модель ошибки от SalonService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
