package models

import "github.com/m04kA/Salon-BookingService/internal/domain"

// SalonReportResponse агрегированный отчёт по салону
type SalonReportResponse struct {
	SalonID           int64   `json:"salonId"`
	SalonName         string  `json:"salonName"`
	TotalEarnings     float64 `json:"totalEarnings"`
	TotalBookings     int     `json:"totalBookings"`
	CancelledBookings int     `json:"cancelledBookings"`
	TotalRefund       float64 `json:"totalRefund"`
}

// EarningsPoint точка дневного ряда выручки
type EarningsPoint struct {
	Daily    string  `json:"daily"`
	Earnings float64 `json:"earnings"`
}

// BookingCountPoint точка дневного ряда количества бронирований
type BookingCountPoint struct {
	Daily string `json:"daily"`
	Count int    `json:"count"`
}

// FromDomainReport конвертирует domain отчёт в DTO
func FromDomainReport(r domain.SalonReport) *SalonReportResponse {
	return &SalonReportResponse{
		SalonID:           r.SalonID,
		SalonName:         r.SalonName,
		TotalEarnings:     r.TotalEarnings,
		TotalBookings:     r.TotalBookings,
		CancelledBookings: r.CancelledBookings,
		TotalRefund:       r.TotalRefund,
	}
}

// FromDomainEarningsSeries конвертирует дневной ряд выручки в DTO
func FromDomainEarningsSeries(points []domain.ChartPoint) []EarningsPoint {
	resp := make([]EarningsPoint, 0, len(points))
	for _, p := range points {
		resp = append(resp, EarningsPoint{Daily: p.Day, Earnings: p.Value})
	}
	return resp
}

// FromDomainBookingCountSeries конвертирует дневной ряд количества в DTO
func FromDomainBookingCountSeries(points []domain.ChartPoint) []BookingCountPoint {
	resp := make([]BookingCountPoint, 0, len(points))
	for _, p := range points {
		resp = append(resp, BookingCountPoint{Daily: p.Day, Count: int(p.Value)})
	}
	return resp
}
