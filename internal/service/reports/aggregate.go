package reports

import (
	"sort"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// computeSalonReport агрегирует статистику по набору бронирований.
//
// TotalEarnings считается по ВСЕМ бронированиям, включая отменённые,
// при этом цена отменённых отдельно суммируется в TotalRefund -
// исходная семантика отчёта сохранена намеренно (см. DESIGN.md)
func computeSalonReport(bookings []*domain.Booking) domain.SalonReport {
	var report domain.SalonReport

	for _, b := range bookings {
		report.TotalEarnings += b.TotalPrice
		report.TotalBookings++

		if b.IsCancelled() {
			report.CancelledBookings++
			report.TotalRefund += b.TotalPrice
		}
	}

	report.TotalEarnings = domain.RoundPrice(report.TotalEarnings)
	report.TotalRefund = domain.RoundPrice(report.TotalRefund)

	return report
}

// earningsSeries строит дневной ряд выручки.
// Отменённые бронирования исключаются; дни без бронирований опускаются.
// Точки отсортированы по возрастанию дневного ключа (ISO-дата,
// лексикографический порядок совпадает с хронологическим)
func earningsSeries(bookings []*domain.Booking) []domain.ChartPoint {
	byDay := make(map[string]float64)

	for _, b := range bookings {
		if b.IsCancelled() {
			continue
		}
		byDay[b.Day()] += b.TotalPrice
	}

	points := make([]domain.ChartPoint, 0, len(byDay))
	for day, total := range byDay {
		points = append(points, domain.ChartPoint{Day: day, Value: domain.RoundPrice(total)})
	}

	sortByDay(points)
	return points
}

// bookingCountSeries строит дневной ряд количества бронирований.
// Отменённые бронирования исключаются
func bookingCountSeries(bookings []*domain.Booking) []domain.ChartPoint {
	byDay := make(map[string]int)

	for _, b := range bookings {
		if b.IsCancelled() {
			continue
		}
		byDay[b.Day()]++
	}

	points := make([]domain.ChartPoint, 0, len(byDay))
	for day, count := range byDay {
		points = append(points, domain.ChartPoint{Day: day, Value: float64(count)})
	}

	sortByDay(points)
	return points
}

func sortByDay(points []domain.ChartPoint) {
	sort.Slice(points, func(i, j int) bool {
		return points[i].Day < points[j].Day
	})
}
