package domain

// Time format constants
const (
	TimeFormat     = "15:04"               // HH:MM
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04:05" // timezone-naive local instant
)

// Business validation constants
const (
	MaxServicesPerBooking = 20
)
