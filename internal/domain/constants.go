package domain

import "github.com/m04kA/GH-ReservationService/pkg/types"

// Default configuration values (used when system_settings rows are missing)
const (
	DefaultTotalTables                = 10
	DefaultSeatsPerTable              = 4
	DefaultReservationDurationMinutes = 120
	DefaultTimeSlotIntervalMinutes    = 30
	DefaultMinNoticeMinutes           = 60
)

// Business validation constants
const (
	MinGuests                = 1
	MaxSpecialRequestsLength = 500
	MaxNameLength            = 120
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Ежедневное seed-расписание и fallback-время для битых записей
const (
	DefaultOpenTime        = types.TimeString("09:00")
	DefaultCloseTime       = types.TimeString("22:00")
	DefaultReservationTime = types.TimeString("00:00")
)
