package domain

import (
	"strings"
	"time"

	"github.com/m04kA/GH-ReservationService/pkg/types"
)

// OpeningHours represents one weekday's working window.
// Ключом служит имя дня недели в нижнем регистре ("monday" ... "sunday").
type OpeningHours struct {
	ID     string // "monday"
	Day    string // "Monday"
	Open   types.TimeString
	Close  types.TimeString
	Closed bool
}

// IsWorkable returns true if the day has a usable open window.
func (h *OpeningHours) IsWorkable() bool {
	return !h.Closed && !h.Open.IsZero() && !h.Close.IsZero()
}

// WeekdayID returns the lowercase weekday key for a date.
func WeekdayID(date time.Time) string {
	return strings.ToLower(date.Weekday().String())
}

// Weekdays порядок дней недели, как он показывается в админке
var Weekdays = []struct {
	ID  string
	Day string
}{
	{"monday", "Monday"},
	{"tuesday", "Tuesday"},
	{"wednesday", "Wednesday"},
	{"thursday", "Thursday"},
	{"friday", "Friday"},
	{"saturday", "Saturday"},
	{"sunday", "Sunday"},
}

// DefaultOpeningHours returns the seed schedule: open every day 09:00-22:00.
func DefaultOpeningHours() []*OpeningHours {
	hours := make([]*OpeningHours, 0, len(Weekdays))
	for _, wd := range Weekdays {
		hours = append(hours, &OpeningHours{
			ID:     wd.ID,
			Day:    wd.Day,
			Open:   DefaultOpenTime,
			Close:  DefaultCloseTime,
			Closed: false,
		})
	}
	return hours
}
