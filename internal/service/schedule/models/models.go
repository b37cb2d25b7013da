package models

import (
	"errors"
	"fmt"

	"github.com/m04kA/GH-ReservationService/internal/domain"
	"github.com/m04kA/GH-ReservationService/pkg/types"
)

var (
	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("invalid time format, expected HH:MM")

	// ErrInvalidWindow возвращается, когда открытие не раньше закрытия
	ErrInvalidWindow = errors.New("open time must be before close time")
)

// Request модели

// UpdateDayRequest запрос на обновление часов работы одного дня
type UpdateDayRequest struct {
	Open   string `json:"open"`  // "09:00"
	Close  string `json:"close"` // "22:00"
	Closed bool   `json:"closed"`
}

// ToDomain конвертирует request в domain модель с валидацией.
// Для закрытого дня окно времени всё равно хранится: админка показывает
// последние значения при повторном открытии дня.
func (r *UpdateDayRequest) ToDomain(dayID, dayName string) (*domain.OpeningHours, error) {
	open, err := types.NewTimeStringFromString(r.Open)
	if err != nil {
		return nil, fmt.Errorf("%w: open=%q", ErrInvalidTime, r.Open)
	}

	closeAt, err := types.NewTimeStringFromString(r.Close)
	if err != nil {
		return nil, fmt.Errorf("%w: close=%q", ErrInvalidTime, r.Close)
	}

	if !open.IsBefore(closeAt) {
		return nil, ErrInvalidWindow
	}

	return &domain.OpeningHours{
		ID:     dayID,
		Day:    dayName,
		Open:   open,
		Close:  closeAt,
		Closed: r.Closed,
	}, nil
}

// Response модели

// DayResponse ответ с часами работы одного дня
type DayResponse struct {
	ID     string `json:"id"`  // "monday"
	Day    string `json:"day"` // "Monday"
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// ScheduleResponse ответ с расписанием на неделю
type ScheduleResponse struct {
	Days []DayResponse `json:"days"`
}

// Методы конвертации

// FromDomainDay конвертирует domain модель в DTO
func FromDomainDay(h *domain.OpeningHours) *DayResponse {
	if h == nil {
		return nil
	}

	return &DayResponse{
		ID:     h.ID,
		Day:    h.Day,
		Open:   h.Open.String(),
		Close:  h.Close.String(),
		Closed: h.Closed,
	}
}

// FromDomainSchedule конвертирует список domain моделей в DTO
func FromDomainSchedule(hours []*domain.OpeningHours) *ScheduleResponse {
	resp := &ScheduleResponse{
		Days: make([]DayResponse, 0, len(hours)),
	}

	for _, h := range hours {
		if dto := FromDomainDay(h); dto != nil {
			resp.Days = append(resp.Days, *dto)
		}
	}

	return resp
}
