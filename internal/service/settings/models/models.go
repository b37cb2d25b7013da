package models

import (
	"github.com/m04kA/GH-ReservationService/internal/domain"
)

// Request модели

// UpdateSettingRequest запрос на обновление значения настройки
type UpdateSettingRequest struct {
	Value string `json:"value"`
}

// Response модели

// SettingResponse ответ с одной настройкой
type SettingResponse struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// SettingsListResponse ответ со всеми настройками
type SettingsListResponse struct {
	Settings []SettingResponse `json:"settings"`
}

// BookingConfigResponse типизированный срез настроек для формы бронирования
type BookingConfigResponse struct {
	SeatsPerTable       int `json:"seatsPerTable"`
	SlotIntervalMinutes int `json:"timeSlotInterval"`
	DurationMinutes     int `json:"reservationDuration"`
}

// Методы конвертации

// FromDomainSetting конвертирует domain модель в DTO
func FromDomainSetting(s *domain.SystemSetting) *SettingResponse {
	if s == nil {
		return nil
	}

	return &SettingResponse{
		Key:         s.Key,
		Value:       s.Value,
		Description: s.Description,
	}
}

// FromDomainSettings конвертирует список domain моделей в DTO
func FromDomainSettings(settings []*domain.SystemSetting) *SettingsListResponse {
	resp := &SettingsListResponse{
		Settings: make([]SettingResponse, 0, len(settings)),
	}

	for _, s := range settings {
		if dto := FromDomainSetting(s); dto != nil {
			resp.Settings = append(resp.Settings, *dto)
		}
	}

	return resp
}

// FromReservationSettings конвертирует типизированные настройки в публичный DTO
func FromReservationSettings(s domain.ReservationSettings) *BookingConfigResponse {
	return &BookingConfigResponse{
		SeatsPerTable:       s.SeatsPerTable,
		SlotIntervalMinutes: s.SlotIntervalMinutes,
		DurationMinutes:     s.DurationMinutes,
	}
}
