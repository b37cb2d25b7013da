package domain

import "strconv"

// SystemSetting одна строка key/value конфигурации ресторана
type SystemSetting struct {
	ID          int64
	Key         string
	Value       string
	Description string
}

// Recognized system_settings keys
const (
	SettingTotalTables         = "total_tables"
	SettingSeatsPerTable       = "seats_per_table"
	SettingReservationDuration = "reservation_duration"
	SettingTimeSlotInterval    = "time_slot_interval"
	SettingMinNotice           = "min_reservation_notice"

	// Устаревший ключ, оставлен для совместимости со старыми данными
	settingLegacySeatsPerTable = "max_guests_per_table"
)

// ReservationSettings typed view over the raw system_settings rows.
// Собирается один раз на вычисление, чтобы не парсить строки в каждой точке
// использования.
type ReservationSettings struct {
	TotalTables         int // Сколько столов можно занять одновременно
	SeatsPerTable       int // Верхняя граница для селектора количества гостей
	DurationMinutes     int // Сколько минут бронирование занимает стол
	SlotIntervalMinutes int // Шаг между началами слотов
	MinNoticeMinutes    int // Минимальный запас времени для гостевой брони
}

// DefaultReservationSettings returns the hard-coded fallbacks used when
// keys are missing from the store.
func DefaultReservationSettings() ReservationSettings {
	return ReservationSettings{
		TotalTables:         DefaultTotalTables,
		SeatsPerTable:       DefaultSeatsPerTable,
		DurationMinutes:     DefaultReservationDurationMinutes,
		SlotIntervalMinutes: DefaultTimeSlotIntervalMinutes,
		MinNoticeMinutes:    DefaultMinNoticeMinutes,
	}
}

// BuildReservationSettings assembles the typed settings from raw rows,
// falling back to defaults for missing or unparsable values.
func BuildReservationSettings(rows []*SystemSetting) ReservationSettings {
	byKey := make(map[string]string, len(rows))
	for _, row := range rows {
		byKey[row.Key] = row.Value
	}

	s := DefaultReservationSettings()
	s.TotalTables = intSetting(byKey, SettingTotalTables, s.TotalTables)
	s.DurationMinutes = intSetting(byKey, SettingReservationDuration, s.DurationMinutes)
	s.SlotIntervalMinutes = intSetting(byKey, SettingTimeSlotInterval, s.SlotIntervalMinutes)
	s.MinNoticeMinutes = intSetting(byKey, SettingMinNotice, s.MinNoticeMinutes)

	// seats_per_table с fallback на устаревший ключ
	if _, ok := byKey[SettingSeatsPerTable]; ok {
		s.SeatsPerTable = intSetting(byKey, SettingSeatsPerTable, s.SeatsPerTable)
	} else {
		s.SeatsPerTable = intSetting(byKey, settingLegacySeatsPerTable, s.SeatsPerTable)
	}

	return s
}

func intSetting(byKey map[string]string, key string, fallback int) int {
	raw, ok := byKey[key]
	if !ok {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
