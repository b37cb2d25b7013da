package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildReservationSettings(t *testing.T) {
	row := func(key, value string) *SystemSetting {
		return &SystemSetting{Key: key, Value: value}
	}

	tests := []struct {
		name string
		rows []*SystemSetting
		want ReservationSettings
	}{
		{
			name: "empty rows fall back to defaults",
			rows: nil,
			want: DefaultReservationSettings(),
		},
		{
			name: "all keys present",
			rows: []*SystemSetting{
				row(SettingTotalTables, "6"),
				row(SettingSeatsPerTable, "8"),
				row(SettingReservationDuration, "90"),
				row(SettingTimeSlotInterval, "15"),
				row(SettingMinNotice, "240"),
			},
			want: ReservationSettings{
				TotalTables:         6,
				SeatsPerTable:       8,
				DurationMinutes:     90,
				SlotIntervalMinutes: 15,
				MinNoticeMinutes:    240,
			},
		},
		{
			name: "unparsable and non-positive values fall back per key",
			rows: []*SystemSetting{
				row(SettingTotalTables, "lots"),
				row(SettingReservationDuration, "0"),
				row(SettingTimeSlotInterval, "-30"),
				row(SettingMinNotice, "45"),
			},
			want: ReservationSettings{
				TotalTables:         DefaultTotalTables,
				SeatsPerTable:       DefaultSeatsPerTable,
				DurationMinutes:     DefaultReservationDurationMinutes,
				SlotIntervalMinutes: DefaultTimeSlotIntervalMinutes,
				MinNoticeMinutes:    45,
			},
		},
		{
			name: "legacy max_guests_per_table is honoured",
			rows: []*SystemSetting{
				row(settingLegacySeatsPerTable, "6"),
			},
			want: ReservationSettings{
				TotalTables:         DefaultTotalTables,
				SeatsPerTable:       6,
				DurationMinutes:     DefaultReservationDurationMinutes,
				SlotIntervalMinutes: DefaultTimeSlotIntervalMinutes,
				MinNoticeMinutes:    DefaultMinNoticeMinutes,
			},
		},
		{
			name: "seats_per_table wins over legacy key",
			rows: []*SystemSetting{
				row(SettingSeatsPerTable, "2"),
				row(settingLegacySeatsPerTable, "6"),
			},
			want: ReservationSettings{
				TotalTables:         DefaultTotalTables,
				SeatsPerTable:       2,
				DurationMinutes:     DefaultReservationDurationMinutes,
				SlotIntervalMinutes: DefaultTimeSlotIntervalMinutes,
				MinNoticeMinutes:    DefaultMinNoticeMinutes,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildReservationSettings(tt.rows))
		})
	}
}

func TestReservationStatus_Toggled(t *testing.T) {
	assert.Equal(t, StatusConfirmed, StatusPending.Toggled())
	assert.Equal(t, StatusPending, StatusConfirmed.Toggled())
}

func TestReservation_StartTimeOrDefault(t *testing.T) {
	res := &Reservation{Time: "18:30"}
	assert.Equal(t, res.Time, res.StartTimeOrDefault())

	res.Time = ""
	assert.Equal(t, DefaultReservationTime, res.StartTimeOrDefault())

	res.Time = "garbage"
	assert.Equal(t, DefaultReservationTime, res.StartTimeOrDefault())
}
