package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GH-ReservationService/internal/domain"
	settingsRepo "github.com/m04kA/GH-ReservationService/internal/infra/storage/settings"
	"github.com/m04kA/GH-ReservationService/internal/service/settings/models"
)

// --- mocks ---

type mockSettingsRepo struct {
	byKey map[string]*domain.SystemSetting
}

func newMockRepo(rows ...*domain.SystemSetting) *mockSettingsRepo {
	m := &mockSettingsRepo{byKey: make(map[string]*domain.SystemSetting)}
	for _, r := range rows {
		m.byKey[r.Key] = r
	}
	return m
}

func (m *mockSettingsRepo) GetAll(_ context.Context) ([]*domain.SystemSetting, error) {
	out := make([]*domain.SystemSetting, 0, len(m.byKey))
	for _, r := range m.byKey {
		out = append(out, r)
	}
	return out, nil
}

func (m *mockSettingsRepo) GetByKey(_ context.Context, key string) (*domain.SystemSetting, error) {
	r, ok := m.byKey[key]
	if !ok {
		return nil, settingsRepo.ErrSettingNotFound
	}
	return r, nil
}

func (m *mockSettingsRepo) UpdateValue(_ context.Context, key string, value string) error {
	r, ok := m.byKey[key]
	if !ok {
		return settingsRepo.ErrSettingNotFound
	}
	r.Value = value
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// --- tests ---

func TestGetBookingConfig(t *testing.T) {
	repo := newMockRepo(
		&domain.SystemSetting{Key: domain.SettingSeatsPerTable, Value: "6"},
		&domain.SystemSetting{Key: domain.SettingTimeSlotInterval, Value: "15"},
	)
	svc := NewService(repo, noopLogger{})

	cfg, err := svc.GetBookingConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.SeatsPerTable)
	assert.Equal(t, 15, cfg.SlotIntervalMinutes)
	// Отсутствующий ключ подменяется дефолтом
	assert.Equal(t, domain.DefaultReservationDurationMinutes, cfg.DurationMinutes)
}

func TestUpdateValue(t *testing.T) {
	repo := newMockRepo(
		&domain.SystemSetting{Key: domain.SettingTotalTables, Value: "10", Description: "Количество столов"},
	)
	svc := NewService(repo, noopLogger{})

	resp, err := svc.UpdateValue(context.Background(), domain.SettingTotalTables, &models.UpdateSettingRequest{Value: " 12 "})
	require.NoError(t, err)

	assert.Equal(t, "12", resp.Value)
	assert.Equal(t, "Количество столов", resp.Description)
}

func TestUpdateValue_NumericValidation(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"empty", "   "},
		{"not a number", "many"},
		{"zero", "0"},
		{"negative", "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockRepo(&domain.SystemSetting{Key: domain.SettingTotalTables, Value: "10"})
			svc := NewService(repo, noopLogger{})

			_, err := svc.UpdateValue(context.Background(), domain.SettingTotalTables, &models.UpdateSettingRequest{Value: tt.value})
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, "10", repo.byKey[domain.SettingTotalTables].Value)
		})
	}
}

func TestUpdateValue_NotFound(t *testing.T) {
	svc := NewService(newMockRepo(), noopLogger{})

	_, err := svc.UpdateValue(context.Background(), "unknown_key", &models.UpdateSettingRequest{Value: "smth"})
	assert.ErrorIs(t, err, ErrSettingNotFound)
}
