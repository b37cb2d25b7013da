package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GH-ReservationService/internal/domain"
	scheduleRepo "github.com/m04kA/GH-ReservationService/internal/infra/storage/schedule"
	"github.com/m04kA/GH-ReservationService/pkg/types"
)

// --- mocks ---

type mockReservationRepo struct {
	reservations []*domain.Reservation
	err          error
	gotFilter    *domain.ReservationsFilter
}

func (m *mockReservationRepo) GetWithFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	m.gotFilter = &filter
	return m.reservations, m.err
}

type mockScheduleRepo struct {
	hours *domain.OpeningHours
	err   error
}

func (m *mockScheduleRepo) GetByDay(_ context.Context, _ string) (*domain.OpeningHours, error) {
	return m.hours, m.err
}

type mockSettingsRepo struct {
	rows []*domain.SystemSetting
	err  error
}

func (m *mockSettingsRepo) GetAll(_ context.Context) ([]*domain.SystemSetting, error) {
	return m.rows, m.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// --- helpers ---

func openHours(open, close types.TimeString) *domain.OpeningHours {
	return &domain.OpeningHours{ID: "tuesday", Day: "Tuesday", Open: open, Close: close}
}

func reservationAt(t types.TimeString, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{Time: t, Status: status}
}

func newTestUseCase(
	resRepo *mockReservationRepo,
	schedRepo *mockScheduleRepo,
	setRepo *mockSettingsRepo,
	now time.Time,
) *UseCase {
	uc := NewUseCase(resRepo, schedRepo, setRepo, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

// --- tests ---

// Дата запроса: вторник 2026-09-15. "Сейчас" - за неделю до неё,
// чтобы фильтр минимального запаса времени не мешал, если тест
// не проверяет именно его.
var (
	testDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2026, 9, 8, 12, 0, 0, 0, time.UTC)
)

func TestExecute_GeneratesSlotsFromOpenToClose(t *testing.T) {
	resRepo := &mockReservationRepo{}
	schedRepo := &mockScheduleRepo{hours: openHours("18:00", "20:00")}
	setRepo := &mockSettingsRepo{}

	uc := newTestUseCase(resRepo, schedRepo, setRepo, testNow)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, Mode: ModeGuest})
	require.NoError(t, err)

	// Шаг 30 минут, первый слот совпадает с открытием, последний строго
	// раньше закрытия. Конец бронирования может выходить за закрытие.
	starts := make([]types.TimeString, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		starts = append(starts, s.StartTime)
	}
	assert.Equal(t, []types.TimeString{"18:00", "18:30", "19:00", "19:30"}, starts)

	for _, s := range resp.Slots {
		assert.Equal(t, domain.DefaultReservationDurationMinutes, s.DurationMinutes)
		assert.Equal(t, domain.DefaultTotalTables, s.TotalTables)
		assert.Equal(t, domain.DefaultTotalTables, s.TablesRemaining)
		assert.True(t, s.Available)
	}
}

func TestExecute_ClosedDayReturnsEmpty(t *testing.T) {
	schedRepo := &mockScheduleRepo{hours: &domain.OpeningHours{
		ID: "monday", Day: "Monday", Open: "09:00", Close: "22:00", Closed: true,
	}}
	uc := newTestUseCase(&mockReservationRepo{}, schedRepo, &mockSettingsRepo{}, testNow)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, Mode: ModeGuest})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_PastDateReturnsEmpty(t *testing.T) {
	uc := newTestUseCase(&mockReservationRepo{}, &mockScheduleRepo{}, &mockSettingsRepo{}, testNow)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: testNow.AddDate(0, 0, -1),
		Mode: ModeGuest,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_MissingScheduleTreatedAsClosed(t *testing.T) {
	schedRepo := &mockScheduleRepo{err: scheduleRepo.ErrDayNotFound}

	for _, mode := range []Mode{ModeGuest, ModeStaff} {
		uc := newTestUseCase(&mockReservationRepo{}, schedRepo, &mockSettingsRepo{}, testNow)

		resp, err := uc.Execute(context.Background(), &Request{Date: testDate, Mode: mode})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	}
}

func TestExecute_OverlapCounting(t *testing.T) {
	// Все проверки при duration=120: бронирование занимает стол 2 часа
	tests := []struct {
		name          string
		reservation   types.TimeString
		slot          types.TimeString
		wantRemaining int
	}{
		{"reservation inside slot window", "19:00", "18:00", domain.DefaultTotalTables - 1},
		{"reservation ends exactly at slot start", "16:00", "18:00", domain.DefaultTotalTables},
		{"reservation starts exactly at slot end", "20:00", "18:00", domain.DefaultTotalTables},
		{"same start time", "18:00", "18:00", domain.DefaultTotalTables - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resRepo := &mockReservationRepo{reservations: []*domain.Reservation{
				reservationAt(tt.reservation, domain.StatusConfirmed),
			}}
			schedRepo := &mockScheduleRepo{hours: openHours("09:00", "22:00")}
			uc := newTestUseCase(resRepo, schedRepo, &mockSettingsRepo{}, testNow)

			resp, err := uc.Execute(context.Background(), &Request{Date: testDate, Mode: ModeStaff})
			require.NoError(t, err)

			slot := findSlot(t, resp.Slots, tt.slot)
			assert.Equal(t, tt.wantRemaining, slot.TablesRemaining)
		})
	}
}

func TestExecute_PendingAndConfirmedBothOccupy(t *testing.T) {
	resRepo := &mockReservationRepo{reservations: []*domain.Reservation{
		reservationAt("18:00", domain.StatusPending),
		reservationAt("18:00", domain.StatusConfirmed),
	}}
	schedRepo := &mockScheduleRepo{hours: openHours("18:00", "22:00")}
	setRepo := &mockSettingsRepo{rows: []*domain.SystemSetting{
		{Key: domain.SettingTotalTables, Value: "2"},
	}}
	uc := newTestUseCase(resRepo, schedRepo, setRepo, testNow)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, Mode: ModeStaff})
	require.NoError(t, err)

	slot := findSlot(t, resp.Slots, "18:00")
	assert.Equal(t, 0, slot.TablesRemaining)
	assert.False(t, slot.Available)

	// Слот после окончания обоих бронирований снова свободен
	free := findSlot(t, resp.Slots, "20:00")
	assert.Equal(t, 2, free.TablesRemaining)
	assert.True(t, free.Available)
}

func TestExecute_MalformedStoredTimeCountsFromMidnight(t *testing.T) {
	// Битая запись трактуется как начало в 00:00 и с duration=120
	// закрывается к 02:00, поэтому дневные слоты она не трогает
	resRepo := &mockReservationRepo{reservations: []*domain.Reservation{
		reservationAt("later", domain.StatusConfirmed),
	}}
	schedRepo := &mockScheduleRepo{hours: openHours("09:00", "22:00")}
	uc := newTestUseCase(resRepo, schedRepo, &mockSettingsRepo{}, testNow)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, Mode: ModeStaff})
	require.NoError(t, err)

	slot := findSlot(t, resp.Slots, "09:00")
	assert.Equal(t, domain.DefaultTotalTables, slot.TablesRemaining)
}

func TestExecute_GuestNoticeMarksSlotsUnavailable(t *testing.T) {
	// "Сейчас" 17:10 того же дня, запас 60 минут: начало раньше 18:10
	// недоступно для гостя, но слот остается в сетке
	now := time.Date(2026, 9, 15, 17, 10, 0, 0, time.UTC)
	schedRepo := &mockScheduleRepo{hours: openHours("17:00", "20:00")}

	guestUC := newTestUseCase(&mockReservationRepo{}, schedRepo, &mockSettingsRepo{}, now)
	resp, err := guestUC.Execute(context.Background(), &Request{Date: testDate, Mode: ModeGuest})
	require.NoError(t, err)

	// Гость видит полную сетку дня
	require.Len(t, resp.Slots, 6)
	wantAvailable := map[types.TimeString]bool{
		"17:00": false,
		"17:30": false,
		"18:00": false,
		"18:30": true,
		"19:00": true,
		"19:30": true,
	}
	for _, s := range resp.Slots {
		assert.Equal(t, wantAvailable[s.StartTime], s.Available, "slot %s", s.StartTime)
		// Недоступность по запасу времени не искажает данные о столах
		assert.Equal(t, domain.DefaultTotalTables, s.TablesRemaining, "slot %s", s.StartTime)
	}

	// Персоналу доступны все слоты дня, включая ближайшие
	staffUC := newTestUseCase(&mockReservationRepo{}, schedRepo, &mockSettingsRepo{}, now)
	staffResp, err := staffUC.Execute(context.Background(), &Request{Date: testDate, Mode: ModeStaff})
	require.NoError(t, err)
	require.Len(t, staffResp.Slots, 6)
	for _, s := range staffResp.Slots {
		assert.True(t, s.Available, "slot %s", s.StartTime)
	}
}

func TestExecute_GuestNoticeIsTransparentForFutureDates(t *testing.T) {
	// За неделю до даты запас времени не закрывает ни один слот
	schedRepo := &mockScheduleRepo{hours: openHours("18:00", "20:00")}
	uc := newTestUseCase(&mockReservationRepo{}, schedRepo, &mockSettingsRepo{}, testNow)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, Mode: ModeGuest})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 4)
	for _, s := range resp.Slots {
		assert.True(t, s.Available, "slot %s", s.StartTime)
	}
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&mockReservationRepo{}, &mockScheduleRepo{}, &mockSettingsRepo{}, testNow)

	_, err := uc.Execute(context.Background(), &Request{Mode: ModeGuest})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: testDate, Mode: "root"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryErrorsWrapped(t *testing.T) {
	boom := errors.New("boom")

	uc := newTestUseCase(&mockReservationRepo{}, &mockScheduleRepo{}, &mockSettingsRepo{err: boom}, testNow)
	_, err := uc.Execute(context.Background(), &Request{Date: testDate, Mode: ModeGuest})
	assert.ErrorIs(t, err, ErrInternal)

	uc = newTestUseCase(&mockReservationRepo{err: boom}, &mockScheduleRepo{hours: openHours("09:00", "22:00")}, &mockSettingsRepo{}, testNow)
	_, err = uc.Execute(context.Background(), &Request{Date: testDate, Mode: ModeGuest})
	assert.ErrorIs(t, err, ErrInternal)
}

func findSlot(t *testing.T, slots []Slot, start types.TimeString) Slot {
	t.Helper()
	for _, s := range slots {
		if s.StartTime == start {
			return s
		}
	}
	t.Fatalf("slot %s not found", start)
	return Slot{}
}
