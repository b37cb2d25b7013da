package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GH-ReservationService/internal/domain"
	scheduleRepo "github.com/m04kA/GH-ReservationService/internal/infra/storage/schedule"
	"github.com/m04kA/GH-ReservationService/internal/service/schedule/models"
)

// --- mocks ---

type mockScheduleRepo struct {
	byDay       map[string]*domain.OpeningHours
	seeded      bool
	getAllErr   error
	seedErr     error
	updateCalls int
}

func newMockRepo(hours ...*domain.OpeningHours) *mockScheduleRepo {
	m := &mockScheduleRepo{byDay: make(map[string]*domain.OpeningHours)}
	for _, h := range hours {
		m.byDay[h.ID] = h
	}
	return m
}

func (m *mockScheduleRepo) GetAll(_ context.Context) ([]*domain.OpeningHours, error) {
	if m.getAllErr != nil {
		return nil, m.getAllErr
	}
	out := make([]*domain.OpeningHours, 0, len(m.byDay))
	for _, wd := range domain.Weekdays {
		if h, ok := m.byDay[wd.ID]; ok {
			out = append(out, h)
		}
	}
	return out, nil
}

func (m *mockScheduleRepo) GetByDay(_ context.Context, dayID string) (*domain.OpeningHours, error) {
	h, ok := m.byDay[dayID]
	if !ok {
		return nil, scheduleRepo.ErrDayNotFound
	}
	return h, nil
}

func (m *mockScheduleRepo) Update(_ context.Context, h *domain.OpeningHours) error {
	m.updateCalls++
	if _, ok := m.byDay[h.ID]; !ok {
		return scheduleRepo.ErrDayNotFound
	}
	m.byDay[h.ID] = h
	return nil
}

func (m *mockScheduleRepo) InsertDefaults(_ context.Context, hours []*domain.OpeningHours) error {
	if m.seedErr != nil {
		return m.seedErr
	}
	m.seeded = true
	for _, h := range hours {
		m.byDay[h.ID] = h
	}
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// --- tests ---

func TestGetAll_SeedsDefaultsWhenEmpty(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, noopLogger{})

	resp, err := svc.GetAll(context.Background())
	require.NoError(t, err)

	assert.True(t, repo.seeded)
	require.Len(t, resp.Days, 7)
	assert.Equal(t, "monday", resp.Days[0].ID)
	assert.Equal(t, "sunday", resp.Days[6].ID)
	for _, d := range resp.Days {
		assert.Equal(t, "09:00", d.Open)
		assert.Equal(t, "22:00", d.Close)
		assert.False(t, d.Closed)
	}
}

func TestGetAll_ReturnsStoredSchedule(t *testing.T) {
	repo := newMockRepo(domain.DefaultOpeningHours()...)
	repo.byDay["monday"].Closed = true
	svc := NewService(repo, noopLogger{})

	resp, err := svc.GetAll(context.Background())
	require.NoError(t, err)

	assert.False(t, repo.seeded)
	require.Len(t, resp.Days, 7)
	assert.True(t, resp.Days[0].Closed)
}

func TestUpdateDay(t *testing.T) {
	repo := newMockRepo(domain.DefaultOpeningHours()...)
	svc := NewService(repo, noopLogger{})

	resp, err := svc.UpdateDay(context.Background(), "friday", &models.UpdateDayRequest{
		Open:  "10:00",
		Close: "23:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "friday", resp.ID)
	assert.Equal(t, "Friday", resp.Day)
	assert.Equal(t, "10:00", resp.Open)
	assert.Equal(t, "23:00", resp.Close)
}

func TestUpdateDay_SeedsAndRetriesWhenRowMissing(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, noopLogger{})

	resp, err := svc.UpdateDay(context.Background(), "monday", &models.UpdateDayRequest{
		Open:  "12:00",
		Close: "20:00",
	})
	require.NoError(t, err)

	assert.True(t, repo.seeded)
	assert.Equal(t, 2, repo.updateCalls)
	assert.Equal(t, "12:00", resp.Open)
}

func TestUpdateDay_UnknownWeekday(t *testing.T) {
	svc := NewService(newMockRepo(), noopLogger{})

	_, err := svc.UpdateDay(context.Background(), "someday", &models.UpdateDayRequest{
		Open:  "09:00",
		Close: "22:00",
	})
	assert.ErrorIs(t, err, ErrDayNotFound)
}

func TestUpdateDay_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		req  *models.UpdateDayRequest
	}{
		{"bad open time", &models.UpdateDayRequest{Open: "9am", Close: "22:00"}},
		{"bad close time", &models.UpdateDayRequest{Open: "09:00", Close: "late"}},
		{"open equals close", &models.UpdateDayRequest{Open: "09:00", Close: "09:00"}},
		{"open after close", &models.UpdateDayRequest{Open: "22:00", Close: "09:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newMockRepo(domain.DefaultOpeningHours()...), noopLogger{})

			_, err := svc.UpdateDay(context.Background(), "monday", tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
