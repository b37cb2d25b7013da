package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GH-ReservationService/internal/domain"
	scheduleRepo "github.com/m04kA/GH-ReservationService/internal/infra/storage/schedule"
	"github.com/m04kA/GH-ReservationService/internal/integrations/mailer"
	"github.com/m04kA/GH-ReservationService/pkg/types"
)

// --- mocks ---

type mockReservationRepo struct {
	existing  []*domain.Reservation
	filterErr error
	createErr error
	created   *domain.Reservation
}

func (m *mockReservationRepo) GetWithFilter(_ context.Context, _ domain.ReservationsFilter) ([]*domain.Reservation, error) {
	return m.existing, m.filterErr
}

func (m *mockReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	created := *res
	created.ID = 42
	created.CreatedAt = time.Date(2026, 9, 8, 12, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	m.created = &created
	return &created, nil
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

// mockMailer записывает отправки; канал нужен, чтобы дождаться
// фоновой горутины в тесте
type mockMailer struct {
	sent chan mailer.Kind
}

func newMockMailer() *mockMailer {
	return &mockMailer{sent: make(chan mailer.Kind, 4)}
}

func (m *mockMailer) SendReservationEmail(_ context.Context, kind mailer.Kind, _ mailer.ReservationPayload) error {
	m.sent <- kind
	return nil
}

func (m *mockMailer) waitForSend(t *testing.T) mailer.Kind {
	t.Helper()
	select {
	case kind := <-m.sent:
		return kind
	case <-time.After(2 * time.Second):
		t.Fatal("expected an email dispatch, got none")
		return ""
	}
}

func (m *mockMailer) assertNoSend(t *testing.T) {
	t.Helper()
	select {
	case kind := <-m.sent:
		t.Fatalf("unexpected email dispatch: %s", kind)
	case <-time.After(50 * time.Millisecond):
	}
}

// mockTxManager выполняет функцию без настоящей транзакции
type mockTxManager struct {
	calls int
}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
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

// --- fixtures ---

var (
	testDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2026, 9, 8, 12, 0, 0, 0, time.UTC)
)

type testEnv struct {
	uc        *UseCase
	resRepo   *mockReservationRepo
	schedRepo *mockScheduleRepo
	setRepo   *mockSettingsRepo
	mail      *mockMailer
	tx        *mockTxManager
}

func newTestEnv(now time.Time) *testEnv {
	env := &testEnv{
		resRepo: &mockReservationRepo{},
		schedRepo: &mockScheduleRepo{hours: &domain.OpeningHours{
			ID: "tuesday", Day: "Tuesday", Open: "09:00", Close: "22:00",
		}},
		setRepo: &mockSettingsRepo{},
		mail:    newMockMailer(),
		tx:      &mockTxManager{},
	}
	env.uc = NewUseCase(env.resRepo, env.schedRepo, env.setRepo, env.mail, env.tx, noopLogger{})
	env.uc.timeProvider = &fixedTimeProvider{now: now}
	return env
}

func validRequest(source Source) *Request {
	return &Request{
		Date:   testDate,
		Time:   "18:00",
		Name:   "Анна Смирнова",
		Email:  "anna@example.com",
		Guests: 2,
		Source: source,
	}
}

// --- tests ---

func TestExecute_GuestCreatesPendingAndSendsEmails(t *testing.T) {
	env := newTestEnv(testNow)

	resp, err := env.uc.Execute(context.Background(), validRequest(SourceGuest))
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 1, env.tx.calls)
	require.NotNil(t, env.resRepo.created)
	assert.Equal(t, domain.StatusPending, env.resRepo.created.Status)

	assert.Equal(t, mailer.KindReceived, env.mail.waitForSend(t))
}

func TestExecute_StaffCreatesConfirmedWithoutEmails(t *testing.T) {
	env := newTestEnv(testNow)

	resp, err := env.uc.Execute(context.Background(), validRequest(SourceStaff))
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	env.mail.assertNoSend(t)
}

func TestExecute_TrimsNameAndEmail(t *testing.T) {
	env := newTestEnv(testNow)

	req := validRequest(SourceGuest)
	req.Name = "  Анна Смирнова  "
	req.Email = " anna@example.com "

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Анна Смирнова", resp.Name)
	assert.Equal(t, "anna@example.com", resp.Email)
}

func TestExecute_PastDateRejected(t *testing.T) {
	env := newTestEnv(testNow)

	req := validRequest(SourceGuest)
	req.Date = testNow.AddDate(0, 0, -1)

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Equal(t, 0, env.tx.calls)
}

func TestExecute_ClosedDayRejected(t *testing.T) {
	env := newTestEnv(testNow)
	env.schedRepo.hours.Closed = true

	_, err := env.uc.Execute(context.Background(), validRequest(SourceGuest))
	assert.ErrorIs(t, err, ErrRestaurantClosed)
}

func TestExecute_MissingScheduleTreatedAsClosed(t *testing.T) {
	// День без записи в расписании закрыт для бронирования
	for _, source := range []Source{SourceGuest, SourceStaff} {
		env := newTestEnv(testNow)
		env.schedRepo.hours = nil
		env.schedRepo.err = scheduleRepo.ErrDayNotFound

		_, err := env.uc.Execute(context.Background(), validRequest(source))
		assert.ErrorIs(t, err, ErrRestaurantClosed)
		env.mail.assertNoSend(t)
	}
}

func TestExecute_TimeOutsideWindowRejected(t *testing.T) {
	tests := []struct {
		name string
		at   types.TimeString
	}{
		{"before open", "08:30"},
		{"exactly at close", "22:00"},
		{"after close", "23:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(testNow)
			req := validRequest(SourceStaff)
			req.Time = tt.at

			_, err := env.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrOutsideOpeningHours)
		})
	}
}

func TestExecute_GuestNoticeEnforced(t *testing.T) {
	// "Сейчас" 17:30 того же дня: до 18:00 остается 30 минут при запасе 60
	now := time.Date(2026, 9, 15, 17, 30, 0, 0, time.UTC)

	env := newTestEnv(now)
	_, err := env.uc.Execute(context.Background(), validRequest(SourceGuest))
	assert.ErrorIs(t, err, ErrTooLateToBook)

	// Персонал может бронировать без запаса
	env = newTestEnv(now)
	resp, err := env.uc.Execute(context.Background(), validRequest(SourceStaff))
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestExecute_TooManyGuestsRejected(t *testing.T) {
	env := newTestEnv(testNow)

	req := validRequest(SourceGuest)
	req.Guests = domain.DefaultSeatsPerTable + 1

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTooManyGuests)
}

func TestExecute_SlotFullRejected(t *testing.T) {
	env := newTestEnv(testNow)
	env.setRepo.rows = []*domain.SystemSetting{
		{Key: domain.SettingTotalTables, Value: "2"},
	}
	// Оба стола заняты пересекающимися бронированиями (duration=120)
	env.resRepo.existing = []*domain.Reservation{
		{Time: "17:00", Status: domain.StatusPending},
		{Time: "19:00", Status: domain.StatusConfirmed},
	}

	_, err := env.uc.Execute(context.Background(), validRequest(SourceGuest))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	env.mail.assertNoSend(t)
}

func TestExecute_AdjacentReservationsDoNotBlock(t *testing.T) {
	env := newTestEnv(testNow)
	env.setRepo.rows = []*domain.SystemSetting{
		{Key: domain.SettingTotalTables, Value: "1"},
	}
	// Бронирование 16:00-18:00 граничит с запрошенным 18:00-20:00
	env.resRepo.existing = []*domain.Reservation{
		{Time: "16:00", Status: domain.StatusConfirmed},
	}

	resp, err := env.uc.Execute(context.Background(), validRequest(SourceGuest))
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	env.mail.waitForSend(t)
}

func TestExecute_StoreFailureSendsNothing(t *testing.T) {
	env := newTestEnv(testNow)
	env.resRepo.createErr = errors.New("boom")

	_, err := env.uc.Execute(context.Background(), validRequest(SourceGuest))
	assert.ErrorIs(t, err, ErrInternal)
	env.mail.assertNoSend(t)
}

func TestValidateRequest(t *testing.T) {
	longString := func(n int) string {
		b := make([]byte, n)
		for i := range b {
			b[i] = 'a'
		}
		return string(b)
	}

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"unknown source", func(r *Request) { r.Source = "robot" }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"bad time format", func(r *Request) { r.Time = "6pm" }},
		{"empty name", func(r *Request) { r.Name = "   " }},
		{"name too long", func(r *Request) { r.Name = longString(domain.MaxNameLength + 1) }},
		{"empty email", func(r *Request) { r.Email = "" }},
		{"email without at", func(r *Request) { r.Email = "anna.example.com" }},
		{"email without domain dot", func(r *Request) { r.Email = "anna@example" }},
		{"zero guests", func(r *Request) { r.Guests = 0 }},
		{"special requests too long", func(r *Request) {
			s := longString(domain.MaxSpecialRequestsLength + 1)
			r.SpecialRequests = &s
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(SourceGuest)
			tt.mutate(req)
			assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
		})
	}

	assert.NoError(t, validateRequest(validRequest(SourceGuest)))
}
