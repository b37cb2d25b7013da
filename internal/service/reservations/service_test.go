package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GH-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/GH-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/GH-ReservationService/internal/integrations/mailer"
	"github.com/m04kA/GH-ReservationService/internal/service/reservations/models"
	"github.com/m04kA/GH-ReservationService/pkg/ptr"
)

// --- mocks ---

type mockReservationRepo struct {
	byID          map[int64]*domain.Reservation
	updatedStatus *domain.ReservationStatus
	deletedID     *int64
}

func newMockRepo(reservations ...*domain.Reservation) *mockReservationRepo {
	m := &mockReservationRepo{byID: make(map[int64]*domain.Reservation)}
	for _, r := range reservations {
		m.byID[r.ID] = r
	}
	return m
}

func (m *mockReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := m.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *r
	return &copied, nil
}

func (m *mockReservationRepo) GetWithFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	out := make([]*domain.Reservation, 0, len(m.byID))
	for _, r := range m.byID {
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *mockReservationRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	r, ok := m.byID[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	r.Status = status
	m.updatedStatus = &status
	return nil
}

func (m *mockReservationRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.byID[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	delete(m.byID, id)
	m.deletedID = &id
	return nil
}

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

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// --- helpers ---

func pendingReservation(id int64) *domain.Reservation {
	return &domain.Reservation{
		ID:     id,
		Date:   time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Time:   "18:30",
		Name:   "Анна Смирнова",
		Email:  "anna@example.com",
		Guests: 2,
		Status: domain.StatusPending,
	}
}

// --- tests ---

func TestUpdateStatus_ToggleWithoutExplicitStatus(t *testing.T) {
	repo := newMockRepo(pendingReservation(1))
	mail := newMockMailer()
	svc := NewService(repo, mail, noopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)

	// Повторное переключение возвращает к pending
	resp, err = svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	mail.assertNoSend(t)
}

func TestUpdateStatus_ExplicitStatusIsIdempotent(t *testing.T) {
	repo := newMockRepo(pendingReservation(1))
	svc := NewService(repo, newMockMailer(), noopLogger{})

	req := &models.UpdateStatusRequest{Status: ptr.Ptr("confirmed")}

	resp, err := svc.UpdateStatus(context.Background(), 1, req)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)

	// Повторная установка того же статуса ничего не ломает
	resp, err = svc.UpdateStatus(context.Background(), 1, req)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestUpdateStatus_NotifyMapsStatusToEmailKind(t *testing.T) {
	tests := []struct {
		name     string
		initial  domain.ReservationStatus
		request  *models.UpdateStatusRequest
		wantKind mailer.Kind
	}{
		{
			name:     "confirming sends confirmation email",
			initial:  domain.StatusPending,
			request:  &models.UpdateStatusRequest{Status: ptr.Ptr("confirmed"), Notify: true},
			wantKind: mailer.KindConfirmed,
		},
		{
			name:     "declining back to pending sends decline email",
			initial:  domain.StatusConfirmed,
			request:  &models.UpdateStatusRequest{Status: ptr.Ptr("pending"), Notify: true},
			wantKind: mailer.KindDeclined,
		},
		{
			name:     "toggle with notify follows the new status",
			initial:  domain.StatusPending,
			request:  &models.UpdateStatusRequest{Notify: true},
			wantKind: mailer.KindConfirmed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := pendingReservation(1)
			res.Status = tt.initial
			repo := newMockRepo(res)
			mail := newMockMailer()
			svc := NewService(repo, mail, noopLogger{})

			_, err := svc.UpdateStatus(context.Background(), 1, tt.request)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, mail.waitForSend(t))
		})
	}
}

func TestUpdateStatus_InvalidStatusRejected(t *testing.T) {
	repo := newMockRepo(pendingReservation(1))
	svc := NewService(repo, newMockMailer(), noopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: ptr.Ptr("cancelled")})
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Nil(t, repo.updatedStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := NewService(newMockRepo(), newMockMailer(), noopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 99, &models.UpdateStatusRequest{})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestList_FiltersByStatus(t *testing.T) {
	confirmed := pendingReservation(2)
	confirmed.Status = domain.StatusConfirmed
	repo := newMockRepo(pendingReservation(1), confirmed)
	svc := NewService(repo, newMockMailer(), noopLogger{})

	resp, err := svc.List(context.Background(), &models.ListReservationsRequest{Status: ptr.Ptr("pending")})
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, int64(1), resp.Reservations[0].ID)
}

func TestList_InvalidStatusFilter(t *testing.T) {
	svc := NewService(newMockRepo(), newMockMailer(), noopLogger{})

	_, err := svc.List(context.Background(), &models.ListReservationsRequest{Status: ptr.Ptr("archived")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	repo := newMockRepo(pendingReservation(1))
	svc := NewService(repo, newMockMailer(), noopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 1))
	require.NotNil(t, repo.deletedID)
	assert.Equal(t, int64(1), *repo.deletedID)

	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrReservationNotFound)
}
