package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testPayload() ReservationPayload {
	phone := "+7 900 123-45-67"
	wishes := "столик у окна"
	return ReservationPayload{
		Name:            "Анна Смирнова",
		Email:           "anna@example.com",
		Phone:           &phone,
		Guests:          2,
		Date:            "2026-09-15",
		Time:            "18:30",
		SpecialRequests: &wishes,
	}
}

func TestSendReservationEmail_Received(t *testing.T) {
	var requests []sendRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test_key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req sendRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		requests = append(requests, req)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "re_test_key", "noreply@gourmet-haven.example", "owner@gourmet-haven.example", 5*time.Second, noopLogger{})

	err := client.SendReservationEmail(context.Background(), KindReceived, testPayload())
	require.NoError(t, err)

	// Заявка принята: два письма - гостю и ресторану
	require.Len(t, requests, 2)

	guest := requests[0]
	assert.Equal(t, "noreply@gourmet-haven.example", guest.From)
	assert.Equal(t, "anna@example.com", guest.To)
	assert.Contains(t, guest.HTML, "Анна Смирнова")
	assert.Contains(t, guest.HTML, "18:30")

	notify := requests[1]
	assert.Equal(t, "owner@gourmet-haven.example", notify.To)
	assert.Contains(t, notify.Subject, "Анна Смирнова")
}

func TestSendReservationEmail_SingleEmailKinds(t *testing.T) {
	tests := []struct {
		kind Kind
	}{
		{KindConfirmed},
		{KindDeclined},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			var requests []sendRequest

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var req sendRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				requests = append(requests, req)
				w.WriteHeader(http.StatusOK)
			}))
			defer srv.Close()

			client := NewClient(srv.URL, "re_test_key", "noreply@gourmet-haven.example", "owner@gourmet-haven.example", 5*time.Second, noopLogger{})

			err := client.SendReservationEmail(context.Background(), tt.kind, testPayload())
			require.NoError(t, err)

			require.Len(t, requests, 1)
			assert.Equal(t, "anna@example.com", requests[0].To)
		})
	}
}

func TestSendReservationEmail_DisabledIsNoop(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no requests expected when mailer is disabled")
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", "noreply@gourmet-haven.example", "owner@gourmet-haven.example", 5*time.Second, noopLogger{})
	assert.False(t, client.Enabled())

	err := client.SendReservationEmail(context.Background(), KindReceived, testPayload())
	assert.NoError(t, err)
}

func TestSendReservationEmail_UnknownKind(t *testing.T) {
	client := NewClient("http://localhost", "re_test_key", "from@example.com", "owner@example.com", 5*time.Second, noopLogger{})

	err := client.SendReservationEmail(context.Background(), "newsletter", testPayload())
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestSendReservationEmail_APIErrorSurfacedWhenNothingSent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid api key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "re_bad_key", "from@example.com", "owner@example.com", 5*time.Second, noopLogger{})

	err := client.SendReservationEmail(context.Background(), KindConfirmed, testPayload())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestSendReservationEmail_PartialFailureIsNotAnError(t *testing.T) {
	// Первое письмо проходит, второе - нет: набор считается отправленным
	var calls int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls > 1 {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "re_test_key", "from@example.com", "owner@example.com", 5*time.Second, noopLogger{})

	err := client.SendReservationEmail(context.Background(), KindReceived, testPayload())
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}
