package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuth(t *testing.T) {
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	handler := Auth("secret-token")(next)

	tests := []struct {
		name       string
		token      string
		wantCode   int
		wantCalled bool
	}{
		{"valid token", "secret-token", http.StatusOK, true},
		{"missing token", "", http.StatusUnauthorized, false},
		{"invalid token", "wrong-token", http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called = false

			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/reservations", nil)
			if tt.token != "" {
				req.Header.Set(HeaderAdminToken, tt.token)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
		})
	}
}
