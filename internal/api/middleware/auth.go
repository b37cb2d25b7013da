package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/GH-ReservationService/internal/api/handlers"
)

const (
	// HeaderAdminToken заголовок с токеном доступа к админским ручкам
	HeaderAdminToken = "X-Admin-Token"

	msgMissingToken = "требуется заголовок X-Admin-Token"
	msgInvalidToken = "недействительный токен администратора"
)

// Auth возвращает middleware, пропускающий только запросы с валидным
// админским токеном. Сравнение токенов за константное время.
func Auth(adminToken string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(HeaderAdminToken)
			if token == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			if subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) != 1 {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
