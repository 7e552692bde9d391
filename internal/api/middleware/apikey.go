package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/barberbook/internal/api/handlers"
)

const msgInvalidAPIKey = "некорректный ключ API"

// APIKey проверяет публичный ключ API в заголовке apikey или X-API-Key
func APIKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("apikey")
			if got == "" {
				got = r.Header.Get("X-API-Key")
			}
			if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				handlers.RespondUnauthorized(w, msgInvalidAPIKey)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
