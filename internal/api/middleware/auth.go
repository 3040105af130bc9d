package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/ateliernature/animations-booking/internal/api/handlers"
)

// Заголовок с админским токеном
const adminTokenHeader = "X-Admin-Token"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth закрывает админские маршруты статическим токеном из конфигурации
func Auth(token string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(adminTokenHeader)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				logger.Warn("Auth: rejected %s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)
				handlers.RespondError(w, http.StatusUnauthorized, "jeton d'administration invalide")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
