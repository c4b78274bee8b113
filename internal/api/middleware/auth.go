package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/Barbershop-BookingService/internal/api/handlers"
)

const adminTokenHeader = "X-Admin-Token"

const msgUnauthorized = "недействительный административный токен"

// AdminAuth проверяет административный токен в заголовке X-Admin-Token.
// Сравнение токенов выполняется за постоянное время.
type AdminAuth struct {
	token  string
	logger Logger
}

// NewAdminAuth создает middleware проверки административного токена
func NewAdminAuth(token string, logger Logger) *AdminAuth {
	return &AdminAuth{
		token:  token,
		logger: logger,
	}
}

// Middleware возвращает HTTP middleware для защищённых маршрутов
func (a *AdminAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := r.Header.Get(adminTokenHeader)
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(a.token)) != 1 {
			a.logger.Warn("AdminAuth: rejected request to %s %s", r.Method, r.URL.Path)
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
