package middleware

import (
	"net/http"
	"strings"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/api"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/apperr"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/service"
)

// AdminAuthMiddleware 驗證後台session token
// Authorization: Bearer <token>
func AdminAuthMiddleware(sessionService service.ISessionService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				api.ErrorJSON(w, http.StatusUnauthorized,
					apperr.New(apperr.UnauthenticatedCode, "missing authorization header"), "")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				api.ErrorJSON(w, http.StatusUnauthorized,
					apperr.New(apperr.UnauthenticatedCode, "invalid authorization format"), "")
				return
			}

			if err := sessionService.Validate(r.Context(), parts[1]); err != nil {
				api.ErrorJSON(w, http.StatusUnauthorized, err, "")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
