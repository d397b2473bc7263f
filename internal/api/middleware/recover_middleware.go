package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/api"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/apperr"
	"github.com/rs/zerolog/log"
)

// 捕捉handler panic, 回傳500並記錄stack
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Str("request_id", getRequestID(r)).
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")
				api.ErrorJSON(w, http.StatusInternalServerError,
					apperr.New(apperr.InternalErrorCode, "internal server error"), "")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
