package middleware

import (
	"context"
	"net/http"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/constants"
	"github.com/google/uuid"
)

// SessionMiddleware 購物車session識別
// 前端沒帶session id就發一個新的  同時回寫到response header讓前端存起來
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(constants.SessionIDHeader)
		if sessionID == "" {
			sessionID = uuid.New().String()
		}
		w.Header().Set(constants.SessionIDHeader, sessionID)

		ctx := context.WithValue(r.Context(), constants.SessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionIDFromContext 從請求上下文取出session id
func GetSessionIDFromContext(ctx context.Context) string {
	if v := ctx.Value(constants.SessionIDKey); v != nil {
		return v.(string)
	}
	return ""
}
