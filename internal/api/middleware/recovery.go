package middleware

import (
	"net/http"
	"runtime/debug"
)

// Recovery перехватывает панику обработчика и отвечает 500
func Recovery(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					requestID, _ := GetRequestID(r.Context())
					logger.Error("Panic recovered: request_id=%s, method=%s, path=%s, error=%v\n%s",
						requestID, r.Method, r.URL.Path, err, debug.Stack())

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(`{"code":"internal_error","message":"внутренняя ошибка сервера"}`))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
