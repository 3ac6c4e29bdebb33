package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
)

type observed struct {
	method, route, status string
}

type metricsRecorder struct {
	mu   sync.Mutex
	seen []observed
}

func (m *metricsRecorder) ObserveHTTPRequest(method, route, status string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seen = append(m.seen, observed{method: method, route: route, status: status})
}

func TestRequestID_GeneratesAndPropagates(t *testing.T) {
	var fromCtx string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx, _ = GetRequestID(r.Context())
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	header := w.Header().Get(HeaderRequestID)
	_, err := uuid.Parse(header)
	require.NoError(t, err)
	assert.Equal(t, header, fromCtx)
}

func TestRequestID_KeepsIncomingUUID(t *testing.T) {
	incoming := uuid.NewString()
	h := RequestID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(HeaderRequestID, incoming)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, incoming, w.Header().Get(HeaderRequestID))
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	rec := &metricsRecorder{}
	router := mux.NewRouter()
	router.Use(Metrics(rec))
	router.HandleFunc("/reservations/{reservationId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodDelete)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/reservations/42", nil))

	require.Len(t, rec.seen, 1)
	assert.Equal(t, observed{method: "DELETE", route: "/reservations/{reservationId}", status: "404"}, rec.seen[0])
}

func TestRecovery(t *testing.T) {
	h := Recovery(logger.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal_error")
}
