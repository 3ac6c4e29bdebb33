package cancel_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	cancelReservation "github.com/m04kA/SMC-FacilityBooking/internal/usecase/cancel_reservation"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
)

type mockUseCase struct {
	executeFunc func(ctx context.Context, req *cancelReservation.Request) (*cancelReservation.Response, error)
}

func (m *mockUseCase) Execute(ctx context.Context, req *cancelReservation.Request) (*cancelReservation.Response, error) {
	return m.executeFunc(ctx, req)
}

func serve(h *Handler, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/reservations/{reservationId}", h.Handle).Methods(http.MethodDelete)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, path, nil))
	return w
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		resp       *cancelReservation.Response
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "cancelled",
			path:       "/reservations/3",
			resp:       &cancelReservation.Response{ReservationID: 3, PercentReturned: 75, RefundAmount: 281.25},
			wantStatus: http.StatusOK,
			wantBody:   `{"reservation_id":3,"percent_returned":75,"refund_amount":281.25}`,
		},
		{name: "not found", path: "/reservations/42", err: cancelReservation.ErrReservationNotFound, wantStatus: http.StatusNotFound},
		{name: "bad id", path: "/reservations/abc", wantStatus: http.StatusBadRequest},
		{name: "zero id", path: "/reservations/0", wantStatus: http.StatusBadRequest},
		{name: "internal", path: "/reservations/3", err: cancelReservation.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&mockUseCase{
				executeFunc: func(context.Context, *cancelReservation.Request) (*cancelReservation.Response, error) {
					return tt.resp, tt.err
				},
			}, logger.NewNop())

			w := serve(h, tt.path)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}
