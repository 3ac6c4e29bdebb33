package create_reservation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/admission"
	createReservation "github.com/m04kA/SMC-FacilityBooking/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
)

type mockUseCase struct {
	executeFunc func(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error)
}

func (m *mockUseCase) Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	return m.executeFunc(ctx, req)
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_Created(t *testing.T) {
	var got *createReservation.Request
	h := NewHandler(&mockUseCase{
		executeFunc: func(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
			got = req
			return &createReservation.Response{ReservationID: 7, DiscountPercent: 25, TotalCost: 750, DownPayment: 375}, nil
		},
	}, logger.NewNop())

	w := post(h, `{"customer_id":"alice","resource":"microvac","start_date":"05-16-2022","start_time":"10:00","end_time":"11:00"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"reservation_id":7,"discount_percent":25,"total_cost":750,"down_payment":375}`, w.Body.String())

	require.NotNil(t, got)
	assert.Equal(t, "alice", got.CustomerID)
	assert.Nil(t, got.EndDate)
	require.NotNil(t, got.EndTime)
	assert.Equal(t, "11:00", *got.EndTime)
}

func TestHandle_Errors(t *testing.T) {
	valid := `{"customer_id":"alice","resource":"microvac","start_date":"05-02-2022","start_time":"10:00"}`

	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "missing field", body: `{"customer_id":"alice"}`, wantStatus: http.StatusBadRequest, wantCode: "bad_request"},
		{name: "invalid input", body: valid, err: fmt.Errorf("%w: start date", createReservation.ErrInvalidInput), wantStatus: http.StatusBadRequest, wantCode: "bad_request"},
		{
			name:       "temporal rejection",
			body:       valid,
			err:        &admission.Rejection{Rule: admission.RuleOperatingHours, Kind: admission.ErrTemporal, Detail: "Cannot reserve time interval from 08:00 to 09:00 on 2022-05-02"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "operating_hours",
		},
		{
			name:       "quota rejection",
			body:       valid,
			err:        &admission.Rejection{Rule: admission.RuleWeeklyQuota, Kind: admission.ErrQuota, Detail: "A client can only make reservations for 3 different days in a given week"},
			wantStatus: http.StatusConflict,
			wantCode:   "weekly_quota",
		},
		{name: "internal", body: valid, err: createReservation.ErrInternal, wantStatus: http.StatusInternalServerError, wantCode: "internal_error"},
		{name: "unexpected", body: valid, err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&mockUseCase{
				executeFunc: func(context.Context, *createReservation.Request) (*createReservation.Response, error) {
					return nil, tt.err
				},
			}, logger.NewNop())

			w := post(h, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			if rej, ok := admission.AsRejection(tt.err); ok {
				assert.Equal(t, rej.Detail, body.Message)
			}
		})
	}
}
