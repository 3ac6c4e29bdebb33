package handlers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FacilityBooking/internal/service/admission"
)

// RejectionStatus возвращает HTTP статус для категории отказа:
// некорректные данные и время 400, остальные правила 409
func RejectionStatus(err error) int {
	switch {
	case errors.Is(err, admission.ErrValidation), errors.Is(err, admission.ErrTemporal):
		return http.StatusBadRequest
	default:
		return http.StatusConflict
	}
}

// RespondRejection пишет отказ контроля допуска; code - код правила
func RespondRejection(w http.ResponseWriter, rej *admission.Rejection) {
	RespondErrorCode(w, RejectionStatus(rej), string(rej.Rule), rej.Detail)
}
