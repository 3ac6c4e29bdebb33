package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// Request модель запроса на получение свободных слотов ресурса
type Request struct {
	Resource string // вид ресурса, допускается "hvc"
	Date     string // mm-dd-yyyy
}

// Response модель ответа со списком слотов
type Response struct {
	Date     time.Time
	Resource domain.ResourceKind
	Open     bool // false, если в этот день объект закрыт
	Slots    []domain.AvailableSlot
}
