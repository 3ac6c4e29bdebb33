package pricing

import (
	"fmt"
	"math"

	"github.com/m04kA/SMC-FacilityBooking/internal/calendar"
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// Quote is the price of an admitted reservation
type Quote struct {
	BaseCost        float64 // before discount
	TotalCost       float64
	DownPayment     float64
	DiscountPercent int
}

// Engine prices reservations from the catalog rate card
type Engine struct {
	catalog *domain.Catalog
}

func NewEngine(catalog *domain.Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Quote computes days x half hours x half-hour rate, the early booking
// discount and the down payment. Amounts are rounded to cents.
func (e *Engine) Quote(r *domain.Reservation) (Quote, error) {
	resource, ok := e.catalog.Resource(r.Kind)
	if !ok {
		return Quote{}, fmt.Errorf("%w: %s", ErrUnknownResource, r.Kind)
	}

	base := float64(r.DayCount()*r.HalfHours()) * resource.HalfHourRate()

	discount := 0
	if calendar.DaysBetween(r.CreatedOn, r.StartDate) >= e.catalog.Rules.DiscountLeadDays {
		discount = e.catalog.Rules.DiscountPercent
	}
	total := base * float64(100-discount) / 100

	return Quote{
		BaseCost:        roundCents(base),
		TotalCost:       roundCents(total),
		DownPayment:     roundCents(total * float64(resource.DownPaymentPercent) / 100),
		DiscountPercent: discount,
	}, nil
}

// Apply записывает цену в бронирование
func (q Quote) Apply(r *domain.Reservation) {
	r.TotalCost = q.TotalCost
	r.DownPayment = q.DownPayment
	r.DiscountPercent = q.DiscountPercent
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
