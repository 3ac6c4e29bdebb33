package ledger

import (
	"math"
	"sort"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/calendar"
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// RefundPolicy maps the gap between cancellation and start to a refund
// percent of the down payment
type RefundPolicy struct {
	tiers []domain.RefundTier // by MinDays, largest first
}

func NewRefundPolicy(tiers []domain.RefundTier) RefundPolicy {
	sorted := make([]domain.RefundTier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MinDays > sorted[j].MinDays
	})
	return RefundPolicy{tiers: sorted}
}

// Percent returns the refund percent for a cancellation gapDays before start
func (p RefundPolicy) Percent(gapDays int) int {
	for _, t := range p.tiers {
		if gapDays >= t.MinDays {
			return t.Percent
		}
	}
	return 0
}

// Refund returns the percent and the amount due for cancelling r on cancelDate
func (p RefundPolicy) Refund(r *domain.Reservation, cancelDate time.Time) (int, float64) {
	percent := p.Percent(calendar.DaysBetween(cancelDate, r.StartDate))
	amount := math.Round(r.DownPayment*float64(percent)) / 100
	return percent, amount
}
