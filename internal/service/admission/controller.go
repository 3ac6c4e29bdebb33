package admission

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// candidate is the working set shared by the validators of one admission
type candidate struct {
	res      *domain.Reservation
	resource domain.Resource
	existing []domain.Reservation
	days     []time.Time
	index    *dayIndex
	start    int // time units
	end      int
}

// validator returns nil or a *Rejection
type validator func(c *Controller, cand *candidate) *Rejection

// Controller decides whether a candidate reservation may join the store.
// Validators run in a fixed order and the first rejection wins; Admit never
// modifies its arguments.
type Controller struct {
	catalog    *domain.Catalog
	validators []validator
}

// NewController создает контроллер поверх неизменяемого каталога
func NewController(catalog *domain.Catalog) *Controller {
	return &Controller{
		catalog: catalog,
		validators: []validator{
			checkKnownKind,
			checkTemporal,
			checkAlignment,
			checkOperatingHours,
			checkExclusivity,
			checkDays,
			checkWeeklyQuota,
		},
	}
}

// Admit checks res against the existing reservations. It returns nil when the
// reservation is acceptable and a *Rejection otherwise.
func (c *Controller) Admit(res *domain.Reservation, existing []domain.Reservation) error {
	cand := &candidate{
		res:      res,
		existing: existing,
		start:    res.StartUnits(),
		end:      res.EndUnits(),
	}

	for _, v := range c.validators {
		if rej := v(c, cand); rej != nil {
			return rej
		}
	}
	return nil
}

// expand fills the covered days and the day index; called once the dates are
// known to be sane
func (cand *candidate) expand() {
	if cand.index != nil {
		return
	}
	cand.days = cand.res.Days()
	cand.index = newDayIndex(cand.days, cand.existing)
}
