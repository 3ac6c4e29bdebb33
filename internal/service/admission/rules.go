package admission

import (
	"github.com/m04kA/SMC-FacilityBooking/internal/calendar"
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

func checkKnownKind(c *Controller, cand *candidate) *Rejection {
	resource, ok := c.catalog.Resource(cand.res.Kind)
	if !ok {
		return reject(RuleKnownKind, ErrValidation, "Unsupported resource: %s", cand.res.Kind)
	}
	cand.resource = resource
	return nil
}

func checkTemporal(c *Controller, cand *candidate) *Rejection {
	r := cand.res

	if calendar.DaysBetween(r.CreatedOn, r.StartDate) < 0 {
		return reject(RuleTemporal, ErrTemporal, "Cannot reserve time already passed.")
	}
	if calendar.DaysBetween(r.CreatedOn, r.EndDate) > c.catalog.Rules.HorizonDays {
		return reject(RuleTemporal, ErrTemporal, "Cannot reserve time more than %d days away.", c.catalog.Rules.HorizonDays)
	}
	if r.EndDate.Before(r.StartDate) {
		return reject(RuleTemporal, ErrTemporal, "End date %s is before start date %s",
			calendar.FormatDate(r.EndDate), calendar.FormatDate(r.StartDate))
	}
	if r.StartTime.Minutes() >= r.EndTime.Minutes() {
		return reject(RuleTemporal, ErrTemporal, "Start time %s must be before end time %s", r.StartTime, r.EndTime)
	}
	return nil
}

func checkAlignment(_ *Controller, cand *candidate) *Rejection {
	if !cand.res.StartTime.OnHalfHour() || !cand.res.EndTime.OnHalfHour() {
		return reject(RuleAlignment, ErrTemporal,
			"Reservations for all resources are made in 30 minute blocks and always start on the hour or half hour")
	}
	return nil
}

func checkOperatingHours(c *Controller, cand *candidate) *Rejection {
	cand.expand()
	for _, day := range cand.days {
		if !c.catalog.Hours.WindowFor(day).Contains(cand.res.StartTime, cand.res.EndTime) {
			return reject(RuleOperatingHours, ErrTemporal, "Cannot reserve time interval from %s to %s on %s",
				cand.res.StartTime, cand.res.EndTime, day.Format("2006-01-02"))
		}
	}
	return nil
}

// checkExclusivity: one machine per customer at a time. Workshop bookings are
// not machines, on either side.
func checkExclusivity(_ *Controller, cand *candidate) *Rejection {
	if !cand.res.Kind.IsSpecial() {
		return nil
	}
	for i := range cand.days {
		for _, r := range cand.index.on(i) {
			if r.CustomerID != cand.res.CustomerID || !r.Kind.IsSpecial() {
				continue
			}
			if r.OverlapsUnits(cand.start, cand.end) {
				return reject(RuleExclusivity, ErrExclusivity, "A client can only reserve one special machine at a time")
			}
		}
	}
	return nil
}

// checkDays runs the per-day rules day by day: slot rules, then the cooldowns
func checkDays(c *Controller, cand *candidate) *Rejection {
	for i := range cand.days {
		onDay := cand.index.on(i)
		if rej := checkSlots(c, cand, onDay); rej != nil {
			return rej
		}
		if cand.res.Kind == domain.KindCrusher {
			if rej := checkCrusherCooldown(c, cand, onDay); rej != nil {
				return rej
			}
		}
		if cand.res.Kind == domain.KindIrradiator {
			if rej := checkIrradiatorCooldown(c, cand, onDay); rej != nil {
				return rej
			}
		}
	}
	return nil
}

// checkSlots steps through the interval in 30-minute slots
func checkSlots(c *Controller, cand *candidate, onDay []*domain.Reservation) *Rejection {
	kind := cand.res.Kind
	for t := cand.start; t < cand.end; t += domain.SlotUnits {
		sameKind := 0
		machines := 0
		harvesterActive := kind == domain.KindHarvester
		for _, r := range onDay {
			if !r.ActiveAt(t) {
				continue
			}
			if r.Kind == domain.KindHarvester {
				harvesterActive = true
			}
			if r.Kind.IsSpecial() {
				machines++
			}
			if r.Kind == kind {
				sameKind++
			}
		}

		if sameKind+1 > cand.resource.Capacity {
			return reject(RuleCapacity, ErrCapacity, "Not enough available %s, %d already reserved", kind, sameKind)
		}
		if kind == domain.KindIrradiator && sameKind == 1 {
			return reject(RuleIrradiatorSingleUse, ErrCapacity, "Only 1 irradiator can be used at a time")
		}

		if kind.IsSpecial() {
			machines++
		}
		if harvesterActive && machines > c.catalog.Rules.HarvesterConcurrency {
			return reject(RuleHarvesterCeiling, ErrConcurrencyCeiling,
				"Only %d other machines can run while the 1.21 gigawatt lightning harvester is operating",
				c.catalog.Rules.HarvesterConcurrency-1)
		}
	}
	return nil
}

func checkCrusherCooldown(c *Controller, cand *candidate, onDay []*domain.Reservation) *Rejection {
	pad := c.catalog.Rules.CrusherCooldownUnits
	for _, r := range onDay {
		if r.Kind != domain.KindCrusher {
			continue
		}
		if r.OverlapsUnits(cand.start-pad, cand.end+pad) {
			return reject(RuleCrusherCooldown, ErrCooldown,
				"High velocity crusher needs to cool down for %d hours between uses, hvc currently reserved for %s-%s.",
				pad/10, r.StartTime, r.EndTime)
		}
	}
	return nil
}

func checkIrradiatorCooldown(c *Controller, cand *candidate, onDay []*domain.Reservation) *Rejection {
	pad := c.catalog.Rules.IrradiatorCooldownUnits
	overlapping := 0
	for _, r := range onDay {
		if r.Kind == domain.KindIrradiator && r.OverlapsUnits(cand.start-pad, cand.end+pad) {
			overlapping++
		}
	}
	if overlapping >= c.catalog.Rules.IrradiatorCooldownUses {
		return reject(RuleIrradiatorCooldown, ErrCooldown, "Irradiators need to cool down for 1 hour between uses")
	}
	return nil
}

// checkWeeklyQuota counts distinct booked days per ISO week for the customer
func checkWeeklyQuota(c *Controller, cand *candidate) *Rejection {
	weeks := make(map[calendar.WeekKey]map[int64]struct{})
	add := func(day int64, week calendar.WeekKey) {
		days, ok := weeks[week]
		if !ok {
			days = make(map[int64]struct{})
			weeks[week] = days
		}
		days[day] = struct{}{}
	}

	for i := range cand.existing {
		r := &cand.existing[i]
		if r.CustomerID != cand.res.CustomerID {
			continue
		}
		for _, day := range r.Days() {
			add(day.Unix(), calendar.WeekOf(day))
		}
	}
	for _, day := range cand.days {
		add(day.Unix(), calendar.WeekOf(day))
	}

	for _, days := range weeks {
		if len(days) > c.catalog.Rules.WeeklyDayQuota {
			return reject(RuleWeeklyQuota, ErrQuota,
				"A client can only make reservations for %d different days in a given week", c.catalog.Rules.WeeklyDayQuota)
		}
	}
	return nil
}
