package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// Resource describes one bookable kind: how many can run at once and what it costs
type Resource struct {
	Kind     ResourceKind
	Capacity int

	// HourlyRate is billed per half hour as HourlyRate/2, unless
	// BillPerHalfHour is set, in which case the full rate applies to each
	// half hour.
	HourlyRate      float64
	BillPerHalfHour bool

	DownPaymentPercent int
}

// HalfHourRate returns the price of one 30-minute block
func (r Resource) HalfHourRate() float64 {
	if r.BillPerHalfHour {
		return r.HourlyRate
	}
	return r.HourlyRate / 2
}

// DayWindow is the open interval of a single weekday.
// A zero window means the facility is closed that day.
type DayWindow struct {
	Open  types.TimeString
	Close types.TimeString
}

// IsClosed returns true if nothing can be booked on that day
func (w DayWindow) IsClosed() bool {
	return w.Open.IsZero() || w.Close.IsZero()
}

// Contains returns true if [start, end) fits inside the window
func (w DayWindow) Contains(start, end types.TimeString) bool {
	if w.IsClosed() {
		return false
	}
	return start.Units() >= w.Open.Units() && end.Units() <= w.Close.Units()
}

// OperatingHours maps each weekday to its window
type OperatingHours map[time.Weekday]DayWindow

// WindowFor returns the window of the given date's weekday
func (h OperatingHours) WindowFor(day time.Time) DayWindow {
	return h[day.Weekday()]
}

// Rules holds the numeric constants of the admission and pricing rules
type Rules struct {
	HorizonDays             int // bookings may end at most this many days after creation
	DiscountLeadDays        int // creation this many days before start earns the discount
	DiscountPercent         int
	WeeklyDayQuota          int // distinct days per ISO week per customer
	HarvesterConcurrency    int // non-workshop reservations allowed while a harvester runs
	CrusherCooldownUnits    int // padding either side of a crusher booking, in time units
	IrradiatorCooldownUnits int // padding either side of an irradiator booking, in time units
	IrradiatorCooldownUses  int // overlapping irradiators in the padded window that reject
	RefundTiers             []RefundTier
}

// RefundTier returns Percent of the down payment when the cancellation
// happens at least MinDays before the start date.
type RefundTier struct {
	MinDays int
	Percent int
}

// Catalog is the immutable configuration injected into admission and pricing
type Catalog struct {
	resources map[ResourceKind]Resource
	Hours     OperatingHours
	Rules     Rules
}

// NewCatalog builds a catalog and checks that every kind is described
func NewCatalog(resources []Resource, hours OperatingHours, rules Rules) (*Catalog, error) {
	byKind := make(map[ResourceKind]Resource, len(resources))
	for _, r := range resources {
		if !r.Kind.IsKnown() {
			return nil, fmt.Errorf("catalog: unknown resource kind %q", r.Kind)
		}
		if r.Capacity < 1 {
			return nil, fmt.Errorf("catalog: %s capacity must be positive", r.Kind)
		}
		if r.HourlyRate < 0 {
			return nil, fmt.Errorf("catalog: %s rate must not be negative", r.Kind)
		}
		if r.DownPaymentPercent < 0 || r.DownPaymentPercent > 100 {
			return nil, fmt.Errorf("catalog: %s down payment percent out of range", r.Kind)
		}
		byKind[r.Kind] = r
	}
	for _, k := range AllKinds {
		if _, ok := byKind[k]; !ok {
			return nil, fmt.Errorf("catalog: resource %q is not configured", k)
		}
	}

	return &Catalog{
		resources: byKind,
		Hours:     hours,
		Rules:     rules,
	}, nil
}

// Resource returns the description of a kind
func (c *Catalog) Resource(kind ResourceKind) (Resource, bool) {
	r, ok := c.resources[kind]
	return r, ok
}

// Resources returns all resources in catalog order
func (c *Catalog) Resources() []Resource {
	out := make([]Resource, 0, len(AllKinds))
	for _, k := range AllKinds {
		out = append(out, c.resources[k])
	}
	return out
}

// DefaultCatalog returns the facility's standard rate card and rules
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultResources(), DefaultOperatingHours(), DefaultRules())
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultResources returns the standard capacities and prices
func DefaultResources() []Resource {
	return []Resource{
		{Kind: KindWorkshop, Capacity: 15, HourlyRate: 99, DownPaymentPercent: 0},
		{Kind: KindMicrovac, Capacity: 2, HourlyRate: 1000, DownPaymentPercent: 50},
		{Kind: KindIrradiator, Capacity: 2, HourlyRate: 2220, DownPaymentPercent: 50},
		{Kind: KindExtruder, Capacity: 3, HourlyRate: 600, DownPaymentPercent: 50},
		{Kind: KindCrusher, Capacity: 1, HourlyRate: 10000, BillPerHalfHour: true, DownPaymentPercent: 50},
		{Kind: KindHarvester, Capacity: 1, HourlyRate: 8800, DownPaymentPercent: 50},
	}
}

// DefaultOperatingHours returns closed Sundays, short Saturdays and 9-18 weekdays
func DefaultOperatingHours() OperatingHours {
	weekday := DayWindow{Open: "09:00", Close: "18:00"}
	return OperatingHours{
		time.Monday:    weekday,
		time.Tuesday:   weekday,
		time.Wednesday: weekday,
		time.Thursday:  weekday,
		time.Friday:    weekday,
		time.Saturday:  {Open: "10:00", Close: "16:00"},
		time.Sunday:    {},
	}
}

// DefaultRules returns the standard rule constants
func DefaultRules() Rules {
	return Rules{
		HorizonDays:             DefaultHorizonDays,
		DiscountLeadDays:        DefaultDiscountLeadDays,
		DiscountPercent:         DefaultDiscountPercent,
		WeeklyDayQuota:          DefaultWeeklyDayQuota,
		HarvesterConcurrency:    DefaultHarvesterConcurrency,
		CrusherCooldownUnits:    DefaultCrusherCooldownUnits,
		IrradiatorCooldownUnits: DefaultIrradiatorCooldownUnits,
		IrradiatorCooldownUses:  DefaultIrradiatorCooldownUses,
		RefundTiers: []RefundTier{
			{MinDays: 7, Percent: 75},
			{MinDays: 2, Percent: 50},
		},
	}
}
