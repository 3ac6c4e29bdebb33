package domain

// Default rule values
const (
	DefaultHorizonDays             = 30
	DefaultDiscountLeadDays        = 14
	DefaultDiscountPercent         = 25
	DefaultWeeklyDayQuota          = 3
	DefaultHarvesterConcurrency    = 4
	DefaultCrusherCooldownUnits    = 60 // 6 hours
	DefaultIrradiatorCooldownUnits = 10 // 1 hour
	DefaultIrradiatorCooldownUses  = 2
)

// SlotMinutes is the booking granularity
const SlotMinutes = 30

// SlotUnits is the width of one slot in time units, 10 per hour (see types.TimeString.Units)
const SlotUnits = 5
