package admission

import (
	"errors"
	"fmt"
)

// Категории отказа; сопоставляются с HTTP статусами в обработчиках
var (
	// ErrValidation неизвестный ресурс или некорректные данные
	ErrValidation = errors.New("admission: validation error")

	// ErrTemporal бронирование в прошлом, за горизонтом, вне рабочих часов
	// или не на границе получаса
	ErrTemporal = errors.New("admission: temporal error")

	// ErrCapacity превышена вместимость ресурса в слоте
	ErrCapacity = errors.New("admission: capacity exceeded")

	// ErrCooldown нарушен период остывания оборудования
	ErrCooldown = errors.New("admission: cooldown violated")

	// ErrExclusivity у клиента уже есть пересекающееся бронирование машины
	ErrExclusivity = errors.New("admission: exclusivity violated")

	// ErrConcurrencyCeiling превышен лимит машин при работающем harvester
	ErrConcurrencyCeiling = errors.New("admission: concurrency ceiling exceeded")

	// ErrQuota превышена недельная квота дней клиента
	ErrQuota = errors.New("admission: weekly quota exceeded")
)

// Rule код правила, по которому отклонено бронирование
type Rule string

const (
	RuleKnownKind           Rule = "known_kind"
	RuleTemporal            Rule = "temporal"
	RuleAlignment           Rule = "half_hour_alignment"
	RuleOperatingHours      Rule = "operating_hours"
	RuleExclusivity         Rule = "exclusivity"
	RuleCapacity            Rule = "capacity"
	RuleIrradiatorSingleUse Rule = "irradiator_single_use"
	RuleHarvesterCeiling    Rule = "harvester_ceiling"
	RuleCrusherCooldown     Rule = "crusher_cooldown"
	RuleIrradiatorCooldown  Rule = "irradiator_cooldown"
	RuleWeeklyQuota         Rule = "weekly_quota"
)

// Rejection is returned by Admit when a candidate is refused.
// errors.Is matches it against its category sentinel.
type Rejection struct {
	Rule   Rule
	Kind   error
	Detail string
}

func (r *Rejection) Error() string {
	return r.Detail
}

func (r *Rejection) Unwrap() error {
	return r.Kind
}

func reject(rule Rule, kind error, format string, args ...interface{}) *Rejection {
	return &Rejection{
		Rule:   rule,
		Kind:   kind,
		Detail: fmt.Sprintf(format, args...),
	}
}

// AsRejection извлекает Rejection из цепочки ошибок
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}
