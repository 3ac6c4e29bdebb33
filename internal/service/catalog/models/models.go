package models

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// ResourceResponse описание ресурса и его тарифа
type ResourceResponse struct {
	Resource           string  `json:"resource"`
	Capacity           int     `json:"capacity"`
	HourlyRate         float64 `json:"hourly_rate"`
	HalfHourRate       float64 `json:"half_hour_rate"`
	DownPaymentPercent int     `json:"down_payment_percent"`
}

// HoursResponse окно работы на день недели
type HoursResponse struct {
	Weekday string  `json:"weekday"`
	Open    *string `json:"open,omitempty"` // nil, если выходной
	Close   *string `json:"close,omitempty"`
}

// RefundTierResponse ступень возврата предоплаты
type RefundTierResponse struct {
	MinDays int `json:"min_days"`
	Percent int `json:"percent"`
}

// RulesResponse числовые параметры правил
type RulesResponse struct {
	HorizonDays          int                  `json:"horizon_days"`
	DiscountLeadDays     int                  `json:"discount_lead_days"`
	DiscountPercent      int                  `json:"discount_percent"`
	WeeklyDayQuota       int                  `json:"weekly_day_quota"`
	HarvesterConcurrency int                  `json:"harvester_concurrency"`
	RefundTiers          []RefundTierResponse `json:"refund_tiers"`
}

// CatalogResponse каталог ресурсов, часы работы и правила
type CatalogResponse struct {
	Resources []ResourceResponse `json:"resources"`
	Hours     []HoursResponse    `json:"hours"`
	Rules     RulesResponse      `json:"rules"`
}

// weekOrder порядок дней недели в ответе, с понедельника
var weekOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// FromDomainResource конвертирует ресурс каталога
func FromDomainResource(r domain.Resource) ResourceResponse {
	return ResourceResponse{
		Resource:           string(r.Kind),
		Capacity:           r.Capacity,
		HourlyRate:         r.HourlyRate,
		HalfHourRate:       r.HalfHourRate(),
		DownPaymentPercent: r.DownPaymentPercent,
	}
}

// FromDomainCatalog конвертирует каталог целиком
func FromDomainCatalog(c *domain.Catalog) *CatalogResponse {
	resources := make([]ResourceResponse, 0, len(domain.AllKinds))
	for _, r := range c.Resources() {
		resources = append(resources, FromDomainResource(r))
	}

	hours := make([]HoursResponse, 0, len(weekOrder))
	for _, day := range weekOrder {
		w := c.Hours[day]
		h := HoursResponse{Weekday: day.String()}
		if !w.IsClosed() {
			open, closeAt := w.Open.String(), w.Close.String()
			h.Open = &open
			h.Close = &closeAt
		}
		hours = append(hours, h)
	}

	tiers := make([]RefundTierResponse, 0, len(c.Rules.RefundTiers))
	for _, t := range c.Rules.RefundTiers {
		tiers = append(tiers, RefundTierResponse{MinDays: t.MinDays, Percent: t.Percent})
	}

	return &CatalogResponse{
		Resources: resources,
		Hours:     hours,
		Rules: RulesResponse{
			HorizonDays:          c.Rules.HorizonDays,
			DiscountLeadDays:     c.Rules.DiscountLeadDays,
			DiscountPercent:      c.Rules.DiscountPercent,
			WeeklyDayQuota:       c.Rules.WeeklyDayQuota,
			HarvesterConcurrency: c.Rules.HarvesterConcurrency,
			RefundTiers:          tiers,
		},
	}
}
