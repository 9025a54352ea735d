package entities

import (
	"strings"
	"time"
)

// UrgencyLevel classifies how overdue a recurring service is.
type UrgencyLevel string

const (
	UrgencyLow     UrgencyLevel = "low"
	UrgencyMedium  UrgencyLevel = "medium"
	UrgencyHigh    UrgencyLevel = "high"
	UrgencyOverdue UrgencyLevel = "overdue"
)

// Rank orders urgency levels for sorting: overdue > high > medium > low.
func (u UrgencyLevel) Rank() int {
	switch u {
	case UrgencyOverdue:
		return 4
	case UrgencyHigh:
		return 3
	case UrgencyMedium:
		return 2
	case UrgencyLow:
		return 1
	default:
		return 0
	}
}

// MaintenanceCycle is the per-category triple of year thresholds.
// A service is "medium" once Early years have elapsed, "high" once Standard
// have, and "overdue" once Late have (lower bounds inclusive).
type MaintenanceCycle struct {
	Early    float64 `json:"early"`
	Standard float64 `json:"standard"`
	Late     float64 `json:"late"`
}

// CycleTableOtherKey is the mandatory fallback entry for categories that have
// no dedicated cycle (and for records with no service type at all).
const CycleTableOtherKey = "other"

// CycleTable maps a normalized (lowercase) category to its maintenance cycle.
type CycleTable map[string]MaintenanceCycle

// Lookup resolves the cycle for a free-form category label, falling back to
// the "other" entry for unknown categories.
func (t CycleTable) Lookup(serviceType string) (string, MaintenanceCycle) {
	key := NormalizeServiceType(serviceType)
	if cycle, ok := t[key]; ok {
		return key, cycle
	}
	return CycleTableOtherKey, t[CycleTableOtherKey]
}

// NormalizeServiceType lowercases and trims a category label; empty labels
// fall into the "other" bucket.
func NormalizeServiceType(serviceType string) string {
	key := strings.ToLower(strings.TrimSpace(serviceType))
	if key == "" {
		return CycleTableOtherKey
	}
	return key
}

// DefaultCycleTable returns the built-in category thresholds, in years.
func DefaultCycleTable() CycleTable {
	return CycleTable{
		"exterior-paint":    {Early: 8, Standard: 10, Late: 12},
		"interior-paint":    {Early: 4, Standard: 6, Late: 8},
		"roof-repair":       {Early: 10, Standard: 15, Late: 20},
		"water-heater":      {Early: 6, Standard: 8, Late: 10},
		"termite-treatment": {Early: 3, Standard: 5, Late: 7},
		"gutter-repair":     {Early: 4, Standard: 6, Late: 8},
		"deck-sealing":      {Early: 2, Standard: 3, Late: 5},
		"hvac-service":      {Early: 1, Standard: 2, Late: 3},
		CycleTableOtherKey:  {Early: 5, Standard: 8, Late: 10},
	}
}

// MaintenanceStatus is the derived "next action" for one (customer, category)
// group. It is recomputed from the current snapshot on every request and has
// no identity or persistence of its own.
type MaintenanceStatus struct {
	CustomerID          string       `json:"customer_id"`
	ServiceType         string       `json:"service_type"`
	LastServiceDate     time.Time    `json:"last_service_date"`
	YearsElapsed        float64      `json:"years_elapsed"`
	Urgency             UrgencyLevel `json:"urgency_level"`
	NextRecommendedDate time.Time    `json:"next_recommended_date"`
	ProgressPercentage  float64      `json:"progress_percentage"`
}
