package usecase

import (
	"math"
	"sort"
	"time"

	"casa_em_dia/internal/domain/entities"
)

// hoursPerYear uses the astronomical year so elapsed-time math is stable
// across leap years.
const hoursPerYear = 24 * 365.25

// PredictMaintenance derives the ranked maintenance statuses for a record
// collection. It is a pure function of (records, table, now): no hidden
// state, no I/O, and it never fails — records without a usable service date
// are silently skipped and the result may be empty.
//
// One status is produced per (customer, normalized category) group, from that
// group's most recent record only; older records never contribute.
func PredictMaintenance(records []entities.ServiceRecord, table entities.CycleTable, now time.Time) []entities.MaintenanceStatus {
	type groupKey struct {
		customerID  string
		serviceType string
	}

	latest := make(map[groupKey]entities.ServiceRecord)
	for _, r := range records {
		if r.ServiceDate.IsZero() {
			continue
		}
		key := groupKey{customerID: r.CustomerID, serviceType: entities.NormalizeServiceType(r.ServiceType)}
		if current, ok := latest[key]; !ok || r.ServiceDate.After(current.ServiceDate) {
			latest[key] = r
		}
	}

	statuses := make([]entities.MaintenanceStatus, 0, len(latest))
	for key, r := range latest {
		_, cycle := table.Lookup(key.serviceType)
		elapsed := yearsElapsed(r.ServiceDate, now)
		statuses = append(statuses, entities.MaintenanceStatus{
			CustomerID:          key.customerID,
			ServiceType:         key.serviceType,
			LastServiceDate:     r.ServiceDate,
			YearsElapsed:        elapsed,
			Urgency:             classifyUrgency(elapsed, cycle),
			NextRecommendedDate: addYears(r.ServiceDate, cycle.Standard),
			ProgressPercentage:  progressPercentage(elapsed, cycle.Standard),
		})
	}

	rankStatuses(statuses)
	return statuses
}

// PredictDueMaintenance is the dashboard variant: it restricts the derivation
// to the given categories (all, when empty) and drops statuses that have not
// yet reached their early threshold.
func PredictDueMaintenance(records []entities.ServiceRecord, table entities.CycleTable, now time.Time, categories []string) []entities.MaintenanceStatus {
	wanted := make(map[string]bool, len(categories))
	for _, c := range categories {
		wanted[entities.NormalizeServiceType(c)] = true
	}

	all := PredictMaintenance(records, table, now)
	out := make([]entities.MaintenanceStatus, 0, len(all))
	for _, s := range all {
		if len(wanted) > 0 && !wanted[s.ServiceType] {
			continue
		}
		_, cycle := table.Lookup(s.ServiceType)
		if s.YearsElapsed < cycle.Early {
			continue
		}
		out = append(out, s)
	}
	return out
}

// yearsElapsed truncates toward zero at one-decimal granularity. Truncation,
// not rounding: a record 9.96 years old is 9.9 years elapsed, which keeps a
// 10-year standard boundary from classifying early.
func yearsElapsed(lastServiceDate, now time.Time) float64 {
	years := now.Sub(lastServiceDate).Hours() / hoursPerYear
	return math.Trunc(years*10) / 10
}

// classifyUrgency tiers elapsed time against the cycle; every tier's lower
// bound is inclusive.
func classifyUrgency(elapsed float64, cycle entities.MaintenanceCycle) entities.UrgencyLevel {
	switch {
	case elapsed >= cycle.Late:
		return entities.UrgencyOverdue
	case elapsed >= cycle.Standard:
		return entities.UrgencyHigh
	case elapsed >= cycle.Early:
		return entities.UrgencyMedium
	default:
		return entities.UrgencyLow
	}
}

func progressPercentage(elapsed, standard float64) float64 {
	if standard <= 0 {
		return 100
	}
	pct := elapsed / standard * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// addYears applies calendar-year arithmetic (not elapsed-days): fractional
// years become whole months.
func addYears(date time.Time, years float64) time.Time {
	whole := int(years)
	months := int(math.Round((years - float64(whole)) * 12))
	return date.AddDate(whole, months, 0)
}

// rankStatuses orders by urgency descending, then yearsElapsed descending.
// The final customer/category tie-break makes the order a pure function of
// the input set, independent of input permutation.
func rankStatuses(statuses []entities.MaintenanceStatus) {
	sort.SliceStable(statuses, func(i, j int) bool {
		a, b := statuses[i], statuses[j]
		if a.Urgency.Rank() != b.Urgency.Rank() {
			return a.Urgency.Rank() > b.Urgency.Rank()
		}
		if a.YearsElapsed != b.YearsElapsed {
			return a.YearsElapsed > b.YearsElapsed
		}
		if a.CustomerID != b.CustomerID {
			return a.CustomerID < b.CustomerID
		}
		return a.ServiceType < b.ServiceType
	})
}
