package usecase

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"casa_em_dia/internal/domain/entities"
)

// FilterRecords returns the records matching every set constraint of the
// filter. The input slice is never mutated.
func FilterRecords(records []entities.ServiceRecord, filter entities.RecordFilter) []entities.ServiceRecord {
	out := make([]entities.ServiceRecord, 0, len(records))
	for _, r := range records {
		if filter.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// SortRecords orders a copy of the records by the single-field sort spec.
// Dates and amounts compare numerically; every other field compares as a
// locale-aware string. Ties keep their relative input order (stable sort).
func SortRecords(records []entities.ServiceRecord, spec entities.RecordSort) []entities.ServiceRecord {
	out := make([]entities.ServiceRecord, len(records))
	copy(out, records)
	if spec.Field == "" {
		return out
	}

	collator := collate.New(language.Und, collate.Loose)
	less := func(a, b entities.ServiceRecord) bool {
		switch spec.Field {
		case entities.SortByServiceDate:
			return a.ServiceDate.Before(b.ServiceDate)
		case entities.SortByAmount:
			return a.Amount < b.Amount
		case entities.SortByCustomerID:
			return collator.CompareString(a.CustomerID, b.CustomerID) < 0
		case entities.SortByServiceType:
			return collator.CompareString(a.ServiceType, b.ServiceType) < 0
		case entities.SortByDescription:
			return collator.CompareString(a.Description, b.Description) < 0
		case entities.SortByStatus:
			return collator.CompareString(string(a.Status), string(b.Status)) < 0
		default:
			return false
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if spec.Direction == entities.SortDesc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// ApplyPipeline is the full view derivation: filter, then sort.
func ApplyPipeline(records []entities.ServiceRecord, filter entities.RecordFilter, spec entities.RecordSort) []entities.ServiceRecord {
	return SortRecords(FilterRecords(records, filter), spec)
}
