package entities

import (
	"strings"
	"time"
)

// RecordFilter is the AND-combined predicate set applied to a service record
// collection. Zero-valued fields are not applied (match-all).
type RecordFilter struct {
	CustomerID string
	// ServiceType matches as a case-insensitive substring.
	ServiceType string
	// DateFrom/DateTo bound ServiceDate, both ends inclusive.
	DateFrom *time.Time
	DateTo   *time.Time
	// AmountMin/AmountMax bound Amount, both ends inclusive.
	AmountMin *float64
	AmountMax *float64
	Status    RecordStatus
}

// IsZero reports whether no constraint is set.
func (f RecordFilter) IsZero() bool {
	return f.CustomerID == "" && f.ServiceType == "" &&
		f.DateFrom == nil && f.DateTo == nil &&
		f.AmountMin == nil && f.AmountMax == nil && f.Status == ""
}

// Matches reports whether a record satisfies every set constraint.
func (f RecordFilter) Matches(r ServiceRecord) bool {
	if f.CustomerID != "" && r.CustomerID != f.CustomerID {
		return false
	}
	if f.ServiceType != "" &&
		!strings.Contains(strings.ToLower(r.ServiceType), strings.ToLower(f.ServiceType)) {
		return false
	}
	if f.DateFrom != nil && r.ServiceDate.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && r.ServiceDate.After(*f.DateTo) {
		return false
	}
	if f.AmountMin != nil && r.Amount < *f.AmountMin {
		return false
	}
	if f.AmountMax != nil && r.Amount > *f.AmountMax {
		return false
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	return true
}

// SortField names the single field a view is ordered by.
type SortField string

const (
	SortByServiceDate SortField = "service_date"
	SortByAmount      SortField = "amount"
	SortByCustomerID  SortField = "customer_id"
	SortByServiceType SortField = "service_type"
	SortByDescription SortField = "description"
	SortByStatus      SortField = "status"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// RecordSort is the single-field sort spec for a view. A zero Field means
// "leave the collection in gateway order".
type RecordSort struct {
	Field     SortField
	Direction SortDirection
}
