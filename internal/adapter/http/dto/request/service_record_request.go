package request

import (
	"errors"
	"strings"
	"time"

	"casa_em_dia/internal/domain/entities"
)

var (
	ErrInvalidDateFormat   = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidSortField    = errors.New("invalid sort field")
	ErrInvalidSortDir      = errors.New("invalid sort direction")
	ErrInvalidAmountBounds = errors.New("amount_min greater than amount_max")
)

const dateLayout = "2006-01-02"

// ServiceRecordRequest is the payload accepted by create and update
// endpoints. Dates travel as plain YYYY-MM-DD strings.
type ServiceRecordRequest struct {
	CustomerID  string  `json:"customer_id" binding:"required"`
	ServiceDate string  `json:"service_date" binding:"required"`
	ServiceType string  `json:"service_type"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	PhotoPath   string  `json:"photo_path"`
}

func (r ServiceRecordRequest) ResolveCustomerID() string {
	return strings.TrimSpace(r.CustomerID)
}

func (r ServiceRecordRequest) ResolveServiceDate() (time.Time, error) {
	d, err := time.Parse(dateLayout, strings.TrimSpace(r.ServiceDate))
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return d, nil
}

// ListServiceRecordsQuery carries the view filter and sort of the records
// list endpoint. Every field is optional; absent constraints match all.
type ListServiceRecordsQuery struct {
	CustomerID string   `form:"customer_id"`
	Type       string   `form:"type"`
	Status     string   `form:"status"`
	DateFrom   string   `form:"date_from"`
	DateTo     string   `form:"date_to"`
	AmountMin  *float64 `form:"amount_min"`
	AmountMax  *float64 `form:"amount_max"`
	SortBy     string   `form:"sort_by"`
	SortDir    string   `form:"sort_dir"`
}

func (q ListServiceRecordsQuery) ResolveFilter() (entities.RecordFilter, error) {
	filter := entities.RecordFilter{
		CustomerID:  strings.TrimSpace(q.CustomerID),
		ServiceType: strings.TrimSpace(q.Type),
		Status:      entities.RecordStatus(strings.TrimSpace(q.Status)),
		AmountMin:   q.AmountMin,
		AmountMax:   q.AmountMax,
	}
	if q.AmountMin != nil && q.AmountMax != nil && *q.AmountMin > *q.AmountMax {
		return entities.RecordFilter{}, ErrInvalidAmountBounds
	}
	if s := strings.TrimSpace(q.DateFrom); s != "" {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return entities.RecordFilter{}, ErrInvalidDateFormat
		}
		filter.DateFrom = &d
	}
	if s := strings.TrimSpace(q.DateTo); s != "" {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return entities.RecordFilter{}, ErrInvalidDateFormat
		}
		filter.DateTo = &d
	}
	return filter, nil
}

func (q ListServiceRecordsQuery) ResolveSort() (entities.RecordSort, error) {
	field := strings.TrimSpace(q.SortBy)
	if field == "" {
		return entities.RecordSort{}, nil
	}
	switch entities.SortField(field) {
	case entities.SortByServiceDate, entities.SortByAmount, entities.SortByCustomerID,
		entities.SortByServiceType, entities.SortByDescription, entities.SortByStatus:
	default:
		return entities.RecordSort{}, ErrInvalidSortField
	}

	dir := entities.SortDirection(strings.TrimSpace(q.SortDir))
	if dir == "" {
		dir = entities.SortAsc
	}
	if dir != entities.SortAsc && dir != entities.SortDesc {
		return entities.RecordSort{}, ErrInvalidSortDir
	}
	return entities.RecordSort{Field: entities.SortField(field), Direction: dir}, nil
}
