package response

import (
	"time"

	"casa_em_dia/internal/domain/entities"
)

const dateLayout = "2006-01-02"

type ServiceRecordResponse struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id"`
	ServiceDate string    `json:"service_date"`
	ServiceType string    `json:"service_type"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	PhotoPath   string    `json:"photo_path"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromServiceRecord(r entities.ServiceRecord) ServiceRecordResponse {
	return ServiceRecordResponse{
		ID:          r.ID,
		CustomerID:  r.CustomerID,
		ServiceDate: r.ServiceDate.Format(dateLayout),
		ServiceType: r.ServiceType,
		Description: r.Description,
		Amount:      r.Amount,
		Status:      string(r.Status),
		PhotoPath:   r.PhotoPath,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func FromServiceRecords(records []entities.ServiceRecord) []ServiceRecordResponse {
	out := make([]ServiceRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromServiceRecord(r))
	}
	return out
}

// ServiceRecordListResponse mirrors the cache snapshot contract: when a
// refresh fails the previous records stay visible (stale) and the error
// travels alongside them instead of blanking the list.
type ServiceRecordListResponse struct {
	Records []ServiceRecordResponse `json:"records"`
	Stale   bool                    `json:"stale"`
	Error   string                  `json:"error,omitempty"`
}
