package entities

import "time"

// RecordStatus represents the lifecycle of a service record.
//
// Domain notes:
//   - Records are usually created after the fact ("concluido"), but the
//     office also registers scheduled visits ahead of time.

type RecordStatus string

const (
	RecordStatusAgendado  RecordStatus = "agendado"
	RecordStatusConcluido RecordStatus = "concluido"
	RecordStatusCancelado RecordStatus = "cancelado"
)

// ServiceRecord is one service performed (or scheduled) for a customer,
// persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// ServiceType is a free-form label; the maintenance engine matches it
// case-insensitively against the cycle table.
type ServiceRecord struct {
	ID          string       `json:"id"`
	CustomerID  string       `json:"customer_id"`
	ServiceDate time.Time    `json:"service_date"`
	ServiceType string       `json:"service_type"`
	Description string       `json:"description"`
	Amount      float64      `json:"amount"`
	Status      RecordStatus `json:"status"`
	PhotoPath   string       `json:"photo_path"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
