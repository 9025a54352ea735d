package response

import (
	"casa_em_dia/internal/domain/entities"
)

type MaintenanceStatusResponse struct {
	CustomerID          string  `json:"customer_id"`
	ServiceType         string  `json:"service_type"`
	LastServiceDate     string  `json:"last_service_date"`
	YearsElapsed        float64 `json:"years_elapsed"`
	UrgencyLevel        string  `json:"urgency_level"`
	NextRecommendedDate string  `json:"next_recommended_date"`
	ProgressPercentage  float64 `json:"progress_percentage"`
}

func FromMaintenanceStatus(s entities.MaintenanceStatus) MaintenanceStatusResponse {
	return MaintenanceStatusResponse{
		CustomerID:          s.CustomerID,
		ServiceType:         s.ServiceType,
		LastServiceDate:     s.LastServiceDate.Format(dateLayout),
		YearsElapsed:        s.YearsElapsed,
		UrgencyLevel:        string(s.Urgency),
		NextRecommendedDate: s.NextRecommendedDate.Format(dateLayout),
		ProgressPercentage:  s.ProgressPercentage,
	}
}

func FromMaintenanceStatuses(statuses []entities.MaintenanceStatus) []MaintenanceStatusResponse {
	out := make([]MaintenanceStatusResponse, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, FromMaintenanceStatus(s))
	}
	return out
}
