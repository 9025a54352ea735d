package handlers

import (
	"net/http"
	"strings"
	"time"

	response "casa_em_dia/internal/adapter/http/dto/response"
	"casa_em_dia/internal/domain/entities"
	"casa_em_dia/internal/usecase"

	"github.com/gin-gonic/gin"
)

// MaintenanceHandler serves the maintenance dashboard from its own cache
// instance. Predictions are derived on every request from the freshly
// refreshed snapshot; nothing is persisted.

type MaintenanceHandler struct {
	cache usecase.IRecordCacheUseCase
	now   func() time.Time
}

func NewMaintenanceHandler(cache usecase.IRecordCacheUseCase) *MaintenanceHandler {
	return &MaintenanceHandler{cache: cache, now: func() time.Time { return time.Now().UTC() }}
}

// ListMaintenanceStatuses returns the full ranked prediction for the current
// snapshot, optionally restricted to one customer.
func (h *MaintenanceHandler) ListMaintenanceStatuses(c *gin.Context) {
	if !h.refresh(c) {
		return
	}

	c.JSON(http.StatusOK, response.FromMaintenanceStatuses(h.cache.Maintenance(h.now())))
}

// ListDueMaintenance returns only statuses past their early threshold,
// optionally restricted to a comma-separated category subset.
func (h *MaintenanceHandler) ListDueMaintenance(c *gin.Context) {
	if !h.refresh(c) {
		return
	}

	var categories []string
	if raw := strings.TrimSpace(c.Query("categories")); raw != "" {
		for _, cat := range strings.Split(raw, ",") {
			if cat = strings.TrimSpace(cat); cat != "" {
				categories = append(categories, cat)
			}
		}
	}

	c.JSON(http.StatusOK, response.FromMaintenanceStatuses(h.cache.DueMaintenance(h.now(), categories)))
}

// refresh re-fetches the dashboard's snapshot. A failed refresh over an
// existing snapshot is tolerated: predictions are then derived from the
// stale records, matching the stale-but-available cache policy.
func (h *MaintenanceHandler) refresh(c *gin.Context) bool {
	filter := entities.RecordFilter{CustomerID: strings.TrimSpace(c.Query("customer_id"))}

	if _, err := h.cache.Fetch(c.Request.Context(), filter); err != nil {
		if len(h.cache.Snapshot().Records) == 0 {
			appErr := mapRecordError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return false
		}
	}
	return true
}
