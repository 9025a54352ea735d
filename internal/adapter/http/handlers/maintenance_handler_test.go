package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"casa_em_dia/internal/adapter/http/handlers/mocks"
	"casa_em_dia/internal/domain/entities"
	"casa_em_dia/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var fixedMaintenanceNow = time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

func newMaintenanceHandlerForTest(cache usecase.IRecordCacheUseCase) *MaintenanceHandler {
	h := NewMaintenanceHandler(cache)
	h.now = func() time.Time { return fixedMaintenanceNow }
	return h
}

func TestMaintenanceHandler_ListMaintenanceStatuses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mocks.NewMockIRecordCacheUseCase(ctrl)
		h := newMaintenanceHandlerForTest(cache)

		r := gin.New()
		r.GET("/v1/maintenance", h.ListMaintenanceStatuses)

		statuses := []entities.MaintenanceStatus{
			{
				CustomerID:          "cust-1",
				ServiceType:         "exterior-paint",
				LastServiceDate:     time.Date(2015, 8, 26, 0, 0, 0, 0, time.UTC),
				YearsElapsed:        11.0,
				Urgency:             entities.UrgencyOverdue,
				NextRecommendedDate: time.Date(2025, 8, 26, 0, 0, 0, 0, time.UTC),
				ProgressPercentage:  91.7,
			},
		}
		cache.EXPECT().Fetch(gomock.Any(), entities.RecordFilter{}).Return(nil, nil)
		cache.EXPECT().Maintenance(fixedMaintenanceNow).Return(statuses)

		req := httptest.NewRequest(http.MethodGet, "/v1/maintenance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 {
			t.Fatalf("expected 1 status, got %s", w.Body.String())
		}
		if body[0]["urgency_level"] != "overdue" || body[0]["years_elapsed"] != 11.0 {
			t.Fatalf("unexpected status: %s", w.Body.String())
		}
		if body[0]["last_service_date"] != "2015-08-26" {
			t.Fatalf("unexpected date format: %s", w.Body.String())
		}
	})

	t.Run("customer filter forwarded to fetch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mocks.NewMockIRecordCacheUseCase(ctrl)
		h := newMaintenanceHandlerForTest(cache)

		r := gin.New()
		r.GET("/v1/maintenance", h.ListMaintenanceStatuses)

		cache.EXPECT().Fetch(gomock.Any(), entities.RecordFilter{CustomerID: "cust-7"}).Return(nil, nil)
		cache.EXPECT().Maintenance(fixedMaintenanceNow).Return(nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/maintenance?customer_id=cust-7", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("fetch failure with stale snapshot still serves predictions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mocks.NewMockIRecordCacheUseCase(ctrl)
		h := newMaintenanceHandlerForTest(cache)

		r := gin.New()
		r.GET("/v1/maintenance", h.ListMaintenanceStatuses)

		stale := []entities.ServiceRecord{{ID: "rec-1", CustomerID: "cust-1"}}
		cache.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, errors.New("gateway down"))
		cache.EXPECT().Snapshot().Return(usecase.RecordSnapshot{Records: stale, Err: errors.New("gateway down")})
		cache.EXPECT().Maintenance(fixedMaintenanceNow).Return([]entities.MaintenanceStatus{{CustomerID: "cust-1", ServiceType: "other"}})

		req := httptest.NewRequest(http.MethodGet, "/v1/maintenance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("fetch failure with empty snapshot maps error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mocks.NewMockIRecordCacheUseCase(ctrl)
		h := newMaintenanceHandlerForTest(cache)

		r := gin.New()
		r.GET("/v1/maintenance", h.ListMaintenanceStatuses)

		cache.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, errors.New("gateway down"))
		cache.EXPECT().Snapshot().Return(usecase.RecordSnapshot{Err: errors.New("gateway down")})

		req := httptest.NewRequest(http.MethodGet, "/v1/maintenance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestMaintenanceHandler_ListDueMaintenance(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("categories parsed from query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mocks.NewMockIRecordCacheUseCase(ctrl)
		h := newMaintenanceHandlerForTest(cache)

		r := gin.New()
		r.GET("/v1/maintenance/due", h.ListDueMaintenance)

		cache.EXPECT().Fetch(gomock.Any(), entities.RecordFilter{}).Return(nil, nil)
		cache.EXPECT().DueMaintenance(fixedMaintenanceNow, []string{"roof-repair", "exterior-paint"}).Return(nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/maintenance/due?categories=roof-repair,%20exterior-paint,", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("no categories means all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mocks.NewMockIRecordCacheUseCase(ctrl)
		h := newMaintenanceHandlerForTest(cache)

		r := gin.New()
		r.GET("/v1/maintenance/due", h.ListDueMaintenance)

		cache.EXPECT().Fetch(gomock.Any(), entities.RecordFilter{}).Return(nil, nil)
		cache.EXPECT().DueMaintenance(fixedMaintenanceNow, gomock.Nil()).Return([]entities.MaintenanceStatus{
			{CustomerID: "cust-1", ServiceType: "hvac-service", Urgency: entities.UrgencyHigh},
		})

		req := httptest.NewRequest(http.MethodGet, "/v1/maintenance/due", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["urgency_level"] != "high" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
