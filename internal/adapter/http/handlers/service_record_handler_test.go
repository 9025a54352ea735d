package handlers

import (
	"bytes"
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

func TestServiceRecordHandler_ListServiceRecords(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success with filter and sort", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mocks.NewMockIRecordCacheUseCase(ctrl)
		h := NewServiceRecordHandler(cache)

		r := gin.New()
		r.GET("/v1/service-records", h.ListServiceRecords)

		records := []entities.ServiceRecord{
			{ID: "rec-1", CustomerID: "cust-1", ServiceDate: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), ServiceType: "roof-repair", Amount: 300},
		}
		wantSort := entities.RecordSort{Field: entities.SortByAmount, Direction: entities.SortDesc}
		cache.EXPECT().SetView(entities.RecordFilter{}, wantSort)
		cache.EXPECT().Fetch(gomock.Any(), entities.RecordFilter{CustomerID: "cust-1"}).Return(records, nil)
		cache.EXPECT().View().Return(records)

		req := httptest.NewRequest(http.MethodGet, "/v1/service-records?customer_id=cust-1&sort_by=amount&sort_dir=desc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["stale"] != false {
			t.Fatalf("expected fresh response, got %s", w.Body.String())
		}
		list, _ := body["records"].([]any)
		if len(list) != 1 {
			t.Fatalf("expected 1 record, got %s", w.Body.String())
		}
	})

	t.Run("invalid sort field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mocks.NewMockIRecordCacheUseCase(ctrl)
		h := NewServiceRecordHandler(cache)

		r := gin.New()
		r.GET("/v1/service-records", h.ListServiceRecords)

		req := httptest.NewRequest(http.MethodGet, "/v1/service-records?sort_by=photo_path", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid date filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mocks.NewMockIRecordCacheUseCase(ctrl)
		h := NewServiceRecordHandler(cache)

		r := gin.New()
		r.GET("/v1/service-records", h.ListServiceRecords)

		req := httptest.NewRequest(http.MethodGet, "/v1/service-records?date_from=15/06/2024", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("fetch failure with stale snapshot returns stale records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mocks.NewMockIRecordCacheUseCase(ctrl)
		h := NewServiceRecordHandler(cache)

		r := gin.New()
		r.GET("/v1/service-records", h.ListServiceRecords)

		stale := []entities.ServiceRecord{
			{ID: "rec-1", CustomerID: "cust-1", ServiceDate: time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)},
			{ID: "rec-2", CustomerID: "cust-2", ServiceDate: time.Date(2023, 2, 20, 0, 0, 0, 0, time.UTC)},
		}
		cache.EXPECT().SetView(gomock.Any(), gomock.Any())
		cache.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, errors.New("gateway down"))
		cache.EXPECT().Snapshot().Return(usecase.RecordSnapshot{Records: stale, Err: errors.New("gateway down")})

		req := httptest.NewRequest(http.MethodGet, "/v1/service-records", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["stale"] != true {
			t.Fatalf("expected stale response, got %s", w.Body.String())
		}
		if body["error"] != "gateway down" {
			t.Fatalf("expected error alongside records, got %s", w.Body.String())
		}
		list, _ := body["records"].([]any)
		if len(list) != 2 {
			t.Fatalf("expected 2 stale records, got %s", w.Body.String())
		}
	})

	t.Run("fetch failure with empty snapshot maps error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mocks.NewMockIRecordCacheUseCase(ctrl)
		h := NewServiceRecordHandler(cache)

		r := gin.New()
		r.GET("/v1/service-records", h.ListServiceRecords)

		cache.EXPECT().SetView(gomock.Any(), gomock.Any())
		cache.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, errors.New("gateway down"))
		cache.EXPECT().Snapshot().Return(usecase.RecordSnapshot{Err: errors.New("gateway down")})

		req := httptest.NewRequest(http.MethodGet, "/v1/service-records", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestServiceRecordHandler_CreateServiceRecord(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mocks.NewMockIRecordCacheUseCase(ctrl)
		h := NewServiceRecordHandler(cache)

		r := gin.New()
		r.POST("/v1/service-records", h.CreateServiceRecord)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-records", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad date format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mocks.NewMockIRecordCacheUseCase(ctrl)
		h := NewServiceRecordHandler(cache)

		r := gin.New()
		r.POST("/v1/service-records", h.CreateServiceRecord)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-records", bytes.NewBufferString(`{"customer_id":"cust-1","service_date":"15/06/2024"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mocks.NewMockIRecordCacheUseCase(ctrl)
		h := NewServiceRecordHandler(cache)

		r := gin.New()
		r.POST("/v1/service-records", h.CreateServiceRecord)

		cache.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ServiceRecord{}, usecase.ErrServiceDateInFuture)

		req := httptest.NewRequest(http.MethodPost, "/v1/service-records", bytes.NewBufferString(`{"customer_id":"cust-1","service_date":"2030-01-01"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mocks.NewMockIRecordCacheUseCase(ctrl)
		h := NewServiceRecordHandler(cache)

		r := gin.New()
		r.POST("/v1/service-records", h.CreateServiceRecord)

		now := time.Now().UTC()
		cache.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, input usecase.RecordInput) (entities.ServiceRecord, error) {
				if input.CustomerID != "cust-1" || input.ServiceType != "exterior-paint" {
					t.Fatalf("unexpected input: %+v", input)
				}
				return entities.ServiceRecord{
					ID: "rec-1", CustomerID: input.CustomerID, ServiceDate: input.ServiceDate,
					ServiceType: input.ServiceType, Amount: input.Amount,
					Status: entities.RecordStatusConcluido, CreatedAt: now, UpdatedAt: now,
				}, nil
			})

		body := `{"customer_id":"cust-1","service_date":"2024-06-15","service_type":"exterior-paint","amount":450,"status":"concluido"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/service-records", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "rec-1" || resp["service_date"] != "2024-06-15" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestServiceRecordHandler_UpdateServiceRecord(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mocks.NewMockIRecordCacheUseCase(ctrl)
		h := NewServiceRecordHandler(cache)

		r := gin.New()
		r.PUT("/v1/service-records/:id", h.UpdateServiceRecord)

		cache.EXPECT().Update(gomock.Any(), "rec-404", gomock.Any()).Return(entities.ServiceRecord{}, usecase.ErrRecordNotFound)

		req := httptest.NewRequest(http.MethodPut, "/v1/service-records/rec-404", bytes.NewBufferString(`{"customer_id":"cust-1","service_date":"2024-06-15"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mocks.NewMockIRecordCacheUseCase(ctrl)
		h := NewServiceRecordHandler(cache)

		r := gin.New()
		r.PUT("/v1/service-records/:id", h.UpdateServiceRecord)

		cache.EXPECT().Update(gomock.Any(), "rec-1", gomock.Any()).Return(entities.ServiceRecord{ID: "rec-1", CustomerID: "cust-1", ServiceDate: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/service-records/rec-1", bytes.NewBufferString(`{"customer_id":"cust-1","service_date":"2024-06-15"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestServiceRecordHandler_DeleteServiceRecord(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mocks.NewMockIRecordCacheUseCase(ctrl)
		h := NewServiceRecordHandler(cache)

		r := gin.New()
		r.DELETE("/v1/service-records/:id", h.DeleteServiceRecord)

		cache.EXPECT().Delete(gomock.Any(), "rec-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/service-records/rec-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mocks.NewMockIRecordCacheUseCase(ctrl)
		h := NewServiceRecordHandler(cache)

		r := gin.New()
		r.DELETE("/v1/service-records/:id", h.DeleteServiceRecord)

		cache.EXPECT().Delete(gomock.Any(), "rec-404").Return(usecase.ErrRecordNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/service-records/rec-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapRecordError(t *testing.T) {
	if got := mapRecordError(usecase.ErrInvalidCustomerID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapRecordError(usecase.ErrInvalidServiceDate); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapRecordError(usecase.ErrServiceDateInFuture); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapRecordError(usecase.ErrInvalidAmount); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapRecordError(usecase.ErrDescriptionTooLong); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapRecordError(usecase.ErrRecordNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapRecordError(errors.New("x")); got.HTTPStatus != http.StatusBadGateway {
		t.Fatalf("expected 502")
	}
}
