package handlers

import (
	"errors"
	"net/http"

	request "casa_em_dia/internal/adapter/http/dto/request"
	response "casa_em_dia/internal/adapter/http/dto/response"
	"casa_em_dia/internal/domain/entities"
	"casa_em_dia/internal/usecase"
	"casa_em_dia/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRecordPayload = pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid service record payload", http.StatusBadRequest)
	errInvalidListQuery     = pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid list query", http.StatusBadRequest)
)

// ServiceRecordHandler exposes one view's record cache over HTTP. It owns the
// records-list cache instance; the maintenance dashboard runs on its own
// cache (see MaintenanceHandler) and the two stay consistent through the
// change broadcaster alone.

type ServiceRecordHandler struct {
	cache usecase.IRecordCacheUseCase
}

func NewServiceRecordHandler(cache usecase.IRecordCacheUseCase) *ServiceRecordHandler {
	return &ServiceRecordHandler{cache: cache}
}

// ListServiceRecords refreshes the snapshot and returns the filtered, ordered
// view. When the gateway refresh fails but a previous snapshot exists, the
// stale records are returned with the error alongside (stale-but-available).
func (h *ServiceRecordHandler) ListServiceRecords(c *gin.Context) {
	var query request.ListServiceRecordsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidListQuery.HTTPStatus, errInvalidListQuery.ToHTTPError())
		return
	}

	filter, err := query.ResolveFilter()
	if err != nil {
		c.JSON(errInvalidListQuery.HTTPStatus, errInvalidListQuery.ToHTTPError())
		return
	}
	spec, err := query.ResolveSort()
	if err != nil {
		c.JSON(errInvalidListQuery.HTTPStatus, errInvalidListQuery.ToHTTPError())
		return
	}

	// The gateway already applied the filter; the view only orders it.
	h.cache.SetView(entities.RecordFilter{}, spec)
	if _, err := h.cache.Fetch(c.Request.Context(), filter); err != nil {
		snapshot := h.cache.Snapshot()
		if len(snapshot.Records) == 0 {
			appErr := mapRecordError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.ServiceRecordListResponse{
			Records: response.FromServiceRecords(usecase.SortRecords(snapshot.Records, spec)),
			Stale:   true,
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.ServiceRecordListResponse{
		Records: response.FromServiceRecords(h.cache.View()),
	})
}

func (h *ServiceRecordHandler) CreateServiceRecord(c *gin.Context) {
	input, ok := h.bindRecordInput(c)
	if !ok {
		return
	}

	created, err := h.cache.Create(c.Request.Context(), input)
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceRecord(created))
}

func (h *ServiceRecordHandler) UpdateServiceRecord(c *gin.Context) {
	input, ok := h.bindRecordInput(c)
	if !ok {
		return
	}

	updated, err := h.cache.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRecord(updated))
}

func (h *ServiceRecordHandler) DeleteServiceRecord(c *gin.Context) {
	if err := h.cache.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ServiceRecordHandler) bindRecordInput(c *gin.Context) (usecase.RecordInput, bool) {
	var payload request.ServiceRecordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRecordPayload.HTTPStatus, errInvalidRecordPayload.ToHTTPError())
		return usecase.RecordInput{}, false
	}

	serviceDate, err := payload.ResolveServiceDate()
	if err != nil {
		c.JSON(errInvalidRecordPayload.HTTPStatus, errInvalidRecordPayload.ToHTTPError())
		return usecase.RecordInput{}, false
	}

	return usecase.RecordInput{
		CustomerID:  payload.ResolveCustomerID(),
		ServiceDate: serviceDate,
		ServiceType: payload.ServiceType,
		Description: payload.Description,
		Amount:      payload.Amount,
		Status:      entities.RecordStatus(payload.Status),
		PhotoPath:   payload.PhotoPath,
	}, true
}

func mapRecordError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRecordID),
		errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidServiceDate),
		errors.Is(err, usecase.ErrServiceDateInFuture),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrDescriptionTooLong),
		errors.Is(err, usecase.ErrServiceTypeTooLong):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRecordNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Service record not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("SERVER_ERROR", "Persistence gateway failure", err, http.StatusBadGateway)
	}
}
