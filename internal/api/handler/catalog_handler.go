package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/katyregal/salon-api/internal/api/metrics"
	"github.com/katyregal/salon-api/internal/core/ports"
)

// CatalogHandler handles HTTP requests for the service catalog.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// List handles GET /api/services. Only the recognized query parameters
// (category, active, search) are honored; anything else is ignored.
//
// @Summary      List catalog services
// @Tags         services
// @Produce      json
// @Param        category  query     string  false  "Exact category match"
// @Param        active    query     string  false  "true filters to active services; any other value to inactive"
// @Param        search    query     string  false  "Free-text search"
// @Success      200       {object}  listServicesResponse
// @Router       /api/services [get]
func (h *CatalogHandler) List(c echo.Context) error {
	filter := ports.ListServicesFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}
	if raw := c.QueryParam("active"); raw != "" {
		active := raw == "true"
		filter.Active = &active
	}

	services, err := h.service.ListServices(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toServiceListResponse(services))
}

// Get handles GET /api/services/:id.
//
// @Summary      Get a service by id
// @Tags         services
// @Produce      json
// @Param        id   path      string  true  "Service id"
// @Success      200  {object}  serviceEnvelope
// @Failure      404  {object}  errorEnvelope
// @Router       /api/services/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	service, err := h.service.GetService(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, serviceEnvelope{Success: true, Data: toServiceResponse(service)})
}

// Categories handles GET /api/services/categories.
//
// @Summary      List distinct categories in use
// @Tags         services
// @Produce      json
// @Success      200  {object}  categoriesResponse
// @Router       /api/services/categories [get]
func (h *CatalogHandler) Categories(c echo.Context) error {
	categories, err := h.service.Categories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categoriesResponse{
		Success: true,
		Count:   len(categories),
		Data:    categories,
	})
}

// Create handles POST /api/services (admin only).
//
// @Summary      Create a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createServiceRequest  true  "Service details"
// @Success      201   {object}  serviceEnvelope
// @Failure      400   {object}  errorEnvelope
// @Failure      401   {object}  errorEnvelope
// @Failure      403   {object}  errorEnvelope
// @Router       /api/services [post]
func (h *CatalogHandler) Create(c echo.Context) error {
	var req createServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	service, err := h.service.CreateService(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, serviceEnvelope{Success: true, Data: toServiceResponse(service)})
}

// Update handles PUT /api/services/:id (admin only). The body is a partial
// merge; validation rules are re-applied to the merged record.
//
// @Summary      Update a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Service id"
// @Param        body  body      updateServiceRequest  true  "Fields to change"
// @Success      200   {object}  serviceEnvelope
// @Failure      400   {object}  errorEnvelope
// @Failure      404   {object}  errorEnvelope
// @Router       /api/services/{id} [put]
func (h *CatalogHandler) Update(c echo.Context) error {
	var req updateServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	service, err := h.service.UpdateService(c.Request().Context(), c.Param("id"), toUpdateInput(req))
	if err != nil {
		return err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, serviceEnvelope{Success: true, Data: toServiceResponse(service)})
}

// Delete handles DELETE /api/services/:id (admin only).
//
// @Summary      Delete a service
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Service id"
// @Success      200  {object}  deletedResponse
// @Failure      404  {object}  errorEnvelope
// @Router       /api/services/{id} [delete]
func (h *CatalogHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteService(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, deletedResponse{Success: true, Data: map[string]any{}})
}
