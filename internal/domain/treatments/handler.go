package treatments

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hospitalops/insights/internal/platform/auth"
	"github.com/hospitalops/insights/internal/platform/reporting"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/reports/treatments", auth.RequireRole("admin", "analyst"))
	g.GET("/avg-cost-by-type", h.AvgCostByType)
	g.GET("/top-expensive", h.TopExpensive)
	g.GET("/top-types", h.TopTypes)
}

func limitQuery(c echo.Context) (int, error) {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, reporting.InvalidParam("limit", "not an integer: %q", raw)
	}
	return n, nil
}

func (h *Handler) AvgCostByType(c echo.Context) error {
	items, err := h.svc.AverageCostByType(c.Request().Context())
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) TopExpensive(c echo.Context) error {
	limit, err := limitQuery(c)
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	items, err := h.svc.TopExpensive(c.Request().Context(), limit)
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) TopTypes(c echo.Context) error {
	limit, err := limitQuery(c)
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	items, err := h.svc.TopTypesByFrequency(c.Request().Context(), limit)
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, items)
}
