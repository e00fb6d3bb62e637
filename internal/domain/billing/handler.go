package billing

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hospitalops/insights/internal/platform/auth"
	"github.com/hospitalops/insights/internal/platform/reporting"
	"github.com/hospitalops/insights/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/reports/billing", auth.RequireRole("admin", "analyst"))
	g.GET("/total-revenue", h.TotalRevenue)
	g.GET("/unpaid", h.Unpaid)
	g.GET("/high-value", h.HighValue)
	g.GET("/spend-per-patient", h.SpendPerPatient)
	g.GET("/method-counts", h.MethodCounts)
	g.GET("/method-averages", h.MethodAverages)
	g.GET("/above-average-treatment-spenders", h.AboveAverageTreatmentSpenders)
	g.GET("/ranks", h.Ranks)
}

func floatQuery(c echo.Context, name string, def float64) (float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, reporting.InvalidParam(name, "not a number: %q", raw)
	}
	return v, nil
}

func (h *Handler) TotalRevenue(c echo.Context) error {
	total, err := h.svc.TotalRevenue(c.Request().Context())
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]float64{"total_revenue": total})
}

func (h *Handler) Unpaid(c echo.Context) error {
	items, err := h.svc.UnpaidBills(c.Request().Context())
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	p := pagination.FromContext(c)
	lo, hi := p.Window(len(items))
	return c.JSON(http.StatusOK, pagination.NewResponse(items[lo:hi], len(items), p))
}

func (h *Handler) HighValue(c echo.Context) error {
	threshold, err := floatQuery(c, "threshold", DefaultHighValueThreshold)
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	items, err := h.svc.HighValueBills(c.Request().Context(), threshold)
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) SpendPerPatient(c echo.Context) error {
	items, err := h.svc.SpendPerPatient(c.Request().Context())
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	p := pagination.FromContext(c)
	lo, hi := p.Window(len(items))
	return c.JSON(http.StatusOK, pagination.NewResponse(items[lo:hi], len(items), p))
}

func (h *Handler) MethodCounts(c echo.Context) error {
	items, err := h.svc.PaymentMethodCounts(c.Request().Context())
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) MethodAverages(c echo.Context) error {
	items, err := h.svc.AveragePerMethod(c.Request().Context())
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) AboveAverageTreatmentSpenders(c echo.Context) error {
	items, err := h.svc.AboveAverageTreatmentSpenders(c.Request().Context())
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Ranks(c echo.Context) error {
	items, err := h.svc.BillingRanks(c.Request().Context())
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, items)
}
