package scheduling

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
	g := api.Group("/reports/appointments", auth.RequireRole("admin", "analyst"))
	g.GET("/details", h.Details)
	g.GET("/by-gender", h.ByGender)
	g.GET("/recent", h.Recent)
	g.GET("/by-status", h.ByStatus)
	g.GET("/status-rate", h.StatusRate)
	g.GET("/latest-per-patient", h.LatestPerPatient)
	g.GET("/top-reasons", h.TopReasons)
	g.GET("/summary", h.Summary)
}

func intQuery(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, reporting.InvalidParam(name, "not an integer: %q", raw)
	}
	return n, nil
}

func (h *Handler) Details(c echo.Context) error {
	limit, err := intQuery(c, "limit", 0)
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	items, err := h.svc.AppointmentDetails(c.Request().Context(), limit)
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ByGender(c echo.Context) error {
	items, err := h.svc.AppointmentsByGender(c.Request().Context(), c.QueryParam("gender"))
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Recent(c echo.Context) error {
	window, err := intQuery(c, "windowDays", DefaultRecentWindowDays)
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	items, err := h.svc.RecentAppointments(c.Request().Context(), window)
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ByStatus(c echo.Context) error {
	items, err := h.svc.AppointmentsByStatus(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) StatusRate(c echo.Context) error {
	items, err := h.svc.AppointmentStatusRate(c.Request().Context())
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) LatestPerPatient(c echo.Context) error {
	items, err := h.svc.LatestAppointmentPerPatient(c.Request().Context())
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) TopReasons(c echo.Context) error {
	limit, err := intQuery(c, "limit", 0)
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	items, err := h.svc.TopVisitReasons(c.Request().Context(), limit)
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Summary(c echo.Context) error {
	onDate, err := reporting.DateParam(reporting.Params{"date": c.QueryParam("date")}, "date")
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	items, err := h.svc.AppointmentSummary(c.Request().Context(), onDate)
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, items)
}
