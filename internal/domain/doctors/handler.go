package doctors

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
	g := api.Group("/reports/doctors", auth.RequireRole("admin", "analyst"))
	g.GET("/experienced", h.Experienced)
	g.GET("/appointment-load", h.AppointmentLoad)
	g.GET("/by-specialization", h.BySpecialization)
	g.GET("/revenue-by-specialization", h.RevenueBySpecialization)
}

func (h *Handler) Experienced(c echo.Context) error {
	minYears := 0
	if raw := c.QueryParam("minYears"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return reporting.ToHTTPError(reporting.InvalidParam("minYears", "not an integer: %q", raw))
		}
		minYears = n
	}
	items, err := h.svc.ExperiencedDoctors(c.Request().Context(), minYears)
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) AppointmentLoad(c echo.Context) error {
	items, err := h.svc.AppointmentsPerDoctor(c.Request().Context())
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) BySpecialization(c echo.Context) error {
	items, err := h.svc.DoctorsBySpecialization(c.Request().Context())
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) RevenueBySpecialization(c echo.Context) error {
	items, err := h.svc.RevenueBySpecialization(c.Request().Context())
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, items)
}
