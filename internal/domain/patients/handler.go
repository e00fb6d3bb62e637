package patients

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
	g := api.Group("/reports/patients", auth.RequireRole("admin", "analyst"))
	g.GET("/age-groups", h.AgeGroups)
	g.GET("/missing-insurance", h.MissingInsurance)
	g.GET("/frequent", h.Frequent)
	g.GET("/duplicate-emails", h.DuplicateEmails)
	g.GET("/all-emails", h.AllEmails)
}

func (h *Handler) AgeGroups(c echo.Context) error {
	items, err := h.svc.PatientAgeGroups(c.Request().Context())
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) MissingInsurance(c echo.Context) error {
	items, err := h.svc.PatientsMissingInsurance(c.Request().Context())
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Frequent(c echo.Context) error {
	min := DefaultMinAppointments
	if raw := c.QueryParam("minAppointments"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return reporting.ToHTTPError(reporting.InvalidParam("minAppointments", "not an integer: %q", raw))
		}
		min = n
	}
	items, err := h.svc.FrequentPatients(c.Request().Context(), min)
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) DuplicateEmails(c echo.Context) error {
	items, err := h.svc.DuplicatePatientEmails(c.Request().Context())
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) AllEmails(c echo.Context) error {
	emails, err := h.svc.AllUniqueEmails(c.Request().Context())
	if err != nil {
		return reporting.ToHTTPError(err)
	}
	if emails == nil {
		emails = []string{}
	}
	return c.JSON(http.StatusOK, emails)
}
