package reporting

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hospitalops/insights/internal/platform/auth"
)

// Handler exposes the catalog over HTTP.
type Handler struct {
	catalog *Catalog
}

// NewHandler creates a catalog handler.
func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// RegisterRoutes registers the catalog API routes.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/reports", auth.RequireRole("admin", "analyst"))
	g.GET("", h.ListReports)
	g.GET("/:id", h.GetReport)
	g.GET("/:id/run", h.RunReport)
}

// ListReports returns all report definitions ordered by ID.
func (h *Handler) ListReports(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Definitions())
}

// GetReport returns a single report definition.
func (h *Handler) GetReport(c echo.Context) error {
	def := h.catalog.Find(c.Param("id"))
	if def == nil {
		return echo.NewHTTPError(http.StatusNotFound, "report not found")
	}
	return c.JSON(http.StatusOK, def)
}

// RunReport executes a report with parameters taken from the query string.
// With format=csv the result table is streamed as CSV instead of the JSON
// envelope.
func (h *Handler) RunReport(c echo.Context) error {
	id := c.Param("id")

	params := Params{}
	for name, values := range c.QueryParams() {
		if len(values) > 0 {
			params[name] = values[0]
		}
	}

	report, err := h.catalog.Run(c.Request().Context(), id, params)
	if err != nil {
		return ToHTTPError(err)
	}

	if c.QueryParam("format") == "csv" {
		return writeCSV(c, report)
	}
	return c.JSON(http.StatusOK, report)
}

// ToHTTPError maps reporting errors onto HTTP status codes: unknown report
// to 404, invalid parameter to 400, store failure to 502, anything else to
// 500.
func ToHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, ErrUnknownReport):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case IsInvalidParameter(err):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case IsDataAccess(err):
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func writeCSV(c echo.Context, report *Report) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv")
	res.Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, report.ReportID+".csv"))
	res.WriteHeader(http.StatusOK)

	w := csv.NewWriter(res)
	if err := w.Write(report.Result.Columns); err != nil {
		return err
	}
	record := make([]string, len(report.Result.Columns))
	for _, row := range report.Result.Rows {
		for i := range record {
			record[i] = ""
			if i < len(row) && row[i] != nil {
				record[i] = fmt.Sprintf("%v", row[i])
			}
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
