package reporting

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newHandlerTestCatalog() *Catalog {
	c := NewCatalog()
	c.Register(Definition{
		ID:   "status-counts",
		Name: "Status Counts",
	}, func(ctx context.Context, _ Params) (*Table, error) {
		t := NewTable("status", "count")
		t.Append("Completed", int64(3))
		t.Append("Cancelled", int64(1))
		return t, nil
	})
	c.Register(Definition{
		ID: "broken",
	}, func(ctx context.Context, _ Params) (*Table, error) {
		return nil, WrapDataAccess("broken", errors.New("relation does not exist"))
	})
	return c
}

func newEchoContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestListReports(t *testing.T) {
	h := NewHandler(newHandlerTestCatalog())
	c, rec := newEchoContext(t, "/api/v1/reports")

	if err := h.ListReports(c); err != nil {
		t.Fatalf("ListReports: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "status-counts") || !strings.Contains(body, "broken") {
		t.Fatalf("body missing definitions: %s", body)
	}
}

func TestGetReport_NotFound(t *testing.T) {
	h := NewHandler(newHandlerTestCatalog())
	c, _ := newEchoContext(t, "/api/v1/reports/missing")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.GetReport(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusNotFound {
		t.Fatalf("err = %v, want 404", err)
	}
}

func TestRunReport_JSON(t *testing.T) {
	h := NewHandler(newHandlerTestCatalog())
	c, rec := newEchoContext(t, "/api/v1/reports/status-counts/run")
	c.SetParamNames("id")
	c.SetParamValues("status-counts")

	if err := h.RunReport(c); err != nil {
		t.Fatalf("RunReport: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"report_id":"status-counts"`) {
		t.Fatalf("body missing envelope: %s", body)
	}
	if !strings.Contains(body, `"Completed"`) {
		t.Fatalf("body missing rows: %s", body)
	}
}

func TestRunReport_CSV(t *testing.T) {
	h := NewHandler(newHandlerTestCatalog())
	c, rec := newEchoContext(t, "/api/v1/reports/status-counts/run?format=csv")
	c.SetParamNames("id")
	c.SetParamValues("status-counts")

	if err := h.RunReport(c); err != nil {
		t.Fatalf("RunReport: %v", err)
	}
	if got := rec.Header().Get(echo.HeaderContentType); got != "text/csv" {
		t.Fatalf("content type = %q, want text/csv", got)
	}
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if lines[0] != "status,count" {
		t.Fatalf("header = %q, want status,count", lines[0])
	}
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	if lines[1] != "Completed,3" {
		t.Fatalf("first row = %q", lines[1])
	}
}

func TestRunReport_ErrorMapping(t *testing.T) {
	h := NewHandler(newHandlerTestCatalog())

	tests := []struct {
		name     string
		id       string
		wantCode int
	}{
		{"unknown report", "missing", http.StatusNotFound},
		{"store failure", "broken", http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newEchoContext(t, "/api/v1/reports/"+tt.id+"/run")
			c.SetParamNames("id")
			c.SetParamValues(tt.id)

			err := h.RunReport(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != tt.wantCode {
				t.Fatalf("err = %v, want status %d", err, tt.wantCode)
			}
		})
	}
}

func TestToHTTPError_InvalidParameter(t *testing.T) {
	he := ToHTTPError(InvalidParam("limit", "must not be negative, got %d", -1))
	if he.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", he.Code)
	}
}
