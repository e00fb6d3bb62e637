package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var testKey = []byte("test-signing-key")

func signToken(t *testing.T, claims *Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(testKey)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func doRequest(mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	return rec, handler(c)
}

func TestJWTMiddleware_MissingHeader(t *testing.T) {
	_, err := doRequest(JWTMiddleware(testKey), "")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestJWTMiddleware_BadFormat(t *testing.T) {
	_, err := doRequest(JWTMiddleware(testKey), "Token abc")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestJWTMiddleware_InvalidToken(t *testing.T) {
	_, err := doRequest(JWTMiddleware(testKey), "Bearer not.a.token")
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestJWTMiddleware_ValidToken(t *testing.T) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "analyst-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Roles: []string{"analyst"},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, claims))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotSubject string
	var gotRoles []string
	handler := JWTMiddleware(testKey)(func(c echo.Context) error {
		gotSubject = UserIDFromContext(c.Request().Context())
		gotRoles = RolesFromContext(c.Request().Context())
		return c.String(http.StatusOK, "ok")
	})
	if err := handler(c); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if gotSubject != "analyst-1" {
		t.Errorf("expected subject analyst-1, got %q", gotSubject)
	}
	if len(gotRoles) != 1 || gotRoles[0] != "analyst" {
		t.Errorf("unexpected roles: %v", gotRoles)
	}
}

func TestJWTMiddleware_ExpiredToken(t *testing.T) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "analyst-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	_, err := doRequest(JWTMiddleware(testKey), "Bearer "+signToken(t, claims))
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %v", err)
	}
}

func TestDevAuthMiddleware(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := DevAuthMiddleware()(func(c echo.Context) error {
		roles := RolesFromContext(c.Request().Context())
		if len(roles) != 1 || roles[0] != "admin" {
			t.Errorf("expected admin role in dev mode, got %v", roles)
		}
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func contextWithRoles(ctx context.Context, roles []string) context.Context {
	return context.WithValue(ctx, UserRolesKey, roles)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name      string
		userRoles []string
		required  []string
		allowed   bool
	}{
		{"exact match", []string{"analyst"}, []string{"analyst"}, true},
		{"admin passes any gate", []string{"admin"}, []string{"analyst"}, true},
		{"no roles", nil, []string{"analyst"}, false},
		{"wrong role", []string{"billing"}, []string{"analyst"}, false},
		{"one of several", []string{"analyst"}, []string{"admin", "analyst"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if tt.userRoles != nil {
				ctx := req.Context()
				c.SetRequest(req.WithContext(
					contextWithRoles(ctx, tt.userRoles)))
			}

			handler := RequireRole(tt.required...)(func(c echo.Context) error {
				return c.String(http.StatusOK, "ok")
			})
			err := handler(c)

			if tt.allowed && err != nil {
				t.Errorf("expected access, got %v", err)
			}
			if !tt.allowed {
				he, ok := err.(*echo.HTTPError)
				if !ok || he.Code != http.StatusForbidden {
					t.Errorf("expected 403, got %v", err)
				}
			}
		})
	}
}
