package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestAuthFlow(t *testing.T) {
	e, _ := newTestApp(t)

	rec := doJSON(e, http.MethodPost, "/api/register", "", map[string]string{
		"email":    "flow@example.com",
		"password": "secret123",
		"fullName": "Flow Tester",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: status %d body %s", rec.Code, rec.Body.String())
	}
	envelope := decodeEnvelope(t, rec)
	if !envelope.Status {
		t.Errorf("register envelope status=false: %s", rec.Body.String())
	}

	// Duplicate email
	rec = doJSON(e, http.MethodPost, "/api/register", "", map[string]string{
		"email":    "flow@example.com",
		"password": "other",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("duplicate register: status %d, want 400", rec.Code)
	}

	// Wrong password
	rec = doJSON(e, http.MethodPost, "/api/login", "", map[string]string{
		"email":    "flow@example.com",
		"password": "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad login: status %d, want 401", rec.Code)
	}

	token := registerAndLogin(t, e, "second@example.com")

	rec = doJSON(e, http.MethodGet, "/api/profile", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("profile: status %d body %s", rec.Code, rec.Body.String())
	}
	var profile struct {
		Data struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &profile); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if profile.Data.Email != "second@example.com" {
		t.Errorf("profile email=%q", profile.Data.Email)
	}
	if profile.Data.Password != "" {
		t.Error("password hash leaked in profile response")
	}
}

func TestAuthMiddlewareRejections(t *testing.T) {
	e, _ := newTestApp(t)
	registerAndLogin(t, e, "guard@example.com")

	rec := doJSON(e, http.MethodGet, "/api/profile", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("missing token: status %d, want 401", rec.Code)
	}

	rec = doJSON(e, http.MethodGet, "/api/profile", "not-a-jwt", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status %d, want 401", rec.Code)
	}
}

func TestAuthTokenFromQueryParam(t *testing.T) {
	e, _ := newTestApp(t)
	token := registerAndLogin(t, e, "query@example.com")

	req := httptest.NewRequest(http.MethodGet, "/api/profile?token="+token, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("query token: status %d body %s", rec.Code, rec.Body.String())
	}
}

func TestUpdateProfileOverHTTP(t *testing.T) {
	e, _ := newTestApp(t)
	token := registerAndLogin(t, e, "update@example.com")

	rec := doJSON(e, http.MethodPost, "/api/profile", token, map[string]string{
		"businessName": "Corner Store",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update profile: status %d body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(e, http.MethodGet, "/api/profile", token, nil)
	var profile struct {
		Data struct {
			BusinessName string `json:"businessName"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &profile); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if profile.Data.BusinessName != "Corner Store" {
		t.Errorf("businessName=%q, want Corner Store", profile.Data.BusinessName)
	}
}

func TestInvalidJSONBodyReturnsBadRequest(t *testing.T) {
	e, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/register", nil)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	// Empty body binds to an empty request, which fails validation
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", rec.Code)
	}
}
