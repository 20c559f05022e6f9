package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/microboard/backend/internal/models"
	"github.com/microboard/backend/validators"
)

func newAuthEnv(t *testing.T) (*echo.Echo, *mockUserRepo) {
	t.Helper()
	users := newMockUserRepo()
	e := echo.New()
	e.Validator = validators.NewValidator()
	handler := NewAuthHandler(users, testSecret)
	handler.RegisterAuthRoutes(e.Group("/auth"))
	return e, users
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSignupIssuesToken(t *testing.T) {
	e, _ := newAuthEnv(t)

	rec := postJSON(e, "/auth/signup", `{"username":"alice","email":"alice@example.com","password":"correcthorse"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	claims := &models.JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(resp["token"], claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("signup token does not verify: %v", err)
	}
	if claims.Username != "alice" || claims.UserID == 0 {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestSignupRejectsDuplicates(t *testing.T) {
	e, _ := newAuthEnv(t)
	postJSON(e, "/auth/signup", `{"username":"alice","email":"alice@example.com","password":"correcthorse"}`)

	rec := postJSON(e, "/auth/signup", `{"username":"alice","email":"other@example.com","password":"correcthorse"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate username = %d, want 409", rec.Code)
	}

	rec = postJSON(e, "/auth/signup", `{"username":"alice2","email":"alice@example.com","password":"correcthorse"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate email = %d, want 409", rec.Code)
	}
}

func TestSignupValidatesPayload(t *testing.T) {
	e, _ := newAuthEnv(t)

	rec := postJSON(e, "/auth/signup", `{"username":"alice","email":"not-an-email","password":"correcthorse"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad email = %d, want 400", rec.Code)
	}

	rec = postJSON(e, "/auth/signup", `{"username":"alice","email":"alice@example.com","password":"short"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("short password = %d, want 400", rec.Code)
	}
}

func TestSignin(t *testing.T) {
	e, _ := newAuthEnv(t)
	postJSON(e, "/auth/signup", `{"username":"alice","email":"alice@example.com","password":"correcthorse"}`)

	rec := postJSON(e, "/auth/signin", `{"email":"alice@example.com","password":"wrong-password"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong password = %d, want 401", rec.Code)
	}

	rec = postJSON(e, "/auth/signin", `{"email":"ghost@example.com","password":"correcthorse"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("unknown email = %d, want 401", rec.Code)
	}

	rec = postJSON(e, "/auth/signin", `{"email":"alice@example.com","password":"correcthorse"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("signin = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["token"] == "" || resp["username"] != "alice" {
		t.Errorf("unexpected signin response: %v", resp)
	}
}
