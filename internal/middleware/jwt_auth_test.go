package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/microboard/backend/internal/models"
)

const testSecret = "test-secret"

func makeToken(t *testing.T, secret string, method jwt.SigningMethod, expiry time.Duration) string {
	t.Helper()
	claims := &models.JwtCustomClaims{
		UserID:   42,
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
		},
	}
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func runMiddleware(t *testing.T, authHeader string) (*httptest.ResponseRecorder, *models.JwtCustomClaims) {
	t.Helper()
	e := echo.New()

	var seen *models.JwtCustomClaims
	handler := JWTAuthMiddleware(testSecret)(func(c echo.Context) error {
		seen, _ = c.Get(ContextUserKey).(*models.JwtCustomClaims)
		return c.NoContent(http.StatusOK)
	})
	e.GET("/probe", handler)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec, seen
}

func TestMissingAuthorizationHeader(t *testing.T) {
	rec, _ := runMiddleware(t, "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("missing header = %d, want 401", rec.Code)
	}
}

func TestMalformedAuthorizationHeader(t *testing.T) {
	for _, header := range []string{"token-without-scheme", "Basic abc", "Bearer"} {
		rec, _ := runMiddleware(t, header)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q = %d, want 401", header, rec.Code)
		}
	}
}

func TestWrongSignature(t *testing.T) {
	token := makeToken(t, "other-secret", jwt.SigningMethodHS256, time.Hour)
	rec, _ := runMiddleware(t, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong signature = %d, want 401", rec.Code)
	}
}

func TestExpiredToken(t *testing.T) {
	token := makeToken(t, testSecret, jwt.SigningMethodHS256, -time.Hour)
	rec, _ := runMiddleware(t, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expired token = %d, want 401", rec.Code)
	}
}

func TestValidTokenStoresClaims(t *testing.T) {
	token := makeToken(t, testSecret, jwt.SigningMethodHS256, time.Hour)
	rec, claims := runMiddleware(t, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("valid token = %d, want 200", rec.Code)
	}
	if claims == nil || claims.UserID != 42 || claims.Username != "alice" {
		t.Errorf("claims not stored in context: %+v", claims)
	}
}
