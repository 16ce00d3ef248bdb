package auth

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/trip-board/pkg/util"
)

func newProtectedApp(tm *TokenManager) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).JSON(fiber.Map{"error": fiber.Map{
				"code":    de.Code,
				"message": de.Message,
			}})
		},
	})
	mw := NewMiddleware(tm)
	app.Get("/protected", mw.Handle, func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return fiber.NewError(http.StatusInternalServerError, "principal missing")
		}
		return c.JSON(fiber.Map{"user_id": principal.UserID})
	})
	return app
}

func TestMiddlewareInjectsPrincipal(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	app := newProtectedApp(tm)

	token, _, err := tm.GenerateToken(7)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		UserID int64 `json:"user_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.UserID != 7 {
		t.Fatalf("user_id = %d, want 7", body.UserID)
	}
}

func TestMiddlewareRejectionsAreIndistinguishable(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)
	app := newProtectedApp(tm)

	expired := NewTokenManager(testSecret, time.Nanosecond)
	expiredToken, _, err := expired.GenerateToken(7)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	headers := map[string]string{
		"missing header":   "",
		"wrong scheme":     "Basic abc",
		"one part":         "Bearer",
		"three parts":      "Bearer a b",
		"garbage token":    "Bearer not-a-jwt",
		"expired token":    "Bearer " + expiredToken,
		"lowercase bearer": "bearer not-a-jwt",
	}

	var reference []byte
	for name, header := range headers {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: app.Test: %v", name, err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("%s: status = %d, want 401", name, resp.StatusCode)
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("%s: read body: %v", name, err)
		}
		if reference == nil {
			reference = body
			continue
		}
		if string(body) != string(reference) {
			t.Fatalf("%s: body %q differs from %q", name, body, reference)
		}
	}
}
