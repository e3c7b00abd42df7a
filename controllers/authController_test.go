package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestLogout(t *testing.T) {
	app := fiber.New()
	app.Post("/api/logout", Logout)

	req := httptest.NewRequest(fiber.MethodPost, "/api/logout", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	// Auth is a Bearer token the client discards; logout must not touch cookies.
	if got := resp.Header.Get("Set-Cookie"); got != "" {
		t.Errorf("unexpected Set-Cookie header: %q", got)
	}
}
