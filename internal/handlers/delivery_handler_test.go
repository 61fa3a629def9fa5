package handlers

import (
	"context"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/farhan1515/GYM-BOT/internal/services"
)

type stubDeliverer struct {
	result *services.DeliveryResult
	err    error
}

func (s *stubDeliverer) Send(_ context.Context, _, _ string) (*services.DeliveryResult, error) {
	return s.result, s.err
}

func newDeliveryTestApp(deliverer *stubDeliverer) *fiber.App {
	app := fiber.New()
	handler := NewDeliveryHandler(deliverer)
	app.Post("/api/send-whatsapp", handler.SendWhatsApp)
	return app
}

func TestSendWhatsAppRequiresToAndMessage(t *testing.T) {
	app := newDeliveryTestApp(&stubDeliverer{})

	status, body := postJSON(t, app, "/api/send-whatsapp", map[string]any{"to": "+919876543210"})
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if !strings.Contains(body["error"].(string), "to, message") {
		t.Fatalf("unexpected error %v", body["error"])
	}
}

func TestSendWhatsAppSimulated(t *testing.T) {
	app := newDeliveryTestApp(&stubDeliverer{
		result: &services.DeliveryResult{Simulated: true, SID: "simulated-123"},
	})

	status, body := postJSON(t, app, "/api/send-whatsapp", map[string]any{
		"to":      "+919876543210",
		"message": "hello",
	})
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body["sid"] != "simulated-123" {
		t.Fatalf("simulated send must expose its marker, got %v", body)
	}
}

func TestSendWhatsAppErrorTaxonomy(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
	}{
		{services.ErrInvalidDestination, fiber.StatusBadRequest},
		{services.ErrSendDenied, fiber.StatusForbidden},
		{context.DeadlineExceeded, fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		app := newDeliveryTestApp(&stubDeliverer{err: tc.err})
		status, _ := postJSON(t, app, "/api/send-whatsapp", map[string]any{
			"to":      "+919876543210",
			"message": "hello",
		})
		if status != tc.wantStatus {
			t.Fatalf("error %v: expected %d, got %d", tc.err, tc.wantStatus, status)
		}
	}
}

func TestSendWhatsAppSuccess(t *testing.T) {
	app := newDeliveryTestApp(&stubDeliverer{result: &services.DeliveryResult{Chunks: 2}})

	status, body := postJSON(t, app, "/api/send-whatsapp", map[string]any{
		"to":      "+919876543210",
		"message": "hello",
	})
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body["success"] != true {
		t.Fatalf("expected success true, got %v", body)
	}
}
