// file: internals/helpers/json_response_test.go
package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func doRequest(t *testing.T, handler fiber.Handler) (int, map[string]any) {
	t.Helper()
	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("response is not JSON: %q", body)
	}
	return resp.StatusCode, parsed
}

func TestJsonErrorShape(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonError(c, fiber.StatusNotFound, "Student not found")
	})

	if status != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
	if body["message"] != "Student not found" {
		t.Errorf("message = %v", body["message"])
	}
	if len(body) != 1 {
		t.Errorf("error body must carry only the message field, got %v", body)
	}
}

func TestJsonErrorDefaults(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonError(c, 0, "   ")
	})

	if status != fiber.StatusInternalServerError {
		t.Errorf("status = %d, want 500", status)
	}
	if body["message"] == "" {
		t.Error("blank message should fall back to a generic one")
	}
}

func TestJsonOKAndCreated(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonOK(c, fiber.Map{"students": []string{}})
	})
	if status != fiber.StatusOK {
		t.Errorf("JsonOK status = %d, want 200", status)
	}
	if _, ok := body["students"]; !ok {
		t.Errorf("payload key missing: %v", body)
	}

	status, body = doRequest(t, func(c *fiber.Ctx) error {
		return JsonCreated(c, fiber.Map{"message": "Student added successfully"})
	})
	if status != fiber.StatusCreated {
		t.Errorf("JsonCreated status = %d, want 201", status)
	}
	if body["message"] != "Student added successfully" {
		t.Errorf("message = %v", body["message"])
	}
}
