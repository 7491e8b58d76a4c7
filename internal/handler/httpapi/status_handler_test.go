package httpapi

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"tuberev/internal/core/domain"
	"tuberev/internal/core/usecases"
)

type memoryStatusRepo struct {
	checks []domain.StatusCheck
}

func (m *memoryStatusRepo) Insert(_ context.Context, check domain.StatusCheck) error {
	m.checks = append(m.checks, check)
	return nil
}

func (m *memoryStatusRepo) List(_ context.Context, limit int64) ([]domain.StatusCheck, error) {
	if int64(len(m.checks)) > limit {
		return m.checks[:limit], nil
	}
	return m.checks, nil
}

func newStatusApp(repo *memoryStatusRepo) *fiber.App {
	h := NewStatusHandler(usecases.NewStatusUseCase(repo, nopLogger{}))
	app := fiber.New()
	app.Post("/api/status", h.Create)
	app.Get("/api/status", h.List)
	return app
}

func TestStatusCreateAndList(t *testing.T) {
	repo := &memoryStatusRepo{}
	app := newStatusApp(repo)

	body := strings.NewReader(`{"client_name":"probe-1"}`)
	req := httptest.NewRequest("POST", "/api/status", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var created domain.StatusCheck
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if created.ClientName != "probe-1" || created.ID == "" || created.Timestamp.IsZero() {
		t.Errorf("unexpected check: %+v", created)
	}

	listResp, err := app.Test(httptest.NewRequest("GET", "/api/status", nil))
	if err != nil {
		t.Fatalf("list request failed: %v", err)
	}
	var listed []domain.StatusCheck
	if err := json.NewDecoder(listResp.Body).Decode(&listed); err != nil {
		t.Fatalf("decoding list body: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Errorf("listed = %+v, want the created check", listed)
	}
}

func TestStatusCreate_MissingClientName(t *testing.T) {
	app := newStatusApp(&memoryStatusRepo{})

	req := httptest.NewRequest("POST", "/api/status", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
