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

type nopLogger struct{}

func (nopLogger) Info(string)         {}
func (nopLogger) Warning(string)      {}
func (nopLogger) Error(string, error) {}
func (nopLogger) Close()              {}

type stubYoutube struct {
	calls int
}

func (s *stubYoutube) ResolveChannel(context.Context, string) (domain.ChannelSummary, error) {
	s.calls++
	return domain.ChannelSummary{}, nil
}

func (s *stubYoutube) ListUploads(context.Context, string, int) ([]string, error) {
	s.calls++
	return nil, nil
}

func (s *stubYoutube) FetchVideos(context.Context, []string) ([]domain.VideoRecord, error) {
	s.calls++
	return nil, nil
}

type stubDistributor struct{}

func (stubDistributor) Distribute(total int64) map[string]int64 {
	return map[string]int64{"US": total}
}

func newTestApp(keyConfigured bool, yt *stubYoutube) *fiber.App {
	uc := usecases.NewChannelUseCase(yt, stubDistributor{}, nopLogger{}, keyConfigured)
	app := fiber.New()
	app.Get("/api/youtube/channel-videos", NewChannelHandler(uc).GetChannelVideos)
	return app
}

func TestGetChannelVideos_InputValidation(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "missing channel", target: "/api/youtube/channel-videos?count=10"},
		{name: "missing count", target: "/api/youtube/channel-videos?channel=@x"},
		{name: "count zero", target: "/api/youtube/channel-videos?channel=@x&count=0"},
		{name: "count above cap", target: "/api/youtube/channel-videos?channel=@x&count=501"},
		{name: "count not an integer", target: "/api/youtube/channel-videos?channel=@x&count=ten"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yt := &stubYoutube{}
			app := newTestApp(true, yt)

			resp, err := app.Test(httptest.NewRequest("GET", tt.target, nil))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != fiber.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
			if yt.calls != 0 {
				t.Error("invalid input must be rejected before pipeline entry")
			}
		})
	}
}

func TestGetChannelVideos_UnconfiguredKey(t *testing.T) {
	yt := &stubYoutube{}
	app := newTestApp(false, yt)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/youtube/channel-videos?channel=@x&count=10", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200 (failure is carried in the body)", resp.StatusCode)
	}

	var result domain.ChannelVideosResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if result.Success {
		t.Error("expected success=false")
	}
	if !strings.HasPrefix(result.Error, "YouTube API key not configured") {
		t.Errorf("error = %q, want API-key message", result.Error)
	}
	if yt.calls != 0 {
		t.Error("no external calls expected without a configured key")
	}
}
