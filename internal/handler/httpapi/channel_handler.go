package httpapi

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"tuberev/internal/core/usecases"
)

const (
	minVideoCount = 1
	maxVideoCount = 500
)

type ChannelHandler struct {
	uc usecases.ChannelUseCase
}

func NewChannelHandler(uc usecases.ChannelUseCase) *ChannelHandler {
	return &ChannelHandler{uc: uc}
}

// GetChannelVideos handles GET /api/youtube/channel-videos?channel=...&count=...
// Input bounds are enforced here, before the pipeline runs; everything past
// this point is reported through the result body, not HTTP status codes.
func (h *ChannelHandler) GetChannelVideos(c fiber.Ctx) error {
	channel := c.Query("channel")
	if channel == "" {
		return ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELD", "channel query parameter is required")
	}

	countRaw := c.Query("count")
	if countRaw == "" {
		return ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELD", "count query parameter is required")
	}
	count, err := strconv.Atoi(countRaw)
	if err != nil {
		return ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "count must be an integer")
	}
	if count < minVideoCount || count > maxVideoCount {
		return ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "count must be between 1 and 500")
	}

	result := h.uc.GetChannelVideos(c.Context(), channel, count)

	outcome := "success"
	if !result.Success {
		outcome = "failure"
	}
	pipelineRequests.WithLabelValues(outcome).Inc()
	videosEnriched.Add(float64(result.Total))

	return c.JSON(result)
}
