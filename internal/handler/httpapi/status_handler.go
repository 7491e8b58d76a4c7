package httpapi

import (
	"github.com/gofiber/fiber/v3"

	"tuberev/internal/core/domain"
	"tuberev/internal/core/usecases"
)

type StatusHandler struct {
	uc usecases.StatusUseCase
}

func NewStatusHandler(uc usecases.StatusUseCase) *StatusHandler {
	return &StatusHandler{uc: uc}
}

type statusCheckRequest struct {
	ClientName string `json:"client_name"`
}

// Create handles POST /api/status
func (h *StatusHandler) Create(c fiber.Ctx) error {
	var req statusCheckRequest
	if err := c.Bind().JSON(&req); err != nil {
		return ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	if req.ClientName == "" {
		return ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELD", "client_name is required")
	}

	check, err := h.uc.RecordCheck(c.Context(), req.ClientName)
	if err != nil {
		return ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to record status check")
	}

	return c.JSON(check)
}

// List handles GET /api/status
func (h *StatusHandler) List(c fiber.Ctx) error {
	checks, err := h.uc.ListChecks(c.Context())
	if err != nil {
		return ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list status checks")
	}
	if checks == nil {
		checks = []domain.StatusCheck{}
	}

	return c.JSON(checks)
}
