package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Nenad034/isplate-backend/internal/core/ports"
)

// AssistantHandler answers dataset questions. The only client-visible error
// is a missing query; every engine failure resolves to a local answer with
// status 200.
type AssistantHandler struct {
	assistant ports.AssistantService
	snapshots ports.SnapshotSource
	log       zerolog.Logger
}

func NewAssistantHandler(assistant ports.AssistantService, snapshots ports.SnapshotSource, log zerolog.Logger) *AssistantHandler {
	return &AssistantHandler{assistant: assistant, snapshots: snapshots, log: log}
}

type chatRequest struct {
	Query   string `json:"query"`
	Context string `json:"context"`
}

type chatResponse struct {
	Answer string `json:"answer"`
}

// Chat resolves one question.
//
// @Summary      Ask the assistant
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        body  body      chatRequest  true  "Question and optional stats context"
// @Success      200   {object}  chatResponse
// @Failure      400   {object}  map[string]string
// @Router       /ai-chat [post]
func (h *AssistantHandler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if req.Query == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "query is required"})
	}

	snapshot := req.Context
	if snapshot == "" && h.snapshots != nil {
		built, err := h.snapshots.Snapshot(c.Request().Context())
		if err != nil {
			// The assistant still answers; it just has no figures to cite.
			h.log.Warn().Err(err).Msg("stats snapshot unavailable")
		} else {
			snapshot = built
		}
	}

	answer := h.assistant.Answer(c.Request().Context(), req.Query, snapshot)
	return c.JSON(http.StatusOK, chatResponse{Answer: answer})
}
