package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Nenad034/isplate-backend/internal/core/domain"
	"github.com/Nenad034/isplate-backend/internal/core/ports"
)

// ActivityHandler exposes the append-only audit log.
type ActivityHandler struct {
	activity ports.ActivityService
}

func NewActivityHandler(activity ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{activity: activity}
}

// List returns every entry, newest first.
//
// @Summary      List activity log entries
// @Tags         activity
// @Produce      json
// @Success      200  {array}   domain.ActivityEntry
// @Failure      401  {object}  map[string]string
// @Router       /activity-logs [get]
func (h *ActivityHandler) List(c echo.Context) error {
	entries, err := h.activity.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

type appendActivityRequest struct {
	ID      string `json:"id"`
	Action  string `json:"action" validate:"required"`
	Details string `json:"details"`
}

// Append stores a client-side activity entry. The recorded user is always
// the authenticated principal.
//
// @Summary      Append an activity log entry
// @Tags         activity
// @Accept       json
// @Produce      json
// @Param        body  body      appendActivityRequest  true  "Entry"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  map[string]string
// @Router       /activity-logs [post]
func (h *ActivityHandler) Append(c echo.Context) error {
	var req appendActivityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	entry := &domain.ActivityEntry{
		ID:      req.ID,
		Action:  req.Action,
		Details: req.Details,
		User:    actorName(c),
	}
	if err := h.activity.Append(c.Request().Context(), entry); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, successResponse{Success: true})
}
