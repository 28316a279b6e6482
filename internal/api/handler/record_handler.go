package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Nenad034/isplate-backend/internal/api/middleware"
	"github.com/Nenad034/isplate-backend/internal/core/domain"
	"github.com/Nenad034/isplate-backend/internal/core/ports"
)

// RecordHandler is the HTTP face of the shared lifecycle: one instance per
// entity collection (suppliers, hotels, payments). The collection carries the
// id in the body for PUT/DELETE/PATCH, matching the dashboard client.
type RecordHandler[T domain.Resource] struct {
	service   ports.RecordService[T]
	newRecord func() T
}

func NewRecordHandler[T domain.Resource](service ports.RecordService[T], newRecord func() T) *RecordHandler[T] {
	return &RecordHandler[T]{service: service, newRecord: newRecord}
}

type deleteRequest struct {
	ID string `json:"id"`
	// User is what the dashboard sends; it is deliberately ignored in favor
	// of the authenticated principal so a client cannot attribute deletions
	// to someone else.
	User       string `json:"user"`
	HardDelete bool   `json:"hardDelete"`
}

type restoreRequest struct {
	ID string `json:"id"`
}

type recordResponse struct {
	Success bool `json:"success"`
	Record  any  `json:"record,omitempty"`
}

// List returns the collection; soft-deleted records only with
// ?showDeleted=true.
//
// @Summary      List records
// @Produce      json
// @Param        showDeleted  query     bool  false  "Include soft-deleted records"
// @Success      200          {array}   any
// @Failure      401          {object}  map[string]string
func (h *RecordHandler[T]) List(c echo.Context) error {
	includeDeleted := c.QueryParam("showDeleted") == "true"

	records, err := h.service.List(c.Request().Context(), includeDeleted)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// Create stores a new record, assigning an id when the payload has none.
//
// @Summary      Create a record
// @Accept       json
// @Produce      json
// @Success      201  {object}  recordResponse
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
func (h *RecordHandler[T]) Create(c echo.Context) error {
	rec := h.newRecord()
	if err := c.Bind(rec); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(rec); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	created, err := h.service.Create(c.Request().Context(), rec, actorName(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, recordResponse{Success: true, Record: created})
}

// Update overlays the supplied fields onto the stored record; fields absent
// from the payload keep their stored values.
//
// @Summary      Update a record
// @Accept       json
// @Produce      json
// @Success      200  {object}  recordResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
func (h *RecordHandler[T]) Update(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if probe.ID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id is required"})
	}

	updated, err := h.service.Update(c.Request().Context(), probe.ID, actorName(c), func(rec T) error {
		// Overlay and validation failures are the client's fault; returning
		// them as HTTP errors keeps them 400 after the service wraps them.
		if err := json.Unmarshal(body, rec); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
		}
		if err := c.Validate(rec); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return nil
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recordResponse{Success: true, Record: updated})
}

// Delete soft-deletes by default; hardDelete=true removes the record
// permanently and is restricted to Admin regardless of the route policy.
//
// @Summary      Delete a record
// @Accept       json
// @Produce      json
// @Success      200  {object}  recordResponse
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
func (h *RecordHandler[T]) Delete(c echo.Context) error {
	var req deleteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if req.ID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id is required"})
	}

	if req.HardDelete {
		principal := middleware.PrincipalFrom(c)
		if principal == nil || !principal.Role.Allows(domain.RoleAdmin) {
			return echo.NewHTTPError(http.StatusForbidden, "forbidden")
		}
		if err := h.service.HardDelete(c.Request().Context(), req.ID, actorName(c)); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, recordResponse{Success: true})
	}

	if err := h.service.SoftDelete(c.Request().Context(), req.ID, actorName(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recordResponse{Success: true})
}

// Restore returns a soft-deleted record to the active state; restoring an
// active record succeeds as a no-op.
//
// @Summary      Restore a record
// @Accept       json
// @Produce      json
// @Success      200  {object}  recordResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
func (h *RecordHandler[T]) Restore(c echo.Context) error {
	var req restoreRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if req.ID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id is required"})
	}

	if err := h.service.Restore(c.Request().Context(), req.ID, actorName(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recordResponse{Success: true})
}

// actorName is the display name written into audit entries. Falls back to
// "Unknown" only when the route is (mis)wired without the auth middleware.
func actorName(c echo.Context) string {
	if principal := middleware.PrincipalFrom(c); principal != nil {
		return principal.Name
	}
	return "Unknown"
}
