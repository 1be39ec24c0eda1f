package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/maintenox/maintenance-system/internal/core/domain"
	"github.com/maintenox/maintenance-system/internal/core/ports"
)

// ActivityHandler serves the audit trail. Admin only.
type ActivityHandler struct {
	activity ports.ActivityRepository
}

func NewActivityHandler(activity ports.ActivityRepository) *ActivityHandler {
	return &ActivityHandler{activity: activity}
}

type activityEntryResponse struct {
	Actor      string    `json:"actor"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Detail     string    `json:"detail,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

type listActivityResponse struct {
	Data []activityEntryResponse `json:"data"`
}

// List returns recent audit entries, newest first.
//
// @Summary      Recent activity
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum entries (default 50)"
// @Success      200    {object}  listActivityResponse
// @Failure      403    {object}  errorResponse
// @Router       /v1/activity [get]
func (h *ActivityHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	entries, err := h.activity.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	resp := listActivityResponse{Data: make([]activityEntryResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Data = append(resp.Data, toActivityEntryResponse(e))
	}
	return c.JSON(http.StatusOK, resp)
}

func toActivityEntryResponse(e domain.ActivityEntry) activityEntryResponse {
	return activityEntryResponse{
		Actor:      e.Actor,
		Action:     e.Action,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		Detail:     e.Detail,
		Timestamp:  e.Timestamp,
	}
}
