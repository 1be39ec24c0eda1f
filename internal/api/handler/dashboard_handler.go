package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/maintenox/maintenance-system/internal/core/ports"
)

// DashboardHandler serves the stats panels shown on the admin and user
// landing views.
type DashboardHandler struct {
	jobService ports.JobService
}

func NewDashboardHandler(jobService ports.JobService) *DashboardHandler {
	return &DashboardHandler{jobService: jobService}
}

// Admin returns system-wide counts. Admin only.
//
// @Summary      Admin dashboard stats
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.AdminStats
// @Failure      403  {object}  errorResponse
// @Router       /v1/dashboard/admin [get]
func (h *DashboardHandler) Admin(c echo.Context) error {
	stats, err := h.jobService.AdminStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Me returns counts over the caller's own assignments.
//
// @Summary      Own dashboard stats
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.UserStats
// @Router       /v1/dashboard/me [get]
func (h *DashboardHandler) Me(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	stats, err := h.jobService.UserStats(c.Request().Context(), actor.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
