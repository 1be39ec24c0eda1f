package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/maintenox/maintenance-system/internal/api/metrics"
	"github.com/maintenox/maintenance-system/internal/core/domain"
	"github.com/maintenox/maintenance-system/internal/core/ports"
)

// JobHandler handles HTTP requests for job operations.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// List returns jobs matching the composable filters. Non-admin callers are
// always scoped to their own assignments.
//
// @Summary      List jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        search       query     string  false  "Substring match on title or description"
// @Param        category     query     string  false  "Category filter (or 'all')"
// @Param        status       query     string  false  "Status filter (or 'all')"
// @Param        assigned_to  query     string  false  "Assignee filter (or 'all'); admin only"
// @Success      200          {object}  listJobsResponse
// @Router       /v1/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	filter := ports.JobFilter{
		Search:     c.QueryParam("search"),
		Category:   c.QueryParam("category"),
		Status:     c.QueryParam("status"),
		AssignedTo: c.QueryParam("assigned_to"),
	}
	if !actor.IsAdmin() {
		filter.AssignedTo = actor.UserID
	}

	jobs, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListJobsResponse(jobs))
}

// Get returns a single job by id.
//
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  jobResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponse(job))
}

// Create creates a new job assigned to a user. Admin only.
//
// @Summary      Create a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  jobResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	job, err := h.service.Create(c.Request().Context(), actor, ports.CreateJobInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    domain.JobCategory(req.Category),
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		return err
	}
	metrics.JobsCreatedTotal.WithLabelValues(string(job.Category)).Inc()

	return c.JSON(http.StatusCreated, toJobResponse(job))
}

// Update edits any job field. Admin only.
//
// @Summary      Update a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Job ID"
// @Param        body  body      updateJobRequest  true  "Fields to change"
// @Success      200   {object}  jobResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	var req updateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	input := ports.UpdateJobInput{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
	}
	if req.Category != nil {
		cat := domain.JobCategory(*req.Category)
		input.Category = &cat
	}
	if req.Status != nil {
		st := domain.JobStatus(*req.Status)
		input.Status = &st
	}

	job, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponse(job))
}

// UpdateStatus moves a job between the three states. Allowed for an admin or
// for the assignee.
//
// @Summary      Change a job's status
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Job ID"
// @Param        body  body      updateJobStatusRequest  true  "New status"
// @Success      200   {object}  jobResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/jobs/{id}/status [patch]
func (h *JobHandler) UpdateStatus(c echo.Context) error {
	var req updateJobStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	job, err := h.service.UpdateStatus(c.Request().Context(), actor, c.Param("id"), domain.JobStatus(req.Status))
	if err != nil {
		return err
	}
	metrics.JobStatusTransitionsTotal.WithLabelValues(string(job.Status)).Inc()

	return c.JSON(http.StatusOK, toJobResponse(job))
}

// Delete removes a job. Admin only; deleting an unknown id is a no-op.
//
// @Summary      Delete a job
// @Tags         jobs
// @Security     BearerAuth
// @Param        id  path  string  true  "Job ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Router       /v1/jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
