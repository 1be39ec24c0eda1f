package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/maintenox/maintenance-system/internal/api/metrics"
	"github.com/maintenox/maintenance-system/internal/core/domain"
	"github.com/maintenox/maintenance-system/internal/core/ports"
)

// NotificationHandler handles broadcast notifications. Reads are open to any
// authenticated viewer; Broadcast sits behind RoleGate(admin).
type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

type broadcastRequest struct {
	Title   string `json:"title"   validate:"required"`
	Message string `json:"message" validate:"required"`
}

type notificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	From      string    `json:"from"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

func toNotificationResponse(n *domain.Notification) notificationResponse {
	return notificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		From:      n.From,
		Timestamp: n.Timestamp,
		Read:      n.Read,
	}
}

type listNotificationsResponse struct {
	Data []notificationResponse `json:"data"`
}

type unreadCountResponse struct {
	Count int `json:"count"`
}

// List returns all notifications, newest first.
//
// @Summary      List notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listNotificationsResponse
// @Router       /v1/notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	notifications, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := listNotificationsResponse{Data: make([]notificationResponse, 0, len(notifications))}
	for i := range notifications {
		resp.Data = append(resp.Data, toNotificationResponse(&notifications[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Broadcast publishes a notification to every viewer. Admin only.
//
// @Summary      Broadcast a notification
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      broadcastRequest  true  "Notification content"
// @Success      201   {object}  notificationResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/notifications [post]
func (h *NotificationHandler) Broadcast(c echo.Context) error {
	var req broadcastRequest
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

	n, err := h.service.Broadcast(c.Request().Context(), actor, req.Title, req.Message)
	if err != nil {
		return err
	}
	metrics.NotificationsBroadcastTotal.Inc()

	return c.JSON(http.StatusCreated, toNotificationResponse(n))
}

// MarkRead flags a notification as read. Idempotent; unknown ids succeed.
//
// @Summary      Mark a notification as read
// @Tags         notifications
// @Security     BearerAuth
// @Param        id  path  string  true  "Notification ID"
// @Success      204
// @Router       /v1/notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	if err := h.service.MarkAsRead(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes a notification. Any viewer may delete; idempotent.
//
// @Summary      Delete a notification
// @Tags         notifications
// @Security     BearerAuth
// @Param        id  path  string  true  "Notification ID"
// @Success      204
// @Router       /v1/notifications/{id} [delete]
func (h *NotificationHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UnreadCount returns the number of unread notifications.
//
// @Summary      Unread notification count
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  unreadCountResponse
// @Router       /v1/notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	count, err := h.service.UnreadCount(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, unreadCountResponse{Count: count})
}
