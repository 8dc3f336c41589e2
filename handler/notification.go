package handler

import (
	"strconv"

	"notalx/middleware"
	"notalx/pkg/context"
	"notalx/pkg/response"
	"notalx/service"
	"notalx/types"

	"github.com/gin-gonic/gin"
)

type Notification struct {
	Guard               *middleware.Guard
	NotificationService service.INotificationService
}

func (h *Notification) RegisterRouter(r gin.IRouter) {
	g := r.Group("/notification", h.Guard.Auth())
	g.GET("", context.Wrap(h.List))
	g.GET("/unread-count", context.Wrap(h.UnreadCount))
	g.PUT("/read-all", context.Wrap(h.MarkAllRead))
	g.PUT("/:notification_id/read", context.Wrap(h.MarkRead))
}

// List 未读在前，新的在前
func (h *Notification) List(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("Not logged in")
	}

	p := context.GetPagination(c)
	resp, err := h.NotificationService.List(c.Request.Context(), uid, p.Limit(), p.Offset())
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}

func (h *Notification) MarkRead(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("Not logged in")
	}

	id, err := strconv.ParseInt(c.Param("notification_id"), 10, 64)
	if err != nil || id <= 0 {
		return response.Validation("Invalid notification id")
	}

	if err := h.NotificationService.MarkRead(c.Request.Context(), id, uid); err != nil {
		return err
	}

	response.Success(c, gin.H{"message": "Notification marked as read"})
	return nil
}

func (h *Notification) MarkAllRead(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("Not logged in")
	}

	if err := h.NotificationService.MarkAllRead(c.Request.Context(), uid); err != nil {
		return err
	}

	response.Success(c, gin.H{"message": "All notifications marked as read"})
	return nil
}

func (h *Notification) UnreadCount(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("Not logged in")
	}

	count, err := h.NotificationService.UnreadCount(c.Request.Context(), uid)
	if err != nil {
		return err
	}

	response.Success(c, types.UnreadCountResponse{Count: count})
	return nil
}
