package controllers

import (
	"strconv"

	"storefront/pkg/resp"
	"storefront/services"
	"storefront/utils"

	"github.com/gin-gonic/gin"
)

type NotificationController struct{ Svc *services.NotificationService }

func NewNotificationController(s *services.NotificationService) *NotificationController {
	return &NotificationController{Svc: s}
}

// GET /notifications?limit=
func (h *NotificationController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	items, unread, err := h.Svc.ListForUser(uid, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "unread": unread})
}

// PATCH /notifications/:id/read
func (h *NotificationController) MarkRead(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	if err := h.Svc.MarkRead(uid, paramID(c, "id")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"read": true})
}
