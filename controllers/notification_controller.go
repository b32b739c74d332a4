package controllers

import (
	"strconv"

	"github.com/alexkanav/cafe-ordering-system/pkg/resp"
	"github.com/alexkanav/cafe-ordering-system/services"
	"github.com/alexkanav/cafe-ordering-system/utils"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	Notifications *services.NotificationService
}

func NewNotificationController(n *services.NotificationService) *NotificationController {
	return &NotificationController{Notifications: n}
}

// GET /api/admin/notifications?only_unread=true
func (nc *NotificationController) List(c *gin.Context) {
	onlyUnread := c.DefaultQuery("only_unread", "true") == "true"

	items, err := nc.Notifications.List(onlyUnread)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/admin/notifications/unread/count
func (nc *NotificationController) CountUnread(c *gin.Context) {
	count, err := nc.Notifications.CountUnread()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"unreadNotifCount": count})
}

// POST /api/admin/notifications — สร้างแล้ว push เข้า WS feed ด้วย
func (nc *NotificationController) Create(c *gin.Context) {
	staffID := utils.CurrentUserID(c)

	var req services.NotificationIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	n, err := nc.Notifications.Create(staffID, &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, n)
}

// PATCH /api/admin/notifications/:id — อ่านซ้ำเป็น no-op
func (nc *NotificationController) MarkRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid notification id")
		return
	}

	staffID := utils.CurrentUserID(c)
	if err := nc.Notifications.MarkRead(uint(id), staffID); err != nil {
		resp.DomainError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "notification marked as read"})
}
