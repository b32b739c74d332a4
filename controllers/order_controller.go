package controllers

import (
	"strconv"

	"github.com/alexkanav/cafe-ordering-system/pkg/resp"
	"github.com/alexkanav/cafe-ordering-system/services"
	"github.com/alexkanav/cafe-ordering-system/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// ===== Client =====

// POST /api/users/order
func (oc *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Orders.Create(uid, &req)
	if err != nil {
		resp.DomainError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /api/users/orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	items, err := oc.Orders.ListForUser(uid, 50)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": items})
}

// ===== Staff =====

// GET /api/admin/orders?only_uncompleted=true
func (oc *OrderController) List(c *gin.Context) {
	onlyUncompleted := c.DefaultQuery("only_uncompleted", "true") == "true"

	orders, err := oc.Orders.List(onlyUncompleted, 0)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders, "ordersCount": len(orders)})
}

// GET /api/admin/orders/count
func (oc *OrderController) Count(c *gin.Context) {
	count, err := oc.Orders.CountUncompleted()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"count": count})
}

// PATCH /api/admin/orders/:id/complete — ปิดซ้ำได้ 409
func (oc *OrderController) Complete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	staffID := utils.CurrentUserID(c)
	if err := oc.Orders.Complete(uint(id), staffID); err != nil {
		resp.DomainError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order completed"})
}
