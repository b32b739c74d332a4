package controllers

import (
	"strconv"

	"github.com/alexkanav/cafe-ordering-system/pkg/resp"
	"github.com/alexkanav/cafe-ordering-system/services"
	"github.com/alexkanav/cafe-ordering-system/utils"

	"github.com/gin-gonic/gin"
)

type CouponController struct {
	Coupons *services.CouponService
}

func NewCouponController(coupons *services.CouponService) *CouponController {
	return &CouponController{Coupons: coupons}
}

// POST /api/users/coupon/:code — ใช้แล้วใช้เลย ผูกกับคนที่ redeem
func (cc *CouponController) Check(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	pct, err := cc.Coupons.Check(uid, c.Param("code"))
	if err != nil {
		resp.DomainError(c, err)
		return
	}
	resp.OK(c, gin.H{"discount": pct})
}

// GET /api/admin/coupons
func (cc *CouponController) List(c *gin.Context) {
	coupons, err := cc.Coupons.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, coupons)
}

// POST /api/admin/coupons
func (cc *CouponController) Create(c *gin.Context) {
	var req services.CouponCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	coupon, err := cc.Coupons.Create(&req)
	if err != nil {
		resp.DomainError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": coupon.ID})
}

// PATCH /api/admin/coupons/:id/deactivate
func (cc *CouponController) Deactivate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid coupon id")
		return
	}

	if err := cc.Coupons.Deactivate(uint(id)); err != nil {
		resp.DomainError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "coupon deactivated"})
}
