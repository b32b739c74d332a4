package controllers

import (
	"github.com/alexkanav/cafe-ordering-system/pkg/resp"
	"github.com/alexkanav/cafe-ordering-system/services"
	"github.com/alexkanav/cafe-ordering-system/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{Menu: menu}
}

// ===== Read views =====

// GET /api/users/menu
func (mc *MenuController) ClientMenu(c *gin.Context) {
	menu, err := mc.Menu.BuildClientMenu()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, menu)
}

// GET /api/admin/menu
func (mc *MenuController) StaffMenu(c *gin.Context) {
	menu, err := mc.Menu.BuildStaffMenu()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, menu)
}

// GET /api/users/dishes/:code — นับ view เพิ่มด้วย
func (mc *MenuController) DishDetail(c *gin.Context) {
	dish, err := mc.Menu.DishDetail(c.Param("code"))
	if err != nil {
		resp.DomainError(c, err)
		return
	}
	resp.OK(c, dish)
}

// ===== Client writes =====

// POST /api/users/dishes/:code/like
func (mc *MenuController) Like(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if err := mc.Menu.Like(uid, c.Param("code")); err != nil {
		resp.DomainError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "liked"})
}

// ===== Staff writes =====

// POST /api/admin/dishes — สร้างหรือทับตาม code
func (mc *MenuController) SaveDish(c *gin.Context) {
	var req services.DishIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := mc.Menu.SaveDish(&req); err != nil {
		resp.DomainError(c, err)
		return
	}
	resp.OK(c, gin.H{"code": req.Code})
}

type UpdateCategoriesRequest struct {
	CategoryNames []string `json:"categoryNames" binding:"required,min=1,dive,required"`
}

// PATCH /api/admin/categories — ลำดับใหม่ตามตำแหน่งใน list
func (mc *MenuController) UpdateCategories(c *gin.Context) {
	var req UpdateCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := mc.Menu.UpdateCategories(req.CategoryNames); err != nil {
		resp.DomainError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "categories updated"})
}
