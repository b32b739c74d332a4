package controllers

import (
	"github.com/alexkanav/cafe-ordering-system/configs"
	"github.com/alexkanav/cafe-ordering-system/pkg/resp"
	"github.com/alexkanav/cafe-ordering-system/services"
	"github.com/alexkanav/cafe-ordering-system/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthController = ทางเข้าฝั่ง staff (ลูกค้าไม่มี login)
type AuthController struct {
	Auth *services.AuthService
	cfg  *configs.Config
}

func NewAuthController(auth *services.AuthService, cfg *configs.Config) *AuthController {
	return &AuthController{Auth: auth, cfg: cfg}
}

// POST /api/admin/auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	staff, token, err := a.Auth.Register(req.Username, req.Email, req.Password)
	if err != nil {
		resp.DomainError(c, err)
		return
	}

	setAuthCookie(c, token, a.cfg)
	resp.Created(c, gin.H{"userId": staff.ID})
}

// POST /api/admin/auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	staff, token, err := a.Auth.Login(req.Email, req.Password)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if staff == nil {
		resp.Unauthorized(c, "email and password do not match")
		return
	}

	setAuthCookie(c, token, a.cfg)
	resp.OK(c, gin.H{"userId": staff.ID})
}

// POST /api/admin/auth/logout
func (a *AuthController) Logout(c *gin.Context) {
	clearAuthCookie(c)
	resp.OK(c, gin.H{"message": "logged out"})
}

// GET /api/admin/me
func (a *AuthController) Me(c *gin.Context) {
	resp.OK(c, gin.H{
		"id":   utils.CurrentUserID(c),
		"role": utils.CurrentRole(c),
	})
}
