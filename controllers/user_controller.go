package controllers

import (
	"github.com/alexkanav/cafe-ordering-system/configs"
	"github.com/alexkanav/cafe-ordering-system/middlewares"
	"github.com/alexkanav/cafe-ordering-system/pkg/resp"
	"github.com/alexkanav/cafe-ordering-system/services"
	"github.com/alexkanav/cafe-ordering-system/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users *services.UserService
	cfg   *configs.Config
}

func NewUserController(users *services.UserService, cfg *configs.Config) *UserController {
	return &UserController{Users: users, cfg: cfg}
}

// POST /api/users — ลูกค้าเข้าครั้งแรก สร้าง user ว่าง ๆ แล้วฝัง token ใน cookie
func (uc *UserController) Create(c *gin.Context) {
	user, token, err := uc.Users.CreateUser()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	setAuthCookie(c, token, uc.cfg)
	resp.Created(c, gin.H{"userId": user.ID})
}

// GET /api/users/me
func (uc *UserController) Me(c *gin.Context) {
	resp.OK(c, gin.H{
		"id":   utils.CurrentUserID(c),
		"role": utils.CurrentRole(c),
	})
}

// GET /api/users/discount — ส่วนลดสมาชิกปัจจุบัน
func (uc *UserController) Discount(c *gin.Context) {
	pct, err := uc.Users.Discount(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"discount": pct})
}

func setAuthCookie(c *gin.Context, token string, cfg *configs.Config) {
	c.SetCookie(
		middlewares.AuthCookieName,
		token,
		int(cfg.JWTTTL.Seconds()),
		"/", "", false, true,
	)
}

func clearAuthCookie(c *gin.Context) {
	c.SetCookie(middlewares.AuthCookieName, "", -1, "/", "", false, true)
}
