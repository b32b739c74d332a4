package routes

import (
	"github.com/alexkanav/cafe-ordering-system/configs"
	"github.com/alexkanav/cafe-ordering-system/controllers"
	"github.com/alexkanav/cafe-ordering-system/middlewares"
	"github.com/alexkanav/cafe-ordering-system/repository"
	"github.com/alexkanav/cafe-ordering-system/services"
	"github.com/alexkanav/cafe-ordering-system/utils"
	"github.com/alexkanav/cafe-ordering-system/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, events *services.EventBus, hub *ws.NotifyHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	dishRepo := repository.NewDishRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	// Services
	pricing := services.NewPricing(cfg)
	userSvc := services.NewUserService(userRepo, pricing, cfg.JWTSecret, cfg.JWTTTL)
	authSvc := services.NewAuthService(staffRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(db, dishRepo, statsRepo, events)
	couponSvc := services.NewCouponService(db, couponRepo)
	orderSvc := services.NewOrderService(db, orderRepo, dishRepo, userRepo, statsRepo, couponSvc, pricing)
	commentSvc := services.NewCommentService(commentRepo, events, cfg.CommentsLimit)
	notifSvc := services.NewNotificationService(db, notifRepo)
	notifSvc.Pusher = hub
	statsSvc := services.NewStatsService(statsRepo, pricing)

	// Controllers
	userCtrl := controllers.NewUserController(userSvc, cfg)
	authCtrl := controllers.NewAuthController(authSvc, cfg)
	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	couponCtrl := controllers.NewCouponController(couponSvc)
	commentCtrl := controllers.NewCommentController(commentSvc)
	notifCtrl := controllers.NewNotificationController(notifSvc)
	statsCtrl := controllers.NewStatsController(statsSvc)

	// ===== Client (/api/users) =====
	u := r.Group("/api/users")
	{
		u.POST("", userCtrl.Create) // สมัครแบบ anonymous
		u.GET("/menu", menuCtrl.ClientMenu)
		u.GET("/comments", commentCtrl.List)
	}

	uAuth := u.Group("", middlewares.AuthMiddleware(cfg.JWTSecret, utils.RoleClient))
	{
		uAuth.GET("/me", userCtrl.Me)
		uAuth.GET("/discount", userCtrl.Discount)
		uAuth.POST("/order", orderCtrl.Create)
		uAuth.GET("/orders", orderCtrl.ListForMe)
		uAuth.GET("/dishes/:code", menuCtrl.DishDetail)
		uAuth.POST("/dishes/:code/like", menuCtrl.Like)
		uAuth.POST("/coupon/:code", couponCtrl.Check)
		uAuth.POST("/comments", commentCtrl.Add)
	}

	// ===== Staff (/api/admin) =====
	a := r.Group("/api/admin")
	{
		a.POST("/auth/register", authCtrl.Register)
		a.POST("/auth/login", authCtrl.Login)
		a.POST("/auth/logout", authCtrl.Logout)
	}

	admin := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret, utils.RoleStaff))
	{
		admin.GET("/me", authCtrl.Me)

		admin.GET("/orders", orderCtrl.List)
		admin.GET("/orders/count", orderCtrl.Count)
		admin.PATCH("/orders/:id/complete", orderCtrl.Complete)

		admin.GET("/statistics", statsCtrl.Statistics)

		admin.GET("/menu", menuCtrl.StaffMenu)
		admin.PATCH("/categories", menuCtrl.UpdateCategories)
		admin.POST("/dishes", menuCtrl.SaveDish)

		admin.GET("/coupons", couponCtrl.List)
		admin.POST("/coupons", couponCtrl.Create)
		admin.PATCH("/coupons/:id/deactivate", couponCtrl.Deactivate)

		admin.GET("/notifications", notifCtrl.List)
		admin.GET("/notifications/unread/count", notifCtrl.CountUnread)
		admin.POST("/notifications", notifCtrl.Create)
		admin.PATCH("/notifications/:id", notifCtrl.MarkRead)
	}

	// ===== WS (staff notification feed) =====
	r.GET("/ws/admin/notifications",
		middlewares.WSAuthMiddleware(cfg.JWTSecret, utils.RoleStaff),
		hub.HandleWebSocket,
	)
}
