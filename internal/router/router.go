package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"marketplace_dev_v1_202601/internal/controller"
	"marketplace_dev_v1_202601/internal/middleware"
	"marketplace_dev_v1_202601/internal/model"
)

// InitRoutes 注册所有路由
func InitRoutes(r *gin.Engine,
	userCtrl *controller.UserController,
	sellerCtrl *controller.SellerController,
	shopCtrl *controller.ShopController,
	productCtrl *controller.ProductController,
	orderCtrl *controller.OrderController,
	returnRefundCtrl *controller.ReturnRefundController,
	balanceCtrl *controller.BalanceController,
	notificationCtrl *controller.NotificationController,
	uploadCtrl *controller.UploadController) {

	r.Use(middleware.Metrics())
	r.Use(middleware.AuditContext())

	// Prometheus 指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// auth 注册/登录/验证码，无需鉴权
		auth := api.Group("/auth")
		{
			auth.POST("/register", userCtrl.Register)
			auth.POST("/login", userCtrl.Login)
			auth.POST("/logout", userCtrl.Logout)
			auth.POST("/otp/send", userCtrl.SendOTP)
			auth.POST("/otp/verify", userCtrl.VerifyOTP)
			auth.GET("/me", middleware.JWTAuth(), userCtrl.Me)
		}

		// 公开浏览
		api.GET("/shops", shopCtrl.ListShops)
		api.GET("/shops/:id", shopCtrl.GetShop)
		api.GET("/products", productCtrl.ListProducts)
		api.GET("/products/:id", productCtrl.GetProduct)
		api.GET("/categories", productCtrl.ListCategories)

		// seller 卖家入驻与资料
		sellers := api.Group("/sellers", middleware.JWTAuth())
		{
			sellers.POST("", sellerCtrl.CreateSeller)
			sellers.GET("/me", sellerCtrl.GetSeller)
			sellers.PATCH("/me", sellerCtrl.UpdateSeller)
			sellers.GET("/me/notifications", notificationCtrl.ListSellerNotifications)
			sellers.DELETE("/me/notifications/:id", notificationCtrl.DismissSellerNotification)

			// 收款账户
			sellers.POST("/me/bank-accounts", sellerCtrl.CreateBankAccount)
			sellers.GET("/me/bank-accounts", sellerCtrl.ListBankAccounts)
			sellers.PATCH("/me/bank-accounts/:id", sellerCtrl.UpdateBankAccount)
			sellers.POST("/me/bank-accounts/:id/activate", sellerCtrl.ActivateBankAccount)
			sellers.POST("/me/bank-accounts/:id/deactivate", sellerCtrl.DeactivateBankAccount)
		}

		// shop 店铺管理与关注
		shops := api.Group("/shops", middleware.JWTAuth())
		{
			shops.POST("", shopCtrl.CreateShop)
			shops.PATCH("/:id", shopCtrl.UpdateShop)
			shops.POST("/:id/activate", shopCtrl.ActivateShop)
			shops.POST("/:id/deactivate", shopCtrl.DeactivateShop)
			shops.POST("/follow", shopCtrl.FollowShop)
			shops.DELETE("/:id/follow", shopCtrl.UnfollowShop)

			// 店铺下的商品与订单
			shops.POST("/:id/products", productCtrl.CreateProduct)
			shops.GET("/:id/orders", orderCtrl.ListShopOrders)
		}

		// product 商品维护
		products := api.Group("/products", middleware.JWTAuth())
		{
			products.PATCH("/:id", productCtrl.UpdateProduct)
			products.POST("/:id/activate", productCtrl.ActivateProduct)
			products.POST("/:id/deactivate", productCtrl.DeactivateProduct)
		}

		// category 分类维护（管理员）
		api.POST("/categories", middleware.JWTAuth(),
			middleware.RequireRole(string(model.RoleAdmin)), productCtrl.CreateCategory)

		// order 订单
		orders := api.Group("/orders", middleware.JWTAuth())
		{
			orders.POST("", orderCtrl.CreateOrder)
			orders.GET("", orderCtrl.ListMyOrders)
			orders.GET("/:order_id", orderCtrl.GetOrder)
			orders.POST("/:order_id/status",
				middleware.RequireRole(string(model.RoleSeller), string(model.RoleAdmin)),
				orderCtrl.AdvanceStatus)
		}

		// return-refund 退换/退款
		returnRefunds := api.Group("/return-refunds", middleware.JWTAuth())
		{
			returnRefunds.POST("", returnRefundCtrl.RequestReturnRefund)
			returnRefunds.GET("", returnRefundCtrl.ListMyReturnRefunds)
			returnRefunds.GET("/:return_refund_id", returnRefundCtrl.GetReturnRefund)
			returnRefunds.POST("/:return_refund_id/adjudicate", returnRefundCtrl.Adjudicate)
		}

		// balance 余额与提现
		balances := api.Group("/balances", middleware.JWTAuth())
		{
			balances.GET("", balanceCtrl.ListBalances)
			balances.POST("/:id/settle",
				middleware.RequireRole(string(model.RoleAdmin)), balanceCtrl.SettleBalance)
		}
		withdrawals := api.Group("/withdrawals", middleware.JWTAuth())
		{
			withdrawals.POST("", balanceCtrl.RequestWithdrawal)
			withdrawals.GET("", balanceCtrl.ListWithdrawals)
			withdrawals.POST("/:withdrawal_id/process",
				middleware.RequireRole(string(model.RoleAdmin)), balanceCtrl.ProcessWithdrawal)
		}

		// notification 买家通知
		notifications := api.Group("/notifications", middleware.JWTAuth())
		{
			notifications.GET("", notificationCtrl.ListMyNotifications)
			notifications.DELETE("/:id", notificationCtrl.DismissNotification)
		}

		// activity-log 活动日志（管理员）
		api.GET("/activity-logs", middleware.JWTAuth(),
			middleware.RequireRole(string(model.RoleAdmin)), notificationCtrl.ListActivityLogs)

		// upload 文件上传
		api.POST("/uploads", middleware.JWTAuth(), uploadCtrl.UploadImage)
	}
}
