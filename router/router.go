package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wandersilva5/foodie-hub-api/controllers"
	"github.com/wandersilva5/foodie-hub-api/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	tableCtrl := controllers.NewTableController(db)
	categoryCtrl := controllers.NewCategoryController(db)
	productCtrl := controllers.NewProductController(db)
	orderCtrl := controllers.NewOrderController(db)
	inventoryCtrl := controllers.NewInventoryController(db)
	paymentCtrl := controllers.NewPaymentController(db)
	registerCtrl := controllers.NewRegisterController(db)
	notificationCtrl := controllers.NewNotificationController(db)
	receiptCtrl := controllers.NewReceiptController(db)
	adminCtrl := controllers.NewAdminController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	auth := r.Group("/auth")
	auth.Use(middlewares.NewStrictRateLimiter())
	{
		auth.POST("/register", userCtrl.Register)
		auth.POST("/login", userCtrl.Login)
	}

	// Public menu browsing for the customer-facing app
	r.GET("/menu/categories", categoryCtrl.GetAllCategories)
	r.GET("/menu/products", productCtrl.GetAllProducts)
	r.GET("/menu/products/:product_id", productCtrl.GetProductByID)

	// ----------------------------------------------------------------
	//                      WEBSOCKET
	// ----------------------------------------------------------------
	r.GET("/ws/events", middlewares.WebSocketAuthMiddleware(), controllers.EventsHandler)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/auth/logout", userCtrl.Logout)
		api.GET("/profile", userCtrl.GetProfile)

		// Users (admin console)
		users := api.Group("/users", middlewares.RequireRoles())
		{
			users.GET("", userCtrl.GetAllUsers)
			users.PATCH("/:user_id", userCtrl.UpdateUser)
			users.DELETE("/:user_id", userCtrl.DeleteUser)
		}

		// Tables
		tables := api.Group("/tables")
		{
			tables.GET("", tableCtrl.GetAllTables)
			tables.GET("/:table_id", tableCtrl.GetTableByID)
			tables.POST("", middlewares.RequireRoles(), tableCtrl.CreateTable)
			tables.PATCH("/:table_id/status", middlewares.RequireRoles("waiter", "cashier"), tableCtrl.UpdateTableStatus)
			tables.DELETE("/:table_id", middlewares.RequireRoles(), tableCtrl.DeleteTable)
		}

		// Catalog management (admin console)
		catalog := api.Group("/catalog", middlewares.RequireRoles())
		{
			catalog.POST("/categories", categoryCtrl.CreateCategory)
			catalog.PATCH("/categories/:category_id", categoryCtrl.UpdateCategory)
			catalog.DELETE("/categories/:category_id", categoryCtrl.DeleteCategory)
			catalog.POST("/products", productCtrl.CreateProduct)
			catalog.PATCH("/products/:product_id", productCtrl.UpdateProduct)
			catalog.DELETE("/products/:product_id", productCtrl.DeleteProduct)
		}

		// Orders
		orders := api.Group("/orders")
		{
			orders.POST("", middlewares.RequireRoles("waiter", "cashier"), orderCtrl.CreateOrder)
			orders.GET("", orderCtrl.GetAllOrders)
			orders.GET("/kitchen", middlewares.RequireRoles("kitchen"), orderCtrl.GetKitchenQueue)
			orders.GET("/checkout", middlewares.RequireRoles("cashier"), orderCtrl.GetCheckoutQueue)
			orders.GET("/:order_id", orderCtrl.GetOrderByID)
			orders.PATCH("/:order_id/status", middlewares.RequireRoles("waiter", "kitchen", "cashier"), orderCtrl.UpdateOrderStatus)
			orders.GET("/:order_id/payments", middlewares.RequireRoles("cashier"), paymentCtrl.GetPaymentsByOrder)
			orders.GET("/:order_id/receipt", receiptCtrl.GetReceiptByOrder)
		}

		// Inventory (admin console)
		inventory := api.Group("/inventory", middlewares.RequireRoles())
		{
			inventory.POST("/adjust", inventoryCtrl.AdjustStock)
			inventory.GET("/transactions", inventoryCtrl.GetTransactions)
			inventory.GET("/low-stock", inventoryCtrl.GetLowStock)
		}

		// Payments and register (cashier)
		payments := api.Group("/payments", middlewares.RequireRoles("cashier"))
		payments.Use(middlewares.PaymentRateLimiter(), middlewares.LogPaymentRequest())
		{
			payments.POST("", paymentCtrl.CreatePayment)
			payments.GET("/:payment_id", paymentCtrl.GetPaymentByID)
			payments.POST("/:payment_id/receipt", receiptCtrl.GenerateReceipt)
		}

		register := api.Group("/register", middlewares.RequireRoles("cashier"))
		{
			register.POST("/open", registerCtrl.OpenSession)
			register.POST("/:session_id/close", registerCtrl.CloseSession)
			register.GET("/active", registerCtrl.GetActiveSession)
			register.GET("/sessions", registerCtrl.GetSessions)
		}

		// Notifications
		notifications := api.Group("/notifications")
		{
			notifications.GET("", notificationCtrl.GetNotifications)
			notifications.POST("", middlewares.RequireRoles(), notificationCtrl.CreateNotification)
			notifications.PATCH("/:notification_id/read", notificationCtrl.MarkNotificationRead)
		}

		// Admin dashboard
		api.GET("/admin/dashboard", middlewares.RequireRoles(), adminCtrl.GetDashboardStats)
	}

	return r
}
