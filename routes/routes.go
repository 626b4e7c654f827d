package routes

import (
	"storefront/configs"
	"storefront/controllers"
	"storefront/middlewares"
	"storefront/pkg/cache"
	"storefront/repository"
	"storefront/services"
	"storefront/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	builderRepo := repository.NewBuilderRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)
	discountRepo := repository.NewDiscountRepository(db)
	stockRepo := repository.NewStockRepository(db)
	faqRepo := repository.NewFAQRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	// Services
	menuCache := cache.New(cfg.RedisAddr)
	menuSvc := services.NewMenuService(menuRepo, menuCache)
	builderSvc := services.NewBuilderService(builderRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo, builderRepo)
	notifSvc := services.NewNotificationService(notifRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, discountRepo, stockRepo, notifSvc)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	discountSvc := services.NewDiscountService(discountRepo)
	stockSvc := services.NewStockService(db, stockRepo)
	customerSvc := services.NewCustomerService(userRepo, orderRepo)
	faqSvc := services.NewFAQService(faqRepo)

	// Websocket push for notifications
	hub := ws.NewNotificationHub()
	notifSvc.SetPusher(hub)
	go hub.Run()

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	builderCtrl := controllers.NewBuilderController(builderSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	discountCtrl := controllers.NewDiscountController(discountSvc)
	stockCtrl := controllers.NewStockController(stockSvc)
	customerCtrl := controllers.NewCustomerController(customerSvc)
	faqCtrl := controllers.NewFAQController(faqSvc)
	notifCtrl := controllers.NewNotificationController(notifSvc)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	aAuth := a.Group("", auth())
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Storefront (public reads)
	r.GET("/menu", menuCtrl.GetMenu)
	r.GET("/menu/items/:id", menuCtrl.GetItem)
	r.GET("/builder/config", builderCtrl.GetConfig)
	r.GET("/builder/steps", builderCtrl.GetSteps)
	r.GET("/faqs", faqCtrl.Search)

	// Cart (customer)
	cart := r.Group("/cart", auth())
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.POST("/builder-items", cartCtrl.AddBuilder)
		cart.PATCH("/items/qty", cartCtrl.UpdateQty)
		cart.DELETE("/items", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders (customer)
	orders := r.Group("/orders", auth())
	{
		orders.POST("/checkout", orderCtrl.Checkout)
		orders.GET("", orderCtrl.ListForMe)
		orders.GET("/:id", orderCtrl.Detail)
	}

	// Notifications (customer)
	notif := r.Group("/notifications", auth())
	{
		notif.GET("", notifCtrl.List)
		notif.PATCH("/:id/read", notifCtrl.MarkRead)
	}
	r.GET("/ws/notifications", auth(), hub.HandleWebSocket)

	// Admin back office
	admin := r.Group("/admin", auth("admin"))
	{
		// catalog editor
		admin.POST("/menu", menuCtrl.CreateItem)
		admin.PATCH("/menu/:id", menuCtrl.UpdateItem)
		admin.DELETE("/menu/:id", menuCtrl.DeleteItem)
		admin.POST("/menu/:id/groups", menuCtrl.CreateGroup)
		admin.PATCH("/groups/:id", menuCtrl.UpdateGroup)
		admin.DELETE("/groups/:id", menuCtrl.DeleteGroup)
		admin.POST("/groups/:id/options", menuCtrl.CreateOption)
		admin.PATCH("/options/:id", menuCtrl.UpdateOption)
		admin.DELETE("/options/:id", menuCtrl.DeleteOption)

		// builder editor
		admin.PATCH("/builder/config", builderCtrl.SaveSetting)
		admin.POST("/builder/steps", builderCtrl.CreateStep)
		admin.PATCH("/builder/steps/:id", builderCtrl.UpdateStep)
		admin.DELETE("/builder/steps/:id", builderCtrl.DeleteStep)
		admin.POST("/builder/steps/:id/items", builderCtrl.CreateStepItem)
		admin.PATCH("/builder/items/:id", builderCtrl.UpdateStepItem)
		admin.DELETE("/builder/items/:id", builderCtrl.DeleteStepItem)

		// orders
		admin.GET("/orders", orderCtrl.ListAll)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)

		// discounts
		admin.GET("/discounts", discountCtrl.List)
		admin.POST("/discounts", discountCtrl.Create)
		admin.PATCH("/discounts/:id", discountCtrl.Update)
		admin.DELETE("/discounts/:id", discountCtrl.Delete)

		// customers
		admin.GET("/customers", customerCtrl.List)
		admin.GET("/customers/:id", customerCtrl.Profile)

		// faqs
		admin.POST("/faqs", faqCtrl.Create)
		admin.PATCH("/faqs/:id", faqCtrl.Update)
		admin.DELETE("/faqs/:id", faqCtrl.Delete)
	}

	// Stock moves are open to staff as well
	stock := r.Group("/admin/stock", auth("admin", "staff"))
	{
		stock.POST("/adjust", stockCtrl.Adjust)
		stock.GET("/adjustments", stockCtrl.ListAdjustments)
	}
}
