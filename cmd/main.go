package main

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/handler"
	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/middleware"
	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/model"
	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/service"
	"github.com/Sohidul-Islam/fashionglory-pos-server/pkg/config"
	"github.com/Sohidul-Islam/fashionglory-pos-server/pkg/database"
	"github.com/Sohidul-Islam/fashionglory-pos-server/pkg/jwtutil"
	"github.com/Sohidul-Islam/fashionglory-pos-server/pkg/logger"
	"github.com/Sohidul-Islam/fashionglory-pos-server/prometheus"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	if err := logger.InitLogger(cfg); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	log.Info("Starting POS back-office service...", zap.String("environment", cfg.Server.Env))

	// Initialize token signing with configuration
	jwtutil.Initialize(&cfg.JWT)

	// Initialize Prometheus metrics
	prometheus.InitMetrics(cfg)
	log.Info("Prometheus metrics initialized")

	// Initialize database and run migrations
	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	if err := database.MigrateModels(db, model.All()...); err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}
	log.Info("Database connection established and migrations completed")

	// Services
	authService := service.NewAuthService(db)
	productService := service.NewProductService(db)
	categoryService := service.NewCategoryService(db)
	brandService := service.NewBrandService(db)
	unitService := service.NewUnitService(db)
	colorService := service.NewColorService(db)
	sizeService := service.NewSizeService(db)
	variantService := service.NewVariantService(db)
	orderService := service.NewOrderService(db)
	reportService := service.NewReportService(db)
	subscriptionService := service.NewSubscriptionService(db, cfg.Upload.Dir)
	couponService := service.NewCouponService(db)
	userRoleService := service.NewUserRoleService(db, subscriptionService)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	brandHandler := handler.NewBrandHandler(brandService)
	unitHandler := handler.NewUnitHandler(unitService)
	colorHandler := handler.NewColorHandler(colorService)
	sizeHandler := handler.NewSizeHandler(sizeService)
	variantHandler := handler.NewVariantHandler(variantService)
	orderHandler := handler.NewOrderHandler(orderService, reportService)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService)
	couponHandler := handler.NewCouponHandler(couponService)
	userRoleHandler := handler.NewUserRoleHandler(userRoleService)
	uploadHandler := handler.NewUploadHandler(cfg.Upload.Dir)
	healthHandler := handler.NewHealthHandler(db)

	limits := middleware.NewLimits(subscriptionService, productService, userRoleService, cfg.Upload.Dir)

	// Initialize Echo framework
	e := echo.New()
	e.HideBanner = true

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(middleware.MetricsMiddleware)

	// Public routes
	e.GET("/health", healthHandler.Check)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.Static("/uploads", cfg.Upload.Dir)

	api := e.Group("/api")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/reset-password", authHandler.ResetPassword)
	api.GET("/subscriptions/plans", subscriptionHandler.GetAllPlans)
	api.GET("/subscriptions/plans/:id", subscriptionHandler.GetPlanByID)
	api.POST("/subscriptions/check-expired", subscriptionHandler.CheckExpired)

	// Authenticated routes
	auth := api.Group("", middleware.Auth(db))
	auth.GET("/profile", authHandler.Profile)
	auth.POST("/profile", authHandler.UpdateProfile)

	products := auth.Group("/products", limits.CheckSubscriptionStatus)
	products.POST("", productHandler.Create, limits.CheckProductLimit)
	products.GET("", productHandler.GetAll)
	products.GET("/:id", productHandler.GetByID)
	products.POST("/update/:id", productHandler.Update)
	products.POST("/delete/:id", productHandler.Delete)

	categories := auth.Group("/categories")
	categories.POST("", categoryHandler.Create)
	categories.GET("", categoryHandler.GetAll)
	categories.GET("/:id", categoryHandler.GetByID)
	categories.POST("/update/:id", categoryHandler.Update)
	categories.POST("/delete/:id", categoryHandler.Delete)

	brands := auth.Group("/brands")
	brands.POST("", brandHandler.Create)
	brands.GET("", brandHandler.GetAll)
	brands.GET("/:id", brandHandler.GetByID)
	brands.POST("/update/:id", brandHandler.Update)
	brands.POST("/delete/:id", brandHandler.Delete)

	units := auth.Group("/units")
	units.POST("", unitHandler.Create)
	units.GET("", unitHandler.GetAll)
	units.GET("/:id", unitHandler.GetByID)
	units.POST("/update/:id", unitHandler.Update)
	units.POST("/delete/:id", unitHandler.Delete)

	colors := auth.Group("/colors")
	colors.POST("", colorHandler.Create)
	colors.GET("", colorHandler.GetAll)
	colors.GET("/:id", colorHandler.GetByID)
	colors.POST("/update/:id", colorHandler.Update)
	colors.POST("/delete/:id", colorHandler.Delete)

	sizes := auth.Group("/sizes")
	sizes.POST("", sizeHandler.Create)
	sizes.GET("", sizeHandler.GetAll)
	sizes.GET("/:id", sizeHandler.GetByID)
	sizes.POST("/update/:id", sizeHandler.Update)
	sizes.POST("/delete/:id", sizeHandler.Delete)

	variants := auth.Group("/variants", limits.CheckSubscriptionStatus)
	variants.POST("", variantHandler.Create)
	variants.GET("", variantHandler.GetAll)
	variants.GET("/:id", variantHandler.GetByID)
	variants.POST("/update/:id", variantHandler.Update)
	variants.POST("/stock/:id", variantHandler.UpdateStock)
	variants.POST("/delete/:id", variantHandler.Delete)

	orders := auth.Group("/orders", limits.CheckSubscriptionStatus)
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.GetAll)
	orders.GET("/stock-history", orderHandler.StockHistory)
	orders.GET("/reports/dashboard", orderHandler.DashboardStats)
	orders.GET("/reports/sales", orderHandler.SalesReport)
	orders.GET("/reports/top-items", orderHandler.TopSellingItems)
	orders.GET("/reports/top-customers", orderHandler.TopCustomers)
	orders.GET("/:orderId", orderHandler.GetByID)
	orders.GET("/:orderId/invoice", orderHandler.Invoice)
	orders.DELETE("/:orderId", orderHandler.Delete)

	subscriptions := auth.Group("/subscriptions")
	subscriptions.POST("/plans", subscriptionHandler.CreatePlan)
	subscriptions.PUT("/plans/:id", subscriptionHandler.UpdatePlan)
	subscriptions.POST("/plans/delete/:id", subscriptionHandler.DeletePlan)
	subscriptions.POST("/subscribe", subscriptionHandler.Subscribe)
	subscriptions.GET("/my-subscription", subscriptionHandler.MySubscription)
	subscriptions.GET("/limits", subscriptionHandler.Limits)

	coupons := auth.Group("/coupons")
	coupons.POST("", couponHandler.Create)
	coupons.GET("", couponHandler.GetAll)
	coupons.GET("/:id", couponHandler.GetByID)
	coupons.PUT("/:id", couponHandler.Update)
	coupons.DELETE("/:id", couponHandler.Delete)

	users := auth.Group("/users")
	users.POST("/child-user", userRoleHandler.AddChildUser, limits.CheckSubscriptionStatus, limits.CheckUserLimit)
	users.PUT("/child-user/:userId", userRoleHandler.UpdateUserRole)
	users.GET("/child-users", userRoleHandler.GetChildUsers)

	images := auth.Group("/images", limits.CheckSubscriptionStatus)
	images.POST("/upload", uploadHandler.Upload, limits.CheckStorageLimit)
	images.POST("/upload-multiple", uploadHandler.UploadMultiple, limits.CheckStorageLimit)
	images.POST("/delete/:filename", uploadHandler.Delete)

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
