package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/middleware"
	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/model"
	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/service"
	"github.com/Sohidul-Islam/fashionglory-pos-server/pkg/config"
	"github.com/Sohidul-Islam/fashionglory-pos-server/pkg/jwtutil"
)

// newTestApp wires the HTTP surface against an in-memory database,
// mirroring the route layout of the real server.
func newTestApp(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()
	jwtutil.Initialize(&config.JWTConfig{SigningKey: "handler-test-key", ExpirationDays: 1})

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	uploadDir := t.TempDir()
	authService := service.NewAuthService(db)
	productService := service.NewProductService(db)
	categoryService := service.NewCategoryService(db)
	orderService := service.NewOrderService(db)
	reportService := service.NewReportService(db)
	subscriptionService := service.NewSubscriptionService(db, uploadDir)
	userRoleService := service.NewUserRoleService(db, subscriptionService)

	authHandler := NewAuthHandler(authService)
	productHandler := NewProductHandler(productService)
	categoryHandler := NewCategoryHandler(categoryService)
	orderHandler := NewOrderHandler(orderService, reportService)
	subscriptionHandler := NewSubscriptionHandler(subscriptionService)
	userRoleHandler := NewUserRoleHandler(userRoleService)

	limits := middleware.NewLimits(subscriptionService, productService, userRoleService, uploadDir)

	e := echo.New()
	api := e.Group("/api")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	auth := api.Group("", middleware.Auth(db))
	auth.GET("/profile", authHandler.Profile)
	auth.POST("/profile", authHandler.UpdateProfile)

	products := auth.Group("/products", limits.CheckSubscriptionStatus)
	products.POST("", productHandler.Create, limits.CheckProductLimit)
	products.GET("", productHandler.GetAll)

	categories := auth.Group("/categories")
	categories.POST("", categoryHandler.Create)
	categories.GET("", categoryHandler.GetAll)

	orders := auth.Group("/orders", limits.CheckSubscriptionStatus)
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.GetAll)

	subscriptions := auth.Group("/subscriptions")
	subscriptions.POST("/subscribe", subscriptionHandler.Subscribe)
	subscriptions.GET("/my-subscription", subscriptionHandler.MySubscription)
	subscriptions.GET("/limits", subscriptionHandler.Limits)

	users := auth.Group("/users")
	users.POST("/child-user", userRoleHandler.AddChildUser, limits.CheckSubscriptionStatus, limits.CheckUserLimit)

	uploadHandler := NewUploadHandler(uploadDir)
	images := auth.Group("/images", limits.CheckSubscriptionStatus)
	images.POST("/upload", uploadHandler.Upload, limits.CheckStorageLimit)
	images.POST("/delete/:filename", uploadHandler.Delete)

	return e, db
}

func doJSON(e *echo.Echo, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var envelope Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return envelope
}

func registerAndLogin(t *testing.T, e *echo.Echo, email string) string {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/api/register", "", map[string]string{
		"email":    email,
		"password": "secret123",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: status %d body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(e, http.MethodPost, "/api/login", "", map[string]string{
		"email":    email,
		"password": "secret123",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: status %d body %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	if body.Data.Token == "" {
		t.Fatal("login returned empty token")
	}
	return body.Data.Token
}

func activateSubscription(t *testing.T, db *gorm.DB, email string, plan model.SubscriptionPlan) {
	t.Helper()
	var user model.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if err := db.Create(&plan).Error; err != nil {
		t.Fatalf("create plan: %v", err)
	}
	sub := model.UserSubscription{
		UserID:             user.ID,
		SubscriptionPlanID: plan.ID,
		StartDate:          time.Now().Add(-time.Hour),
		EndDate:            time.Now().Add(30 * 24 * time.Hour),
		Status:             model.SubscriptionStatusActive,
		PaymentStatus:      model.PaymentStatusCompleted,
		Amount:             plan.Price,
	}
	if err := db.Create(&sub).Error; err != nil {
		t.Fatalf("create subscription: %v", err)
	}
}
