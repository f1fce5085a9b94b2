package service

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Sohidul-Islam/fashionglory-pos-server/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := model.User{Email: email, Password: "hash", Status: "active"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &user
}

func createTestProduct(t *testing.T, db *gorm.DB, userID uint, sku string, quantity int, price, costPrice float64) *model.Product {
	t.Helper()
	product := model.Product{
		Name:      "Product " + sku,
		SKU:       sku,
		Price:     price,
		CostPrice: costPrice,
		Quantity:  quantity,
		UserID:    userID,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return &product
}

func createActiveSubscription(t *testing.T, db *gorm.DB, userID uint, plan model.SubscriptionPlan) *model.UserSubscription {
	t.Helper()
	if err := db.Create(&plan).Error; err != nil {
		t.Fatalf("create plan: %v", err)
	}
	sub := model.UserSubscription{
		UserID:             userID,
		SubscriptionPlanID: plan.ID,
		StartDate:          time.Now().Add(-24 * time.Hour),
		EndDate:            time.Now().Add(30 * 24 * time.Hour),
		Status:             model.SubscriptionStatusActive,
		PaymentStatus:      model.PaymentStatusCompleted,
		Amount:             plan.Price,
	}
	if err := db.Create(&sub).Error; err != nil {
		t.Fatalf("create subscription: %v", err)
	}
	return &sub
}

func uintPtr(v uint) *uint           { return &v }
func strPtr(v string) *string        { return &v }
func intPtr(v int) *int              { return &v }
func floatPtr(v float64) *float64    { return &v }
func timePtr(v time.Time) *time.Time { return &v }
