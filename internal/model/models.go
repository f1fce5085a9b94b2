package model

// All returns every entity registered for migration, ordered so that
// referenced tables are created before their dependents.
func All() []interface{} {
	return []interface{}{
		&User{},
		&UserRole{},
		&Category{},
		&Brand{},
		&Unit{},
		&Color{},
		&Size{},
		&Product{},
		&ProductVariant{},
		&Order{},
		&OrderItem{},
		&StockHistory{},
		&SubscriptionPlan{},
		&UserSubscription{},
		&Coupon{},
	}
}
