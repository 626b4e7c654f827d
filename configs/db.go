package configs

import (
	"storefront/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.CustomizationGroup{}, &entity.CustomizationOption{},
		&entity.BuilderSetting{}, &entity.BuilderStep{}, &entity.BuilderStepItem{},
		&entity.Cart{}, &entity.CartItem{}, &entity.CartItemSelection{}, &entity.CartItemBuilderPick{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderItemSelection{},
		&entity.Discount{}, &entity.StockAdjustment{},
		&entity.FAQ{}, &entity.Notification{},
	)
}
