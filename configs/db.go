package configs

import (
	"github.com/alexkanav/cafe-ordering-system/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBSource)
	default:
		dialector = sqlite.Open(cfg.DBSource)
	}

	// TranslateError → duplicated key กลายเป็น gorm.ErrDuplicatedKey ทุก driver
	database, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.User{}, &entity.Staff{},
		&entity.Category{}, &entity.Dish{}, &entity.DishExtra{}, &entity.DishLike{},
		&entity.Order{},
		&entity.Comment{},
		&entity.Coupon{},
		&entity.AdminNotification{},
		&entity.SalesSummary{}, &entity.DishOrdersStats{},
	)
}
