package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/alexkanav/cafe-ordering-system/configs"
	"github.com/alexkanav/cafe-ordering-system/entity"
	"github.com/alexkanav/cafe-ordering-system/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&entity.User{}, &entity.Staff{},
		&entity.Category{}, &entity.Dish{}, &entity.DishExtra{}, &entity.DishLike{},
		&entity.Order{},
		&entity.Comment{},
		&entity.Coupon{},
		&entity.AdminNotification{},
		&entity.SalesSummary{}, &entity.DishOrdersStats{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func testPricing() Pricing {
	return Pricing{
		Tiers: []configs.LoyaltyTier{
			{MinSpend: 500, Pct: 3},
			{MinSpend: 1000, Pct: 5},
			{MinSpend: 2000, Pct: 7},
			{MinSpend: 5000, Pct: 10},
		},
		Precision: 2,
	}
}

func seedUser(t *testing.T, db *gorm.DB) *entity.User {
	t.Helper()
	u := &entity.User{}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedStaff(t *testing.T, db *gorm.DB, email string) *entity.Staff {
	t.Helper()
	s := &entity.Staff{Name: "Tester", Email: email, Password: "x"}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("seed staff: %v", err)
	}
	return s
}

func seedDish(t *testing.T, db *gorm.DB, code string, price int64) *entity.Dish {
	t.Helper()

	var cat entity.Category
	if err := db.Where(entity.Category{Name: "Test"}).FirstOrCreate(&cat).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	d := &entity.Dish{Code: code, Name: "Dish " + code, Price: price, CategoryID: cat.ID}
	if err := db.Create(d).Error; err != nil {
		t.Fatalf("seed dish %s: %v", code, err)
	}
	return d
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewDishRepository(db),
		repository.NewUserRepository(db),
		repository.NewStatsRepository(db),
		NewCouponService(db, repository.NewCouponRepository(db)),
		testPricing(),
	)
}
