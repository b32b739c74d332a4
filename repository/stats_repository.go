package repository

import (
	"time"

	"github.com/alexkanav/cafe-ordering-system/entity"

	"gorm.io/gorm"
)

type StatsRepository struct {
	DB *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{DB: db}
}

// ---------------- Sales summary (รายวัน) ----------------

// บวกยอดเข้าแถวของวันนั้น ถ้ายังไม่มีแถวให้สร้างใหม่
// เรียกภายใต้ transaction ของ complete order เท่านั้น
func (r *StatsRepository) BumpSalesSummary(tx *gorm.DB, day time.Time, amount float64, returning int) error {
	res := tx.Model(&entity.SalesSummary{}).
		Where("date = ?", day).
		Updates(map[string]any{
			"total_sales":         gorm.Expr("total_sales + ?", amount),
			"orders":              gorm.Expr("orders + 1"),
			"returning_customers": gorm.Expr("returning_customers + ?", returning),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	row := entity.SalesSummary{
		Date:               day,
		TotalSales:         amount,
		Orders:             1,
		ReturningCustomers: returning,
	}
	return tx.Create(&row).Error
}

func (r *StatsRepository) ListSalesBetween(start, end time.Time) ([]entity.SalesSummary, error) {
	var rows []entity.SalesSummary
	err := r.DB.Where("date >= ? AND date <= ?", start, end).
		Order("date ASC").Find(&rows).Error
	return rows, err
}

// ---------------- Dish order stats ----------------

func (r *StatsRepository) EnsureDishStats(tx *gorm.DB, code string) error {
	var row entity.DishOrdersStats
	return tx.Where(entity.DishOrdersStats{Code: code}).
		FirstOrCreate(&row).Error
}

func (r *StatsRepository) BumpDishOrders(tx *gorm.DB, code string) error {
	res := tx.Model(&entity.DishOrdersStats{}).
		Where("code = ?", code).
		Update("orders", gorm.Expr("orders + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	return tx.Create(&entity.DishOrdersStats{Code: code, Orders: 1}).Error
}

// นับทุกเมนูเสมอ — เมนูที่ไม่เคยถูกสั่งต้องออกมาเป็น 0
type DishOrdersRow struct {
	Code   string `json:"code"`
	Orders int    `json:"orders"`
}

func (r *StatsRepository) ListDishOrders() ([]DishOrdersRow, error) {
	var rows []DishOrdersRow
	err := r.DB.Table("dishes AS d").
		Select("d.code, COALESCE(s.orders, 0) AS orders").
		Joins("LEFT JOIN dish_orders_stats s ON s.code = d.code").
		Order("d.code ASC").
		Scan(&rows).Error
	return rows, err
}
