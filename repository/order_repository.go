package repository

import (
	"time"

	"github.com/alexkanav/cafe-ordering-system/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders (CRUD หลัก) ----------------

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) Get(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) List(onlyUncompleted bool, limit int) ([]entity.Order, error) {
	if limit <= 0 || limit > 200 {
		limit = 100
	}
	var orders []entity.Order
	db := r.DB.Order("id DESC").Limit(limit)
	if onlyUncompleted {
		db = db.Where("completed_at IS NULL")
	}
	err := db.Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) CountUncompleted() (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).Where("completed_at IS NULL").Count(&cnt).Error
	return cnt, err
}

// GET /users/orders (ลูกค้า) → รายการ order ของตัวเอง
type OrderSummary struct {
	ID          uint       `json:"id"`
	FinalCost   float64    `json:"finalCost"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func (r *OrderRepository) ListForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, final_cost, created_at, completed_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// ---------------- Transitions ----------------

// ปิดออเดอร์แบบมี guard: อัปเดตเฉพาะแถวที่ยังไม่ปิด
// RowsAffected == 0 → ถูกปิดไปแล้ว (ให้ชั้น service ตีความเป็น conflict)
func (r *OrderRepository) CompleteGuard(tx *gorm.DB, orderID, staffID uint, at time.Time) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND completed_at IS NULL", orderID).
		Updates(map[string]any{
			"completed_at":    at,
			"completed_by_id": staffID,
		})
	return res.RowsAffected, res.Error
}
