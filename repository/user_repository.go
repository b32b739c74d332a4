package repository

import (
	"github.com/alexkanav/cafe-ordering-system/entity"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.User{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// ยอดใช้จ่ายสะสมจากออเดอร์ที่ปิดแล้วเท่านั้น — ใช้คำนวณส่วนลดสมาชิก
func (r *UserRepository) CompletedSpend(userID uint) (float64, error) {
	var row struct{ Total float64 }
	err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(final_cost), 0) AS total").
		Where("user_id = ? AND completed_at IS NOT NULL", userID).
		Scan(&row).Error
	return row.Total, err
}

// นับออเดอร์ที่ปิดแล้วของ user (ใช้ใน rollup returning customers)
func (r *UserRepository) CountCompletedOrders(tx *gorm.DB, userID uint) (int64, error) {
	var cnt int64
	err := tx.Model(&entity.Order{}).
		Where("user_id = ? AND completed_at IS NOT NULL", userID).
		Count(&cnt).Error
	return cnt, err
}
