package repository

import (
	"time"

	"github.com/alexkanav/cafe-ordering-system/entity"

	"gorm.io/gorm"
)

type CouponRepository struct {
	DB *gorm.DB
}

func NewCouponRepository(db *gorm.DB) *CouponRepository {
	return &CouponRepository{DB: db}
}

func (r *CouponRepository) Create(c *entity.Coupon) error {
	return r.DB.Create(c).Error
}

func (r *CouponRepository) List() ([]entity.Coupon, error) {
	var coupons []entity.Coupon
	err := r.DB.Order("id DESC").Find(&coupons).Error
	return coupons, err
}

func (r *CouponRepository) FindByCode(tx *gorm.DB, code string) (*entity.Coupon, error) {
	var c entity.Coupon
	if err := tx.Where("code = ?", code).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CouponRepository) FindByID(id uint) (*entity.Coupon, error) {
	var c entity.Coupon
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Redeem แบบ conditional update — สอง request พร้อมกันจะสำเร็จได้แค่อันเดียว
// เงื่อนไข: ยัง active และยังไม่ถูกใช้
func (r *CouponRepository) RedeemGuard(tx *gorm.DB, code string, userID uint, at time.Time) (int64, error) {
	res := tx.Model(&entity.Coupon{}).
		Where("code = ? AND is_active = ? AND used_at IS NULL", code, true).
		Updates(map[string]any{
			"used_at": at,
			"user_id": userID,
		})
	return res.RowsAffected, res.Error
}

// ปิดการใช้งานเฉพาะคูปองที่ยัง active และยังไม่ถูกใช้
func (r *CouponRepository) DeactivateGuard(tx *gorm.DB, id uint) (int64, error) {
	res := tx.Model(&entity.Coupon{}).
		Where("id = ? AND is_active = ? AND used_at IS NULL", id, true).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}
