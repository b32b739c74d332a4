package entity

import (
	"time"

	"gorm.io/gorm"
)

// Coupon ใช้ได้ครั้งเดียว — ใช้แล้วผูกกับ user ที่ redeem
// สถานะปลายทาง: used (used_at != nil) หรือ deactivated (is_active=false)
type Coupon struct {
	gorm.Model
	Code          string `gorm:"size:20;uniqueIndex;not null" json:"code"`
	DiscountValue int    `gorm:"default:0" json:"discountValue"` // เปอร์เซ็นต์
	IsActive      bool   `gorm:"default:true" json:"isActive"`

	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	UsedAt    *time.Time `json:"usedAt,omitempty"`

	UserID *uint `json:"userId,omitempty"` // เซ็ตตอนถูกใช้
	User   *User `json:"-"`
}
