package entity

import (
	"gorm.io/gorm"
)

// User คือลูกค้าแบบ anonymous — สร้างให้อัตโนมัติตอนเข้าเว็บครั้งแรก
// ไม่มี email/password ฝั่งลูกค้า ใช้ JWT ผูกกับ id อย่างเดียว
type User struct {
	gorm.Model

	// Relations — preload เฉพาะตอนจำเป็น
	Orders   []Order    `json:"-"`
	Comments []Comment  `json:"-"`
	Coupons  []Coupon   `json:"-"`
	Likes    []DishLike `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
