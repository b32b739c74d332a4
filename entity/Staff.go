package entity

import (
	"gorm.io/gorm"
)

type Staff struct {
	gorm.Model
	Name     string `gorm:"size:200" json:"name"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password string `json:"-"` // เก็บเป็น bcrypt hash เท่านั้น

	// Relations ซ่อนเพื่อเลี่ยง payload บวม
	CreatedNotifications []AdminNotification `gorm:"foreignKey:CreatedStaffID" json:"-"`
	ReadNotifications    []AdminNotification `gorm:"foreignKey:ReadStaffID" json:"-"`
	CompletedOrders      []Order             `gorm:"foreignKey:CompletedByID" json:"-"`
}
