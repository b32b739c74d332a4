package entity

import (
	"gorm.io/gorm"
)

// Category คือหมวดหมู่ของเมนู เรียงตาม SortOrder ตอนประกอบเมนู
type Category struct {
	gorm.Model
	Name      string `gorm:"size:30;uniqueIndex;not null" json:"name"`
	SortOrder int    `gorm:"default:0" json:"sortOrder"`

	Dishes []Dish `gorm:"foreignKey:CategoryID" json:"-"`
}
