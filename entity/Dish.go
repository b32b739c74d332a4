package entity

import (
	"time"
)

// Dish ใช้รหัสสั้น (Code) เป็น primary key — รหัสห้ามเปลี่ยนหลังสร้าง
type Dish struct {
	Code        string `gorm:"primaryKey;size:4" json:"code"`
	Name        string `gorm:"size:50" json:"name"`
	NameEn      string `gorm:"size:30" json:"nameEn"`
	Description string `gorm:"size:500" json:"description"`
	Price       int64  `gorm:"default:0" json:"price"`

	IsPopular     bool `gorm:"default:false;index" json:"isPopular"`
	IsRecommended bool `gorm:"default:false;index" json:"isRecommended"`

	// ตัวนับสะสม — แสดงเฉพาะฝั่ง staff
	Views int64 `gorm:"default:0" json:"views"`
	Likes int64 `gorm:"default:0" json:"likes"`

	ImageLink string `gorm:"size:50" json:"imageLink"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // preload เฉพาะตอน detail

	Extras  []DishExtra `gorm:"many2many:dish_extra_link;" json:"-"`
	LikeRel []DishLike  `gorm:"foreignKey:DishCode;references:Code;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
