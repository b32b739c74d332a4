package entity

import (
	"time"
)

// DishLike = การกดถูกใจ 1 user ต่อ 1 เมนูได้ครั้งเดียว
// composite PK (user_id, dish_code) → กดซ้ำจะชน unique ที่ DB
type DishLike struct {
	UserID   uint   `gorm:"primaryKey" json:"userId"`
	DishCode string `gorm:"primaryKey;size:4" json:"dishCode"`

	CreatedAt time.Time `json:"createdAt"`

	User User `json:"-"`
	Dish Dish `gorm:"foreignKey:DishCode;references:Code" json:"-"`
}

func (DishLike) TableName() string { return "dish_likes" }
