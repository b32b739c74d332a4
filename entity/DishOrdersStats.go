package entity

import (
	"gorm.io/gorm"
)

// DishOrdersStats = จำนวนออเดอร์สะสมต่อเมนู (derived) — 1 แถวต่อ 1 code
type DishOrdersStats struct {
	gorm.Model
	Code   string `gorm:"size:10;uniqueIndex" json:"code"`
	Orders int    `gorm:"default:0" json:"orders"`
}

func (DishOrdersStats) TableName() string { return "dish_orders_stats" }
