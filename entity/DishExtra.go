package entity

import (
	"gorm.io/gorm"
)

// DishExtra คือของเพิ่ม (topping/add-on) คิดราคาแยก ผูกกับเมนูแบบ many2many
type DishExtra struct {
	gorm.Model
	Name   string  `gorm:"size:20;uniqueIndex" json:"name"`
	NameUa string  `gorm:"size:20" json:"nameUa"`
	Price  float64 `gorm:"default:0" json:"price"`

	Dishes []Dish `gorm:"many2many:dish_extra_link;" json:"-"`
}
