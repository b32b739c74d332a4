package entity

import (
	"gorm.io/gorm"
)

type Comment struct {
	gorm.Model
	UserName string `gorm:"size:20" json:"userName"`
	Text     string `gorm:"size:200" json:"text"`

	UserID uint `json:"userId"`
	User   User `json:"-"`
}
