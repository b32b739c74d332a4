package entity

import (
	"time"

	"gorm.io/gorm"
)

// SalesSummary = ยอดขายรวมรายวัน (derived) — 1 แถวต่อ 1 วัน
// อัปเดตตอนปิดออเดอร์ ใน transaction เดียวกัน
type SalesSummary struct {
	gorm.Model
	Date               time.Time `gorm:"type:date;uniqueIndex" json:"date"`
	TotalSales         float64   `gorm:"default:0" json:"totalSales"`
	Orders             int       `gorm:"default:0" json:"orders"`
	ReturningCustomers int       `gorm:"default:0" json:"returningCustomers"`
}

func (SalesSummary) TableName() string { return "sales_summary" }
