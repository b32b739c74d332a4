package entity

import (
	"time"

	"gorm.io/gorm"
)

// OrderLineExtra = snapshot ของ extra ตอนสั่ง
type OrderLineExtra struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// OrderLine = snapshot รายการอาหารตอนสั่ง (ราคา ณ ตอนนั้น)
// แก้เมนูทีหลังออเดอร์เก่าต้องไม่เปลี่ยน
type OrderLine struct {
	DishCode  string           `json:"dishCode"`
	Name      string           `json:"name"`
	Qty       int              `json:"qty"`
	UnitPrice int64            `json:"unitPrice"`
	Extras    []OrderLineExtra `json:"extras,omitempty"`
}

type Order struct {
	gorm.Model

	UserID uint `json:"userId"`
	User   User `json:"-"` // preload เฉพาะตอนต้องการ user detail

	Table *int `json:"table,omitempty"` // หมายเลขโต๊ะ (ไม่บังคับ)

	// ราคา — snapshot ทั้งหมดตอนสร้างออเดอร์
	OriginalCost float64 `json:"originalCost"`
	LoyaltyPct   int     `gorm:"default:0" json:"loyaltyPct"`
	CouponPct    int     `gorm:"default:0" json:"couponPct"`
	FinalCost    float64 `json:"finalCost"`

	Lines []OrderLine `gorm:"serializer:json" json:"lines"`

	// completed_at == nil → ยังไม่เสร็จ; ปิดแล้วปิดเลย ห้ามปิดซ้ำ
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	CompletedByID *uint      `json:"completedById,omitempty"`
	CompletedBy   *Staff     `gorm:"foreignKey:CompletedByID" json:"-"`
}
