package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	NotificationInfo    = "info"
	NotificationWarning = "warning"
	NotificationError   = "error"
)

// AdminNotification — staff เขียนถึง staff ด้วยกัน
// สถานะอ่านเป็น one-way: unread → read แล้วย้อนกลับไม่ได้
type AdminNotification struct {
	gorm.Model
	Title   string `gorm:"size:50" json:"title"`
	Message string `gorm:"size:300" json:"message"`
	Type    string `gorm:"size:10;default:info" json:"type"`

	CreatedStaffID *uint  `json:"createdStaffId,omitempty"`
	CreatedBy      *Staff `gorm:"foreignKey:CreatedStaffID" json:"-"`

	IsRead      bool       `gorm:"default:false" json:"isRead"`
	ReadAt      *time.Time `json:"readAt,omitempty"`
	ReadStaffID *uint      `json:"readStaffId,omitempty"`
	ReadBy      *Staff     `gorm:"foreignKey:ReadStaffID" json:"-"`
}

func (AdminNotification) TableName() string { return "admin_notifications" }
