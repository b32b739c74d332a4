package repository

import (
	"time"

	"github.com/alexkanav/cafe-ordering-system/entity"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	DB *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(n *entity.AdminNotification) error {
	return r.DB.Create(n).Error
}

func (r *NotificationRepository) List(onlyUnread bool) ([]entity.AdminNotification, error) {
	var out []entity.AdminNotification
	db := r.DB.Order("id DESC")
	if onlyUnread {
		db = db.Where("is_read = ?", false)
	}
	err := db.Find(&out).Error
	return out, err
}

func (r *NotificationRepository) CountUnread() (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.AdminNotification{}).
		Where("is_read = ?", false).Count(&cnt).Error
	return cnt, err
}

func (r *NotificationRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.AdminNotification{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// เปลี่ยนเป็นอ่านแล้วแบบ one-way: อัปเดตเฉพาะแถวที่ยังไม่อ่าน
// RowsAffected == 0 + แถวมีจริง = ถูกอ่านไปก่อนแล้ว (ถือว่า no-op)
func (r *NotificationRepository) MarkReadGuard(tx *gorm.DB, id, staffID uint, at time.Time) (int64, error) {
	res := tx.Model(&entity.AdminNotification{}).
		Where("id = ? AND is_read = ?", id, false).
		Updates(map[string]any{
			"is_read":       true,
			"read_at":       at,
			"read_staff_id": staffID,
		})
	return res.RowsAffected, res.Error
}
