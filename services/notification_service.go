package services

import (
	"time"

	"github.com/alexkanav/cafe-ordering-system/entity"
	"github.com/alexkanav/cafe-ordering-system/repository"

	"gorm.io/gorm"
)

// NotificationPusher ให้ ws hub เสียบเข้ามารับ notification ใหม่ (optional)
type NotificationPusher interface {
	Push(n *entity.AdminNotification)
}

type NotificationService struct {
	DB     *gorm.DB
	Repo   *repository.NotificationRepository
	Pusher NotificationPusher
}

func NewNotificationService(db *gorm.DB, repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{DB: db, Repo: repo}
}

type NotificationIn struct {
	Title   string `json:"title" binding:"required,max=50"`
	Message string `json:"message" binding:"required,max=300"`
	Type    string `json:"type" binding:"omitempty,oneof=info warning error"`
}

func (s *NotificationService) Create(staffID uint, in *NotificationIn) (*entity.AdminNotification, error) {
	typ := in.Type
	if typ == "" {
		typ = entity.NotificationInfo
	}
	n := &entity.AdminNotification{
		Title:          in.Title,
		Message:        in.Message,
		Type:           typ,
		CreatedStaffID: &staffID,
	}
	if err := s.Repo.Create(n); err != nil {
		return nil, err
	}

	if s.Pusher != nil {
		s.Pusher.Push(n)
	}
	return n, nil
}

func (s *NotificationService) List(onlyUnread bool) ([]entity.AdminNotification, error) {
	return s.Repo.List(onlyUnread)
}

func (s *NotificationService) CountUnread() (int64, error) {
	return s.Repo.CountUnread()
}

// MarkRead: unread → read ทางเดียว
// อ่านซ้ำ = no-op สำเร็จ (ไม่ถือเป็น conflict), id ไม่มีจริง = not found
func (s *NotificationService) MarkRead(id, staffID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.MarkReadGuard(tx, id, staffID, time.Now())
		if err != nil {
			return err
		}
		if affected > 0 {
			return nil
		}

		ok, err := s.Repo.Exists(id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotificationNotFound
		}
		return nil
	})
}
