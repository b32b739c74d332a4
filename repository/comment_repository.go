package repository

import (
	"github.com/alexkanav/cafe-ordering-system/entity"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{DB: db}
}

func (r *CommentRepository) Create(c *entity.Comment) error {
	return r.DB.Create(c).Error
}

// ล่าสุดก่อน จำกัดจำนวนเสมอ
func (r *CommentRepository) ListRecent(limit int) ([]entity.Comment, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	var comments []entity.Comment
	err := r.DB.Order("id DESC").Limit(limit).Find(&comments).Error
	return comments, err
}
