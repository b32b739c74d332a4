package services

import (
	"strings"

	"github.com/alexkanav/cafe-ordering-system/entity"
	"github.com/alexkanav/cafe-ordering-system/repository"
)

type CommentService struct {
	Repo   *repository.CommentRepository
	Events *EventBus
	Limit  int
}

func NewCommentService(repo *repository.CommentRepository, events *EventBus, limit int) *CommentService {
	return &CommentService{Repo: repo, Events: events, Limit: limit}
}

type CommentIn struct {
	UserName string `json:"userName" binding:"max=20"`
	Text     string `json:"text" binding:"required,max=200"`
}

// Add บันทึกคอมเมนต์ทันที (ไม่มี flag moderation ใน schema)
func (s *CommentService) Add(userID uint, in *CommentIn) (*entity.Comment, error) {
	name := strings.TrimSpace(in.UserName)
	if name == "" {
		name = "Guest"
	}
	comment := &entity.Comment{
		UserID:   userID,
		UserName: name,
		Text:     strings.TrimSpace(in.Text),
	}
	if err := s.Repo.Create(comment); err != nil {
		return nil, err
	}

	s.Events.Publish(EventCommentsChanged)
	return comment, nil
}

func (s *CommentService) Recent() ([]entity.Comment, error) {
	return s.Repo.ListRecent(s.Limit)
}
