package services

import (
	"time"

	"github.com/alexkanav/cafe-ordering-system/entity"
	"github.com/alexkanav/cafe-ordering-system/repository"
	"github.com/alexkanav/cafe-ordering-system/utils"
)

// UserService — ลูกค้าเป็น anonymous: แค่สร้างแถวแล้วออก token
type UserService struct {
	userRepo  *repository.UserRepository
	pricing   Pricing
	jwtSecret string
	jwtTTL    time.Duration
}

func NewUserService(repo *repository.UserRepository, pricing Pricing, secret string, ttl time.Duration) *UserService {
	return &UserService{
		userRepo:  repo,
		pricing:   pricing,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

func (s *UserService) CreateUser() (*entity.User, string, error) {
	user := &entity.User{}
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", err
	}
	token, err := utils.GenerateToken(user.ID, utils.RoleClient, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Discount คืนเปอร์เซ็นต์ส่วนลดสมาชิกจากยอดใช้จ่ายที่ปิดออเดอร์แล้ว
func (s *UserService) Discount(userID uint) (int, error) {
	spend, err := s.userRepo.CompletedSpend(userID)
	if err != nil {
		return 0, err
	}
	return s.pricing.LoyaltyPct(spend), nil
}
