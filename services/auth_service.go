package services

import (
	"errors"
	"strings"
	"time"

	"github.com/alexkanav/cafe-ordering-system/entity"
	"github.com/alexkanav/cafe-ordering-system/repository"
	"github.com/alexkanav/cafe-ordering-system/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService จัดการ register/login ของ staff
type AuthService struct {
	staffRepo *repository.StaffRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.StaffRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		staffRepo: repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Register สร้าง staff ใหม่ — email ซ้ำคืน ErrEmailTaken
func (s *AuthService) Register(name, email, password string) (*entity.Staff, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.staffRepo.CountByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if count > 0 {
		return nil, "", ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	staff := &entity.Staff{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: string(hashed),
	}
	if err := s.staffRepo.Create(staff); err != nil {
		// กัน race กับ request register พร้อมกัน — unique index เป็นด่านสุดท้าย
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := utils.GenerateToken(staff.ID, utils.RoleStaff, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, "", err
	}
	return staff, token, nil
}

// Login ตรวจ email+password แล้วออก JWT — ไม่เจอหรือรหัสผิดคืน nil เฉยๆ
func (s *AuthService) Login(email, password string) (*entity.Staff, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	staff, err := s.staffRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", nil
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(password)) != nil {
		return nil, "", nil
	}

	token, err := utils.GenerateToken(staff.ID, utils.RoleStaff, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, "", err
	}
	return staff, token, nil
}
