package services

import (
	"errors"
	"time"

	"github.com/alexkanav/cafe-ordering-system/entity"
	"github.com/alexkanav/cafe-ordering-system/repository"

	"gorm.io/gorm"
)

type CouponService struct {
	DB   *gorm.DB
	Repo *repository.CouponRepository
}

func NewCouponService(db *gorm.DB, repo *repository.CouponRepository) *CouponService {
	return &CouponService{DB: db, Repo: repo}
}

// ----- DTOs -----

type CouponCreateReq struct {
	Code          string     `json:"code" binding:"required,max=20"`
	DiscountValue int        `json:"discountValue" binding:"required,min=1,max=100"`
	ExpiresAt     *time.Time `json:"expiresAt"`
}

// ----- Staff -----

func (s *CouponService) Create(req *CouponCreateReq) (*entity.Coupon, error) {
	coupon := &entity.Coupon{
		Code:          req.Code,
		DiscountValue: req.DiscountValue,
		IsActive:      true,
		ExpiresAt:     req.ExpiresAt,
	}
	if err := s.Repo.Create(coupon); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCouponExists
		}
		return nil, err
	}
	return coupon, nil
}

func (s *CouponService) List() ([]entity.Coupon, error) {
	return s.Repo.List()
}

// Deactivate ปิดคูปอง — ปิดได้เฉพาะที่ยัง active และยังไม่ถูกใช้
func (s *CouponService) Deactivate(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.Repo.FindByID(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCouponNotFound
			}
			return err
		}
		affected, err := s.Repo.DeactivateGuard(tx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrCouponUsed
		}
		return nil
	})
}

// ----- Redemption -----

// Redeem ตรวจ + ใช้คูปองใน transaction เดียว (guard ที่ DB กัน redeem ซ้อน)
// ต้องเรียกจากใน tx เท่านั้น — order service ใช้ร่วมด้วยตอนสร้างออเดอร์
func (s *CouponService) Redeem(tx *gorm.DB, userID uint, code string) (int, error) {
	coupon, err := s.Repo.FindByCode(tx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrCouponNotFound
		}
		return 0, err
	}

	if coupon.ExpiresAt != nil && coupon.ExpiresAt.Before(time.Now()) {
		return 0, ErrCouponExpired
	}

	affected, err := s.Repo.RedeemGuard(tx, code, userID, time.Now())
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		// มีแถวแต่ guard ไม่ผ่าน = ใช้ไปแล้วหรือโดนปิด
		return 0, ErrCouponUsed
	}
	return coupon.DiscountValue, nil
}

// Check = endpoint redeem ตรง ๆ (ลูกค้าเช็คคูปองก่อนสั่ง)
func (s *CouponService) Check(userID uint, code string) (int, error) {
	var pct int
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		v, err := s.Redeem(tx, userID, code)
		if err != nil {
			return err
		}
		pct = v
		return nil
	})
	if err != nil {
		return 0, err
	}
	return pct, nil
}
