package services

import (
	"errors"
	"time"

	"github.com/alexkanav/cafe-ordering-system/entity"
	"github.com/alexkanav/cafe-ordering-system/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	DishRepo  *repository.DishRepository
	UserRepo  *repository.UserRepository
	StatsRepo *repository.StatsRepository
	Coupons   *CouponService
	Pricing   Pricing
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	dishRepo *repository.DishRepository,
	userRepo *repository.UserRepository,
	statsRepo *repository.StatsRepository,
	coupons *CouponService,
	pricing Pricing,
) *OrderService {
	return &OrderService{
		DB:        db,
		Repo:      repo,
		DishRepo:  dishRepo,
		UserRepo:  userRepo,
		StatsRepo: statsRepo,
		Coupons:   coupons,
		Pricing:   pricing,
	}
}

// ----- DTOs from Controller -----

type CartLineIn struct {
	DishCode string `json:"dishCode" binding:"required"`
	Qty      int    `json:"qty" binding:"required,min=1"`
	ExtraIDs []uint `json:"extraIds"`
}

type CreateOrderReq struct {
	Items      []CartLineIn `json:"items" binding:"required,min=1"`
	Table      *int         `json:"table"`
	CouponCode string       `json:"couponCode"`
}

// ----- Create -----

// Create สร้างออเดอร์: resolve ราคาปัจจุบัน → snapshot → คิดส่วนลด → persist
// ทุก write (รวม redeem คูปอง) อยู่ใน transaction เดียว
func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	// resolve เมนู + extras เป็น snapshot (ราคา ณ ตอนสั่ง)
	var original float64
	lines := make([]entity.OrderLine, 0, len(req.Items))
	for _, it := range req.Items {
		d, err := s.DishRepo.FindByCode(it.DishCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrDishNotFound
			}
			return nil, err
		}

		line := entity.OrderLine{
			DishCode:  d.Code,
			Name:      d.Name,
			Qty:       it.Qty,
			UnitPrice: d.Price,
		}

		lineCost := float64(d.Price)
		for _, extraID := range it.ExtraIDs {
			extra, ok := findExtra(d.Extras, extraID)
			if !ok {
				// extra ต้องเป็นของเมนูนั้นจริง ๆ
				return nil, ErrExtraNotFound
			}
			line.Extras = append(line.Extras, entity.OrderLineExtra{
				ID: extra.ID, Name: extra.Name, Price: extra.Price,
			})
			lineCost += extra.Price
		}

		original += lineCost * float64(it.Qty)
		lines = append(lines, line)
	}
	original = s.Pricing.Round(original)

	// ส่วนลดสมาชิกจากยอดสะสมที่ปิดแล้ว
	spend, err := s.UserRepo.CompletedSpend(userID)
	if err != nil {
		return nil, err
	}
	loyaltyPct := s.Pricing.LoyaltyPct(spend)

	var out *entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		couponPct := 0
		if req.CouponCode != "" {
			pct, err := s.Coupons.Redeem(tx, userID, req.CouponCode)
			if err != nil {
				return err
			}
			couponPct = pct
		}

		order := entity.Order{
			UserID:       userID,
			Table:        req.Table,
			OriginalCost: original,
			LoyaltyPct:   loyaltyPct,
			CouponPct:    couponPct,
			FinalCost:    s.Pricing.FinalCost(original, loyaltyPct, couponPct),
			Lines:        lines,
		}
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}
		out = &order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func findExtra(extras []entity.DishExtra, id uint) (*entity.DishExtra, bool) {
	for i := range extras {
		if extras[i].ID == id {
			return &extras[i], true
		}
	}
	return nil, false
}

// ----- Complete -----

// Complete ปิดออเดอร์โดย staff — ปิดซ้ำคือ error ไม่ใช่ no-op
// rollup ยอดขายรายวัน + สถิติต่อเมนู อยู่ใน transaction เดียวกับ guard
func (s *OrderService) Complete(orderID, staffID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.Get(orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		now := time.Now()
		affected, err := s.Repo.CompleteGuard(tx, o.ID, staffID, now)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrOrderCompleted
		}

		// นับรวมออเดอร์นี้ด้วย (guard ด้านบนเพิ่งปิดไป)
		completed, err := s.UserRepo.CountCompletedOrders(tx, o.UserID)
		if err != nil {
			return err
		}
		returning := 0
		if completed == 2 {
			// วันนี้คือวันที่ลูกค้าคนนี้กลายเป็นลูกค้าประจำ
			returning = 1
		}

		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if err := s.StatsRepo.BumpSalesSummary(tx, day, o.FinalCost, returning); err != nil {
			return err
		}

		// นับ 1 ครั้งต่อ code ต่อออเดอร์ ไม่คูณ qty
		seen := make(map[string]bool, len(o.Lines))
		for _, line := range o.Lines {
			if seen[line.DishCode] {
				continue
			}
			seen[line.DishCode] = true
			if err := s.StatsRepo.BumpDishOrders(tx, line.DishCode); err != nil {
				return err
			}
		}
		return nil
	})
}

// ----- Reads -----

func (s *OrderService) List(onlyUncompleted bool, limit int) ([]entity.Order, error) {
	return s.Repo.List(onlyUncompleted, limit)
}

func (s *OrderService) CountUncompleted() (int64, error) {
	return s.Repo.CountUncompleted()
}

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListForUser(userID, limit)
}
