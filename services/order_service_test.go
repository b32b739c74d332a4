package services

import (
	"errors"
	"testing"
	"time"

	"github.com/alexkanav/cafe-ordering-system/entity"
)

func TestCreateOrderPricing(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db)

	seedDish(t, db, "C1", 80)
	seedDish(t, db, "C2", 40)

	if err := db.Create(&entity.Coupon{Code: "TEN", DiscountValue: 10, IsActive: true}).Error; err != nil {
		t.Fatalf("seed coupon: %v", err)
	}

	// ยอดสะสม 0 → loyalty 0; cart รวม 200; คูปอง 10% → 180
	order, err := svc.Create(user.ID, &CreateOrderReq{
		Items: []CartLineIn{
			{DishCode: "C1", Qty: 2}, // 160
			{DishCode: "C2", Qty: 1}, // 40
		},
		CouponCode: "TEN",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if order.OriginalCost != 200 {
		t.Errorf("original cost = %v, want 200", order.OriginalCost)
	}
	if order.LoyaltyPct != 0 {
		t.Errorf("loyalty pct = %d, want 0", order.LoyaltyPct)
	}
	if order.CouponPct != 10 {
		t.Errorf("coupon pct = %d, want 10", order.CouponPct)
	}
	if order.FinalCost != 180 {
		t.Errorf("final cost = %v, want 180", order.FinalCost)
	}
	if len(order.Lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(order.Lines))
	}
	if order.Lines[0].UnitPrice != 80 || order.Lines[0].Qty != 2 {
		t.Errorf("line snapshot = %+v", order.Lines[0])
	}
	if order.CompletedAt != nil {
		t.Error("new order must not be completed")
	}
}

func TestCreateOrderSnapshotIsFrozen(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db)
	seedDish(t, db, "B1", 50)

	order, err := svc.Create(user.ID, &CreateOrderReq{
		Items: []CartLineIn{{DishCode: "B1", Qty: 1}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// ขึ้นราคาเมนูทีหลัง — ออเดอร์เดิมต้องไม่ขยับ
	if err := db.Model(&entity.Dish{}).Where("code = ?", "B1").Update("price", 999).Error; err != nil {
		t.Fatalf("update price: %v", err)
	}

	var reloaded entity.Order
	if err := db.First(&reloaded, order.ID).Error; err != nil {
		t.Fatalf("reload order: %v", err)
	}
	if reloaded.OriginalCost != 50 {
		t.Errorf("original cost after menu edit = %v, want 50", reloaded.OriginalCost)
	}
	if reloaded.Lines[0].UnitPrice != 50 {
		t.Errorf("snapshot price after menu edit = %v, want 50", reloaded.Lines[0].UnitPrice)
	}
}

func TestCreateOrderFailures(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db)
	dish := seedDish(t, db, "A1", 100)

	extra := entity.DishExtra{Name: "Cream", Price: 12.5}
	if err := db.Create(&extra).Error; err != nil {
		t.Fatalf("seed extra: %v", err)
	}
	if err := db.Model(dish).Association("Extras").Append(&extra); err != nil {
		t.Fatalf("link extra: %v", err)
	}

	tests := []struct {
		name    string
		req     *CreateOrderReq
		wantErr error
	}{
		{
			name:    "empty cart",
			req:     &CreateOrderReq{},
			wantErr: ErrEmptyOrder,
		},
		{
			name:    "unknown dish code",
			req:     &CreateOrderReq{Items: []CartLineIn{{DishCode: "ZZ", Qty: 1}}},
			wantErr: ErrDishNotFound,
		},
		{
			name: "extra not on this dish",
			req: &CreateOrderReq{
				Items: []CartLineIn{{DishCode: "A1", Qty: 1, ExtraIDs: []uint{9999}}},
			},
			wantErr: ErrExtraNotFound,
		},
		{
			name: "unknown coupon",
			req: &CreateOrderReq{
				Items:      []CartLineIn{{DishCode: "A1", Qty: 1}},
				CouponCode: "NOPE",
			},
			wantErr: ErrCouponNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(user.ID, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	// order ที่ fail ต้องไม่ทิ้งแถวไว้
	var cnt int64
	if err := db.Model(&entity.Order{}).Count(&cnt).Error; err != nil {
		t.Fatalf("count orders: %v", err)
	}
	if cnt != 0 {
		t.Errorf("orders after failures = %d, want 0", cnt)
	}
}

func TestCreateOrderWithExtras(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db)
	dish := seedDish(t, db, "L1", 100)

	extra := entity.DishExtra{Name: "Oat milk", Price: 10.5}
	if err := db.Create(&extra).Error; err != nil {
		t.Fatalf("seed extra: %v", err)
	}
	if err := db.Model(dish).Association("Extras").Append(&extra); err != nil {
		t.Fatalf("link extra: %v", err)
	}

	order, err := svc.Create(user.ID, &CreateOrderReq{
		Items: []CartLineIn{{DishCode: "L1", Qty: 2, ExtraIDs: []uint{extra.ID}}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// (100 + 10.5) × 2 = 221
	if order.OriginalCost != 221 {
		t.Errorf("original cost = %v, want 221", order.OriginalCost)
	}
	if len(order.Lines[0].Extras) != 1 || order.Lines[0].Extras[0].Price != 10.5 {
		t.Errorf("extra snapshot = %+v", order.Lines[0].Extras)
	}
}

func TestCompleteOrderNotIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db)
	staff := seedStaff(t, db, "staff@cafe.test")
	seedDish(t, db, "D1", 30)

	order, err := svc.Create(user.ID, &CreateOrderReq{
		Items: []CartLineIn{{DishCode: "D1", Qty: 1}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Complete(order.ID, staff.ID); err != nil {
		t.Fatalf("first Complete: %v", err)
	}

	var reloaded entity.Order
	if err := db.First(&reloaded, order.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.CompletedAt == nil {
		t.Fatal("completed_at not set")
	}
	if reloaded.CompletedByID == nil || *reloaded.CompletedByID != staff.ID {
		t.Errorf("completed_by = %v, want %d", reloaded.CompletedByID, staff.ID)
	}

	// ครั้งที่สองต้อง conflict ไม่ใช่ no-op
	if err := svc.Complete(order.ID, staff.ID); !errors.Is(err, ErrOrderCompleted) {
		t.Fatalf("second Complete error = %v, want ErrOrderCompleted", err)
	}

	if err := svc.Complete(99999, staff.ID); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("Complete missing id error = %v, want ErrOrderNotFound", err)
	}
}

func TestCompleteOrderRollsUpStats(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db)
	staff := seedStaff(t, db, "stats@cafe.test")
	seedDish(t, db, "S1", 100)
	seedDish(t, db, "S2", 50)

	first, err := svc.Create(user.ID, &CreateOrderReq{
		Items: []CartLineIn{{DishCode: "S1", Qty: 1}},
	})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := svc.Create(user.ID, &CreateOrderReq{
		Items: []CartLineIn{{DishCode: "S1", Qty: 2}, {DishCode: "S2", Qty: 1}},
	})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	if err := svc.Complete(first.ID, staff.ID); err != nil {
		t.Fatalf("complete first: %v", err)
	}
	if err := svc.Complete(second.ID, staff.ID); err != nil {
		t.Fatalf("complete second: %v", err)
	}

	now := time.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var summary entity.SalesSummary
	if err := db.Where("date = ?", day).First(&summary).Error; err != nil {
		t.Fatalf("load sales summary: %v", err)
	}
	if summary.Orders != 2 {
		t.Errorf("summary orders = %d, want 2", summary.Orders)
	}
	if summary.TotalSales != first.FinalCost+second.FinalCost {
		t.Errorf("summary total = %v, want %v", summary.TotalSales, first.FinalCost+second.FinalCost)
	}
	// ออเดอร์ที่สองของ user เดียวกัน → กลายเป็นลูกค้าประจำวันนี้
	if summary.ReturningCustomers != 1 {
		t.Errorf("returning customers = %d, want 1", summary.ReturningCustomers)
	}

	var s1 entity.DishOrdersStats
	if err := db.Where("code = ?", "S1").First(&s1).Error; err != nil {
		t.Fatalf("load dish stats: %v", err)
	}
	// S1 อยู่ใน 2 ออเดอร์ → นับ 2 (ไม่คูณ qty)
	if s1.Orders != 2 {
		t.Errorf("S1 orders = %d, want 2", s1.Orders)
	}
}

func TestLoyaltyDiscountAppliesAfterSpend(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	user := seedUser(t, db)
	staff := seedStaff(t, db, "loyal@cafe.test")
	seedDish(t, db, "P1", 1000)

	// สร้าง + ปิดออเดอร์แรก → ยอดสะสม 1000
	first, err := svc.Create(user.ID, &CreateOrderReq{
		Items: []CartLineIn{{DishCode: "P1", Qty: 1}},
	})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	if first.LoyaltyPct != 0 {
		t.Fatalf("first order loyalty = %d, want 0", first.LoyaltyPct)
	}
	if err := svc.Complete(first.ID, staff.ID); err != nil {
		t.Fatalf("complete first: %v", err)
	}

	// ออเดอร์ถัดไปได้ tier 1000 → 5%
	second, err := svc.Create(user.ID, &CreateOrderReq{
		Items: []CartLineIn{{DishCode: "P1", Qty: 1}},
	})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if second.LoyaltyPct != 5 {
		t.Errorf("second order loyalty = %d, want 5", second.LoyaltyPct)
	}
	if second.FinalCost != 950 {
		t.Errorf("second order final = %v, want 950", second.FinalCost)
	}
}
