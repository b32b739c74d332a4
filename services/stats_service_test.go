package services

import (
	"errors"
	"testing"
	"time"

	"github.com/alexkanav/cafe-ordering-system/entity"
	"github.com/alexkanav/cafe-ordering-system/repository"

	"gorm.io/gorm"
)

func newStatsService(db *gorm.DB) *StatsService {
	return NewStatsService(repository.NewStatsRepository(db), testPricing())
}

func TestSalesSummaryZeroFillsRange(t *testing.T) {
	db := newTestDB(t)
	svc := newStatsService(db)

	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("parse %s: %v", s, err)
		}
		return d
	}

	// มียอดแค่ 2 วันในช่วง 5 วัน
	rows := []entity.SalesSummary{
		{Date: day("2026-08-02"), TotalSales: 300, Orders: 2, ReturningCustomers: 1},
		{Date: day("2026-08-04"), TotalSales: 150.5, Orders: 1},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed summary: %v", err)
	}

	out, err := svc.SalesSummary(day("2026-08-01"), day("2026-08-05"))
	if err != nil {
		t.Fatalf("SalesSummary: %v", err)
	}

	if len(out.Dates) != 5 {
		t.Fatalf("dates = %d, want 5 (inclusive range)", len(out.Dates))
	}
	if out.Dates[0] != "2026-08-01" || out.Dates[4] != "2026-08-05" {
		t.Errorf("date bounds = %s..%s", out.Dates[0], out.Dates[4])
	}

	wantTotals := []float64{0, 300, 0, 150.5, 0}
	wantOrders := []int{0, 2, 0, 1, 0}
	wantAvg := []float64{0, 150, 0, 150.5, 0}
	wantReturning := []int{0, 1, 0, 0, 0}
	for i := range wantTotals {
		if out.TotalSales[i] != wantTotals[i] {
			t.Errorf("total[%d] = %v, want %v", i, out.TotalSales[i], wantTotals[i])
		}
		if out.Orders[i] != wantOrders[i] {
			t.Errorf("orders[%d] = %v, want %v", i, out.Orders[i], wantOrders[i])
		}
		if out.AvgCheckSizes[i] != wantAvg[i] {
			t.Errorf("avg[%d] = %v, want %v", i, out.AvgCheckSizes[i], wantAvg[i])
		}
		if out.ReturningCustomers[i] != wantReturning[i] {
			t.Errorf("returning[%d] = %v, want %v", i, out.ReturningCustomers[i], wantReturning[i])
		}
	}
}

func TestSalesSummarySingleDay(t *testing.T) {
	db := newTestDB(t)
	svc := newStatsService(db)

	d := time.Date(2026, 8, 10, 15, 30, 0, 0, time.UTC)
	out, err := svc.SalesSummary(d, d)
	if err != nil {
		t.Fatalf("SalesSummary: %v", err)
	}
	// เวลาในวันเดียวกันต้องถูก normalize ให้เป็นช่วง 1 วัน
	if len(out.Dates) != 1 || out.Dates[0] != "2026-08-10" {
		t.Fatalf("dates = %v, want [2026-08-10]", out.Dates)
	}
}

func TestSalesSummaryRejectsReversedRange(t *testing.T) {
	db := newTestDB(t)
	svc := newStatsService(db)

	start := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)
	if _, err := svc.SalesSummary(start, end); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("error = %v, want ErrInvalidDateRange", err)
	}
}

func TestDishOrderStatsIncludesUnordered(t *testing.T) {
	db := newTestDB(t)
	svc := newStatsService(db)

	// 3 เมนู สั่งจริงแค่ 2
	seedDish(t, db, "A1", 50)
	seedDish(t, db, "B1", 60)
	seedDish(t, db, "C1", 70)
	if err := db.Create(&[]entity.DishOrdersStats{
		{Code: "A1", Orders: 4},
		{Code: "C1", Orders: 1},
	}).Error; err != nil {
		t.Fatalf("seed stats: %v", err)
	}

	out, err := svc.DishOrderStats()
	if err != nil {
		t.Fatalf("DishOrderStats: %v", err)
	}

	want := map[string]int{"A1": 4, "B1": 0, "C1": 1}
	if len(out.Dishes) != len(want) {
		t.Fatalf("dishes = %v, want 3 entries", out.Dishes)
	}
	for i, code := range out.Dishes {
		if out.Orders[i] != want[code] {
			t.Errorf("orders for %s = %d, want %d", code, out.Orders[i], want[code])
		}
	}
}
