package services

import (
	"time"

	"github.com/alexkanav/cafe-ordering-system/repository"
)

type StatsService struct {
	Repo    *repository.StatsRepository
	Pricing Pricing
}

func NewStatsService(repo *repository.StatsRepository, pricing Pricing) *StatsService {
	return &StatsService{Repo: repo, Pricing: pricing}
}

// payload แบบ parallel arrays — ฝั่งหน้าเว็บเอาไปเข้า chart ตรง ๆ
type SalesSummaryOut struct {
	Dates              []string  `json:"dates"`
	TotalSales         []float64 `json:"totalSales"`
	AvgCheckSizes      []float64 `json:"avgCheckSizes"`
	Orders             []int     `json:"orders"`
	ReturningCustomers []int     `json:"returningCustomers"`
}

type DishOrderStatsOut struct {
	Dishes []string `json:"dishes"`
	Orders []int    `json:"orders"`
}

// SalesSummary คืนครบทุกวันในช่วง [start, end] — วันที่ไม่มียอดใส่ 0
func (s *StatsService) SalesSummary(start, end time.Time) (*SalesSummaryOut, error) {
	start = dateOnly(start)
	end = dateOnly(end)
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	rows, err := s.Repo.ListSalesBetween(start, end)
	if err != nil {
		return nil, err
	}
	byDate := make(map[string]int, len(rows))
	for i, r := range rows {
		byDate[dateOnly(r.Date).Format("2006-01-02")] = i
	}

	out := &SalesSummaryOut{
		Dates:              []string{},
		TotalSales:         []float64{},
		AvgCheckSizes:      []float64{},
		Orders:             []int{},
		ReturningCustomers: []int{},
	}
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		out.Dates = append(out.Dates, key)

		if i, ok := byDate[key]; ok {
			r := rows[i]
			avg := 0.0
			if r.Orders > 0 {
				avg = s.Pricing.Round(r.TotalSales / float64(r.Orders))
			}
			out.TotalSales = append(out.TotalSales, r.TotalSales)
			out.AvgCheckSizes = append(out.AvgCheckSizes, avg)
			out.Orders = append(out.Orders, r.Orders)
			out.ReturningCustomers = append(out.ReturningCustomers, r.ReturningCustomers)
		} else {
			out.TotalSales = append(out.TotalSales, 0)
			out.AvgCheckSizes = append(out.AvgCheckSizes, 0)
			out.Orders = append(out.Orders, 0)
			out.ReturningCustomers = append(out.ReturningCustomers, 0)
		}
	}
	return out, nil
}

// DishOrderStats คืนทุกเมนูเสมอ เมนูที่ไม่เคยถูกสั่งได้ 0
func (s *StatsService) DishOrderStats() (*DishOrderStatsOut, error) {
	rows, err := s.Repo.ListDishOrders()
	if err != nil {
		return nil, err
	}
	out := &DishOrderStatsOut{Dishes: []string{}, Orders: []int{}}
	for _, r := range rows {
		out.Dishes = append(out.Dishes, r.Code)
		out.Orders = append(out.Orders, r.Orders)
	}
	return out, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
