package services

import (
	"math"

	"github.com/alexkanav/cafe-ordering-system/configs"
)

// Pricing รวม policy เรื่องส่วนลดไว้ที่เดียว
// ลำดับการลด: loyalty ก่อน แล้วค่อย coupon จากยอดที่เหลือ
type Pricing struct {
	Tiers     []configs.LoyaltyTier
	Precision int // จำนวนทศนิยมของสกุลเงิน
}

func NewPricing(cfg *configs.Config) Pricing {
	return Pricing{Tiers: cfg.LoyaltyTiers, Precision: cfg.CurrencyPrecision}
}

// LoyaltyPct เลือก tier สูงสุดที่ยอดสะสมถึง — ยอด 0 ได้ 0 เสมอ
func (p Pricing) LoyaltyPct(completedSpend float64) int {
	pct := 0
	for _, t := range p.Tiers {
		if completedSpend >= t.MinSpend {
			pct = t.Pct
		}
	}
	return pct
}

// FinalCost = original × (1 − loyalty/100) × (1 − coupon/100) ปัดตาม precision
func (p Pricing) FinalCost(original float64, loyaltyPct, couponPct int) float64 {
	v := original
	v -= v * float64(loyaltyPct) / 100
	v -= v * float64(couponPct) / 100
	return p.Round(v)
}

func (p Pricing) Round(v float64) float64 {
	scale := math.Pow(10, float64(p.Precision))
	return math.Round(v*scale) / scale
}
