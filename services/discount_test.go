package services

import (
	"testing"
)

func TestLoyaltyPct(t *testing.T) {
	p := testPricing()

	tests := []struct {
		name  string
		spend float64
		want  int
	}{
		{name: "zero spend", spend: 0, want: 0},
		{name: "below first tier", spend: 499.99, want: 0},
		{name: "exactly first tier", spend: 500, want: 3},
		{name: "between tiers", spend: 1500, want: 5},
		{name: "top tier", spend: 5000, want: 10},
		{name: "way above top tier", spend: 100000, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.LoyaltyPct(tt.spend); got != tt.want {
				t.Errorf("LoyaltyPct(%v) = %d, want %d", tt.spend, got, tt.want)
			}
		})
	}
}

func TestFinalCost(t *testing.T) {
	p := testPricing()

	tests := []struct {
		name       string
		original   float64
		loyaltyPct int
		couponPct  int
		want       float64
	}{
		{name: "no discounts", original: 200, loyaltyPct: 0, couponPct: 0, want: 200},
		{name: "coupon only", original: 200, loyaltyPct: 0, couponPct: 10, want: 180},
		{name: "loyalty only", original: 200, loyaltyPct: 5, couponPct: 0, want: 190},
		// loyalty ก่อน coupon: 200 → 190 → 171 (ไม่ใช่ 200×0.85=170)
		{name: "loyalty then coupon on remainder", original: 200, loyaltyPct: 5, couponPct: 10, want: 171},
		{name: "rounding to 2 decimals", original: 99.99, loyaltyPct: 3, couponPct: 0, want: 96.99},
		{name: "zero cost", original: 0, loyaltyPct: 10, couponPct: 10, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.FinalCost(tt.original, tt.loyaltyPct, tt.couponPct); got != tt.want {
				t.Errorf("FinalCost(%v, %d, %d) = %v, want %v",
					tt.original, tt.loyaltyPct, tt.couponPct, got, tt.want)
			}
		})
	}
}
