package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(v string) decimal.Decimal {
	out, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return out
}

func TestPriceLine(t *testing.T) {
	engine := NewPricingEngine(nil)

	tests := []struct {
		name     string
		price    string
		quantity int
		kind     OfferKind
		subtotal string
		discount string
		total    string
	}{
		{"no offer", "10", 3, OfferKindNone, "30", "0", "30"},
		{"buy 2 get 1 free, exact triple", "10", 3, OfferKindBuy2Get1Free, "30", "10", "20"},
		{"buy 2 get 1 free, partial triple", "10", 4, OfferKindBuy2Get1Free, "40", "10", "30"},
		{"buy 2 get 1 free, below threshold", "10", 2, OfferKindBuy2Get1Free, "20", "0", "20"},
		{"buy 2 get 1 free, two triples", "10", 6, OfferKindBuy2Get1Free, "60", "20", "40"},
		{"buy 1 get half off, one pair", "10", 2, OfferKindBuy1GetHalfOff, "20", "5", "15"},
		{"buy 1 get half off, pair plus one", "10", 3, OfferKindBuy1GetHalfOff, "30", "5", "25"},
		{"buy 1 get half off, single unit", "10", 1, OfferKindBuy1GetHalfOff, "10", "0", "10"},
		{"buy 1 get half off, two pairs", "10", 5, OfferKindBuy1GetHalfOff, "50", "10", "40"},
		{"fractional price", "2.50", 3, OfferKindBuy2Get1Free, "7.5", "2.5", "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lp := engine.PriceLine(d(tt.price), tt.quantity, tt.kind)
			if !lp.Subtotal.Equal(d(tt.subtotal)) {
				t.Errorf("subtotal = %s, want %s", lp.Subtotal, tt.subtotal)
			}
			if !lp.Discount.Equal(d(tt.discount)) {
				t.Errorf("discount = %s, want %s", lp.Discount, tt.discount)
			}
			if !lp.Total.Equal(d(tt.total)) {
				t.Errorf("total = %s, want %s", lp.Total, tt.total)
			}
		})
	}
}

func TestResolveUnknownKey(t *testing.T) {
	engine := NewPricingEngine(nil)

	if kind := engine.Resolve("FLASH_SALE_2049"); kind != OfferKindNone {
		t.Fatalf("unknown key resolved to %q, want no offer", kind)
	}

	// 未知类型按原价计费
	lp := engine.PriceLine(d("10"), 3, OfferKind("FLASH_SALE_2049"))
	if !lp.Total.Equal(d("30")) || !lp.Discount.IsZero() {
		t.Fatalf("unknown kind priced at %s with discount %s, want full price", lp.Total, lp.Discount)
	}
}

func TestBillAdd(t *testing.T) {
	bill := Bill{}
	bill = bill.Add(LinePrice{Subtotal: d("30"), Discount: d("10"), Total: d("20")})
	bill = bill.Add(LinePrice{Subtotal: d("20"), Discount: d("5"), Total: d("15")})

	if !bill.Subtotal.Equal(d("50")) || !bill.Discount.Equal(d("15")) || !bill.Total.Equal(d("35")) {
		t.Fatalf("bill = %+v, want subtotal 50 discount 15 total 35", bill)
	}
}
