package domain

import "github.com/shopspring/decimal"

// OfferKind 促销类型
type OfferKind string

const (
	// OfferKindNone 无促销，按原价计费
	OfferKindNone OfferKind = ""
	// OfferKindBuy2Get1Free 每满 3 件免 1 件
	OfferKindBuy2Get1Free OfferKind = "BUY_2_GET_1_FREE"
	// OfferKindBuy1GetHalfOff 每 2 件中第 2 件半价
	OfferKindBuy1GetHalfOff OfferKind = "BUY_1_GET_HALF_OFF"
)

// OfferTable 优惠键到促销类型的映射，由构造方注入而不是进程级查表
type OfferTable map[string]OfferKind

// DefaultOfferTable 返回系统已知的促销映射
func DefaultOfferTable() OfferTable {
	return OfferTable{
		string(OfferKindBuy2Get1Free):   OfferKindBuy2Get1Free,
		string(OfferKindBuy1GetHalfOff): OfferKindBuy1GetHalfOff,
	}
}

// LinePrice 单个条目的计价结果
type LinePrice struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// PricingEngine 条目计价引擎。纯计算，无 I/O。
type PricingEngine struct {
	kinds OfferTable
}

// NewPricingEngine 创建计价引擎
func NewPricingEngine(kinds OfferTable) *PricingEngine {
	if kinds == nil {
		kinds = DefaultOfferTable()
	}
	return &PricingEngine{kinds: kinds}
}

// Resolve 将存储的优惠键解析为促销类型，未知键视为无促销。
func (e *PricingEngine) Resolve(key string) OfferKind {
	return e.kinds[key]
}

var two = decimal.NewFromInt(2)

// PriceLine 计算一个条目的小计、折扣与应付金额。
// 前置条件 unitPrice >= 0 且 quantity > 0 由调用方保证。
func (e *PricingEngine) PriceLine(unitPrice decimal.Decimal, quantity int, kind OfferKind) LinePrice {
	qty := decimal.NewFromInt(int64(quantity))
	subtotal := unitPrice.Mul(qty)
	total := subtotal

	switch kind {
	case OfferKindBuy2Get1Free:
		// 每凑满 3 件免费 1 件
		chargeable := int64(quantity - quantity/3)
		total = unitPrice.Mul(decimal.NewFromInt(chargeable))
	case OfferKindBuy1GetHalfOff:
		// 成对计价，每对第 2 件半价，落单的 1 件原价
		pairs := int64(quantity / 2)
		fullPrice := int64(quantity) - pairs
		total = unitPrice.Mul(decimal.NewFromInt(fullPrice)).
			Add(unitPrice.Div(two).Mul(decimal.NewFromInt(pairs)))
	}
	// 未知促销类型按原价计费

	return LinePrice{
		Subtotal: subtotal,
		Discount: subtotal.Sub(total),
		Total:    total,
	}
}
