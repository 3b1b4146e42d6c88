package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartCreatedEvent 购物车创建事件
type CartCreatedEvent struct {
	CartID    uint      `json:"cart_id"`
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

// CartItemAddedEvent 购物车添加商品事件
type CartItemAddedEvent struct {
	CartID    uint      `json:"cart_id"`
	UserID    string    `json:"user_id"`
	ProductID uint      `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Timestamp time.Time `json:"timestamp"`
}

// CartOfferAppliedEvent 条目优惠变更事件，OfferID 为空表示清除优惠
type CartOfferAppliedEvent struct {
	CartID    uint      `json:"cart_id"`
	ProductID uint      `json:"product_id"`
	OfferID   *uint     `json:"offer_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// CartBillCalculatedEvent 账单生成事件
type CartBillCalculatedEvent struct {
	CartID    uint            `json:"cart_id"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`
	Timestamp time.Time       `json:"timestamp"`
}

// CartCheckedOutEvent 结账完成事件
type CartCheckedOutEvent struct {
	CartID    uint            `json:"cart_id"`
	UserID    string          `json:"user_id"`
	OrderNo   string          `json:"order_no"`
	Total     decimal.Decimal `json:"total"`
	Timestamp time.Time       `json:"timestamp"`
}
