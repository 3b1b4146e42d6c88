// Package domain 购物车服务的领域模型
package domain

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartStatus 购物车状态
type CartStatus string

const (
	CartStatusDraft     CartStatus = "DRAFT"
	CartStatusCompleted CartStatus = "COMPLETED"
)

// Cart 购物车实体
// 每个用户同一时刻最多只有一个 DRAFT 购物车。DraftOwner 在草稿期间等于
// UserID，结账时清空；其唯一索引在存储层保证这一不变量。
type Cart struct {
	gorm.Model
	UserID     string     `gorm:"column:user_id;type:varchar(36);index;not null" json:"user_id"`
	DraftOwner *string    `gorm:"column:draft_owner;type:varchar(36);uniqueIndex" json:"-"`
	Status     CartStatus `gorm:"column:status;type:varchar(20);index;not null;default:DRAFT" json:"status"`
	// OrderNo 结账完成后生成的订单号
	OrderNo string `gorm:"column:order_no;type:varchar(32);index" json:"order_no,omitempty"`
	// 账单快照，生成账单前为空
	Subtotal decimal.NullDecimal `gorm:"column:subtotal;type:decimal(20,8)" json:"subtotal"`
	Discount decimal.NullDecimal `gorm:"column:discount;type:decimal(20,8)" json:"discount"`
	Total    decimal.NullDecimal `gorm:"column:total;type:decimal(20,8)" json:"total"`
}

func (Cart) TableName() string { return "carts" }

// NewDraftCart 创建用户的购物车草稿
func NewDraftCart(userID string) *Cart {
	owner := userID
	return &Cart{
		UserID:     userID,
		DraftOwner: &owner,
		Status:     CartStatusDraft,
	}
}

// HasBill 账单是否已生成
func (c *Cart) HasBill() bool {
	return c.Subtotal.Valid && c.Discount.Valid && c.Total.Valid
}

// IsCompleted 购物车是否已结账
func (c *Cart) IsCompleted() bool {
	return c.Status == CartStatusCompleted
}

// CartItem 购物车条目
// 每个 (cart, product) 只有一行；重复添加同一商品覆盖 Quantity 而不是新增行。
type CartItem struct {
	gorm.Model
	CartID    uint `gorm:"column:cart_id;not null;uniqueIndex:idx_cart_product" json:"cart_id"`
	ProductID uint `gorm:"column:product_id;not null;uniqueIndex:idx_cart_product" json:"product_id"`
	Quantity  int  `gorm:"column:quantity;not null" json:"quantity"`
	// OfferID 应用到该条目的优惠，可为空
	OfferID *uint `gorm:"column:offer_id" json:"offer_id,omitempty"`
}

func (CartItem) TableName() string { return "cart_items" }

// Bill 一次账单计算的合计
type Bill struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// Add 累加一条商品的计价结果
func (b Bill) Add(lp LinePrice) Bill {
	return Bill{
		Subtotal: b.Subtotal.Add(lp.Subtotal),
		Discount: b.Discount.Add(lp.Discount),
		Total:    b.Total.Add(lp.Total),
	}
}
