package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Product 购物车核心需要的商品视图
type Product struct {
	ID        uint
	Name      string
	Price     decimal.Decimal
	Available int
}

// Offer 购物车核心需要的优惠视图
type Offer struct {
	ID        uint
	Key       string
	ProductID uint
}

// ProductCatalog 商品目录协作方接口
type ProductCatalog interface {
	// GetProduct 查询商品，不存在时返回 (nil, nil)
	GetProduct(ctx context.Context, productID uint) (*Product, error)
	// DecrementStock 扣减库存，库存不足返回 ErrInsufficientStock。
	// 通过 contextx 传递的事务内调用时参与同一事务。
	DecrementStock(ctx context.Context, productID uint, quantity int) error
}

// OfferCatalog 优惠目录协作方接口
type OfferCatalog interface {
	// GetOffer 按 ID 查询优惠，不存在时返回 (nil, nil)
	GetOffer(ctx context.Context, offerID uint) (*Offer, error)
	// FindByKeyAndProduct 按 (key, product) 查询优惠，不存在时返回 (nil, nil)
	FindByKeyAndProduct(ctx context.Context, key string, productID uint) (*Offer, error)
}

// EventPublisher 领域事件发布接口
type EventPublisher interface {
	Publish(ctx context.Context, topic string, key string, event any) error
}
