package domain

import "context"

// OfferRepository 优惠仓储接口
type OfferRepository interface {
	// Create 创建优惠，违反唯一约束时返回 ErrOfferExists
	Create(ctx context.Context, offer *Offer) error
	// GetByID 按 ID 查询优惠，不存在时返回 (nil, nil)
	GetByID(ctx context.Context, id uint) (*Offer, error)
	// FindByKeyAndProduct 按优惠类型与商品查询，不存在时返回 (nil, nil)
	FindByKeyAndProduct(ctx context.Context, key string, productID uint) (*Offer, error)
	ListByProduct(ctx context.Context, productID uint) ([]*Offer, error)
}

// ProductChecker 校验商品存在性，由商品目录上下文适配实现
type ProductChecker interface {
	Exists(ctx context.Context, productID uint) (bool, error)
}

// EventPublisher 领域事件发布接口
type EventPublisher interface {
	Publish(ctx context.Context, topic string, key string, event any) error
}
