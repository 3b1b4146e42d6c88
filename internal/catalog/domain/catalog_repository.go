package domain

import "context"

// ProductRepository 商品仓储接口
type ProductRepository interface {
	Save(ctx context.Context, product *Product) error
	// GetByID 按 ID 查询商品，不存在时返回 (nil, nil)
	GetByID(ctx context.Context, id uint) (*Product, error)
	List(ctx context.Context, category string, offset, limit int) ([]*Product, int, error)
	// DecrementStock 原子扣减库存，库存不足返回 ErrInsufficientStock，
	// 商品不存在返回 ErrProductNotFound。经 contextx 传入事务时参与该事务。
	DecrementStock(ctx context.Context, id uint, quantity int) error
}

// EventPublisher 领域事件发布接口
type EventPublisher interface {
	Publish(ctx context.Context, topic string, key string, event any) error
}
