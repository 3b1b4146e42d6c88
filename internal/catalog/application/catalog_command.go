// Package application 商品目录服务应用层
package application

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/shopping/internal/catalog/domain"
)

// CreateProductCommand 创建商品命令
type CreateProductCommand struct {
	Name        string
	Description string
	Price       string
	Stock       int
	Category    string
}

// CatalogCommandService 商品目录命令服务
type CatalogCommandService struct {
	repo      domain.ProductRepository
	publisher domain.EventPublisher
}

// NewCatalogCommandService 创建商品目录命令服务实例
func NewCatalogCommandService(
	repo domain.ProductRepository,
	publisher domain.EventPublisher,
) *CatalogCommandService {
	return &CatalogCommandService{
		repo:      repo,
		publisher: publisher,
	}
}

// CreateProduct 处理创建商品
func (s *CatalogCommandService) CreateProduct(ctx context.Context, cmd CreateProductCommand) (uint, error) {
	price, err := decimal.NewFromString(cmd.Price)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", cmd.Price, err)
	}

	product := &domain.Product{
		Name:        cmd.Name,
		Description: cmd.Description,
		Price:       price,
		Stock:       cmd.Stock,
		Category:    cmd.Category,
	}

	if err := s.repo.Save(ctx, product); err != nil {
		return 0, err
	}

	event := domain.ProductCreatedEvent{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Stock:     product.Stock,
		Category:  product.Category,
		Timestamp: time.Now(),
	}
	s.publisher.Publish(ctx, "product.created", cmd.Name, event)

	return product.ID, nil
}

// DecrementStock 处理库存扣减，由购物车结账在事务内调用
func (s *CatalogCommandService) DecrementStock(ctx context.Context, productID uint, quantity int) error {
	if err := s.repo.DecrementStock(ctx, productID, quantity); err != nil {
		return err
	}

	event := domain.ProductStockDeductedEvent{
		ProductID: productID,
		Quantity:  quantity,
		Timestamp: time.Now(),
	}
	s.publisher.Publish(ctx, "product.stock.deducted", "", event)

	return nil
}
