// Package adapter 将商品目录与优惠服务适配到购物车上下文的端口。
package adapter

import (
	"context"
	"errors"

	catalogapp "github.com/wyfcoding/shopping/internal/catalog/application"
	catalogdomain "github.com/wyfcoding/shopping/internal/catalog/domain"
	"github.com/wyfcoding/shopping/internal/cart/domain"
)

// catalogAdapter 基于商品目录应用服务实现 ProductCatalog
type catalogAdapter struct {
	catalog *catalogapp.CatalogService
}

// NewCatalogAdapter 创建商品目录适配器实例
func NewCatalogAdapter(catalog *catalogapp.CatalogService) domain.ProductCatalog {
	return &catalogAdapter{catalog: catalog}
}

func (a *catalogAdapter) GetProduct(ctx context.Context, productID uint) (*domain.Product, error) {
	product, err := a.catalog.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, catalogdomain.ErrProductNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &domain.Product{
		ID:        product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Available: product.Stock,
	}, nil
}

func (a *catalogAdapter) DecrementStock(ctx context.Context, productID uint, quantity int) error {
	err := a.catalog.DecrementStock(ctx, productID, quantity)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, catalogdomain.ErrProductNotFound):
		return domain.ErrProductNotFound
	case errors.Is(err, catalogdomain.ErrInsufficientStock):
		return domain.ErrInsufficientStock
	default:
		return err
	}
}
