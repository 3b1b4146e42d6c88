// Package adapter 将商品目录服务适配到优惠上下文的端口。
package adapter

import (
	"context"
	"errors"

	catalogapp "github.com/wyfcoding/shopping/internal/catalog/application"
	catalogdomain "github.com/wyfcoding/shopping/internal/catalog/domain"
	"github.com/wyfcoding/shopping/internal/offer/domain"
)

// catalogAdapter 基于商品目录应用服务实现 ProductChecker
type catalogAdapter struct {
	catalog *catalogapp.CatalogService
}

// NewCatalogAdapter 创建商品目录适配器实例
func NewCatalogAdapter(catalog *catalogapp.CatalogService) domain.ProductChecker {
	return &catalogAdapter{catalog: catalog}
}

func (a *catalogAdapter) Exists(ctx context.Context, productID uint) (bool, error) {
	product, err := a.catalog.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, catalogdomain.ErrProductNotFound) {
			return false, nil
		}
		return false, err
	}
	return product != nil, nil
}
