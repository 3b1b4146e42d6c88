package application

import "github.com/wyfcoding/shopping/internal/catalog/domain"

// CatalogService 商品目录服务门面，聚合命令与查询
type CatalogService struct {
	*CatalogCommandService
	*CatalogQueryService
}

// NewCatalogService 创建商品目录服务实例
func NewCatalogService(repo domain.ProductRepository, publisher domain.EventPublisher) *CatalogService {
	return &CatalogService{
		CatalogCommandService: NewCatalogCommandService(repo, publisher),
		CatalogQueryService:   NewCatalogQueryService(repo),
	}
}
