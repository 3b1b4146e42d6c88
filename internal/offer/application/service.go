package application

import "github.com/wyfcoding/shopping/internal/offer/domain"

// OfferService 促销优惠服务门面，聚合命令与查询
type OfferService struct {
	*OfferCommandService
	*OfferQueryService
}

// NewOfferService 创建促销优惠服务实例
func NewOfferService(
	repo domain.OfferRepository,
	products domain.ProductChecker,
	publisher domain.EventPublisher,
) *OfferService {
	return &OfferService{
		OfferCommandService: NewOfferCommandService(repo, products, publisher),
		OfferQueryService:   NewOfferQueryService(repo),
	}
}
