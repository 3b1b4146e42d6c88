package application

import (
	"context"

	"github.com/wyfcoding/shopping/internal/offer/domain"
)

// OfferQueryService 优惠查询服务
type OfferQueryService struct {
	repo domain.OfferRepository
}

// NewOfferQueryService 创建优惠查询服务实例
func NewOfferQueryService(repo domain.OfferRepository) *OfferQueryService {
	return &OfferQueryService{repo: repo}
}

// GetOffer 按 ID 查询优惠，不存在时返回 ErrOfferNotFound
func (s *OfferQueryService) GetOffer(ctx context.Context, id uint) (*domain.Offer, error) {
	offer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, domain.ErrOfferNotFound
	}
	return offer, nil
}

// FindByKeyAndProduct 按优惠类型与商品查询，不存在时返回 (nil, nil)
func (s *OfferQueryService) FindByKeyAndProduct(ctx context.Context, key string, productID uint) (*domain.Offer, error) {
	return s.repo.FindByKeyAndProduct(ctx, key, productID)
}

// ListByProduct 列出商品上的全部优惠
func (s *OfferQueryService) ListByProduct(ctx context.Context, productID uint) ([]*domain.Offer, error) {
	return s.repo.ListByProduct(ctx, productID)
}
