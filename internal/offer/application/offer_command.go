// Package application 促销优惠服务应用层
package application

import (
	"context"
	"time"

	"github.com/wyfcoding/shopping/internal/offer/domain"
)

// CreateOfferCommand 创建优惠命令
type CreateOfferCommand struct {
	Key       string
	ProductID uint
}

// OfferCommandService 优惠命令服务
type OfferCommandService struct {
	repo      domain.OfferRepository
	products  domain.ProductChecker
	publisher domain.EventPublisher
}

// NewOfferCommandService 创建优惠命令服务实例
func NewOfferCommandService(
	repo domain.OfferRepository,
	products domain.ProductChecker,
	publisher domain.EventPublisher,
) *OfferCommandService {
	return &OfferCommandService{
		repo:      repo,
		products:  products,
		publisher: publisher,
	}
}

// CreateOffer 处理创建优惠
func (s *OfferCommandService) CreateOffer(ctx context.Context, cmd CreateOfferCommand) (uint, error) {
	if !domain.ValidKey(cmd.Key) {
		return 0, domain.ErrUnknownOfferKey
	}

	exists, err := s.products.Exists(ctx, cmd.ProductID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, domain.ErrProductNotFound
	}

	offer := &domain.Offer{
		Key:       cmd.Key,
		ProductID: cmd.ProductID,
	}
	if err := s.repo.Create(ctx, offer); err != nil {
		return 0, err
	}

	event := domain.OfferCreatedEvent{
		OfferID:   offer.ID,
		Key:       offer.Key,
		ProductID: offer.ProductID,
		Timestamp: time.Now(),
	}
	s.publisher.Publish(ctx, "offer.created", offer.Key, event)

	return offer.ID, nil
}
