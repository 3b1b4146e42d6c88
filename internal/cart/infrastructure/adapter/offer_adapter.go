package adapter

import (
	"context"
	"errors"

	"github.com/wyfcoding/shopping/internal/cart/domain"
	offerapp "github.com/wyfcoding/shopping/internal/offer/application"
	offerdomain "github.com/wyfcoding/shopping/internal/offer/domain"
)

// offerAdapter 基于促销优惠应用服务实现 OfferCatalog
type offerAdapter struct {
	offers *offerapp.OfferService
}

// NewOfferAdapter 创建优惠适配器实例
func NewOfferAdapter(offers *offerapp.OfferService) domain.OfferCatalog {
	return &offerAdapter{offers: offers}
}

func (a *offerAdapter) GetOffer(ctx context.Context, offerID uint) (*domain.Offer, error) {
	offer, err := a.offers.GetOffer(ctx, offerID)
	if err != nil {
		if errors.Is(err, offerdomain.ErrOfferNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toView(offer), nil
}

func (a *offerAdapter) FindByKeyAndProduct(ctx context.Context, key string, productID uint) (*domain.Offer, error) {
	offer, err := a.offers.FindByKeyAndProduct(ctx, key, productID)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, nil
	}
	return toView(offer), nil
}

func toView(offer *offerdomain.Offer) *domain.Offer {
	return &domain.Offer{
		ID:        offer.ID,
		Key:       offer.Key,
		ProductID: offer.ProductID,
	}
}
