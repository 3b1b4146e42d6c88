package application

import (
	"context"

	"github.com/wyfcoding/shopping/internal/cart/domain"
)

// CartDetails 草稿购物车及其条目的只读投影
type CartDetails struct {
	Cart  *domain.Cart      `json:"cart"`
	Items []domain.CartItem `json:"items"`
}

// CartQueryService 购物车查询服务
type CartQueryService struct {
	repo domain.CartRepository
}

// NewCartQueryService 创建购物车查询服务实例
func NewCartQueryService(repo domain.CartRepository) *CartQueryService {
	return &CartQueryService{repo: repo}
}

// GetCart 返回用户的草稿购物车及条目，无草稿时返回 ErrCartNotFound
func (s *CartQueryService) GetCart(ctx context.Context, userID string) (*CartDetails, error) {
	cart, err := s.repo.FindDraftByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, domain.ErrCartNotFound
	}

	items, err := s.repo.ListItems(ctx, cart.ID)
	if err != nil {
		return nil, err
	}

	return &CartDetails{Cart: cart, Items: items}, nil
}

// GetItems 列出购物车条目
func (s *CartQueryService) GetItems(ctx context.Context, cartID uint) ([]domain.CartItem, error) {
	return s.repo.ListItems(ctx, cartID)
}
