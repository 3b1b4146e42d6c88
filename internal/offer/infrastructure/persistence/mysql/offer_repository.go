// Package mysql 优惠仓储的 MySQL 实现
package mysql

import (
	"context"
	"errors"

	"github.com/wyfcoding/pkg/contextx"
	"github.com/wyfcoding/shopping/internal/offer/domain"
	"gorm.io/gorm"
)

// offerRepository 优惠仓储实现
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository 创建并返回一个新的 offerRepository 实例。
func NewOfferRepository(db *gorm.DB) domain.OfferRepository {
	return &offerRepository{db: db}
}

func (r *offerRepository) Create(ctx context.Context, offer *domain.Offer) error {
	if err := r.getDB(ctx).WithContext(ctx).Create(offer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrOfferExists
		}
		return err
	}
	return nil
}

func (r *offerRepository) GetByID(ctx context.Context, id uint) (*domain.Offer, error) {
	var offer domain.Offer
	err := r.getDB(ctx).WithContext(ctx).First(&offer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &offer, nil
}

func (r *offerRepository) FindByKeyAndProduct(ctx context.Context, key string, productID uint) (*domain.Offer, error) {
	var offer domain.Offer
	err := r.getDB(ctx).WithContext(ctx).
		Where("`key` = ? AND product_id = ?", key, productID).
		First(&offer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &offer, nil
}

func (r *offerRepository) ListByProduct(ctx context.Context, productID uint) ([]*domain.Offer, error) {
	var offers []*domain.Offer
	err := r.getDB(ctx).WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id").
		Find(&offers).Error
	return offers, err
}

func (r *offerRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := contextx.GetTx(ctx).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db
}
