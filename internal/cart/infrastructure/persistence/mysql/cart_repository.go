package mysql

import (
	"context"
	"errors"

	"github.com/wyfcoding/pkg/contextx"
	"github.com/wyfcoding/shopping/internal/cart/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository 购物车仓储实现
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建并返回一个新的 cartRepository 实例。
func NewCartRepository(db *gorm.DB) domain.CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(contextx.WithTx(ctx, tx))
	})
}

func (r *cartRepository) FindDraftByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.getDB(ctx).WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, domain.CartStatusDraft).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) Create(ctx context.Context, userID string) (*domain.Cart, error) {
	cart := domain.NewDraftCart(userID)
	if err := r.getDB(ctx).WithContext(ctx).Create(cart).Error; err != nil {
		// draft_owner 唯一索引拦下了并发的重复创建
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDraftCartExists
		}
		return nil, err
	}
	return cart, nil
}

func (r *cartRepository) FindByID(ctx context.Context, cartID uint) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.getDB(ctx).WithContext(ctx).First(&cart, cartID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) FindByIDForUpdate(ctx context.Context, cartID uint) (*domain.Cart, error) {
	var cart domain.Cart
	// SELECT * FROM carts WHERE id = ? FOR UPDATE
	err := r.getDB(ctx).WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&cart, cartID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) UpdateBill(ctx context.Context, cartID uint, bill domain.Bill) (*domain.Cart, error) {
	db := r.getDB(ctx).WithContext(ctx)
	err := db.Model(&domain.Cart{}).Where("id = ?", cartID).
		Updates(map[string]any{
			"subtotal": bill.Subtotal,
			"discount": bill.Discount,
			"total":    bill.Total,
		}).Error
	if err != nil {
		return nil, err
	}

	var cart domain.Cart
	if err := db.First(&cart, cartID).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) ClearBill(ctx context.Context, cartID uint) error {
	return r.getDB(ctx).WithContext(ctx).Model(&domain.Cart{}).
		Where("id = ?", cartID).
		Updates(map[string]any{"subtotal": nil, "discount": nil, "total": nil}).Error
}

func (r *cartRepository) MarkCompleted(ctx context.Context, cartID uint, orderNo string) (bool, error) {
	res := r.getDB(ctx).WithContext(ctx).Model(&domain.Cart{}).
		Where("id = ? AND status = ?", cartID, domain.CartStatusDraft).
		Updates(map[string]any{
			"status":      domain.CartStatusCompleted,
			"draft_owner": nil,
			"order_no":    orderNo,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *cartRepository) ListItems(ctx context.Context, cartID uint) ([]domain.CartItem, error) {
	var items []domain.CartItem
	err := r.getDB(ctx).WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("id").
		Find(&items).Error
	return items, err
}

func (r *cartRepository) FindItem(ctx context.Context, cartID, productID uint) (*domain.CartItem, error) {
	var item domain.CartItem
	err := r.getDB(ctx).WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) UpsertItem(ctx context.Context, cartID, productID uint, quantity int) error {
	item := domain.CartItem{CartID: cartID, ProductID: productID, Quantity: quantity}
	// INSERT ... ON DUPLICATE KEY UPDATE quantity = ?：重复添加覆盖数量
	return r.getDB(ctx).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{"quantity": quantity}),
		}).
		Create(&item).Error
}

func (r *cartRepository) SetItemOffer(ctx context.Context, cartID, productID uint, offerID *uint) error {
	// 条目存在性由调用方校验；MySQL 对值未变化的行报告 0 RowsAffected，
	// 因此这里不能据此判断条目缺失
	return r.getDB(ctx).WithContext(ctx).Model(&domain.CartItem{}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Update("offer_id", offerID).Error
}

func (r *cartRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := contextx.GetTx(ctx).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db
}
