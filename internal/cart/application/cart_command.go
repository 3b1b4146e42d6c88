// Package application 购物车服务应用层
package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wyfcoding/pkg/idgen"
	"github.com/wyfcoding/shopping/internal/cart/domain"
	"golang.org/x/sync/errgroup"
)

// billLookupLimit 账单计算时并发解析商品与优惠的上限
const billLookupLimit = 8

// AddItemCommand 添加商品到购物车命令
type AddItemCommand struct {
	UserID    string
	ProductID uint
	Quantity  int
}

// ApplyOfferCommand 对购物车条目设置或清除优惠命令
type ApplyOfferCommand struct {
	CartID    uint
	ProductID uint
	// OfferKey 为 nil 或空串时清除条目上的优惠
	OfferKey *string
}

// CartCommandService 购物车命令服务
type CartCommandService struct {
	repo      domain.CartRepository
	products  domain.ProductCatalog
	offers    domain.OfferCatalog
	pricing   *domain.PricingEngine
	publisher domain.EventPublisher
}

// NewCartCommandService 创建购物车命令服务实例
func NewCartCommandService(
	repo domain.CartRepository,
	products domain.ProductCatalog,
	offers domain.OfferCatalog,
	pricing *domain.PricingEngine,
	publisher domain.EventPublisher,
) *CartCommandService {
	return &CartCommandService{
		repo:      repo,
		products:  products,
		offers:    offers,
		pricing:   pricing,
		publisher: publisher,
	}
}

// AddItem 处理添加商品到购物车。
// 库存在这里只做校验不做扣减，真正的扣减发生在结账时。
func (s *CartCommandService) AddItem(ctx context.Context, cmd AddItemCommand) error {
	if cmd.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive: %d", cmd.Quantity)
	}

	cart, created, err := s.findOrCreateDraft(ctx, cmd.UserID)
	if err != nil {
		return err
	}

	product, err := s.products.GetProduct(ctx, cmd.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	if product.Available < cmd.Quantity {
		return domain.ErrInsufficientStock
	}

	// 条目变更后已存储的账单随之失效，两者在同一事务内落库
	err = s.repo.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.UpsertItem(txCtx, cart.ID, cmd.ProductID, cmd.Quantity); err != nil {
			return err
		}
		return s.repo.ClearBill(txCtx, cart.ID)
	})
	if err != nil {
		return err
	}

	if created {
		s.publisher.Publish(ctx, "cart.created", cmd.UserID, domain.CartCreatedEvent{
			CartID:    cart.ID,
			UserID:    cmd.UserID,
			Timestamp: time.Now(),
		})
	}
	s.publisher.Publish(ctx, "cart.item.added", cmd.UserID, domain.CartItemAddedEvent{
		CartID:    cart.ID,
		UserID:    cmd.UserID,
		ProductID: cmd.ProductID,
		Quantity:  cmd.Quantity,
		Timestamp: time.Now(),
	})

	return nil
}

// findOrCreateDraft 获取用户的草稿购物车，不存在则创建。
// 并发创建由 draft_owner 唯一索引兜底，输掉竞争的一方重读已存在的草稿。
func (s *CartCommandService) findOrCreateDraft(ctx context.Context, userID string) (*domain.Cart, bool, error) {
	cart, err := s.repo.FindDraftByUser(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if cart != nil {
		return cart, false, nil
	}

	cart, err = s.repo.Create(ctx, userID)
	if errors.Is(err, domain.ErrDraftCartExists) {
		cart, err = s.repo.FindDraftByUser(ctx, userID)
		if err == nil && cart == nil {
			err = domain.ErrCartNotFound
		}
		return cart, false, err
	}
	if err != nil {
		return nil, false, err
	}
	return cart, true, nil
}

// CalculateBill 重新计算购物车账单并持久化。
// 对相同条目重复调用得到相同合计。条目读取与账单写入在同一事务内并对
// 购物车行加锁：AddItem 的条目变更事务同样会触碰该行，两者被串行化，
// 过期的条目快照不可能覆盖后来者的账单作废。
func (s *CartCommandService) CalculateBill(ctx context.Context, cartID uint) (*domain.Cart, error) {
	var (
		updated *domain.Cart
		bill    domain.Bill
		userID  string
	)
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		cart, err := s.repo.FindByIDForUpdate(txCtx, cartID)
		if err != nil {
			return err
		}
		if cart == nil {
			return domain.ErrCartNotFound
		}
		if cart.IsCompleted() {
			return domain.ErrCartAlreadyCompleted
		}
		userID = cart.UserID

		items, err := s.repo.ListItems(txCtx, cartID)
		if err != nil {
			return err
		}

		// 商品与优惠是其他上下文的参考数据，并发解析走事务外连接，
		// 数据库事务不能被多个 goroutine 复用
		bill, err = s.priceItems(ctx, items)
		if err != nil {
			return err
		}

		updated, err = s.repo.UpdateBill(txCtx, cartID, bill)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, "cart.bill.calculated", userID, domain.CartBillCalculatedEvent{
		CartID:    cartID,
		Subtotal:  bill.Subtotal,
		Discount:  bill.Discount,
		Total:     bill.Total,
		Timestamp: time.Now(),
	})

	return updated, nil
}

// priceItems 逐条解析商品与优惠并累加计价。
// 条目之间的查询相互独立，可以并发执行。
func (s *CartCommandService) priceItems(ctx context.Context, items []domain.CartItem) (domain.Bill, error) {
	lines := make([]domain.LinePrice, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(billLookupLimit)
	for i := range items {
		g.Go(func() error {
			item := items[i]

			product, err := s.products.GetProduct(gctx, item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("pricing cart item %d: %w", item.ID, domain.ErrProductNotFound)
			}

			kind := domain.OfferKindNone
			if item.OfferID != nil {
				offer, err := s.offers.GetOffer(gctx, *item.OfferID)
				if err != nil {
					return err
				}
				if offer != nil {
					kind = s.pricing.Resolve(offer.Key)
				}
			}

			lines[i] = s.pricing.PriceLine(product.Price, item.Quantity, kind)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.Bill{}, err
	}

	var bill domain.Bill
	for _, lp := range lines {
		bill = bill.Add(lp)
	}
	return bill, nil
}

// ApplyOffer 设置或清除条目优惠，并在同一事务内重算账单后返回。
// 与条目数量变更不同，优惠变更总是在返回前刷新账单；优惠写入与账单
// 刷新同生共死，重算失败时优惠变更一并回滚，已存储的账单保持原样。
func (s *CartCommandService) ApplyOffer(ctx context.Context, cmd ApplyOfferCommand) (*domain.Cart, error) {
	var (
		updated *domain.Cart
		bill    domain.Bill
		offerID *uint
		userID  string
	)
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		cart, err := s.repo.FindByIDForUpdate(txCtx, cmd.CartID)
		if err != nil {
			return err
		}
		if cart == nil {
			return domain.ErrCartNotFound
		}
		if cart.IsCompleted() {
			return domain.ErrCartAlreadyCompleted
		}
		userID = cart.UserID

		if cmd.OfferKey != nil && *cmd.OfferKey != "" {
			offer, err := s.offers.FindByKeyAndProduct(ctx, *cmd.OfferKey, cmd.ProductID)
			if err != nil {
				return err
			}
			if offer == nil {
				return domain.ErrOfferNotFound
			}
			offerID = &offer.ID
		}

		item, err := s.repo.FindItem(txCtx, cmd.CartID, cmd.ProductID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrLineItemNotFound
		}

		if err := s.repo.SetItemOffer(txCtx, cmd.CartID, cmd.ProductID, offerID); err != nil {
			return err
		}

		items, err := s.repo.ListItems(txCtx, cmd.CartID)
		if err != nil {
			return err
		}
		bill, err = s.priceItems(ctx, items)
		if err != nil {
			return err
		}

		updated, err = s.repo.UpdateBill(txCtx, cmd.CartID, bill)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, "cart.offer.applied", userID, domain.CartOfferAppliedEvent{
		CartID:    cmd.CartID,
		ProductID: cmd.ProductID,
		OfferID:   offerID,
		Timestamp: time.Now(),
	})
	s.publisher.Publish(ctx, "cart.bill.calculated", userID, domain.CartBillCalculatedEvent{
		CartID:    cmd.CartID,
		Subtotal:  bill.Subtotal,
		Discount:  bill.Discount,
		Total:     bill.Total,
		Timestamp: time.Now(),
	})

	return updated, nil
}

// Checkout 将购物车从 DRAFT 置为 COMPLETED 并扣减库存。
// 状态翻转与全部库存扣减在同一事务内完成：任一商品扣减失败时整体回滚，
// 不会出现状态已翻转而库存未扣减（或反之）的中间状态。
func (s *CartCommandService) Checkout(ctx context.Context, cartID uint) (*domain.Cart, error) {
	var completed *domain.Cart

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		cart, err := s.repo.FindByIDForUpdate(txCtx, cartID)
		if err != nil {
			return err
		}
		if cart == nil {
			return domain.ErrCartNotFound
		}
		if !cart.HasBill() {
			return domain.ErrBillNotGenerated
		}
		if cart.IsCompleted() {
			return domain.ErrCartAlreadyCompleted
		}

		items, err := s.repo.ListItems(txCtx, cartID)
		if err != nil {
			return err
		}

		orderNo := fmt.Sprintf("ORD-%d", idgen.GenID())
		ok, err := s.repo.MarkCompleted(txCtx, cartID, orderNo)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrCartAlreadyCompleted
		}

		// 结账时按当前库存重新校验：任何一条扣减失败都会中止事务
		for _, item := range items {
			if err := s.products.DecrementStock(txCtx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		cart.Status = domain.CartStatusCompleted
		cart.DraftOwner = nil
		cart.OrderNo = orderNo
		completed = cart
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, "cart.checked_out", completed.UserID, domain.CartCheckedOutEvent{
		CartID:    completed.ID,
		UserID:    completed.UserID,
		OrderNo:   completed.OrderNo,
		Total:     completed.Total.Decimal,
		Timestamp: time.Now(),
	})

	return completed, nil
}
