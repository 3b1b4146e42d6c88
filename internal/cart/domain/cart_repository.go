package domain

import "context"

// CartRepository 购物车仓储接口
type CartRepository interface {
	// WithTx 在单个数据库事务内执行 fn，事务经 context 传递给嵌套的仓储调用
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error

	// FindDraftByUser 查询用户的草稿购物车，不存在时返回 (nil, nil)
	FindDraftByUser(ctx context.Context, userID string) (*Cart, error)
	// Create 创建用户的草稿购物车；用户已有草稿时返回 ErrDraftCartExists
	Create(ctx context.Context, userID string) (*Cart, error)
	// FindByID 按 ID 查询购物车，不存在时返回 (nil, nil)
	FindByID(ctx context.Context, cartID uint) (*Cart, error)
	// FindByIDForUpdate 按 ID 查询并加行锁，必须在 WithTx 内调用
	FindByIDForUpdate(ctx context.Context, cartID uint) (*Cart, error)
	// UpdateBill 覆盖写入账单快照并返回更新后的购物车
	UpdateBill(ctx context.Context, cartID uint, bill Bill) (*Cart, error)
	// ClearBill 作废已存储的账单快照
	ClearBill(ctx context.Context, cartID uint) error
	// MarkCompleted 将 DRAFT 购物车置为 COMPLETED（compare-and-swap），
	// 返回 false 表示购物车已不处于 DRAFT 状态
	MarkCompleted(ctx context.Context, cartID uint, orderNo string) (bool, error)

	// ListItems 列出购物车全部条目
	ListItems(ctx context.Context, cartID uint) ([]CartItem, error)
	// FindItem 查询 (cart, product) 条目，不存在时返回 (nil, nil)
	FindItem(ctx context.Context, cartID, productID uint) (*CartItem, error)
	// UpsertItem 插入或覆盖 (cart, product) 条目的数量
	UpsertItem(ctx context.Context, cartID, productID uint, quantity int) error
	// SetItemOffer 设置或清除条目上的优惠
	SetItemOffer(ctx context.Context, cartID, productID uint, offerID *uint) error
}
