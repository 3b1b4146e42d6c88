package domain

import "errors"

var (
	ErrCartNotFound         = errors.New("cart not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrInsufficientStock    = errors.New("insufficient product stock")
	ErrOfferNotFound        = errors.New("offer not found for product")
	ErrLineItemNotFound     = errors.New("product not in cart")
	ErrBillNotGenerated     = errors.New("bill not generated")
	ErrCartAlreadyCompleted = errors.New("cart already completed")
	// ErrDraftCartExists 由仓储在唯一索引冲突时返回，调用方应重新读取已
	// 存在的草稿。
	ErrDraftCartExists = errors.New("draft cart already exists for user")
)
