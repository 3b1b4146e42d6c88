package domain

import "errors"

var (
	// ErrOfferNotFound 优惠不存在
	ErrOfferNotFound = errors.New("offer not found")
	// ErrOfferExists 同一商品上已存在同类型优惠
	ErrOfferExists = errors.New("offer already exists for product")
	// ErrProductNotFound 优惠指向的商品不存在
	ErrProductNotFound = errors.New("product not found")
	// ErrUnknownOfferKey 不受支持的优惠类型
	ErrUnknownOfferKey = errors.New("unknown offer key")
)
