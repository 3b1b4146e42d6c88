package domain

import "time"

// OfferCreatedEvent 优惠创建事件
type OfferCreatedEvent struct {
	OfferID   uint      `json:"offer_id"`
	Key       string    `json:"key"`
	ProductID uint      `json:"product_id"`
	Timestamp time.Time `json:"timestamp"`
}
