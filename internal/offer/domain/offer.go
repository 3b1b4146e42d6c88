// Package domain 促销优惠上下文的领域模型。
package domain

import "gorm.io/gorm"

// Offer 促销优惠实体。Key 为优惠类型助记符（如 BUY_2_GET_1_FREE），
// 同一商品上同一类型的优惠只允许存在一条。
type Offer struct {
	gorm.Model
	Key       string `gorm:"type:varchar(64);not null;uniqueIndex:idx_key_product" json:"key"`
	ProductID uint   `gorm:"not null;uniqueIndex:idx_key_product;index" json:"product_id"`
}

// TableName 指定表名
func (Offer) TableName() string {
	return "offers"
}

// 支持的优惠类型助记符
const (
	KeyBuy2Get1Free   = "BUY_2_GET_1_FREE"
	KeyBuy1GetHalfOff = "BUY_1_GET_HALF_OFF"
)

// ValidKey 判断优惠类型助记符是否受支持
func ValidKey(key string) bool {
	switch key {
	case KeyBuy2Get1Free, KeyBuy1GetHalfOff:
		return true
	}
	return false
}
