// Package domain 商品目录服务的领域模型
package domain

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product 商品实体
type Product struct {
	gorm.Model
	Name        string          `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description string          `gorm:"column:description;type:text" json:"description"`
	Price       decimal.Decimal `gorm:"column:price;type:decimal(20,8);not null" json:"price"`
	// Stock 当前可售库存，永不为负
	Stock    int    `gorm:"column:stock;not null;default:0" json:"stock"`
	Category string `gorm:"column:category;type:varchar(100);index" json:"category"`
}

func (Product) TableName() string { return "products" }
