package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 注文明細。カート明細の確定時スナップショット。
type OrderItem struct {
	ID           int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID      int64           `gorm:"not null;index" json:"-"`
	ProductID    int64           `gorm:"not null;index" json:"produto_id"`
	ProductName  string          `gorm:"type:varchar(255);not null" json:"produto_nome"`
	ProductImage string          `gorm:"type:varchar(500)" json:"produto_imagem"`
	Quantity     int64           `gorm:"not null" json:"quantidade"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"preco_unitario"`
	Subtotal     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"subtotal"`
	CreatedAt    time.Time       `gorm:"not null;autoCreateTime" json:"-"`
}
