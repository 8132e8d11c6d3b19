package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// カート明細。ユーザーごとのフラットな一覧。
// 追加時点の商品名・画像・価格を必ずスナップショットする。
type CartItem struct {
	ID           int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       int64           `gorm:"not null;index" json:"-"`
	ProductID    int64           `gorm:"not null;index" json:"produto_id"`
	ProductName  string          `gorm:"type:varchar(255);not null" json:"produto_nome"`
	ProductImage string          `gorm:"type:varchar(500)" json:"produto_imagem"`
	Quantity     int64           `gorm:"not null" json:"quantidade"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"preco_unitario"`
	CreatedAt    time.Time       `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt    time.Time       `gorm:"not null;autoUpdateTime" json:"-"`
}

// 明細小計 = 数量 × 単価
func (i CartItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}
