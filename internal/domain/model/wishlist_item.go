package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ウィッシュリスト。商品情報は追加時点のスナップショット。
type WishlistItem struct {
	ID           int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       int64           `gorm:"not null;index:idx_wishlist_user_product,unique" json:"cliente_id"`
	ProductID    int64           `gorm:"not null;index:idx_wishlist_user_product,unique" json:"produto_id"`
	ProductName  string          `gorm:"type:varchar(255);not null" json:"produto_nome"`
	ProductImage string          `gorm:"type:varchar(500)" json:"produto_imagem"`
	ProductPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"produto_preco"`
	Flavor       Flavor          `gorm:"type:varchar(30)" json:"produto_sabor"`
	CreatedAt    time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}
