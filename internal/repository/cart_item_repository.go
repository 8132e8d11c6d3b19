package repository

import (
	"context"

	"cupcakes/internal/domain/model"
)

// カート明細の保存・取得の約束。
// ユーザーごとのフラットな一覧として扱う。
type CartItemRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)
	FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error)
	// 同一商品は数量加算。スナップショットは追加時点の商品から取る
	UpsertByUserAndProduct(ctx context.Context, userID int64, p model.Product, addQty int64) error
	UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error
	DeleteByID(ctx context.Context, cartItemID int64) error
	// ユーザーの明細を全削除（注文確定後）
	Clear(ctx context.Context, userID int64) error
}
