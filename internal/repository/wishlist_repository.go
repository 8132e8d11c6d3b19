package repository

import (
	"context"

	"cupcakes/internal/domain/model"
)

type WishlistRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.WishlistItem, error)
	FindByID(ctx context.Context, itemID int64) (model.WishlistItem, error)
	// 未登録ならfalseを返す
	FindByUserAndProduct(ctx context.Context, userID int64, productID int64) (model.WishlistItem, bool, error)
	Create(ctx context.Context, item model.WishlistItem) (model.WishlistItem, error)
	DeleteByID(ctx context.Context, itemID int64) error
}
