package repository

import (
	"context"

	"cupcakes/internal/domain/model"
)

type ReviewRepository interface {
	Create(ctx context.Context, review model.Review) (model.Review, error)
	ListByProductID(ctx context.Context, productID int64) ([]model.Review, error)
	// 全レビューの平均nota。0件なら0
	AverageRating(ctx context.Context) (float64, error)
}
