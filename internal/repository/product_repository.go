package repository

import (
	"context"
	"errors"

	"cupcakes/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	// 公開中（ativo=true）の商品を登録順で全件
	ListActive(ctx context.Context) ([]model.Product, error)
	// 管理画面用。非公開も含む
	ListAll(ctx context.Context) ([]model.Product, error)
	// 在庫が下限以下の公開商品
	ListLowStock(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	Count(ctx context.Context) (int64, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	SoftDelete(ctx context.Context, id int64) error
}
