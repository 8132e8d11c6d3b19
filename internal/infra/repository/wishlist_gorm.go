package repository

import (
	"context"
	"errors"

	"cupcakes/internal/domain/model"
	repo "cupcakes/internal/repository"

	"gorm.io/gorm"
)

type WishlistGormRepository struct {
	db *gorm.DB
}

// DI
func NewWishlistGormRepository(db *gorm.DB) *WishlistGormRepository {
	return &WishlistGormRepository{db: db}
}

// 新しい順で一覧取得
func (r *WishlistGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.WishlistItem, error) {
	var items []model.WishlistItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return []model.WishlistItem{}, err
	}
	return items, nil
}

func (r *WishlistGormRepository) FindByID(ctx context.Context, itemID int64) (model.WishlistItem, error) {
	var item model.WishlistItem
	err := r.db.WithContext(ctx).Where("id = ?", itemID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.WishlistItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.WishlistItem{}, err
	}
	return item, nil
}

func (r *WishlistGormRepository) FindByUserAndProduct(ctx context.Context, userID int64, productID int64) (model.WishlistItem, bool, error) {
	var item model.WishlistItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.WishlistItem{}, false, nil
	}
	if err != nil {
		return model.WishlistItem{}, false, err
	}
	return item, true, nil
}

func (r *WishlistGormRepository) Create(ctx context.Context, item model.WishlistItem) (model.WishlistItem, error) {
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return model.WishlistItem{}, err
	}
	return item, nil
}

func (r *WishlistGormRepository) DeleteByID(ctx context.Context, itemID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.WishlistItem{}, itemID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
