package usecase

import (
	"context"
	"net/http"

	"cupcakes/internal/domain/model"
	repo "cupcakes/internal/repository"
)

// WishlistUsecaseはウィッシュリストの追加/削除/一覧。
type WishlistUsecase struct {
	wishlistRepo repo.WishlistRepository
	productRepo  repo.ProductRepository
}

func NewWishlistUsecase(wishlistRepo repo.WishlistRepository, productRepo repo.ProductRepository) *WishlistUsecase {
	return &WishlistUsecase{wishlistRepo: wishlistRepo, productRepo: productRepo}
}

func (u *WishlistUsecase) List(ctx context.Context, userID int64) ([]model.WishlistItem, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	items, err := u.wishlistRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

type ToggleResult struct {
	Added bool               `json:"added"`
	Item  *model.WishlistItem `json:"item,omitempty"`
}

// Toggleは登録済みなら削除、未登録なら追加。
func (u *WishlistUsecase) Toggle(ctx context.Context, userID int64, productID int64) (ToggleResult, error) {
	if userID <= 0 {
		return ToggleResult{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return ToggleResult{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	existing, found, err := u.wishlistRepo.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return ToggleResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if found {
		if err := u.wishlistRepo.DeleteByID(ctx, existing.ID); err != nil {
			return ToggleResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return ToggleResult{Added: false}, nil
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return ToggleResult{}, NewHTTPError(http.StatusBadRequest, "invalid")
	}
	if err != nil {
		return ToggleResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !p.IsActive {
		return ToggleResult{}, NewHTTPError(http.StatusBadRequest, "invalid")
	}

	created, err := u.wishlistRepo.Create(ctx, model.WishlistItem{
		UserID:       userID,
		ProductID:    p.ID,
		ProductName:  p.Name,
		ProductImage: p.ImageURL,
		ProductPrice: p.Price,
		Flavor:       p.Flavor,
	})
	if err != nil {
		return ToggleResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ToggleResult{Added: true, Item: &created}, nil
}

// 明細削除（所有チェック込み）。
func (u *WishlistUsecase) Delete(ctx context.Context, userID int64, itemID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if itemID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	item, err := u.wishlistRepo.FindByID(ctx, itemID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if item.UserID != userID {
		return NewHTTPError(http.StatusNotFound, "not found")
	}

	if err := u.wishlistRepo.DeleteByID(ctx, itemID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
