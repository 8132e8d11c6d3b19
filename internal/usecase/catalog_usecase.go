package usecase

import (
	"context"
	"net/http"
	"strings"

	"cupcakes/internal/domain/catalog"
	"cupcakes/internal/domain/model"
	repo "cupcakes/internal/repository"
)

// 店頭カタログの業務ロジック。
// 公開商品を読み込んでcatalogパッケージで絞り込む。
type CatalogUsecase struct {
	productRepo repo.ProductRepository
	reviewRepo  repo.ReviewRepository
}

// DI
func NewCatalogUsecase(productRepo repo.ProductRepository, reviewRepo repo.ReviewRepository) *CatalogUsecase {
	return &CatalogUsecase{productRepo: productRepo, reviewRepo: reviewRepo}
}

// GET /products の入力DTO
type ListCatalogInput struct {
	Search   string
	Flavor   string
	Category string
	SortBy   string
}

type CatalogOutput struct {
	Items []model.Product `json:"items"`
	Total int             `json:"total"`
}

func (u *CatalogUsecase) ListProducts(ctx context.Context, in ListCatalogInput) (CatalogOutput, error) {
	if len(in.Search) > 100 {
		return CatalogOutput{}, NewHTTPError(http.StatusBadRequest, "busca muito longa")
	}
	if in.Flavor != "" && in.Flavor != "todos" && !model.Flavor(in.Flavor).Valid() {
		return CatalogOutput{}, NewHTTPError(http.StatusBadRequest, "sabor invalido")
	}
	if in.Category != "" && in.Category != "todos" && !model.Category(in.Category).Valid() {
		return CatalogOutput{}, NewHTTPError(http.StatusBadRequest, "categoria invalida")
	}
	if !catalog.ValidSort(in.SortBy) {
		return CatalogOutput{}, NewHTTPError(http.StatusBadRequest, "ordenacao invalida")
	}

	products, err := u.productRepo.ListActive(ctx)
	if err != nil {
		return CatalogOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items := catalog.FilterAndSort(products, catalog.Filter{
		Search:   strings.TrimSpace(in.Search),
		Flavor:   in.Flavor,
		Category: in.Category,
		SortBy:   in.SortBy,
	})

	return CatalogOutput{Items: items, Total: len(items)}, nil
}

// 目玉商品の棚（最大3件）
func (u *CatalogUsecase) FeaturedProducts(ctx context.Context) ([]model.Product, error) {
	products, err := u.productRepo.ListActive(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return catalog.Featured(products, 3), nil
}

func (u *CatalogUsecase) GetProductDetail(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//非公開は「存在しない扱い」
	if !p.IsActive {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return p, nil
}

// 商品のレビュー一覧
func (u *CatalogUsecase) ListProductReviews(ctx context.Context, productID int64) ([]model.Review, error) {
	if _, err := u.GetProductDetail(ctx, productID); err != nil {
		return nil, err
	}

	reviews, err := u.reviewRepo.ListByProductID(ctx, productID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return reviews, nil
}
