package usecase

import (
	"context"
	"net/http"
	"strings"

	"cupcakes/internal/domain/model"
	repo "cupcakes/internal/repository"
)

// ReviewUsecaseはレビューの投稿。
type ReviewUsecase struct {
	reviewRepo  repo.ReviewRepository
	productRepo repo.ProductRepository
	userRepo    repo.UserRepository
}

func NewReviewUsecase(reviewRepo repo.ReviewRepository, productRepo repo.ProductRepository, userRepo repo.UserRepository) *ReviewUsecase {
	return &ReviewUsecase{reviewRepo: reviewRepo, productRepo: productRepo, userRepo: userRepo}
}

type CreateReviewInput struct {
	Rating  int    `json:"nota"`
	Comment string `json:"comentario"`
}

// 投稿。notaは1〜5のみ
func (u *ReviewUsecase) Create(ctx context.Context, userID int64, productID int64, in CreateReviewInput) (model.Review, error) {
	if userID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "nota invalida")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Review{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !p.IsActive {
		return model.Review{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if user == nil {
		return model.Review{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	created, err := u.reviewRepo.Create(ctx, model.Review{
		ProductID:    productID,
		UserID:       userID,
		CustomerName: user.FullName,
		Rating:       in.Rating,
		Comment:      strings.TrimSpace(in.Comment),
	})
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}
