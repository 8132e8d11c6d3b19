package usecase

import (
	"context"
	"net/http"

	"cupcakes/internal/domain/model"
	repo "cupcakes/internal/repository"
)

// OrderUsecaseは購入者向けの注文参照。
type OrderUsecase struct {
	orderRepo     repo.OrderRepository
	orderItemRepo repo.OrderItemRepository
}

func NewOrderUsecase(orderRepo repo.OrderRepository, orderItemRepo repo.OrderItemRepository) *OrderUsecase {
	return &OrderUsecase{orderRepo: orderRepo, orderItemRepo: orderItemRepo}
}

type OrderOutput struct {
	model.Order
	Items []model.OrderItem `json:"itens"`
}

type OrderListOutput struct {
	Orders []OrderOutput `json:"pedidos"`
	Total  int64         `json:"total"`
	Page   int           `json:"page"`
	Limit  int           `json:"limit"`
}

// 自分の注文一覧（新しい順、ページング）。
func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64, page int, limit int) (OrderListOutput, error) {
	if userID <= 0 {
		return OrderListOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	orders, total, err := u.orderRepo.ListByUserID(ctx, userID, page, limit)
	if err != nil {
		return OrderListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		items, err := u.orderItemRepo.ListByOrderID(ctx, o.ID)
		if err != nil {
			return OrderListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out = append(out, OrderOutput{Order: o, Items: items})
	}

	return OrderListOutput{Orders: out, Total: total, Page: page, Limit: limit}, nil
}

// 自分の注文詳細。他人の注文は404
func (u *OrderUsecase) GetMyOrderDetail(ctx context.Context, userID int64, orderID int64) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, err := u.orderRepo.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return OrderOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if o.UserID != userID {
		return OrderOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	items, err := u.orderItemRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return OrderOutput{Order: o, Items: items}, nil
}
