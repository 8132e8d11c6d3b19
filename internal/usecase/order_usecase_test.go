package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"cupcakes/internal/domain/model"
	"cupcakes/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrderUsecase_ListMyOrders_PaginationClamps(t *testing.T) {
	orderRepo := new(OrderRepoMock)
	itemRepo := new(OrderItemRepoMock)
	uc := usecase.NewOrderUsecase(orderRepo, itemRepo)

	// page 0 / limit 500 は page 1 / limit 20 に丸める
	orderRepo.On("ListByUserID", mock.Anything, int64(1), 1, 20).
		Return([]model.Order{{ID: 10, UserID: 1}}, int64(1), nil)
	itemRepo.On("ListByOrderID", mock.Anything, int64(10)).
		Return([]model.OrderItem{{ID: 100, OrderID: 10}}, nil)

	out, err := uc.ListMyOrders(context.Background(), 1, 0, 500)

	assert.NoError(t, err)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 20, out.Limit)
	assert.Equal(t, int64(1), out.Total)
	assert.Len(t, out.Orders, 1)
	assert.Len(t, out.Orders[0].Items, 1)
	orderRepo.AssertExpectations(t)
}

func TestOrderUsecase_GetMyOrderDetail_OtherUsersOrderIsNotFound(t *testing.T) {
	orderRepo := new(OrderRepoMock)
	itemRepo := new(OrderItemRepoMock)
	uc := usecase.NewOrderUsecase(orderRepo, itemRepo)

	orderRepo.On("FindByID", mock.Anything, int64(10)).
		Return(model.Order{ID: 10, UserID: 2}, nil)

	_, err := uc.GetMyOrderDetail(context.Background(), 1, 10)

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
	itemRepo.AssertNotCalled(t, "ListByOrderID", mock.Anything, mock.Anything)
}

func TestOrderUsecase_GetMyOrderDetail_OK(t *testing.T) {
	orderRepo := new(OrderRepoMock)
	itemRepo := new(OrderItemRepoMock)
	uc := usecase.NewOrderUsecase(orderRepo, itemRepo)

	orderRepo.On("FindByID", mock.Anything, int64(10)).
		Return(model.Order{ID: 10, UserID: 1, Status: model.OrderStatusPendente}, nil)
	itemRepo.On("ListByOrderID", mock.Anything, int64(10)).
		Return([]model.OrderItem{{ID: 100, OrderID: 10, ProductName: "Cupcake Nutella"}}, nil)

	out, err := uc.GetMyOrderDetail(context.Background(), 1, 10)

	assert.NoError(t, err)
	assert.Equal(t, int64(10), out.ID)
	assert.Len(t, out.Items, 1)
}
