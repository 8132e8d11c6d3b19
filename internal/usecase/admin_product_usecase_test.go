package usecase_test

import (
	"context"
	"testing"

	"cupcakes/internal/domain/model"
	"cupcakes/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAdminProductUC(productRepo *ProductRepoMock, invRepo *InventoryRepoMock, auditRepo *AuditLogRepoMock) *usecase.AdminProductUsecase {
	return usecase.NewAdminProductUsecase(productRepo, invRepo, auditRepo, testLogger())
}

func validProductInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:     "Red Velvet",
		Flavor:   "red_velvet",
		Category: "gourmet",
		Price:    dec("14.90"),
		Stock:    20,
		MinStock: 5,
		IsActive: true,
	}
}

func TestAdminProductUsecase_Create_InvalidFlavor(t *testing.T) {
	uc := newAdminProductUC(new(ProductRepoMock), new(InventoryRepoMock), new(AuditLogRepoMock))

	in := validProductInput()
	in.Flavor = "pistache"

	_, err := uc.Create(context.Background(), in)
	assertErrContains(t, err, "sabor invalido")
}

func TestAdminProductUsecase_Create_NonPositivePrice(t *testing.T) {
	uc := newAdminProductUC(new(ProductRepoMock), new(InventoryRepoMock), new(AuditLogRepoMock))

	in := validProductInput()
	in.Price = dec("0")

	_, err := uc.Create(context.Background(), in)
	assertErrContains(t, err, "preco invalido")
}

func TestAdminProductUsecase_Create_Success(t *testing.T) {
	productRepo := new(ProductRepoMock)
	productRepo.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Name == "Red Velvet" && p.Flavor == model.FlavorRedVelvet && p.Price.Equal(dec("14.90"))
	})).Return(model.Product{ID: 1, Name: "Red Velvet"}, nil)

	uc := newAdminProductUC(productRepo, new(InventoryRepoMock), new(AuditLogRepoMock))

	out, err := uc.Create(context.Background(), validProductInput())
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)

	productRepo.AssertExpectations(t)
}

func TestAdminProductUsecase_UpdateInventory_RequiresReason(t *testing.T) {
	uc := newAdminProductUC(new(ProductRepoMock), new(InventoryRepoMock), new(AuditLogRepoMock))

	_, err := uc.UpdateInventory(context.Background(), 1, 10, usecase.UpdateInventoryInput{NewStock: 5, Reason: "  "})
	assertErrContains(t, err, "motivo obrigatorio")
}

func TestAdminProductUsecase_UpdateInventory_Success_WritesAdjustmentAndAudit(t *testing.T) {
	productRepo := new(ProductRepoMock)
	invRepo := new(InventoryRepoMock)
	auditRepo := new(AuditLogRepoMock)

	productRepo.On("FindByID", mock.Anything, int64(10)).Return(model.Product{ID: 10, Stock: 8}, nil)
	invRepo.On("SetStock", mock.Anything, int64(10), int64(20)).Return(nil)
	invRepo.On("CreateAdjustment", mock.Anything, mock.MatchedBy(func(a model.InventoryAdjustment) bool {
		return a.ProductID == 10 && a.AdminUserID == 2 && a.Delta == 12 && a.Reason == "reposicao"
	})).Return(nil)
	auditRepo.On("Create", mock.Anything, mock.MatchedBy(func(l model.AuditLog) bool {
		return l.Action == model.AuditActionUpdateStock && l.ResourceID == int64(10)
	})).Return(nil)

	uc := newAdminProductUC(productRepo, invRepo, auditRepo)

	out, err := uc.UpdateInventory(context.Background(), 2, 10, usecase.UpdateInventoryInput{NewStock: 20, Reason: "reposicao"})
	assert.NoError(t, err)
	assert.Equal(t, int64(20), out.Stock)

	invRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
}

func TestDashboardUsecase_Summary(t *testing.T) {
	orderRepo := new(OrderRepoMock)
	productRepo := new(ProductRepoMock)
	reviewRepo := new(ReviewRepoMock)

	orderRepo.On("SumTotalByStatus", mock.Anything, model.OrderStatusEntregue).Return(dec("1234.50"), nil)
	orderRepo.On("CountByStatuses", mock.Anything, mock.Anything).Return(int64(4), nil)
	productRepo.On("Count", mock.Anything).Return(int64(12), nil)
	productRepo.On("ListLowStock", mock.Anything).Return([]model.Product{{ID: 3, Stock: 2, MinStock: 10}}, nil)
	reviewRepo.On("AverageRating", mock.Anything).Return(4.2, nil)

	uc := usecase.NewDashboardUsecase(orderRepo, productRepo, reviewRepo)

	out, err := uc.Summary(context.Background())
	assert.NoError(t, err)
	assert.True(t, out.Revenue.Equal(dec("1234.50")))
	assert.Equal(t, int64(4), out.ActiveOrders)
	assert.Equal(t, int64(12), out.ProductCount)
	assert.Equal(t, 1, len(out.LowStockProducts))
	assert.Equal(t, 4.2, out.AverageRating)
}
