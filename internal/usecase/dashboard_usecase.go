package usecase

import (
	"context"
	"net/http"

	"cupcakes/internal/domain/model"
	repo "cupcakes/internal/repository"

	"github.com/shopspring/decimal"
)

// DashboardUsecaseは管理画面トップの集計。
type DashboardUsecase struct {
	orderRepo   repo.OrderRepository
	productRepo repo.ProductRepository
	reviewRepo  repo.ReviewRepository
}

func NewDashboardUsecase(orderRepo repo.OrderRepository, productRepo repo.ProductRepository, reviewRepo repo.ReviewRepository) *DashboardUsecase {
	return &DashboardUsecase{orderRepo: orderRepo, productRepo: productRepo, reviewRepo: reviewRepo}
}

type DashboardOutput struct {
	//配達完了分の売上合計
	Revenue decimal.Decimal `json:"receita_total"`
	//進行中（pendente〜em_entrega）の注文数
	ActiveOrders int64 `json:"pedidos_ativos"`
	//登録商品数
	ProductCount int64 `json:"total_produtos"`
	//在庫が下限以下の商品
	LowStockProducts []model.Product `json:"produtos_estoque_baixo"`
	//全レビューの平均nota
	AverageRating float64 `json:"nota_media"`
}

func (u *DashboardUsecase) Summary(ctx context.Context) (DashboardOutput, error) {
	revenue, err := u.orderRepo.SumTotalByStatus(ctx, model.OrderStatusEntregue)
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	active, err := u.orderRepo.CountByStatuses(ctx, []model.OrderStatus{
		model.OrderStatusPendente,
		model.OrderStatusConfirmado,
		model.OrderStatusPreparando,
		model.OrderStatusEmEntrega,
	})
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	count, err := u.productRepo.Count(ctx)
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	lowStock, err := u.productRepo.ListLowStock(ctx)
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	avg, err := u.reviewRepo.AverageRating(ctx)
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return DashboardOutput{
		Revenue:          revenue,
		ActiveOrders:     active,
		ProductCount:     count,
		LowStockProducts: lowStock,
		AverageRating:    avg,
	}, nil
}
