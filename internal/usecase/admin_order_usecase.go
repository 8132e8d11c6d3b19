package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"cupcakes/internal/domain/model"
	"cupcakes/internal/infra/event"
	repo "cupcakes/internal/repository"
)

// AdminOrderUsecaseは管理者向けの注文管理。
// ステータス変更は遷移表で判定し、許可されない遷移は409で拒否する。
type AdminOrderUsecase struct {
	txManager     repo.TransactionManager
	orderRepo     repo.OrderRepository
	orderItemRepo repo.OrderItemRepository
	auditLogRepo  repo.AuditLogRepository
	publisher     event.Publisher
	logger        *slog.Logger
}

func NewAdminOrderUsecase(
	txManager repo.TransactionManager,
	orderRepo repo.OrderRepository,
	orderItemRepo repo.OrderItemRepository,
	auditLogRepo repo.AuditLogRepository,
	publisher event.Publisher,
	logger *slog.Logger,
) *AdminOrderUsecase {
	return &AdminOrderUsecase{
		txManager:     txManager,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		auditLogRepo:  auditLogRepo,
		publisher:     publisher,
		logger:        logger,
	}
}

type AdminOrderListInput struct {
	Page   int
	Limit  int
	Status string
	UserID *int64
}

// 全注文の一覧（ステータス・ユーザーで絞り込み可）。
func (u *AdminOrderUsecase) List(ctx context.Context, in AdminOrderListInput) (OrderListOutput, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 || in.Limit > 100 {
		in.Limit = 20
	}
	if in.Status != "" && !model.OrderStatus(in.Status).Valid() {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	orders, total, err := u.orderRepo.ListAdmin(ctx, repo.AdminOrderListFilter{
		Page:   in.Page,
		Limit:  in.Limit,
		Status: in.Status,
		UserID: in.UserID,
	})
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

	return OrderListOutput{Orders: out, Total: total, Page: in.Page, Limit: in.Limit}, nil
}

// 注文詳細（管理者はどの注文も見られる）。
func (u *AdminOrderUsecase) GetDetail(ctx context.Context, orderID int64) (OrderOutput, error) {
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

	items, err := u.orderItemRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return OrderOutput{Order: o, Items: items}, nil
}

// UpdateStatusはステータス更新。
// キャンセル時は明細の在庫を同一Txで戻す。
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, adminUserID int64, orderID int64, next model.OrderStatus) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if !next.Valid() {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	var before model.OrderStatus

	err := u.txManager.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		before = o.Status

		if !o.Status.CanTransitionTo(next) {
			return NewHTTPError(http.StatusConflict,
				fmt.Sprintf("transicao invalida: %s -> %s", o.Status, next))
		}

		if err := r.Orders().UpdateStatus(ctx, orderID, next); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// キャンセルは在庫戻し
		if next == model.OrderStatusCancelado {
			items, err := r.OrderItems().ListByOrderID(ctx, orderID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			for _, it := range items {
				if err := r.Inventory().IncreaseStock(ctx, it.ProductID, it.Quantity); err != nil {
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}
			}
		}
		return nil
	})
	if err != nil {
		if he, ok := AsHTTPError(err); ok {
			return OrderOutput{}, he
		}
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.writeAudit(ctx, adminUserID, orderID, before, next)
	u.notifyStatusChanged(ctx, orderID, before, next)

	return u.GetDetail(ctx, orderID)
}

// 監査ログ書き込み。失敗はログだけ残して処理は続行
func (u *AdminOrderUsecase) writeAudit(ctx context.Context, adminUserID int64, orderID int64, before, after model.OrderStatus) {
	beforeJSON, _ := json.Marshal(map[string]string{"status": string(before)})
	afterJSON, _ := json.Marshal(map[string]string{"status": string(after)})

	err := u.auditLogRepo.Create(ctx, model.AuditLog{
		ActorUserID:  adminUserID,
		Action:       model.AuditActionUpdateOrderStatus,
		ResourceType: model.AuditResourceOrder,
		ResourceID:   orderID,
		BeforeJSON:   string(beforeJSON),
		AfterJSON:    string(afterJSON),
	})
	if err != nil {
		u.logger.Warn("audit log write failed", "error", err, "order_id", orderID)
	}
}

func (u *AdminOrderUsecase) notifyStatusChanged(ctx context.Context, orderID int64, before, after model.OrderStatus) {
	if u.publisher == nil {
		return
	}
	err := u.publisher.Publish(ctx, event.TopicOrderStatus, strconv.FormatInt(orderID, 10), map[string]string{
		"order_id": strconv.FormatInt(orderID, 10),
		"before":   string(before),
		"after":    string(after),
	})
	if err != nil {
		u.logger.Warn("order status event publish failed", "error", err, "order_id", orderID)
	}
}
