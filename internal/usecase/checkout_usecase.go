package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"cupcakes/internal/domain/model"
	"cupcakes/internal/domain/pricing"
	"cupcakes/internal/infra/event"
	"cupcakes/internal/infra/mail"
	repo "cupcakes/internal/repository"
	"cupcakes/internal/validator"
)

// CheckoutUsecaseは注文確定。
// 在庫減算・注文作成・カート全削除を1トランザクションで行う。
type CheckoutUsecase struct {
	txManager    repo.TransactionManager
	cartItemRepo repo.CartItemRepository
	userRepo     repo.UserRepository
	publisher    event.Publisher
	mailer       mail.Mailer
	logger       *slog.Logger
}

func NewCheckoutUsecase(
	txManager repo.TransactionManager,
	cartItemRepo repo.CartItemRepository,
	userRepo repo.UserRepository,
	publisher event.Publisher,
	mailer mail.Mailer,
	logger *slog.Logger,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		txManager:    txManager,
		cartItemRepo: cartItemRepo,
		userRepo:     userRepo,
		publisher:    publisher,
		mailer:       mailer,
		logger:       logger,
	}
}

type PlaceOrderInput struct {
	Address       model.Address
	DeliveryType  model.DeliveryType
	PaymentMethod model.PaymentMethod
	Card          validator.CardData
	Notes         string
}

type PlaceOrderOutput struct {
	OrderID int64           `json:"pedido_id"`
	Totals  pricing.Totals  `json:"totais"`
	Status  model.OrderStatus `json:"status"`
}

// PlaceOrderは注文確定の本体。
// 入力チェック → Tx内で在庫減算と注文作成 → 確定後にメール/イベント（失敗しても注文は成立）。
func (u *CheckoutUsecase) PlaceOrder(ctx context.Context, userID int64, in PlaceOrderInput) (PlaceOrderOutput, error) {
	if userID <= 0 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if err := validator.ValidateAddress(in.Address); err != nil {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !in.DeliveryType.Valid() {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "tipo de entrega invalido")
	}
	if !in.PaymentMethod.Valid() {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "forma de pagamento invalida")
	}
	if err := validator.ValidatePayment(in.PaymentMethod, in.Card); err != nil {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if user == nil {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var (
		orderID int64
		totals  pricing.Totals
	)

	err = u.txManager.WithinTx(ctx, func(r repo.TxRepos) error {
		items, err := r.CartItems().ListByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(items) == 0 {
			return NewHTTPError(http.StatusBadRequest, "carrinho vazio")
		}

		orderItems := make([]model.OrderItem, 0, len(items))
		for _, it := range items {
			//確定時点の商品で再チェック
			p, err := r.Products().FindByID(ctx, it.ProductID)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusBadRequest, fmt.Sprintf("produto indisponivel: %s", it.ProductName))
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !p.IsActive {
				return NewHTTPError(http.StatusBadRequest, fmt.Sprintf("produto indisponivel: %s", p.Name))
			}

			// 条件付きUPDATE。足りなければ全体rollback
			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, it.ProductID, it.Quantity)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !ok {
				return NewHTTPError(http.StatusConflict, fmt.Sprintf("estoque insuficiente: %s", p.Name))
			}

			orderItems = append(orderItems, model.OrderItem{
				ProductID:    p.ID,
				ProductName:  p.Name,
				ProductImage: p.ImageURL,
				Quantity:     it.Quantity,
				UnitPrice:    it.UnitPrice,
				Subtotal:     it.Subtotal(),
			})
		}

		totals = pricing.ComputeTotals(pricing.FromCartItems(items), in.DeliveryType)

		order := model.Order{
			UserID:        userID,
			CustomerName:  user.FullName,
			CustomerEmail: user.Email,
			Subtotal:      totals.Subtotal,
			DeliveryFee:   totals.DeliveryFee,
			Discount:      totals.Discount,
			Total:         totals.Total,
			Status:        model.OrderStatusPendente,
			DeliveryType:  in.DeliveryType,
			Address:       in.Address,
			PaymentMethod: in.PaymentMethod,
			PaymentStatus: paymentStatusFor(in.PaymentMethod),
			Notes:         strings.TrimSpace(in.Notes),
		}

		orderID, err = r.Orders().Create(ctx, order)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.CartItems().Clear(ctx, userID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
	if err != nil {
		if he, ok := AsHTTPError(err); ok {
			return PlaceOrderOutput{}, he
		}
		return PlaceOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// ここから先の失敗は注文を壊さない
	u.sendConfirmationMail(user, orderID, totals)
	u.notifyOrderCreated(ctx, orderID, userID)

	return PlaceOrderOutput{
		OrderID: orderID,
		Totals:  totals,
		Status:  model.OrderStatusPendente,
	}, nil
}

// 決済は外部連携なしのシミュレーション。
// 現金のみ受け取り時決済として保留にする。
func paymentStatusFor(m model.PaymentMethod) string {
	if m == model.PaymentDinheiro {
		return "pendente"
	}
	return "aprovado"
}

func (u *CheckoutUsecase) sendConfirmationMail(user *model.User, orderID int64, totals pricing.Totals) {
	if u.mailer == nil {
		return
	}
	subject := fmt.Sprintf("Pedido #%d Confirmado - Cupcakes Gourmet", orderID)
	body := fmt.Sprintf(
		"Ola %s,\n\nRecebemos o seu pedido #%d.\n\nSubtotal: R$ %s\nTaxa de entrega: R$ %s\nDesconto: R$ %s\nTotal: R$ %s\n\nObrigado pela preferencia!\nCupcakes Gourmet",
		user.FullName,
		orderID,
		totals.Subtotal.StringFixed(2),
		totals.DeliveryFee.StringFixed(2),
		totals.Discount.StringFixed(2),
		totals.Total.StringFixed(2),
	)
	if err := u.mailer.Send(user.Email, subject, body); err != nil {
		u.logger.Warn("order mail send failed", "error", err, "order_id", orderID)
	}
}

func (u *CheckoutUsecase) notifyOrderCreated(ctx context.Context, orderID int64, userID int64) {
	if u.publisher == nil {
		return
	}
	err := u.publisher.Publish(ctx, event.TopicOrderCreated, strconv.FormatInt(orderID, 10), map[string]int64{
		"order_id": orderID,
		"user_id":  userID,
	})
	if err != nil {
		u.logger.Warn("order event publish failed", "error", err, "order_id", orderID)
	}
}
