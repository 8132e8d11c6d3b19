package handler

import (
	"net/http"
	"strconv"

	"cupcakes/internal/config"
	"cupcakes/internal/domain/model"
	"cupcakes/internal/middleware"
	"cupcakes/internal/repository"
	"cupcakes/internal/usecase"
	"cupcakes/internal/validator"

	"github.com/labstack/echo/v4"
)

// /checkout と /orders のHTTP
type OrderHandler struct {
	checkoutUC *usecase.CheckoutUsecase
	orderUC    *usecase.OrderUsecase
}

// DI
func NewOrderHandler(checkoutUC *usecase.CheckoutUsecase, orderUC *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{checkoutUC: checkoutUC, orderUC: orderUC}
}

type CheckoutRequest struct {
	Address      model.Address `json:"endereco"`
	DeliveryType string        `json:"tipo_entrega"`
	Payment      struct {
		Method     string `json:"forma"`
		CardNumber string `json:"numero_cartao"`
		CardName   string `json:"nome_cartao"`
		CardExpiry string `json:"validade"`
		CardCVV    string `json:"cvv"`
	} `json:"pagamento"`
	Notes string `json:"observacoes"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	g := e.Group("")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.TokenVersionGuard(userRepo))

	g.POST("/checkout", h.checkout)
	g.GET("/orders", h.listOrders)
	g.GET("/orders/:id", h.orderDetail)
}

func (h *OrderHandler) checkout(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.checkoutUC.PlaceOrder(c.Request().Context(), userID, usecase.PlaceOrderInput{
		Address:       req.Address,
		DeliveryType:  model.DeliveryType(req.DeliveryType),
		PaymentMethod: model.PaymentMethod(req.Payment.Method),
		Card: validator.CardData{
			Number: req.Payment.CardNumber,
			Name:   req.Payment.CardName,
			Expiry: req.Payment.CardExpiry,
			CVV:    req.Payment.CardCVV,
		},
		Notes: req.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) listOrders(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	limit := 20
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	out, err := h.orderUC.ListMyOrders(c.Request().Context(), userID, page, limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) orderDetail(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.orderUC.GetMyOrderDetail(c.Request().Context(), userID, orderID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
