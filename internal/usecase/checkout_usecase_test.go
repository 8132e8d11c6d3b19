package usecase_test

import (
	"context"
	"testing"

	"cupcakes/internal/domain/model"
	"cupcakes/internal/infra/event"
	"cupcakes/internal/usecase"
	"cupcakes/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validAddress() model.Address {
	return model.Address{
		Street:     "Rua das Flores",
		Number:     "123",
		District:   "Centro",
		City:       "Sao Paulo",
		State:      "SP",
		PostalCode: "01234-567",
	}
}

func checkoutFixture() (*TxManagerMock, *CartItemRepoMock, *ProductRepoMock, *OrderRepoMock, *OrderItemRepoMock, *InventoryRepoMock, *UserRepoMock, *PublisherMock, *MailerMock, *usecase.CheckoutUsecase) {
	tx := new(TxManagerMock)
	cartRepo := new(CartItemRepoMock)
	productRepo := new(ProductRepoMock)
	orderRepo := new(OrderRepoMock)
	orderItemRepo := new(OrderItemRepoMock)
	invRepo := new(InventoryRepoMock)
	userRepo := new(UserRepoMock)
	pub := new(PublisherMock)
	mailer := new(MailerMock)

	tx.Repos = &TxReposMock{
		orders:     orderRepo,
		orderItems: orderItemRepo,
		cartItems:  cartRepo,
		inventory:  invRepo,
		products:   productRepo,
	}

	uc := usecase.NewCheckoutUsecase(tx, cartRepo, userRepo, pub, mailer, testLogger())
	return tx, cartRepo, productRepo, orderRepo, orderItemRepo, invRepo, userRepo, pub, mailer, uc
}

func TestCheckoutUsecase_PlaceOrder_IncompleteAddress(t *testing.T) {
	_, _, _, _, _, _, _, _, _, uc := checkoutFixture()

	in := usecase.PlaceOrderInput{
		Address:       model.Address{Street: "Rua das Flores"},
		DeliveryType:  model.DeliveryAgendada,
		PaymentMethod: model.PaymentPix,
	}

	_, err := uc.PlaceOrder(context.Background(), 1, in)
	assertErrContains(t, err, "endereco incompleto")
}

func TestCheckoutUsecase_PlaceOrder_InvalidCEP(t *testing.T) {
	_, _, _, _, _, _, _, _, _, uc := checkoutFixture()

	addr := validAddress()
	addr.PostalCode = "1234"

	in := usecase.PlaceOrderInput{
		Address:       addr,
		DeliveryType:  model.DeliveryAgendada,
		PaymentMethod: model.PaymentPix,
	}

	_, err := uc.PlaceOrder(context.Background(), 1, in)
	assertErrContains(t, err, "cep invalido")
}

func TestCheckoutUsecase_PlaceOrder_CardValidation(t *testing.T) {
	_, _, _, _, _, _, _, _, _, uc := checkoutFixture()

	in := usecase.PlaceOrderInput{
		Address:       validAddress(),
		DeliveryType:  model.DeliveryAgendada,
		PaymentMethod: model.PaymentCartao,
		Card: validator.CardData{
			Number: "4111 1111 1111 1111",
			Name:   "MARIA SILVA",
			Expiry: "13/26", // 13月は無い
			CVV:    "123",
		},
	}

	_, err := uc.PlaceOrder(context.Background(), 1, in)
	assertErrContains(t, err, "validade invalida")
}

func TestCheckoutUsecase_PlaceOrder_EmptyCart(t *testing.T) {
	tx, cartRepo, _, _, _, _, userRepo, _, _, uc := checkoutFixture()

	userRepo.On("FindByID", mock.Anything, int64(1)).Return(&model.User{ID: 1, Email: "a@b.com", FullName: "Maria"}, nil)
	tx.On("WithinTx", mock.Anything).Return(nil)
	cartRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{}, nil)

	in := usecase.PlaceOrderInput{
		Address:       validAddress(),
		DeliveryType:  model.DeliveryAgendada,
		PaymentMethod: model.PaymentPix,
	}

	_, err := uc.PlaceOrder(context.Background(), 1, in)
	assertErrContains(t, err, "carrinho vazio")
}

func TestCheckoutUsecase_PlaceOrder_InsufficientStock_Conflict(t *testing.T) {
	tx, cartRepo, productRepo, orderRepo, _, invRepo, userRepo, _, _, uc := checkoutFixture()

	userRepo.On("FindByID", mock.Anything, int64(1)).Return(&model.User{ID: 1, Email: "a@b.com", FullName: "Maria"}, nil)
	tx.On("WithinTx", mock.Anything).Return(nil)

	cartRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 100, UserID: 1, ProductID: 10, ProductName: "Chocolate", Quantity: 3, UnitPrice: dec("12.00")},
	}, nil)
	productRepo.On("FindByID", mock.Anything, int64(10)).Return(model.Product{ID: 10, Name: "Chocolate", Stock: 2, IsActive: true}, nil)
	invRepo.On("DecreaseStockIfEnough", mock.Anything, int64(10), int64(3)).Return(false, nil)

	in := usecase.PlaceOrderInput{
		Address:       validAddress(),
		DeliveryType:  model.DeliveryAgendada,
		PaymentMethod: model.PaymentPix,
	}

	_, err := uc.PlaceOrder(context.Background(), 1, in)
	assertErrContains(t, err, "estoque insuficiente")

	//注文は作られない
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	cartRepo.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
}

func TestCheckoutUsecase_PlaceOrder_Success_TotalsAndSideEffects(t *testing.T) {
	tx, cartRepo, productRepo, orderRepo, orderItemRepo, invRepo, userRepo, pub, mailer, uc := checkoutFixture()

	user := &model.User{ID: 1, Email: "maria@example.com", FullName: "Maria Silva"}
	userRepo.On("FindByID", mock.Anything, int64(1)).Return(user, nil)
	tx.On("WithinTx", mock.Anything).Return(nil)

	//subtotal 120.00 → 5%割引、agendadaで送料0
	cartRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 100, UserID: 1, ProductID: 10, ProductName: "Chocolate", Quantity: 10, UnitPrice: dec("12.00")},
	}, nil)
	productRepo.On("FindByID", mock.Anything, int64(10)).Return(model.Product{ID: 10, Name: "Chocolate", Stock: 50, IsActive: true, Price: dec("12.00")}, nil)
	invRepo.On("DecreaseStockIfEnough", mock.Anything, int64(10), int64(10)).Return(true, nil)

	orderRepo.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.Subtotal.Equal(dec("120.00")) &&
			o.DeliveryFee.Equal(dec("0")) &&
			o.Discount.Equal(dec("6.00")) &&
			o.Total.Equal(dec("114.00")) &&
			o.Status == model.OrderStatusPendente
	})).Return(int64(55), nil)
	orderItemRepo.On("CreateBulk", mock.Anything, int64(55), mock.Anything).Return(nil)
	cartRepo.On("Clear", mock.Anything, int64(1)).Return(nil)

	mailer.On("Send", "maria@example.com", "Pedido #55 Confirmado - Cupcakes Gourmet", mock.Anything).Return(nil)
	pub.On("Publish", mock.Anything, event.TopicOrderCreated, "55", mock.Anything).Return(nil)

	in := usecase.PlaceOrderInput{
		Address:       validAddress(),
		DeliveryType:  model.DeliveryAgendada,
		PaymentMethod: model.PaymentPix,
	}

	out, err := uc.PlaceOrder(context.Background(), 1, in)
	assert.NoError(t, err)
	assert.Equal(t, int64(55), out.OrderID)
	assert.True(t, out.Totals.Total.Equal(dec("114.00")))
	assert.Equal(t, model.OrderStatusPendente, out.Status)

	orderRepo.AssertExpectations(t)
	orderItemRepo.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
	mailer.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestCheckoutUsecase_PlaceOrder_ExpressFee(t *testing.T) {
	tx, cartRepo, productRepo, orderRepo, orderItemRepo, invRepo, userRepo, pub, mailer, uc := checkoutFixture()

	user := &model.User{ID: 1, Email: "maria@example.com", FullName: "Maria Silva"}
	userRepo.On("FindByID", mock.Anything, int64(1)).Return(user, nil)
	tx.On("WithinTx", mock.Anything).Return(nil)

	//subtotal 40.00 + expressa 15.00 = 55.00
	cartRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 100, UserID: 1, ProductID: 10, ProductName: "Morango", Quantity: 4, UnitPrice: dec("10.00")},
	}, nil)
	productRepo.On("FindByID", mock.Anything, int64(10)).Return(model.Product{ID: 10, Name: "Morango", Stock: 10, IsActive: true, Price: dec("10.00")}, nil)
	invRepo.On("DecreaseStockIfEnough", mock.Anything, int64(10), int64(4)).Return(true, nil)

	orderRepo.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.DeliveryFee.Equal(dec("15.00")) && o.Total.Equal(dec("55.00"))
	})).Return(int64(56), nil)
	orderItemRepo.On("CreateBulk", mock.Anything, int64(56), mock.Anything).Return(nil)
	cartRepo.On("Clear", mock.Anything, int64(1)).Return(nil)
	mailer.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	pub.On("Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	in := usecase.PlaceOrderInput{
		Address:       validAddress(),
		DeliveryType:  model.DeliveryExpressa,
		PaymentMethod: model.PaymentDinheiro,
	}

	out, err := uc.PlaceOrder(context.Background(), 1, in)
	assert.NoError(t, err)
	assert.True(t, out.Totals.Total.Equal(dec("55.00")))

	orderRepo.AssertExpectations(t)
}
