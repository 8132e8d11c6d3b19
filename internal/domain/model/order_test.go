package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_LinearProgression(t *testing.T) {
	steps := []OrderStatus{
		OrderStatusPendente,
		OrderStatusConfirmado,
		OrderStatusPreparando,
		OrderStatusEmEntrega,
		OrderStatusEntregue,
	}

	for i := 0; i < len(steps)-1; i++ {
		assert.True(t, steps[i].CanTransitionTo(steps[i+1]),
			"%s -> %s", steps[i], steps[i+1])

		next, ok := steps[i].Next()
		assert.True(t, ok)
		assert.Equal(t, steps[i+1], next)
	}
}

func TestOrderStatus_PendenteCannotSkipToEmEntrega(t *testing.T) {
	assert.False(t, OrderStatusPendente.CanTransitionTo(OrderStatusEmEntrega))
	assert.False(t, OrderStatusPendente.CanTransitionTo(OrderStatusPreparando))
	assert.False(t, OrderStatusPendente.CanTransitionTo(OrderStatusEntregue))
}

func TestOrderStatus_AnyNonTerminalCanCancel(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderStatusPendente,
		OrderStatusConfirmado,
		OrderStatusPreparando,
		OrderStatusEmEntrega,
	} {
		assert.True(t, s.CanTransitionTo(OrderStatusCancelado), "%s", s)
	}
}

func TestOrderStatus_TerminalStatesRefuseEverything(t *testing.T) {
	all := []OrderStatus{
		OrderStatusPendente,
		OrderStatusConfirmado,
		OrderStatusPreparando,
		OrderStatusEmEntrega,
		OrderStatusEntregue,
		OrderStatusCancelado,
	}

	for _, terminal := range []OrderStatus{OrderStatusEntregue, OrderStatusCancelado} {
		assert.True(t, terminal.IsTerminal())

		_, ok := terminal.Next()
		assert.False(t, ok)

		for _, to := range all {
			assert.False(t, terminal.CanTransitionTo(to), "%s -> %s", terminal, to)
		}
	}
}

func TestOrderStatus_Valid(t *testing.T) {
	assert.True(t, OrderStatusPendente.Valid())
	assert.True(t, OrderStatusCancelado.Valid())
	assert.False(t, OrderStatus("enviado").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestDeliveryTypeAndPaymentMethod_Valid(t *testing.T) {
	assert.True(t, DeliveryAgendada.Valid())
	assert.True(t, DeliveryExpressa.Valid())
	assert.False(t, DeliveryType("retirada").Valid())

	assert.True(t, PaymentCartao.Valid())
	assert.True(t, PaymentPix.Valid())
	assert.True(t, PaymentDinheiro.Valid())
	assert.False(t, PaymentMethod("boleto").Valid())
}
