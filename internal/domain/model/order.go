package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPendente   OrderStatus = "pendente"
	OrderStatusConfirmado OrderStatus = "confirmado"
	OrderStatusPreparando OrderStatus = "preparando"
	OrderStatusEmEntrega  OrderStatus = "em_entrega"
	OrderStatusEntregue   OrderStatus = "entregue"
	OrderStatusCancelado  OrderStatus = "cancelado"
)

// 遷移表。ここ以外でステータス遷移を判断しない。
var orderStatusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPendente:   {OrderStatusConfirmado, OrderStatusCancelado},
	OrderStatusConfirmado: {OrderStatusPreparando, OrderStatusCancelado},
	OrderStatusPreparando: {OrderStatusEmEntrega, OrderStatusCancelado},
	OrderStatusEmEntrega:  {OrderStatusEntregue, OrderStatusCancelado},
	OrderStatusEntregue:   {},
	OrderStatusCancelado:  {},
}

// ステータスとして有効な値か
func (s OrderStatus) Valid() bool {
	_, ok := orderStatusTransitions[s]
	return ok
}

// 終端（entregue / cancelado）か
func (s OrderStatus) IsTerminal() bool {
	next, ok := orderStatusTransitions[s]
	return ok && len(next) == 0
}

// nextへ遷移できるか
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// 1段階先のステータス（cancelado以外）。終端ならfalse。
func (s OrderStatus) Next() (OrderStatus, bool) {
	for _, allowed := range orderStatusTransitions[s] {
		if allowed != OrderStatusCancelado {
			return allowed, true
		}
	}
	return "", false
}

// 配送タイプ
type DeliveryType string

const (
	// 通常配送（50以上で送料無料）
	DeliveryAgendada DeliveryType = "agendada"
	// 速達（送料固定）
	DeliveryExpressa DeliveryType = "expressa"
)

func (d DeliveryType) Valid() bool {
	return d == DeliveryAgendada || d == DeliveryExpressa
}

// 支払い方法
type PaymentMethod string

const (
	PaymentCartao   PaymentMethod = "cartao"
	PaymentPix      PaymentMethod = "pix"
	PaymentDinheiro PaymentMethod = "dinheiro"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCartao || m == PaymentPix || m == PaymentDinheiro
}

// 配送先住所（注文に埋め込み）
type Address struct {
	Street     string `gorm:"type:varchar(255)" json:"rua"`
	Number     string `gorm:"type:varchar(30)" json:"numero"`
	Complement string `gorm:"type:varchar(255)" json:"complemento"`
	District   string `gorm:"type:varchar(255)" json:"bairro"`
	City       string `gorm:"type:varchar(255)" json:"cidade"`
	State      string `gorm:"type:varchar(2)" json:"estado"`
	PostalCode string `gorm:"type:varchar(9)" json:"cep"`
}

// 注文。金額と顧客情報は確定時点のスナップショット。
type Order struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        int64           `gorm:"not null;index" json:"cliente_id"`
	CustomerName  string          `gorm:"type:varchar(255);not null" json:"cliente_nome"`
	CustomerEmail string          `gorm:"type:varchar(255);not null" json:"cliente_email"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"subtotal"`
	DeliveryFee   decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"taxa_entrega"`
	Discount      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"desconto"`
	Total         decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total"`
	Status        OrderStatus     `gorm:"type:varchar(20);not null;index" json:"status"`
	DeliveryType  DeliveryType    `gorm:"type:varchar(20);not null" json:"tipo_entrega"`
	Address       Address         `gorm:"embedded;embeddedPrefix:endereco_" json:"endereco"`
	PaymentMethod PaymentMethod   `gorm:"type:varchar(20);not null" json:"forma_pagamento"`
	PaymentStatus string          `gorm:"type:varchar(20);not null" json:"pagamento_status"`
	Notes         string          `gorm:"type:text" json:"observacoes"`
	CreatedAt     time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
