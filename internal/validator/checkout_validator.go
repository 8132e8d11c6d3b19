package validator

import (
	"errors"
	"regexp"
	"strings"

	"cupcakes/internal/domain/model"
)

var (
	ErrAddressIncomplete = errors.New("endereco incompleto")
	ErrInvalidCEP        = errors.New("cep invalido")
	ErrCardIncomplete    = errors.New("dados do cartao incompletos")
	ErrInvalidCardNumber = errors.New("numero do cartao invalido")
	ErrInvalidCardExpiry = errors.New("validade invalida")
	ErrInvalidCardCVV    = errors.New("cvv invalido")
)

// 12345-678 形式（ハイフン省略可）
var cepRegex = regexp.MustCompile(`^\d{5}-?\d{3}$`)

// MM/AA 形式
var cardExpiryRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)

// カード入力（検証のみで保存しない）
type CardData struct {
	Number string
	Name   string
	Expiry string
	CVV    string
}

// ValidateAddressは必須項目とCEP形式を確認する。
func ValidateAddress(a model.Address) error {
	if strings.TrimSpace(a.Street) == "" ||
		strings.TrimSpace(a.Number) == "" ||
		strings.TrimSpace(a.District) == "" ||
		strings.TrimSpace(a.City) == "" ||
		strings.TrimSpace(a.PostalCode) == "" {
		return ErrAddressIncomplete
	}

	if !cepRegex.MatchString(a.PostalCode) {
		return ErrInvalidCEP
	}

	return nil
}

// ValidatePaymentは支払い方法ごとの入力を確認する。
// カード以外（pix/dinheiro）はカード情報不要。
func ValidatePayment(method model.PaymentMethod, card CardData) error {
	if method != model.PaymentCartao {
		return nil
	}

	if card.Number == "" || card.Name == "" || card.Expiry == "" || card.CVV == "" {
		return ErrCardIncomplete
	}

	//スペース除去して最低13桁
	digits := strings.ReplaceAll(card.Number, " ", "")
	if len(digits) < 13 {
		return ErrInvalidCardNumber
	}

	if !cardExpiryRegex.MatchString(card.Expiry) {
		return ErrInvalidCardExpiry
	}

	if len(card.CVV) < 3 {
		return ErrInvalidCardCVV
	}

	return nil
}
