package pricing

import (
	"cupcakes/internal/domain/model"

	"github.com/shopspring/decimal"
)

// 料金ルールの定数
var (
	// 通常配送の基本送料
	BaseDeliveryFee = decimal.RequireFromString("10.00")
	// 速達の送料（小計に関わらず固定）
	ExpressDeliveryFee = decimal.RequireFromString("15.00")
	// 通常配送が無料になる小計の下限
	FreeDeliveryThreshold = decimal.RequireFromString("50.00")
	// 割引が付く小計の下限
	DiscountThreshold = decimal.RequireFromString("100.00")
	// 割引率（5%）
	DiscountRate = decimal.RequireFromString("0.05")
)

// 計算対象の明細
type Line struct {
	Quantity  int64
	UnitPrice decimal.Decimal
}

// 計算結果
type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"taxa_entrega"`
	Discount    decimal.Decimal `json:"desconto"`
	Total       decimal.Decimal `json:"total"`
}

// ComputeTotalsは小計・送料・割引・合計を計算する純関数。
//   - subtotal = Σ(数量 × 単価)
//   - 送料: expressaは固定15.00 / それ以外は小計50以上で0、未満で10.00
//   - 割引: 小計100以上で5%
//   - total = subtotal + 送料 - 割引
func ComputeTotals(lines []Line, deliveryType model.DeliveryType) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity)))
	}

	var fee decimal.Decimal
	switch {
	case deliveryType == model.DeliveryExpressa:
		fee = ExpressDeliveryFee
	case subtotal.GreaterThanOrEqual(FreeDeliveryThreshold):
		fee = decimal.Zero
	default:
		fee = BaseDeliveryFee
	}

	discount := decimal.Zero
	if subtotal.GreaterThanOrEqual(DiscountThreshold) {
		discount = subtotal.Mul(DiscountRate).Round(2)
	}

	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Discount:    discount,
		Total:       subtotal.Add(fee).Sub(discount),
	}
}

// FromCartItemsはカート明細を計算用の行に変換する。
func FromCartItems(items []model.CartItem) []Line {
	lines := make([]Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, Line{Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}
	return lines
}
