package catalog

import (
	"sort"
	"strings"

	"cupcakes/internal/domain/model"
)

// 並び順のキー
const (
	SortDestaque   = "destaque"
	SortMenorPreco = "menor_preco"
	SortMaiorPreco = "maior_preco"
)

// 絞り込み条件。"todos"はワイルドカード。
type Filter struct {
	Search   string
	Flavor   string
	Category string
	SortBy   string
}

// ソートキーとして有効な値か
func ValidSort(s string) bool {
	switch s {
	case "", SortDestaque, SortMenorPreco, SortMaiorPreco:
		return true
	}
	return false
}

// FilterAndSortは商品一覧を絞り込んで並べ替える。
//   - 検索語は名前・説明への部分一致（大文字小文字を無視、空は全件）
//   - sabor/categoriaは完全一致か"todos"
//   - 在庫0の商品は常に除外
//   - 並べ替えは安定（同順位は元の順序を保つ）
func FilterAndSort(products []model.Product, f Filter) []model.Product {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.Stock <= 0 {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if f.Flavor != "" && f.Flavor != "todos" && string(p.Flavor) != f.Flavor {
			continue
		}
		if f.Category != "" && f.Category != "todos" && string(p.Category) != f.Category {
			continue
		}
		out = append(out, p)
	}

	switch f.SortBy {
	case SortMenorPreco:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price.LessThan(out[j].Price)
		})
	case SortMaiorPreco:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price.GreaterThan(out[j].Price)
		})
	case SortDestaque:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Featured && !out[j].Featured
		})
	}

	return out
}

// Featuredは目玉商品の棚（在庫ありのdestaqueを先頭からlimit件）。
func Featured(products []model.Product, limit int) []model.Product {
	out := make([]model.Product, 0, limit)
	for _, p := range products {
		if !p.Featured || p.Stock <= 0 {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}
