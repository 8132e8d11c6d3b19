package catalog

import (
	"testing"

	"cupcakes/internal/domain/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func product(id int64, name string, price string, stock int64) model.Product {
	return model.Product{
		ID:       id,
		Name:     name,
		Flavor:   model.FlavorChocolate,
		Category: model.CategoryClassico,
		Price:    decimal.RequireFromString(price),
		Stock:    stock,
		IsActive: true,
	}
}

func TestFilterAndSort_ExcludesZeroStock(t *testing.T) {
	products := []model.Product{
		product(1, "Choc", "10.00", 5),
		product(2, "Straw", "10.00", 0),
	}

	out := FilterAndSort(products, Filter{})

	assert.Len(t, out, 1)
	assert.Equal(t, "Choc", out[0].Name)
}

func TestFilterAndSort_SearchMatchesNameOrDescription(t *testing.T) {
	a := product(1, "Cupcake Nutella", "12.00", 3)
	b := product(2, "Clássico", "8.00", 3)
	b.Description = "com recheio de NUTELLA cremosa"
	c := product(3, "Morango", "9.00", 3)

	out := FilterAndSort([]model.Product{a, b, c}, Filter{Search: "nutella"})

	assert.Len(t, out, 2)
	assert.Equal(t, int64(1), out[0].ID)
	assert.Equal(t, int64(2), out[1].ID)
}

func TestFilterAndSort_EmptySearchMatchesAll(t *testing.T) {
	products := []model.Product{
		product(1, "A", "1.00", 1),
		product(2, "B", "2.00", 1),
	}

	out := FilterAndSort(products, Filter{Search: "  "})

	assert.Len(t, out, 2)
}

func TestFilterAndSort_FlavorAndCategoryWildcard(t *testing.T) {
	a := product(1, "A", "1.00", 1)
	a.Flavor = model.FlavorLimao
	b := product(2, "B", "1.00", 1)
	b.Category = model.CategoryVegano

	products := []model.Product{a, b}

	assert.Len(t, FilterAndSort(products, Filter{Flavor: "todos", Category: "todos"}), 2)
	out := FilterAndSort(products, Filter{Flavor: "limao"})
	assert.Len(t, out, 1)
	assert.Equal(t, int64(1), out[0].ID)

	out = FilterAndSort(products, Filter{Category: "vegano"})
	assert.Len(t, out, 1)
	assert.Equal(t, int64(2), out[0].ID)
}

func TestFilterAndSort_PriceSort(t *testing.T) {
	products := []model.Product{
		product(1, "A", "12.00", 1),
		product(2, "B", "8.00", 1),
		product(3, "C", "10.00", 1),
	}

	asc := FilterAndSort(products, Filter{SortBy: SortMenorPreco})
	assert.Equal(t, []int64{2, 3, 1}, ids(asc))

	desc := FilterAndSort(products, Filter{SortBy: SortMaiorPreco})
	assert.Equal(t, []int64{1, 3, 2}, ids(desc))
}

func TestFilterAndSort_PriceTiesKeepOriginalOrder(t *testing.T) {
	products := []model.Product{
		product(1, "A", "10.00", 1),
		product(2, "B", "10.00", 1),
		product(3, "C", "5.00", 1),
	}

	out := FilterAndSort(products, Filter{SortBy: SortMenorPreco})

	// 同価格の1と2は元の順序のまま
	assert.Equal(t, []int64{3, 1, 2}, ids(out))
}

func TestFilterAndSort_FeaturedFirstStable(t *testing.T) {
	a := product(1, "A", "1.00", 1)
	b := product(2, "B", "1.00", 1)
	b.Featured = true
	c := product(3, "C", "1.00", 1)
	d := product(4, "D", "1.00", 1)
	d.Featured = true

	out := FilterAndSort([]model.Product{a, b, c, d}, Filter{SortBy: SortDestaque})

	assert.Equal(t, []int64{2, 4, 1, 3}, ids(out))
}

func TestFeatured_LimitAndStock(t *testing.T) {
	a := product(1, "A", "1.00", 1)
	a.Featured = true
	b := product(2, "B", "1.00", 0)
	b.Featured = true
	c := product(3, "C", "1.00", 1)
	c.Featured = true
	d := product(4, "D", "1.00", 1)
	d.Featured = true

	out := Featured([]model.Product{a, b, c, d}, 2)

	// 在庫0のBは飛ばして先頭2件
	assert.Equal(t, []int64{1, 3}, ids(out))
}

func TestValidSort(t *testing.T) {
	assert.True(t, ValidSort(""))
	assert.True(t, ValidSort(SortDestaque))
	assert.True(t, ValidSort(SortMenorPreco))
	assert.True(t, ValidSort(SortMaiorPreco))
	assert.False(t, ValidSort("novidades"))
}

func ids(products []model.Product) []int64 {
	out := make([]int64, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}
