package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// カップケーキのフレーバー
type Flavor string

const (
	FlavorChocolate   Flavor = "chocolate"
	FlavorBaunilha    Flavor = "baunilha"
	FlavorMorango     Flavor = "morango"
	FlavorRedVelvet   Flavor = "red_velvet"
	FlavorLimao       Flavor = "limao"
	FlavorNutella     Flavor = "nutella"
	FlavorDoceDeLeite Flavor = "doce_de_leite"
)

// 商品カテゴリ
type Category string

const (
	CategoryClassico  Category = "classico"
	CategoryGourmet   Category = "gourmet"
	CategoryEspecial  Category = "especial"
	CategoryVegano    Category = "vegano"
	CategorySemGluten Category = "sem_gluten"
)

// フレーバーとして有効な値か
func (f Flavor) Valid() bool {
	switch f {
	case FlavorChocolate, FlavorBaunilha, FlavorMorango, FlavorRedVelvet,
		FlavorLimao, FlavorNutella, FlavorDoceDeLeite:
		return true
	}
	return false
}

// カテゴリとして有効な値か
func (c Category) Valid() bool {
	switch c {
	case CategoryClassico, CategoryGourmet, CategoryEspecial,
		CategoryVegano, CategorySemGluten:
		return true
	}
	return false
}

// 商品。価格はdecimalで保持する。
type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"nome"`
	Description string          `gorm:"type:text" json:"descricao"`
	Flavor      Flavor          `gorm:"type:varchar(30);not null;index" json:"sabor"`
	Category    Category        `gorm:"type:varchar(30);not null;index" json:"categoria"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"preco"`
	Stock       int64           `gorm:"not null" json:"estoque"`
	MinStock    int64           `gorm:"not null;default:10" json:"estoque_minimo"`
	IsActive    bool            `gorm:"not null;default:false" json:"ativo"`
	Featured    bool            `gorm:"not null;default:false" json:"destaque"`
	ImageURL    string          `gorm:"type:varchar(500)" json:"imagem_url"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

// 在庫が下限を割っているか（発注アラート用）
func (p Product) LowStock() bool {
	return p.Stock <= p.MinStock
}
