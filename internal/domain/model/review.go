package model

import "time"

// 商品レビュー（nota 1〜5）
type Review struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID    int64     `gorm:"not null;index" json:"produto_id"`
	UserID       int64     `gorm:"not null;index" json:"cliente_id"`
	CustomerName string    `gorm:"type:varchar(255);not null" json:"cliente_nome"`
	Rating       int       `gorm:"not null" json:"nota"`
	Comment      string    `gorm:"type:text" json:"comentario"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
