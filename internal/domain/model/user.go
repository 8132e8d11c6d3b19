package model

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID           int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string  `gorm:"column:password_hash;not null" json:"-"`
	FullName     string  `gorm:"type:varchar(255);not null" json:"full_name"`
	Role         Role    `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`
	TokenVersion int     `gorm:"not null;default:0" json:"-"`
	IsActive     bool    `gorm:"not null;default:true" json:"is_active"`
	FavoriteAddr Address `gorm:"embedded;embeddedPrefix:fav_" json:"endereco_favorito"`
	LastLoginAt  *time.Time `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"-"`
}
