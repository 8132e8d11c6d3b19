package validator

import (
	"context"
	"errors"
	"regexp"
	"strings"

	repo "cupcakes/internal/repository"
)

var (
	// 入力が不正
	ErrInvalidInput = errors.New("invalid input")

	// emailが既に使用済み
	ErrEmailAlreadyUsed = errors.New("email already used")
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type AuthValidator struct {
	users repo.UserRepository
}

func NewAuthValidator(users repo.UserRepository) *AuthValidator {
	return &AuthValidator{users: users}
}

// サインアップの入力を検証
func (v *AuthValidator) ValidateRegister(ctx context.Context, fullName string, email string, password string) error {
	email = strings.TrimSpace(email)

	// 必須チェック
	if strings.TrimSpace(fullName) == "" || email == "" || password == "" {
		return ErrInvalidInput
	}

	if !emailRegex.MatchString(email) {
		return ErrInvalidInput
	}

	// パスワード最低文字数
	if len(password) < 8 {
		return ErrInvalidInput
	}

	// email重複チェック
	u, err := v.users.FindByEmail(ctx, email)
	if err == nil && u != nil {
		return ErrEmailAlreadyUsed
	}

	return nil
}

// ログインの入力を検証
func (v *AuthValidator) ValidateLogin(ctx context.Context, email string, password string) error {
	email = strings.TrimSpace(email)

	if email == "" || password == "" {
		return ErrInvalidInput
	}
	if !emailRegex.MatchString(email) {
		return ErrInvalidInput
	}
	return nil
}
