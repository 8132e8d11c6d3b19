package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"cupcakes/internal/config"
	"cupcakes/internal/domain/model"
	repo "cupcakes/internal/repository"
	"cupcakes/internal/validator"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// accesstokenの有効期限
const accessTokenTTL = 24 * time.Hour

type UserDTO struct {
	ID           int64         `json:"id"`
	Email        string        `json:"email"`
	FullName     string        `json:"nome"`
	Role         string        `json:"role"`
	FavoriteAddr model.Address `json:"endereco_favorito"`
}

type TokenDTO struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type RegisterInput struct {
	FullName string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type LoginOutput struct {
	User  UserDTO  `json:"user"`
	Token TokenDTO `json:"token"`
}

type UpdateProfileInput struct {
	FullName     string         `json:"nome"`
	FavoriteAddr *model.Address `json:"endereco_favorito"`
}

// AuthUsecaseは登録/ログイン/プロフィール。
type AuthUsecase struct {
	cfg       config.Config
	users     repo.UserRepository
	validator *validator.AuthValidator
}

func NewAuthUsecase(cfg config.Config, users repo.UserRepository, v *validator.AuthValidator) *AuthUsecase {
	return &AuthUsecase{cfg: cfg, users: users, validator: v}
}

func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (UserDTO, error) {
	if err := u.validator.ValidateRegister(ctx, in.FullName, in.Email, in.Password); err != nil {
		if errors.Is(err, validator.ErrEmailAlreadyUsed) {
			return UserDTO{}, NewHTTPError(http.StatusConflict, "email ja cadastrado")
		}
		return UserDTO{}, NewHTTPError(http.StatusBadRequest, "invalid input")
	}

	//パスワードは必ずハッシュ化して保存（平文保存しない）
	pwHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserDTO{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	user := &model.User{
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: string(pwHash),
		FullName:     strings.TrimSpace(in.FullName),
		Role:         model.RoleUser,
		TokenVersion: 0,
		IsActive:     true,
	}

	if err := u.users.Create(ctx, user); err != nil {
		// unique違反はここに落ちる
		return UserDTO{}, NewHTTPError(http.StatusConflict, "email ja cadastrado")
	}

	return toUserDTO(user), nil
}

func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	if err := u.validator.ValidateLogin(ctx, in.Email, in.Password); err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusBadRequest, "invalid input")
	}

	user, err := u.users.FindByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil || user == nil {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "credenciais invalidas")
	}

	//停止ユーザーはログイン不可
	if !user.IsActive {
		return LoginOutput{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}

	//パスワード照合（bcrypt）
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "credenciais invalidas")
	}

	//last_login更新
	now := time.Now()
	user.LastLoginAt = &now
	_ = u.users.Update(ctx, user)

	token, expiresIn, err := u.issueAccessToken(user)
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return LoginOutput{
		User:  toUserDTO(user),
		Token: TokenDTO{AccessToken: token, ExpiresIn: expiresIn},
	}, nil
}

// Logoutはtoken_versionを進め、発行済みトークンを全部無効にする。
func (u *AuthUsecase) Logout(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := u.users.IncrementTokenVersion(ctx, userID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *AuthUsecase) Me(ctx context.Context, userID int64) (UserDTO, error) {
	if userID <= 0 {
		return UserDTO{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil || user == nil {
		return UserDTO{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if !user.IsActive {
		return UserDTO{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}

	return toUserDTO(user), nil
}

// プロフィール更新（名前・お気に入り住所）。
func (u *AuthUsecase) UpdateMe(ctx context.Context, userID int64, in UpdateProfileInput) (UserDTO, error) {
	if userID <= 0 {
		return UserDTO{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil || user == nil {
		return UserDTO{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if name := strings.TrimSpace(in.FullName); name != "" {
		user.FullName = name
	}
	if in.FavoriteAddr != nil {
		if err := validator.ValidateAddress(*in.FavoriteAddr); err != nil {
			return UserDTO{}, NewHTTPError(http.StatusBadRequest, err.Error())
		}
		user.FavoriteAddr = *in.FavoriteAddr
	}

	if err := u.users.Update(ctx, user); err != nil {
		return UserDTO{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toUserDTO(user), nil
}

func (u *AuthUsecase) issueAccessToken(user *model.User) (string, int, error) {
	now := time.Now()
	exp := now.Add(accessTokenTTL)

	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"tv":   user.TokenVersion,
		"iat":  now.Unix(),
		"exp":  exp.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := t.SignedString([]byte(u.cfg.JWTSecret))
	if err != nil {
		return "", 0, err
	}

	return signed, int(accessTokenTTL.Seconds()), nil
}

func toUserDTO(u *model.User) UserDTO {
	return UserDTO{
		ID:           u.ID,
		Email:        u.Email,
		FullName:     u.FullName,
		Role:         string(u.Role),
		FavoriteAddr: u.FavoriteAddr,
	}
}
