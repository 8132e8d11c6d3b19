package repository

import (
	"context"

	"cupcakes/internal/domain/model"
)

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得する。見つからなければnil
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	//メールからユーザーを1件取得する。見つからなければnil
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// ユーザー情報の更新（お気に入り住所・最終ログインなど）
	Update(ctx context.Context, user *model.User) error
	//トークンのバージョンを＋１
	IncrementTokenVersion(ctx context.Context, userID int64) error
}
