package repository

import (
	"context"

	"oroshop/internal/domain/model"
)

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成（emailが重複したらErrDuplicate）
	Create(ctx context.Context, user model.User) (model.User, error)
	//新規ユーザー作成（同じemailがあれば既存を返す）
	FindOrCreate(ctx context.Context, user model.User) (model.User, error)
	// IDからユーザーを1件取得する。
	FindByID(ctx context.Context, userID int64) (model.User, error)
	//メールからユーザーを一件取得する。
	FindByEmail(ctx context.Context, email string) (model.User, error)
	//トークンのバージョンを＋１
	IncrementTokenVersion(ctx context.Context, userID int64) error
	//ID順
	List(ctx context.Context) ([]model.User, error)
	Count(ctx context.Context) (int64, error)
}
