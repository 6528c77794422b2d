package usecase

import (
	"errors"
	"fmt"
)

var (
	//404 対象なし
	ErrNotFound = errors.New("not found")
	//400 カートが空（合計0）
	ErrEmptyCart = errors.New("cart empty")
	//500 DBの読み書き失敗
	ErrPersistence = errors.New("persistence error")
	//400 入力不正
	ErrValidation = errors.New("validation error")
	//401 認証失敗
	ErrUnauthorized = errors.New("unauthorized")
	//403 権限
	ErrForbidden = errors.New("forbidden")
	//409 重複
	ErrConflict = errors.New("conflict")
)

// 入力エラーに理由を付ける
func invalid(reason string) error {
	return fmt.Errorf("%w: %s", ErrValidation, reason)
}

// DBエラーをErrPersistenceで包む（元のエラーも辿れる）
func persistence(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}
