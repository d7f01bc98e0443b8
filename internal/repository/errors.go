package repository

import "errors"

var (
	// 対象行が存在しない
	ErrNotFound = errors.New("not found")

	// 一意制約違反（注文番号など）
	ErrDuplicate = errors.New("duplicate")
)
