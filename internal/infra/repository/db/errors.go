package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// undefined_table, 對應到"功能尚未建置"的情境
const pgUndefinedTableCode = "42P01"

var (
	ErrOrderInsert      = errors.New("order header insert failed")
	ErrOrderItemsInsert = errors.New("order items insert failed")
)

// IsNotFound row不存在
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsUndefinedTable 資料表尚未建立
// 外部store的錯誤要區分 "資源未建置" / "查無資料" / 一般錯誤
func IsUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUndefinedTableCode
	}
	return false
}
