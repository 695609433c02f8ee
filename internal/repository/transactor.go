package repository

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// Transactor выполняет несколько операций репозиториев в одной транзакции
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type gormTransactor struct {
	db *gorm.DB
}

// NewTransactor создаёт новый экземпляр транзактора
func NewTransactor(db *gorm.DB) Transactor {
	return &gormTransactor{db: db}
}

func (t *gormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn возвращает транзакцию из контекста, если она открыта, иначе db
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// nextSortOrder возвращает порядковый номер для новой записи таблицы
func nextSortOrder(db *gorm.DB, model any) (int, error) {
	var maxOrder int
	err := db.Model(model).Select("COALESCE(MAX(sort_order), 0)").Scan(&maxOrder).Error
	return maxOrder + 1, err
}
