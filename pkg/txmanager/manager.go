package txmanager

import (
	"context"
	"database/sql"
	"fmt"
)

// DBExecutor минимальный интерфейс для выполнения запросов
// Ему удовлетворяют *sql.DB и *sql.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type txKey struct{}

// Manager управляет транзакциями поверх *sql.DB
// Активная транзакция передается вниз по слоям через context,
// репозитории достают её через GetExecutor
type Manager struct {
	db *sql.DB
}

// New создает новый transaction manager
func New(db *sql.DB) *Manager {
	return &Manager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.do(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable выполняет fn в транзакции с уровнем изоляции SERIALIZABLE
// Используется для read-check-write последовательностей (проверка доступности + запись)
func (m *Manager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.do(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *Manager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.do(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *Manager) do(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	// Вложенные вызовы переиспользуют уже открытую транзакцию
	if IsInTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("txmanager: begin transaction: %w", err)
	}

	err = fn(context.WithValue(ctx, txKey{}, tx))
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("txmanager: rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("txmanager: commit transaction: %w", err)
	}

	return nil
}

// GetExecutor возвращает активную транзакцию из контекста, если она есть,
// иначе переданный fallback (обычно *sql.DB репозитория)
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return fallback
}

// IsInTransaction проверяет, есть ли в контексте активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(*sql.Tx)
	return ok
}
