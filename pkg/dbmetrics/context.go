package dbmetrics

import "context"

type ctxKey struct{}

var txKey = ctxKey{}

// WithExecutor кладет активную транзакцию в context.
// Используется transaction manager'ами; репозитории достают её через GetExecutor.
func WithExecutor(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetExecutor возвращает исполнителя запросов из context.
// Если в context есть активная транзакция - возвращает её,
// иначе возвращает fallback (обычное соединение репозитория).
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txKey).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction сообщает, выполняется ли текущий context внутри транзакции
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey).(TxExecutor)
	return ok
}
