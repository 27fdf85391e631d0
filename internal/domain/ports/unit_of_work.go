package ports

import "context"

// UnitOfWork define a interface para gerenciamento de transações.
// A transação viaja no context; os repositórios a recuperam de lá.
type UnitOfWork interface {
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
