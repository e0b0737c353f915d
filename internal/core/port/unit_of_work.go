package port

import "context"

// UnitOfWork is a pattern that allows to run several repository calls in one transaction
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(uow UnitOfWork) error) error
	VideoRepo() VideoRepository
}
