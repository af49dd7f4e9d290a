package exception

import "context"

type ExceptionRepository interface {
	List(ctx context.Context, filter ExceptionFilter) ([]Exception, int64, error)
	GetByID(ctx context.Context, id int) (Exception, error)
	GetByName(ctx context.Context, name string) (Exception, error)
	Create(ctx context.Context, name string) (Exception, error)
	UpdateName(ctx context.Context, id int, name string) (Exception, error)
	Delete(ctx context.Context, id int) error
}
