package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rtrack/rtrack-backend-go/internal/domain/exception"
	"github.com/rtrack/rtrack-backend-go/internal/pkg/database"
)

type exceptionRepositoryImpl struct {
	db *database.DB
}

func NewExceptionRepository(db *database.DB) exception.ExceptionRepository {
	return &exceptionRepositoryImpl{db: db}
}

const exceptionColumns = `id, name, created_at, updated_at`

func scanException(row pgx.Row) (exception.Exception, error) {
	var exc exception.Exception
	err := row.Scan(&exc.ID, &exc.Name, &exc.CreatedAt, &exc.UpdatedAt)
	return exc, err
}

// List implements exception.ExceptionRepository.
func (e *exceptionRepositoryImpl) List(ctx context.Context, filter exception.ExceptionFilter) ([]exception.Exception, int64, error) {
	q := GetQuerier(ctx, e.db)

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM exceptions").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count exceptions: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM exceptions ORDER BY name ASC LIMIT $1 OFFSET $2",
		exceptionColumns,
	)

	rows, err := q.Query(ctx, query, filter.PageSize, (filter.Page-1)*filter.PageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var exceptions []exception.Exception
	for rows.Next() {
		exc, err := scanException(rows)
		if err != nil {
			return nil, 0, err
		}
		exceptions = append(exceptions, exc)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return exceptions, total, nil
}

// GetByID implements exception.ExceptionRepository.
func (e *exceptionRepositoryImpl) GetByID(ctx context.Context, id int) (exception.Exception, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf("SELECT %s FROM exceptions WHERE id = $1", exceptionColumns)
	exc, err := scanException(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return exception.Exception{}, exception.ErrExceptionNotFound
		}
		return exception.Exception{}, err
	}
	return exc, nil
}

// GetByName implements exception.ExceptionRepository.
func (e *exceptionRepositoryImpl) GetByName(ctx context.Context, name string) (exception.Exception, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf("SELECT %s FROM exceptions WHERE name = $1", exceptionColumns)
	exc, err := scanException(q.QueryRow(ctx, query, name))
	if err != nil {
		if err == pgx.ErrNoRows {
			return exception.Exception{}, exception.ErrExceptionNotFound
		}
		return exception.Exception{}, err
	}
	return exc, nil
}

// Create implements exception.ExceptionRepository.
func (e *exceptionRepositoryImpl) Create(ctx context.Context, name string) (exception.Exception, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf("INSERT INTO exceptions (name) VALUES ($1) RETURNING %s", exceptionColumns)
	exc, err := scanException(q.QueryRow(ctx, query, name))
	if err != nil {
		return exception.Exception{}, err
	}
	return exc, nil
}

// UpdateName implements exception.ExceptionRepository.
func (e *exceptionRepositoryImpl) UpdateName(ctx context.Context, id int, name string) (exception.Exception, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(
		"UPDATE exceptions SET name = $1, updated_at = NOW() WHERE id = $2 RETURNING %s",
		exceptionColumns,
	)
	exc, err := scanException(q.QueryRow(ctx, query, name, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return exception.Exception{}, exception.ErrExceptionNotFound
		}
		return exception.Exception{}, err
	}
	return exc, nil
}

// Delete implements exception.ExceptionRepository.
func (e *exceptionRepositoryImpl) Delete(ctx context.Context, id int) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, "DELETE FROM exceptions WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return exception.ErrExceptionNotFound
	}
	return nil
}
