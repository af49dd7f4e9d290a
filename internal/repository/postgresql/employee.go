package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rtrack/rtrack-backend-go/internal/domain/employee"
	"github.com/rtrack/rtrack-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, employee_id, employee_name, reporting_manager_id, reporting_manager_name,
	vertical_head_id, vertical_head_name, vertical, status, exception`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.EmployeeID, &emp.EmployeeName,
		&emp.ReportingManagerID, &emp.ReportingManagerName,
		&emp.VerticalHeadID, &emp.VerticalHeadName,
		&emp.Vertical, &emp.Status, &emp.Exception,
	)
	return emp, err
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, e.db)

	var conditions []string
	var args []interface{}

	addCondition := func(cond string, arg interface{}) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filter.Search != "" {
		addCondition("(employee_id ILIKE $%d OR employee_name ILIKE $%[1]d)", "%"+filter.Search+"%")
	}
	if filter.Vertical != "" && !strings.EqualFold(filter.Vertical, "all") {
		addCondition("vertical = $%d", filter.Vertical)
	}
	if filter.Status != "" && !strings.EqualFold(filter.Status, "all") {
		addCondition("status = $%d", filter.Status)
	}
	if filter.Exception != "" && !strings.EqualFold(filter.Exception, "all") {
		addCondition("exception = $%d", filter.Exception)
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM employees"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count employees: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM employees%s ORDER BY employee_id ASC LIMIT $%d OFFSET $%d",
		employeeColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// GetAll implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetAll(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, fmt.Sprintf("SELECT %s FROM employees ORDER BY employee_id ASC", employeeColumns))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetByEmployeeID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf("SELECT %s FROM employees WHERE employee_id = $1", employeeColumns)
	emp, err := scanEmployee(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`
		INSERT INTO employees (
			employee_id, employee_name, reporting_manager_id, reporting_manager_name,
			vertical_head_id, vertical_head_name, vertical, status, exception
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s
	`, employeeColumns)

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.EmployeeID, newEmployee.EmployeeName,
		newEmployee.ReportingManagerID, newEmployee.ReportingManagerName,
		newEmployee.VerticalHeadID, newEmployee.VerticalHeadName,
		newEmployee.Vertical, newEmployee.Status, newEmployee.Exception,
	))
	if err != nil {
		return employee.Employee{}, err
	}
	return created, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, employeeID string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	var sets []string
	var args []interface{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.EmployeeName != nil {
		addSet("employee_name", *req.EmployeeName)
	}
	if req.ReportingManagerID != nil {
		addSet("reporting_manager_id", *req.ReportingManagerID)
	}
	if req.ReportingManagerName != nil {
		addSet("reporting_manager_name", *req.ReportingManagerName)
	}
	if req.VerticalHeadID != nil {
		addSet("vertical_head_id", *req.VerticalHeadID)
	}
	if req.VerticalHeadName != nil {
		addSet("vertical_head_name", *req.VerticalHeadName)
	}
	if req.Vertical != nil {
		addSet("vertical", *req.Vertical)
	}
	if req.Status != nil {
		addSet("status", *req.Status)
	}
	if req.Exception != nil {
		addSet("exception", *req.Exception)
	}

	if len(sets) == 0 {
		return e.GetByEmployeeID(ctx, employeeID)
	}

	args = append(args, employeeID)
	query := fmt.Sprintf(
		"UPDATE employees SET %s WHERE employee_id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), employeeColumns,
	)

	updated, err := scanEmployee(q.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return updated, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, "DELETE FROM employees WHERE employee_id = $1", employeeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// ReplaceAll implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ReplaceAll(ctx context.Context, employees []employee.Employee) (int, error) {
	inserted := 0
	err := WithTransaction(ctx, e.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, e.db)

		if _, err := q.Exec(txCtx, "DELETE FROM employees"); err != nil {
			return fmt.Errorf("clear employees: %w", err)
		}

		for _, emp := range employees {
			_, err := q.Exec(txCtx, `
				INSERT INTO employees (
					employee_id, employee_name, reporting_manager_id, reporting_manager_name,
					vertical_head_id, vertical_head_name, vertical, status, exception
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			`,
				emp.EmployeeID, emp.EmployeeName,
				emp.ReportingManagerID, emp.ReportingManagerName,
				emp.VerticalHeadID, emp.VerticalHeadName,
				emp.Vertical, emp.Status, emp.Exception,
			)
			if err != nil {
				return fmt.Errorf("insert employee %s: %w", emp.EmployeeID, err)
			}
			inserted++
		}

		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// ReporteeIDs implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ReporteeIDs(ctx context.Context, managerID string) ([]string, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, "SELECT employee_id FROM employees WHERE reporting_manager_id = $1", managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// NamesByEmployeeIDs implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) NamesByEmployeeIDs(ctx context.Context, employeeIDs []string) (map[string]string, error) {
	q := GetQuerier(ctx, e.db)

	names := make(map[string]string)
	if len(employeeIDs) == 0 {
		return names, nil
	}

	rows, err := q.Query(ctx,
		"SELECT employee_id, employee_name FROM employees WHERE employee_id = ANY($1)",
		employeeIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}

	return names, rows.Err()
}

// CountByException implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) CountByException(ctx context.Context, name string) (int64, error) {
	q := GetQuerier(ctx, e.db)

	var count int64
	err := q.QueryRow(ctx, "SELECT COUNT(*) FROM employees WHERE exception = $1", name).Scan(&count)
	return count, err
}

// DistinctExceptions implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) DistinctExceptions(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, `
		SELECT DISTINCT TRIM(exception) FROM employees
		WHERE exception IS NOT NULL AND TRIM(exception) <> ''
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

// Facets implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Facets(ctx context.Context) (employee.Facets, error) {
	q := GetQuerier(ctx, e.db)

	facets := employee.Facets{
		Verticals:  []string{},
		Statuses:   []string{},
		Exceptions: []string{},
	}

	collect := func(query string, dest *[]string) error {
		rows, err := q.Query(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var value string
			if err := rows.Scan(&value); err != nil {
				return err
			}
			*dest = append(*dest, value)
		}
		return rows.Err()
	}

	if err := collect(`SELECT DISTINCT vertical FROM employees WHERE vertical IS NOT NULL AND vertical <> '' ORDER BY vertical`, &facets.Verticals); err != nil {
		return employee.Facets{}, err
	}
	if err := collect(`SELECT DISTINCT status FROM employees WHERE status IS NOT NULL AND status <> '' ORDER BY status`, &facets.Statuses); err != nil {
		return employee.Facets{}, err
	}
	if err := collect(`SELECT DISTINCT exception FROM employees WHERE exception IS NOT NULL AND exception <> '' ORDER BY exception`, &facets.Exceptions); err != nil {
		return employee.Facets{}, err
	}

	return facets, nil
}
