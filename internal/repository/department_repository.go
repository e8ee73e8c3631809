package repository

import (
	"context"
	"errors"

	"member-events-api/internal/database"
	"member-events-api/internal/filter"
	"member-events-api/internal/model"
	apperrors "member-events-api/pkg/app_errors"

	"github.com/jackc/pgx/v5"
)

// 可過濾欄位 allowlist
var departmentColumns = map[string]string{
	"name": "name",
}

type DepartmentRepository interface {
	Create(ctx context.Context, department *model.Department) (*model.Department, error)
	FindByID(ctx context.Context, id int) (*model.Department, error)
	List(ctx context.Context, conds filter.Conditions) ([]*model.Department, error)
	Update(ctx context.Context, id int, department *model.Department) (*model.Department, error)
	Delete(ctx context.Context, id int) (*model.Department, error)
}

type DepartmentRepositoryImpl struct {
	db database.DBTX
}

func NewDepartmentRepository(db database.DBTX) DepartmentRepository {
	return &DepartmentRepositoryImpl{
		db: db,
	}
}

func (r *DepartmentRepositoryImpl) Create(ctx context.Context, department *model.Department) (*model.Department, error) {
	query := `
		INSERT INTO departments (name)
		VALUES ($1)
		RETURNING id, name
	`
	var created model.Department
	err := r.db.QueryRow(ctx, query, department.Name).Scan(
		&created.ID,
		&created.Name,
	)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *DepartmentRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Department, error) {
	query := `
		SELECT id, name
		FROM departments
		WHERE id = $1
	`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *DepartmentRepositoryImpl) List(ctx context.Context, conds filter.Conditions) ([]*model.Department, error) {
	query, args, err := conds.Apply("SELECT id, name FROM departments", departmentColumns, "id")
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	departments := make([]*model.Department, 0)
	for rows.Next() {
		var department model.Department
		if err := rows.Scan(&department.ID, &department.Name); err != nil {
			return nil, err
		}
		departments = append(departments, &department)
	}
	return departments, rows.Err()
}

func (r *DepartmentRepositoryImpl) Update(ctx context.Context, id int, department *model.Department) (*model.Department, error) {
	query := `
		UPDATE departments
		SET name = $1
		WHERE id = $2
		RETURNING id, name
	`
	return r.scanOne(r.db.QueryRow(ctx, query, department.Name, id))
}

func (r *DepartmentRepositoryImpl) Delete(ctx context.Context, id int) (*model.Department, error) {
	query := `
		DELETE FROM departments
		WHERE id = $1
		RETURNING id, name
	`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *DepartmentRepositoryImpl) scanOne(row pgx.Row) (*model.Department, error) {
	var department model.Department
	err := row.Scan(&department.ID, &department.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, err
	}
	return &department, nil
}
