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

var roleColumns = map[string]string{
	"name": "name",
}

type RoleRepository interface {
	Create(ctx context.Context, role *model.Role) (*model.Role, error)
	FindByID(ctx context.Context, id int) (*model.Role, error)
	List(ctx context.Context, conds filter.Conditions) ([]*model.Role, error)
	Update(ctx context.Context, id int, role *model.Role) (*model.Role, error)
	Delete(ctx context.Context, id int) (*model.Role, error)
}

type RoleRepositoryImpl struct {
	db database.DBTX
}

func NewRoleRepository(db database.DBTX) RoleRepository {
	return &RoleRepositoryImpl{
		db: db,
	}
}

func (r *RoleRepositoryImpl) Create(ctx context.Context, role *model.Role) (*model.Role, error) {
	query := `
		INSERT INTO roles (name)
		VALUES ($1)
		RETURNING id, name
	`
	var created model.Role
	err := r.db.QueryRow(ctx, query, role.Name).Scan(
		&created.ID,
		&created.Name,
	)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *RoleRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Role, error) {
	query := `
		SELECT id, name
		FROM roles
		WHERE id = $1
	`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *RoleRepositoryImpl) List(ctx context.Context, conds filter.Conditions) ([]*model.Role, error) {
	query, args, err := conds.Apply("SELECT id, name FROM roles", roleColumns, "id")
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := make([]*model.Role, 0)
	for rows.Next() {
		var role model.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		roles = append(roles, &role)
	}
	return roles, rows.Err()
}

func (r *RoleRepositoryImpl) Update(ctx context.Context, id int, role *model.Role) (*model.Role, error) {
	query := `
		UPDATE roles
		SET name = $1
		WHERE id = $2
		RETURNING id, name
	`
	return r.scanOne(r.db.QueryRow(ctx, query, role.Name, id))
}

func (r *RoleRepositoryImpl) Delete(ctx context.Context, id int) (*model.Role, error) {
	query := `
		DELETE FROM roles
		WHERE id = $1
		RETURNING id, name
	`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *RoleRepositoryImpl) scanOne(row pgx.Row) (*model.Role, error) {
	var role model.Role
	err := row.Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, err
	}
	return &role, nil
}
