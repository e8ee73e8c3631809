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

var memberColumns = map[string]string{
	"name":         "name",
	"email":        "email",
	"departmentId": "department_id",
	"roleId":       "role_id",
}

const memberReturning = `id, email, password, name, cpf, street, neighborhood, city, state, zip_code, department_id, role_id`

type MemberRepository interface {
	Create(ctx context.Context, member *model.Member) (*model.Member, error)
	FindByID(ctx context.Context, id int) (*model.Member, error)
	FindByEmail(ctx context.Context, email string) (*model.Member, error)
	List(ctx context.Context, conds filter.Conditions) ([]*model.Member, error)
	Update(ctx context.Context, id int, member *model.Member) (*model.Member, error)
	Delete(ctx context.Context, id int) (*model.Member, error)
}

type MemberRepositoryImpl struct {
	db database.DBTX
}

func NewMemberRepository(db database.DBTX) MemberRepository {
	return &MemberRepositoryImpl{
		db: db,
	}
}

// rowScanner pgx.Row 與 pgx.Rows 共同的 Scan
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (*model.Member, error) {
	var member model.Member
	err := row.Scan(
		&member.ID,
		&member.Email,
		&member.Password,
		&member.Name,
		&member.CPF,
		&member.Street,
		&member.Neighborhood,
		&member.City,
		&member.State,
		&member.ZipCode,
		&member.DepartmentID,
		&member.RoleID,
	)
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepositoryImpl) Create(ctx context.Context, member *model.Member) (*model.Member, error) {
	query := `
		INSERT INTO members (email, password, name, cpf, street, neighborhood, city, state, zip_code, department_id, role_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + memberReturning

	return scanMember(r.db.QueryRow(ctx, query,
		member.Email,
		member.Password,
		member.Name,
		member.CPF,
		member.Street,
		member.Neighborhood,
		member.City,
		member.State,
		member.ZipCode,
		member.DepartmentID,
		member.RoleID,
	))
}

func (r *MemberRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Member, error) {
	query := `SELECT ` + memberReturning + `
		FROM members
		WHERE id = $1
	`
	return r.findOne(r.db.QueryRow(ctx, query, id))
}

func (r *MemberRepositoryImpl) FindByEmail(ctx context.Context, email string) (*model.Member, error) {
	query := `SELECT ` + memberReturning + `
		FROM members
		WHERE email = $1
	`
	return r.findOne(r.db.QueryRow(ctx, query, email))
}

func (r *MemberRepositoryImpl) List(ctx context.Context, conds filter.Conditions) ([]*model.Member, error) {
	query, args, err := conds.Apply("SELECT "+memberReturning+" FROM members", memberColumns, "id")
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]*model.Member, 0)
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, rows.Err()
}

// Update 整筆取代（非部分更新）
func (r *MemberRepositoryImpl) Update(ctx context.Context, id int, member *model.Member) (*model.Member, error) {
	query := `
		UPDATE members
		SET email = $1, password = $2, name = $3, cpf = $4, street = $5, neighborhood = $6,
			city = $7, state = $8, zip_code = $9, department_id = $10, role_id = $11
		WHERE id = $12
		RETURNING ` + memberReturning

	return r.findOne(r.db.QueryRow(ctx, query,
		member.Email,
		member.Password,
		member.Name,
		member.CPF,
		member.Street,
		member.Neighborhood,
		member.City,
		member.State,
		member.ZipCode,
		member.DepartmentID,
		member.RoleID,
		id,
	))
}

func (r *MemberRepositoryImpl) Delete(ctx context.Context, id int) (*model.Member, error) {
	query := `
		DELETE FROM members
		WHERE id = $1
		RETURNING ` + memberReturning

	return r.findOne(r.db.QueryRow(ctx, query, id))
}

func (r *MemberRepositoryImpl) findOne(row pgx.Row) (*model.Member, error) {
	member, err := scanMember(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}
