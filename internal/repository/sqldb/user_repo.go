package sqldb

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/swblog/starwars-api/internal/domain"
	"github.com/swblog/starwars-api/internal/repository/ports"
)

const userColumns = `id, email, password_hash, password_salt, is_active`

type UserRepository struct {
	db sqlx.ExtContext
}

func NewUserRepo(db sqlx.ExtContext) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM user_account WHERE id = ?`

	var user domain.User
	if err := sqlx.GetContext(ctx, r.db, &user, r.db.Rebind(query), id); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM user_account ORDER BY id`

	users := make([]domain.User, 0)
	if err := sqlx.SelectContext(ctx, r.db, &users, query); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Create(ctx context.Context, email string, passwordHash, passwordSalt []byte, isActive bool) (*domain.User, error) {
	const query = `
		INSERT INTO user_account (email, password_hash, password_salt, is_active)
		VALUES (?, ?, ?, ?)
		RETURNING ` + userColumns

	var user domain.User
	row := r.db.QueryRowxContext(ctx, r.db.Rebind(query), email, passwordHash, passwordSalt, isActive)
	if err := row.StructScan(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, email string, isActive bool) (*domain.User, error) {
	const query = `
		UPDATE user_account
		SET email = ?, is_active = ?
		WHERE id = ?
		RETURNING ` + userColumns

	var user domain.User
	row := r.db.QueryRowxContext(ctx, r.db.Rebind(query), email, isActive, id)
	if err := row.StructScan(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash, passwordSalt []byte) error {
	const query = `UPDATE user_account SET password_hash = ?, password_salt = ? WHERE id = ?`
	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), passwordHash, passwordSalt, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM user_account WHERE id = ?`
	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

var _ ports.UserRepository = (*UserRepository)(nil)
