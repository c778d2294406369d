package repository

import (
	"context"
	"database/sql"

	"github.com/witherings/PocePao-sub001/internal/entity"
)

type AdminUserRepository struct {
	db *sql.DB
}

func NewAdminUserRepository(db *sql.DB) *AdminUserRepository {
	return &AdminUserRepository{db}
}

func (r *AdminUserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	user := &entity.AdminUser{}
	query := `SELECT id, username, email, password FROM admin_users WHERE email = ?`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&user.ID, &user.Username, &user.Email, &user.Password)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *AdminUserRepository) GetUserByEmailAndPassword(ctx context.Context, email, password string) (*entity.AdminUser, error) {
	user := &entity.AdminUser{}
	query := `SELECT id, username, email, password FROM admin_users WHERE email = ? AND password = ?`
	err := r.db.QueryRowContext(ctx, query, email, password).Scan(&user.ID, &user.Username, &user.Email, &user.Password)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *AdminUserRepository) CreateUser(ctx context.Context, user *entity.AdminUser) (*entity.AdminUser, error) {
	query := `INSERT INTO admin_users (username, email, password) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, user.Username, user.Email, user.Password)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	user.ID = int(id)
	return user, nil
}
