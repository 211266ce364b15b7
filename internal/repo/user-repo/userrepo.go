package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/velmoria/scriptstore/internal/domain"
	"github.com/velmoria/scriptstore/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

const userColumns = `id, external_id, name, email, avatar, role, points, password_hash, is_member, created_at`

func scanUser(row pg.RowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.ExternalID, &user.Name, &user.Email, &user.Avatar,
		&user.Role, &user.Points, &user.PasswordHash, &user.IsMember, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE id = $1
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE email = $1
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByExternalID(ctx context.Context, externalID string) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE external_id = $1
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, externalID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user by external id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (external_id, name, email, avatar, role, points, password_hash)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + userColumns + `
    `
	created, err := scanUser(r.db.QueryRow(ctx, query,
		user.ExternalID, user.Name, user.Email, user.Avatar, user.Role, user.Points, user.PasswordHash))
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// UpdateProfile refreshes the mutable provider-sourced fields on login.
func (r *Repository) UpdateProfile(ctx context.Context, id int, name, email, avatar string) error {
	query := `
        UPDATE users
        SET name = $1, email = $2, avatar = $3
        WHERE id = $4
    `
	if _, err := r.db.Exec(ctx, query, name, email, avatar, id); err != nil {
		zap.L().Error("can't update user profile", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateRole(ctx context.Context, id int, role string) error {
	query := `
        UPDATE users
        SET role = $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, role, id); err != nil {
		zap.L().Error("can't update user role", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateMembership(ctx context.Context, externalID string, isMember bool) error {
	query := `
        UPDATE users
        SET is_member = $1
        WHERE external_id = $2
    `
	if _, err := r.db.Exec(ctx, query, isMember, externalID); err != nil {
		zap.L().Error("can't update user membership", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context, search string, limit, offset int) ([]domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, search, limit, offset)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, *user)
	}
	return users, nil
}

func (r *Repository) Count(ctx context.Context, search string) (int, error) {
	query := `
        SELECT count(*)
        FROM users
        WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'
    `
	var total int
	if err := r.db.QueryRow(ctx, query, search).Scan(&total); err != nil {
		zap.L().Error("can't count users", zap.Error(err))
		return 0, err
	}
	return total, nil
}
