package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/velmoria/scriptstore/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func userRows(users ...domain.User) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"id", "external_id", "name", "email", "avatar",
		"role", "points", "password_hash", "is_member", "created_at"})
	for _, u := range users {
		rows.AddRow(u.ID, u.ExternalID, u.Name, u.Email, u.Avatar,
			u.Role, u.Points, u.PasswordHash, u.IsMember, u.CreatedAt)
	}
	return rows
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT id, external_id, name, email, avatar, role, points, password_hash, is_member, created_at FROM users WHERE id = $1`)

	tests := []struct {
		name      string
		mockSetup func()
		expectNil bool
		expectErr bool
	}{
		{
			name: "Existing user",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).
					WillReturnRows(userRows(domain.User{ID: 1, ExternalID: "discord:100", Name: "velma", Role: domain.RoleUser, Points: 500, CreatedAt: time.Now()}))
			},
		},
		{
			name: "Unknown id returns nil",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).WillReturnError(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			user, err := repo.FindByID(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.expectNil {
					assert.Nil(t, user)
				} else {
					assert.Equal(t, "velma", user.Name)
				}
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT id, external_id, name, email, avatar, role, points, password_hash, is_member, created_at FROM users WHERE email = $1`)

	mock.ExpectQuery(query).WithArgs("velma@example.com").
		WillReturnRows(userRows(domain.User{ID: 1, Email: "velma@example.com", Role: domain.RoleUser}))

	user, err := repo.FindByEmail(context.Background(), "velma@example.com")
	assert.NoError(t, err)
	assert.Equal(t, 1, user.ID)

	mock.ExpectQuery(query).WithArgs("nobody@example.com").WillReturnError(pgx.ErrNoRows)

	user, err = repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByExternalID(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT id, external_id, name, email, avatar, role, points, password_hash, is_member, created_at FROM users WHERE external_id = $1`)

	mock.ExpectQuery(query).WithArgs("discord:100").
		WillReturnRows(userRows(domain.User{ID: 1, ExternalID: "discord:100", Role: domain.RoleUser}))

	user, err := repo.FindByExternalID(context.Background(), "discord:100")
	assert.NoError(t, err)
	assert.Equal(t, "discord:100", user.ExternalID)

	mock.ExpectQuery(query).WithArgs("discord:999").WillReturnError(pgx.ErrNoRows)

	user, err = repo.FindByExternalID(context.Background(), "discord:999")
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (external_id, name, email, avatar, role, points, password_hash) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, external_id, name, email, avatar, role, points, password_hash, is_member, created_at`)).
		WithArgs("discord:100", "velma", "velma@example.com", "https://cdn.example.com/a.png", domain.RoleUser, 0, "").
		WillReturnRows(userRows(domain.User{
			ID:         1,
			ExternalID: "discord:100",
			Name:       "velma",
			Email:      "velma@example.com",
			Avatar:     "https://cdn.example.com/a.png",
			Role:       domain.RoleUser,
			CreatedAt:  time.Now(),
		}))

	created, err := repo.Create(context.Background(), &domain.User{
		ExternalID: "discord:100",
		Name:       "velma",
		Email:      "velma@example.com",
		Avatar:     "https://cdn.example.com/a.png",
		Role:       domain.RoleUser,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, domain.RoleUser, created.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateProfile(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET name = $1, email = $2, avatar = $3 WHERE id = $4`)).
		WithArgs("velma", "velma@example.com", "https://cdn.example.com/b.png", 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateProfile(context.Background(), 1, "velma", "velma@example.com", "https://cdn.example.com/b.png")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateRole(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET role = $1 WHERE id = $2`)).
		WithArgs(domain.RoleAdmin, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateRole(context.Background(), 1, domain.RoleAdmin)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateMembership(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET is_member = $1 WHERE external_id = $2`)).
		WithArgs(true, "discord:100").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateMembership(context.Background(), "discord:100", true)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, external_id, name, email, avatar, role, points, password_hash, is_member, created_at FROM users WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%' ORDER BY created_at DESC LIMIT $2 OFFSET $3`)).
		WithArgs("vel", 20, 0).
		WillReturnRows(userRows(domain.User{ID: 1, Name: "velma", Role: domain.RoleUser}))

	users, err := repo.List(context.Background(), "vel", 20, 0)
	assert.NoError(t, err)
	assert.Len(t, users, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Count(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM users WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'`)).
		WithArgs("").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(120))

	total, err := repo.Count(context.Background(), "")
	assert.NoError(t, err)
	assert.Equal(t, 120, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
