package packagerepo

import (
	"context"
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

func packageRows(pkgs ...domain.PointsPackage) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"id", "name", "amount", "points", "bonus_points", "is_active", "created_at"})
	for _, p := range pkgs {
		rows.AddRow(p.ID, p.Name, p.Amount, p.Points, p.BonusPoints, p.IsActive, p.CreatedAt)
	}
	return rows
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT id, name, amount, points, bonus_points, is_active, created_at FROM points_packages WHERE id = $1`)

	mock.ExpectQuery(query).WithArgs(2).
		WillReturnRows(packageRows(domain.PointsPackage{ID: 2, Name: "Starter", Amount: 9.99, Points: 1000, BonusPoints: 100, IsActive: true}))

	pkg, err := repo.FindByID(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, 1000, pkg.Points)

	mock.ExpectQuery(query).WithArgs(99).WillReturnError(pgx.ErrNoRows)

	pkg, err = repo.FindByID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, pkg)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT id, name, amount, points, bonus_points, is_active, created_at FROM points_packages WHERE NOT $1 OR is_active ORDER BY amount ASC`)

	mock.ExpectQuery(query).WithArgs(true).
		WillReturnRows(packageRows(
			domain.PointsPackage{ID: 2, Name: "Starter", Amount: 9.99, Points: 1000, BonusPoints: 100, IsActive: true},
			domain.PointsPackage{ID: 3, Name: "Pro", Amount: 24.99, Points: 2800, BonusPoints: 450, IsActive: true},
		))

	pkgs, err := repo.List(context.Background(), true)
	assert.NoError(t, err)
	assert.Len(t, pkgs, 2)
	assert.Equal(t, "Pro", pkgs[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO points_packages (name, amount, points, bonus_points, is_active) VALUES ($1, $2, $3, $4, $5) RETURNING id, name, amount, points, bonus_points, is_active, created_at`)).
		WithArgs("Starter", 9.99, 1000, 100, true).
		WillReturnRows(packageRows(domain.PointsPackage{
			ID:          2,
			Name:        "Starter",
			Amount:      9.99,
			Points:      1000,
			BonusPoints: 100,
			IsActive:    true,
			CreatedAt:   time.Now(),
		}))

	created, err := repo.Create(context.Background(), &domain.PointsPackage{
		Name:        "Starter",
		Amount:      9.99,
		Points:      1000,
		BonusPoints: 100,
		IsActive:    true,
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE points_packages SET name = $1, amount = $2, points = $3, bonus_points = $4, is_active = $5 WHERE id = $6`)).
		WithArgs("Starter", 9.99, 1100, 100, false, 2).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Update(context.Background(), &domain.PointsPackage{
		ID:          2,
		Name:        "Starter",
		Amount:      9.99,
		Points:      1100,
		BonusPoints: 100,
		IsActive:    false,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM points_packages WHERE id = $1`)).
		WithArgs(2).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Delete(context.Background(), 2)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
