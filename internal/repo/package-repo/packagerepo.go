package packagerepo

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

const packageColumns = `id, name, amount, points, bonus_points, is_active, created_at`

func scanPackage(row pg.RowScanner) (*domain.PointsPackage, error) {
	var pkg domain.PointsPackage
	err := row.Scan(&pkg.ID, &pkg.Name, &pkg.Amount, &pkg.Points, &pkg.BonusPoints, &pkg.IsActive, &pkg.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.PointsPackage, error) {
	query := `
        SELECT ` + packageColumns + `
        FROM points_packages
        WHERE id = $1
    `
	pkg, err := scanPackage(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find points package", zap.Error(err))
		return nil, err
	}
	return pkg, nil
}

func (r *Repository) List(ctx context.Context, activeOnly bool) ([]domain.PointsPackage, error) {
	query := `
        SELECT ` + packageColumns + `
        FROM points_packages
        WHERE NOT $1 OR is_active
        ORDER BY amount ASC
    `
	rows, err := r.db.Query(ctx, query, activeOnly)
	if err != nil {
		zap.L().Error("can't list points packages", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var pkgs []domain.PointsPackage
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			zap.L().Error("can't scan points package row", zap.Error(err))
			return nil, err
		}
		pkgs = append(pkgs, *pkg)
	}
	return pkgs, nil
}

func (r *Repository) Create(ctx context.Context, pkg *domain.PointsPackage) (*domain.PointsPackage, error) {
	query := `
        INSERT INTO points_packages (name, amount, points, bonus_points, is_active)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + packageColumns + `
    `
	created, err := scanPackage(r.db.QueryRow(ctx, query,
		pkg.Name, pkg.Amount, pkg.Points, pkg.BonusPoints, pkg.IsActive))
	if err != nil {
		zap.L().Error("can't create points package", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) Update(ctx context.Context, pkg *domain.PointsPackage) error {
	query := `
        UPDATE points_packages
        SET name = $1, amount = $2, points = $3, bonus_points = $4, is_active = $5
        WHERE id = $6
    `
	if _, err := r.db.Exec(ctx, query,
		pkg.Name, pkg.Amount, pkg.Points, pkg.BonusPoints, pkg.IsActive, pkg.ID); err != nil {
		zap.L().Error("can't update points package", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	query := `
        DELETE FROM points_packages
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		zap.L().Error("can't delete points package", zap.Error(err))
		return err
	}
	return nil
}
