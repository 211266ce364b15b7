package scriptrepo

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

const scriptColumns = `id, title, resource_name, description, price_points, status, features, requirements, created_at, updated_at`

func scanScript(row pg.RowScanner) (*domain.Script, error) {
	var script domain.Script
	err := row.Scan(&script.ID, &script.Title, &script.ResourceName, &script.Description,
		&script.PricePoints, &script.Status, &script.Features, &script.Requirements,
		&script.CreatedAt, &script.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &script, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Script, error) {
	query := `
        SELECT ` + scriptColumns + `
        FROM scripts
        WHERE id = $1
    `
	script, err := scanScript(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find script by id", zap.Error(err))
		return nil, err
	}
	return script, nil
}

func (r *Repository) FindByResourceName(ctx context.Context, resourceName string) (*domain.Script, error) {
	query := `
        SELECT ` + scriptColumns + `
        FROM scripts
        WHERE resource_name = $1
    `
	script, err := scanScript(r.db.QueryRow(ctx, query, resourceName))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find script by resource name", zap.Error(err))
		return nil, err
	}
	return script, nil
}

func (r *Repository) List(ctx context.Context, status string, limit, offset int) ([]domain.Script, error) {
	query := `
        SELECT ` + scriptColumns + `
        FROM scripts
        WHERE $1 = '' OR status = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		zap.L().Error("can't list scripts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var scripts []domain.Script
	for rows.Next() {
		script, err := scanScript(rows)
		if err != nil {
			zap.L().Error("can't scan script row", zap.Error(err))
			return nil, err
		}
		scripts = append(scripts, *script)
	}
	return scripts, nil
}

func (r *Repository) Count(ctx context.Context, status string) (int, error) {
	query := `
        SELECT count(*)
        FROM scripts
        WHERE $1 = '' OR status = $1
    `
	var total int
	if err := r.db.QueryRow(ctx, query, status).Scan(&total); err != nil {
		zap.L().Error("can't count scripts", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) Create(ctx context.Context, script *domain.Script) (*domain.Script, error) {
	query := `
        INSERT INTO scripts (title, resource_name, description, price_points, status, features, requirements)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + scriptColumns + `
    `
	created, err := scanScript(r.db.QueryRow(ctx, query,
		script.Title, script.ResourceName, script.Description, script.PricePoints,
		script.Status, script.Features, script.Requirements))
	if err != nil {
		zap.L().Error("can't create script", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) Update(ctx context.Context, script *domain.Script) error {
	query := `
        UPDATE scripts
        SET title = $1, description = $2, price_points = $3, status = $4,
            features = $5, requirements = $6, updated_at = now()
        WHERE id = $7
    `
	if _, err := r.db.Exec(ctx, query,
		script.Title, script.Description, script.PricePoints, script.Status,
		script.Features, script.Requirements, script.ID); err != nil {
		zap.L().Error("can't update script", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	query := `
        DELETE FROM scripts
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		zap.L().Error("can't delete script", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindVersions(ctx context.Context, scriptID int) ([]domain.ScriptVersion, error) {
	query := `
        SELECT id, script_id, version, download_url, notes, created_at
        FROM script_versions
        WHERE script_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, scriptID)
	if err != nil {
		zap.L().Error("can't get script versions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var versions []domain.ScriptVersion
	for rows.Next() {
		var v domain.ScriptVersion
		err := rows.Scan(&v.ID, &v.ScriptID, &v.Version, &v.DownloadURL, &v.Notes, &v.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan script version row", zap.Error(err))
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, nil
}

// ReplaceVersions swaps the nested version entries wholesale; admin edits
// always submit the full set.
func (r *Repository) ReplaceVersions(ctx context.Context, scriptID int, versions []domain.ScriptVersion) error {
	deleteQuery := `
        DELETE FROM script_versions
        WHERE script_id = $1
    `
	insertQuery := `
        INSERT INTO script_versions (script_id, version, download_url, notes)
        VALUES ($1, $2, $3, $4)
    `
	if _, err := r.db.Exec(ctx, deleteQuery, scriptID); err != nil {
		zap.L().Error("can't delete script versions", zap.Error(err))
		return err
	}
	for _, v := range versions {
		if _, err := r.db.Exec(ctx, insertQuery, scriptID, v.Version, v.DownloadURL, v.Notes); err != nil {
			zap.L().Error("can't insert script version", zap.Error(err))
			return err
		}
	}
	return nil
}
