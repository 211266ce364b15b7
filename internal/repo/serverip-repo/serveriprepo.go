package serveriprepo

import (
	"context"
	"errors"
	"time"

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

const bindingColumns = `id, user_id, resource_name, ip_address, license_key, is_active, is_verified, last_active`

func scanBinding(row pg.RowScanner) (*domain.ServerIP, error) {
	var binding domain.ServerIP
	err := row.Scan(&binding.ID, &binding.UserID, &binding.ResourceName, &binding.IPAddress,
		&binding.LicenseKey, &binding.IsActive, &binding.IsVerified, &binding.LastActive)
	if err != nil {
		return nil, err
	}
	return &binding, nil
}

func (r *Repository) FindByUserAndResource(ctx context.Context, userID int, resourceName string) (*domain.ServerIP, error) {
	query := `
        SELECT ` + bindingColumns + `
        FROM server_ips
        WHERE user_id = $1 AND resource_name = $2
    `
	binding, err := scanBinding(r.db.QueryRow(ctx, query, userID, resourceName))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find server ip binding", zap.Error(err))
		return nil, err
	}
	return binding, nil
}

func (r *Repository) FindByResourceAndIP(ctx context.Context, resourceName, ipAddress string) (*domain.ServerIP, error) {
	query := `
        SELECT ` + bindingColumns + `
        FROM server_ips
        WHERE resource_name = $1 AND ip_address = $2
    `
	binding, err := scanBinding(r.db.QueryRow(ctx, query, resourceName, ipAddress))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find server ip binding by address", zap.Error(err))
		return nil, err
	}
	return binding, nil
}

func (r *Repository) FindByLicenseKey(ctx context.Context, licenseKey string) (*domain.ServerIP, error) {
	query := `
        SELECT ` + bindingColumns + `
        FROM server_ips
        WHERE license_key = $1
    `
	binding, err := scanBinding(r.db.QueryRow(ctx, query, licenseKey))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find server ip binding by license key", zap.Error(err))
		return nil, err
	}
	return binding, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.ServerIP, error) {
	query := `
        SELECT ` + bindingColumns + `
        FROM server_ips
        WHERE user_id = $1
        ORDER BY resource_name
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get server ip bindings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bindings []domain.ServerIP
	for rows.Next() {
		binding, err := scanBinding(rows)
		if err != nil {
			zap.L().Error("can't scan server ip row", zap.Error(err))
			return nil, err
		}
		bindings = append(bindings, *binding)
	}
	return bindings, nil
}

func (r *Repository) Create(ctx context.Context, binding *domain.ServerIP) (*domain.ServerIP, error) {
	query := `
        INSERT INTO server_ips (user_id, resource_name, ip_address, license_key)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + bindingColumns + `
    `
	created, err := scanBinding(r.db.QueryRow(ctx, query,
		binding.UserID, binding.ResourceName, binding.IPAddress, binding.LicenseKey))
	if err != nil {
		zap.L().Error("can't create server ip binding", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// UpdateAddress rebinds the address and drops verification; the new address
// must verify again before downloads are authorized.
func (r *Repository) UpdateAddress(ctx context.Context, id int, ipAddress string) error {
	query := `
        UPDATE server_ips
        SET ip_address = $1, is_active = FALSE, is_verified = FALSE
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, ipAddress, id); err != nil {
		zap.L().Error("can't update server ip address", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) MarkVerified(ctx context.Context, id int, lastActive time.Time) error {
	query := `
        UPDATE server_ips
        SET is_active = TRUE, is_verified = TRUE, last_active = $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, lastActive, id); err != nil {
		zap.L().Error("can't mark server ip verified", zap.Error(err))
		return err
	}
	return nil
}
