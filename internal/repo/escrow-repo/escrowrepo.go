package escrowrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/alphapoints/platform/internal/domain"
	"github.com/alphapoints/platform/internal/pg"
)

var ErrDuplicateAssetType = errors.New("vault already exists for asset type")

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) CreateVault(ctx context.Context, assetType string) (*domain.Vault, error) {
	query := `
        INSERT INTO vaults (asset_type, balance)
        VALUES ($1, 0)
        RETURNING id, asset_type, balance, created_at
    `
	row := r.db.QueryRow(ctx, query, assetType)
	var vault domain.Vault
	err := row.Scan(&vault.ID, &vault.AssetType, &vault.Balance, &vault.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrDuplicateAssetType
		}
		zap.L().Error("failed to create vault", zap.Error(err))
		return nil, err
	}
	return &vault, nil
}

func (r *Repository) FindVault(ctx context.Context, assetType string) (*domain.Vault, error) {
	query := `
        SELECT id, asset_type, balance, created_at
        FROM vaults
        WHERE asset_type = $1
    `
	return r.scanVault(r.db.QueryRow(ctx, query, assetType))
}

// FindVaultForUpdate locks the vault row, serializing deposits and
// withdrawals per asset type.
func (r *Repository) FindVaultForUpdate(ctx context.Context, assetType string) (*domain.Vault, error) {
	query := `
        SELECT id, asset_type, balance, created_at
        FROM vaults
        WHERE asset_type = $1
        FOR UPDATE
    `
	return r.scanVault(r.db.QueryRow(ctx, query, assetType))
}

func (r *Repository) SaveVault(ctx context.Context, vault *domain.Vault) error {
	query := `
		UPDATE vaults
		SET balance = $1
		WHERE asset_type = $2
	`
	_, err := r.db.Exec(ctx, query, vault.Balance, vault.AssetType)
	if err != nil {
		zap.L().Error("failed to save vault", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) scanVault(row pgx.Row) (*domain.Vault, error) {
	var vault domain.Vault
	err := row.Scan(&vault.ID, &vault.AssetType, &vault.Balance, &vault.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to scan vault", zap.Error(err))
		return nil, err
	}
	return &vault, nil
}
