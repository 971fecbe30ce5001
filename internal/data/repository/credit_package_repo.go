package repository

import (
	"context"
	"fmt"

	"coaching-booking/internal/data/entity"
	"coaching-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CreditPackageRepository interface {
	Create(ctx context.Context, pkg *entity.CreditPackage) error
	FindAll(ctx context.Context) ([]*entity.CreditPackage, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CreditPackage, error)
	FindByName(ctx context.Context, name string) (*entity.CreditPackage, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type creditPackageRepository struct {
	db  database.Queryer
	log *zap.Logger
}

func NewCreditPackageRepository(db database.Queryer, log *zap.Logger) CreditPackageRepository {
	return &creditPackageRepository{
		db:  db,
		log: log.With(zap.String("repository", "credit_package")),
	}
}

func (r *creditPackageRepository) Create(ctx context.Context, pkg *entity.CreditPackage) error {
	query := `
		INSERT INTO credit_packages (id, name, credit_amount, price, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		pkg.ID,
		pkg.Name,
		pkg.CreditAmount,
		pkg.Price,
		pkg.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create credit package",
			zap.Error(err),
			zap.String("name", pkg.Name),
		)
		return fmt.Errorf("create credit package %s: %w", pkg.Name, err)
	}

	return nil
}

func (r *creditPackageRepository) FindAll(ctx context.Context) ([]*entity.CreditPackage, error) {
	query := `SELECT id, name, credit_amount, price, created_at FROM credit_packages ORDER BY credit_amount`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find credit packages", zap.Error(err))
		return nil, fmt.Errorf("find credit packages: %w", err)
	}
	defer rows.Close()

	var packages []*entity.CreditPackage
	for rows.Next() {
		var pkg entity.CreditPackage
		err := rows.Scan(&pkg.ID, &pkg.Name, &pkg.CreditAmount, &pkg.Price, &pkg.CreatedAt)
		if err != nil {
			r.log.Error("Failed to scan credit package row", zap.Error(err))
			return nil, fmt.Errorf("scan credit package row: %w", err)
		}
		packages = append(packages, &pkg)
	}

	return packages, nil
}

func (r *creditPackageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CreditPackage, error) {
	query := `SELECT id, name, credit_amount, price, created_at FROM credit_packages WHERE id = $1`

	var pkg entity.CreditPackage
	err := r.db.QueryRow(ctx, query, id).Scan(&pkg.ID, &pkg.Name, &pkg.CreditAmount, &pkg.Price, &pkg.CreatedAt)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find credit package by ID",
			zap.Error(err),
			zap.String("credit_package_id", id.String()),
		)
		return nil, fmt.Errorf("find credit package by ID %s: %w", id.String(), err)
	}

	return &pkg, nil
}

func (r *creditPackageRepository) FindByName(ctx context.Context, name string) (*entity.CreditPackage, error) {
	query := `SELECT id, name, credit_amount, price, created_at FROM credit_packages WHERE name = $1`

	var pkg entity.CreditPackage
	err := r.db.QueryRow(ctx, query, name).Scan(&pkg.ID, &pkg.Name, &pkg.CreditAmount, &pkg.Price, &pkg.CreatedAt)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find credit package by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find credit package by name %s: %w", name, err)
	}

	return &pkg, nil
}

func (r *creditPackageRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM credit_packages WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete credit package",
			zap.Error(err),
			zap.String("credit_package_id", id.String()),
		)
		return false, fmt.Errorf("delete credit package %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}
