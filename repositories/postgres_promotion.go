package repositories

import (
	"context"
	"fmt"

	"frydays/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresPromotionRepository struct {
	db *pgxpool.Pool
}

const promotionColumns = `id, title, description, price, image, promo_type, created_at`

func scanPromotion(row pgx.Row, p *models.Promotion) error {
	return row.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Image, &p.PromoType, &p.CreatedAt)
}

func (r *PostgresPromotionRepository) FindAll(ctx context.Context, filter PromotionFilter) ([]models.Promotion, error) {
	filter, err := filter.Normalize()
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + promotionColumns + ` FROM promotions`
	args := []interface{}{}
	if filter.Slot != "" {
		query += ` WHERE promo_type = $1`
		args = append(args, filter.Slot)
	}
	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query promotions: %w", err)
	}
	defer rows.Close()

	promos := []models.Promotion{}
	for rows.Next() {
		var p models.Promotion
		if err := scanPromotion(rows, &p); err != nil {
			return nil, fmt.Errorf("scan promotion: %w", err)
		}
		promos = append(promos, p)
	}
	return promos, rows.Err()
}

func (r *PostgresPromotionRepository) FindByID(ctx context.Context, id int) (*models.Promotion, error) {
	p := &models.Promotion{}
	row := r.db.QueryRow(ctx, `SELECT `+promotionColumns+` FROM promotions WHERE id = $1`, id)
	if err := scanPromotion(row, p); err != nil {
		return nil, notFoundOr(err)
	}
	return p, nil
}

func (r *PostgresPromotionRepository) Create(ctx context.Context, p *models.Promotion) error {
	query := `
		INSERT INTO promotions (title, description, price, image, promo_type, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, p.Title, p.Description, p.Price, p.Image, p.PromoType).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert promotion: %w", err)
	}
	return nil
}

func (r *PostgresPromotionRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.Exec(ctx, `DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete promotion: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresPromotionRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM promotions`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count promotions: %w", err)
	}
	return total, nil
}
