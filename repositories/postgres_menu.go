package repositories

import (
	"context"
	"fmt"

	"frydays/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresMenuItemRepository struct {
	db *pgxpool.Pool
}

const menuColumns = `id, name, description, price, category, image, is_featured, discount_badge, created_at, updated_at`

func scanMenuItem(row pgx.Row, item *models.MenuItem) error {
	return row.Scan(
		&item.ID, &item.Name, &item.Description, &item.Price, &item.Category,
		&item.Image, &item.IsFeatured, &item.DiscountBadge, &item.CreatedAt, &item.UpdatedAt,
	)
}

func (r *PostgresMenuItemRepository) FindAll(ctx context.Context, filter MenuFilter) ([]models.MenuItem, error) {
	filter, err := filter.Normalize()
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + menuColumns + ` FROM menu_items WHERE TRUE`
	args := []interface{}{}
	paramIndex := 1

	if filter.FeaturedOnly {
		query += " AND is_featured = TRUE"
	}
	if filter.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", paramIndex)
		args = append(args, filter.Category)
		paramIndex++
	}
	query += " ORDER BY id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query menu items: %w", err)
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		var item models.MenuItem
		if err := scanMenuItem(rows, &item); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresMenuItemRepository) FindByID(ctx context.Context, id int) (*models.MenuItem, error) {
	item := &models.MenuItem{}
	row := r.db.QueryRow(ctx, `SELECT `+menuColumns+` FROM menu_items WHERE id = $1`, id)
	if err := scanMenuItem(row, item); err != nil {
		return nil, notFoundOr(err)
	}
	return item, nil
}

func (r *PostgresMenuItemRepository) FindByIDs(ctx context.Context, ids []int) (map[int]models.MenuItem, error) {
	found := make(map[int]models.MenuItem, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	rows, err := r.db.Query(ctx, `SELECT `+menuColumns+` FROM menu_items WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("query menu items by id: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.MenuItem
		if err := scanMenuItem(rows, &item); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		found[item.ID] = item
	}
	return found, rows.Err()
}

func (r *PostgresMenuItemRepository) Create(ctx context.Context, item *models.MenuItem) error {
	query := `
		INSERT INTO menu_items (name, description, price, category, image, is_featured, discount_badge, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, false, $6, NOW(), NOW())
		RETURNING id, is_featured, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		item.Name, item.Description, item.Price, item.Category, item.Image, item.DiscountBadge,
	).Scan(&item.ID, &item.IsFeatured, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert menu item: %w", err)
	}
	return nil
}

func (r *PostgresMenuItemRepository) Update(ctx context.Context, id int, patch models.MenuItemPatch) (*models.MenuItem, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	item := &models.MenuItem{}
	row := tx.QueryRow(ctx, `SELECT `+menuColumns+` FROM menu_items WHERE id = $1 FOR UPDATE`, id)
	if err := scanMenuItem(row, item); err != nil {
		return nil, notFoundOr(err)
	}

	patch.Apply(item)

	query := `
		UPDATE menu_items
		SET name = $1, description = $2, price = $3, category = $4, image = $5,
		    is_featured = $6, discount_badge = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING updated_at
	`
	err = tx.QueryRow(ctx, query,
		item.Name, item.Description, item.Price, item.Category, item.Image,
		item.IsFeatured, item.DiscountBadge, id,
	).Scan(&item.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("update menu item: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *PostgresMenuItemRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresMenuItemRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count menu items: %w", err)
	}
	return total, nil
}
