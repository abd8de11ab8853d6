package repositories

import (
	"context"
	"errors"
	"fmt"

	"frydays/cart"
	"frydays/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresCartRepository struct {
	db *pgxpool.Pool
}

const cartItemColumns = `id, user_id, menu_item_id, quantity, created_at, updated_at`

func (r *PostgresCartRepository) ListByUser(ctx context.Context, userID int) ([]CartEntry, error) {
	query := `
		SELECT
			ci.id, ci.user_id, ci.menu_item_id, ci.quantity, ci.created_at, ci.updated_at,
			m.id, m.name, m.description, m.price, m.category, m.image,
			m.is_featured, m.discount_badge, m.created_at, m.updated_at
		FROM cart_items ci
		JOIN menu_items m ON m.id = ci.menu_item_id
		WHERE ci.user_id = $1
		ORDER BY ci.created_at, ci.id
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query cart: %w", err)
	}
	defer rows.Close()

	entries := []CartEntry{}
	for rows.Next() {
		var e CartEntry
		err := rows.Scan(
			&e.Item.ID, &e.Item.UserID, &e.Item.MenuItemID, &e.Item.Quantity, &e.Item.CreatedAt, &e.Item.UpdatedAt,
			&e.MenuItem.ID, &e.MenuItem.Name, &e.MenuItem.Description, &e.MenuItem.Price, &e.MenuItem.Category,
			&e.MenuItem.Image, &e.MenuItem.IsFeatured, &e.MenuItem.DiscountBadge, &e.MenuItem.CreatedAt, &e.MenuItem.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan cart row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *PostgresCartRepository) FindLine(ctx context.Context, userID, menuItemID int) (*models.CartItem, error) {
	item := &models.CartItem{}
	err := r.db.QueryRow(ctx,
		`SELECT `+cartItemColumns+` FROM cart_items WHERE user_id = $1 AND menu_item_id = $2`,
		userID, menuItemID,
	).Scan(&item.ID, &item.UserID, &item.MenuItemID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return item, nil
}

func (r *PostgresCartRepository) AddOrIncrement(ctx context.Context, userID, menuItemID, qty int) (*models.CartItem, error) {
	if qty < 1 {
		qty = 1
	}
	if qty > cart.MaxQuantity {
		return nil, cart.ErrQuantityLimit
	}
	// The WHERE clause skips the update once the line would pass the limit,
	// which leaves RETURNING empty.
	query := `
		INSERT INTO cart_items (user_id, menu_item_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (user_id, menu_item_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = NOW()
		WHERE cart_items.quantity + EXCLUDED.quantity <= $4
		RETURNING ` + cartItemColumns

	item := &models.CartItem{}
	err := r.db.QueryRow(ctx, query, userID, menuItemID, qty, cart.MaxQuantity).
		Scan(&item.ID, &item.UserID, &item.MenuItemID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows), pgErrCode(err) == pgCheckViolation:
			return nil, cart.ErrQuantityLimit
		case pgErrCode(err) == pgForeignKeyViolation:
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("upsert cart item: %w", err)
	}
	return item, nil
}

func (r *PostgresCartRepository) SetQuantity(ctx context.Context, userID, cartItemID, qty int) error {
	if qty <= 0 {
		return r.Remove(ctx, userID, cartItemID)
	}
	if qty > cart.MaxQuantity {
		return cart.ErrQuantityLimit
	}
	result, err := r.db.Exec(ctx,
		`UPDATE cart_items SET quantity = $1, updated_at = NOW() WHERE id = $2 AND user_id = $3`,
		qty, cartItemID, userID,
	)
	if err != nil {
		return fmt.Errorf("update cart item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresCartRepository) Remove(ctx context.Context, userID, cartItemID int) error {
	result, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE id = $1 AND user_id = $2`, cartItemID, userID)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresCartRepository) Clear(ctx context.Context, userID int) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
