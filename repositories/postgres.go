package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

type PostgresStore struct {
	pool       *pgxpool.Pool
	users      *PostgresUserRepository
	menuItems  *PostgresMenuItemRepository
	promotions *PostgresPromotionRepository
	carts      *PostgresCartRepository
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		pool:       pool,
		users:      &PostgresUserRepository{db: pool},
		menuItems:  &PostgresMenuItemRepository{db: pool},
		promotions: &PostgresPromotionRepository{db: pool},
		carts:      &PostgresCartRepository{db: pool},
	}
}

func (s *PostgresStore) Users() UserRepository           { return s.users }
func (s *PostgresStore) MenuItems() MenuItemRepository   { return s.menuItems }
func (s *PostgresStore) Promotions() PromotionRepository { return s.promotions }
func (s *PostgresStore) Carts() CartRepository           { return s.carts }

func (s *PostgresStore) Close() {
	s.pool.Close()
}

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func notFoundOr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
