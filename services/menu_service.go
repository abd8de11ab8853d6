package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"frydays/metrics"
	"frydays/models"
	"frydays/repositories"

	"github.com/redis/go-redis/v9"
)

const menuCachePrefix = "menu_list_"

// MenuService reads and writes menu items. List results are cached in Redis
// when a client is configured; every write invalidates the cache.
type MenuService struct {
	items    repositories.MenuItemRepository
	cache    *redis.Client
	cacheTTL time.Duration
}

func NewMenuService(items repositories.MenuItemRepository, cache *redis.Client, cacheTTL time.Duration) *MenuService {
	return &MenuService{items: items, cache: cache, cacheTTL: cacheTTL}
}

func menuCacheKey(filter repositories.MenuFilter) string {
	return fmt.Sprintf("%sfeatured_%t_category_%s", menuCachePrefix, filter.FeaturedOnly, filter.Category)
}

func (s *MenuService) List(ctx context.Context, filter repositories.MenuFilter) ([]models.MenuItem, error) {
	filter, err := filter.Normalize()
	if err != nil {
		return nil, err
	}
	cacheKey := menuCacheKey(filter)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey).Result()
		switch {
		case err == nil:
			var items []models.MenuItem
			if jsonErr := json.Unmarshal([]byte(cached), &items); jsonErr == nil {
				metrics.RecordMenuCache("hit")
				return items, nil
			}
			metrics.RecordMenuCache("error")
		case errors.Is(err, redis.Nil):
			metrics.RecordMenuCache("miss")
		default:
			log.Printf("Menu cache read failed: %v", err)
			metrics.RecordMenuCache("error")
		}
	}

	items, err := s.items.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if jsonData, err := json.Marshal(items); err == nil {
			s.cache.Set(ctx, cacheKey, string(jsonData), s.cacheTTL)
		}
	}
	return items, nil
}

func (s *MenuService) Get(ctx context.Context, id int) (*models.MenuItem, error) {
	return s.items.FindByID(ctx, id)
}

func (s *MenuService) Create(ctx context.Context, req models.CreateMenuItemRequest) (*models.MenuItem, error) {
	if req.Price == nil || req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must be zero or positive", ErrValidation)
	}
	category, err := normalizeCategory(req.Category)
	if err != nil {
		return nil, err
	}

	item := &models.MenuItem{
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		Price:         *req.Price,
		Category:      category,
		Image:         req.Image,
		DiscountBadge: req.DiscountBadge,
	}
	if item.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return item, nil
}

func (s *MenuService) Update(ctx context.Context, id int, patch models.MenuItemPatch) (*models.MenuItem, error) {
	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must be zero or positive", ErrValidation)
	}
	if patch.Category != nil {
		category, err := normalizeCategory(*patch.Category)
		if err != nil {
			return nil, err
		}
		patch.Category = &category
	}

	item, err := s.items.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return item, nil
}

func (s *MenuService) Delete(ctx context.Context, id int) error {
	if err := s.items.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *MenuService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	iter := s.cache.Scan(ctx, 0, menuCachePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		s.cache.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Printf("Menu cache invalidation failed: %v", err)
	}
}

func normalizeCategory(category string) (string, error) {
	f, err := repositories.MenuFilter{Category: category}.Normalize()
	if err != nil || f.Category == "" {
		return "", fmt.Errorf("%w: category must be 1-50 letters, digits, '-' or '_'", ErrValidation)
	}
	return f.Category, nil
}
