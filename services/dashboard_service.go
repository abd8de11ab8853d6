package services

import (
	"context"

	"frydays/models"
	"frydays/repositories"
)

type DashboardService struct {
	store repositories.Store
}

func NewDashboardService(store repositories.Store) *DashboardService {
	return &DashboardService{store: store}
}

func (s *DashboardService) Counts(ctx context.Context) (*models.DashboardData, error) {
	menuItems, err := s.store.MenuItems().Count(ctx)
	if err != nil {
		return nil, err
	}
	promotions, err := s.store.Promotions().Count(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.store.Users().Count(ctx)
	if err != nil {
		return nil, err
	}

	return &models.DashboardData{
		MenuItemsCount:  menuItems,
		PromotionsCount: promotions,
		UsersCount:      users,
	}, nil
}
