package services

import (
	"context"
	"fmt"

	"frydays/models"
	"frydays/repositories"
)

type PromotionService struct {
	promotions repositories.PromotionRepository
}

func NewPromotionService(promotions repositories.PromotionRepository) *PromotionService {
	return &PromotionService{promotions: promotions}
}

func (s *PromotionService) List(ctx context.Context, filter repositories.PromotionFilter) ([]models.Promotion, error) {
	return s.promotions.FindAll(ctx, filter)
}

func (s *PromotionService) Create(ctx context.Context, req models.CreatePromotionRequest) (*models.Promotion, error) {
	if req.Price == nil || req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must be zero or positive", ErrValidation)
	}

	promoType := req.PromoType
	if promoType == "" {
		promoType = models.PromoSlotPromoPage
	}
	if !models.IsPromoSlot(promoType) {
		return nil, fmt.Errorf("%w: unknown promotion slot %q", ErrValidation, promoType)
	}

	promo := &models.Promotion{
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
		Image:       req.Image,
		PromoType:   promoType,
	}
	if err := s.promotions.Create(ctx, promo); err != nil {
		return nil, err
	}
	return promo, nil
}

func (s *PromotionService) Delete(ctx context.Context, id int) error {
	return s.promotions.Delete(ctx, id)
}
