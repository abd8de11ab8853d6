package services

import (
	"context"
	"errors"
	"log"

	"frydays/cart"
	"frydays/models"
	"frydays/repositories"
	"frydays/utils"
)

type AuthService struct {
	users  repositories.UserRepository
	tokens *utils.TokenManager
	carts  *CartService
}

func NewAuthService(users repositories.UserRepository, tokens *utils.TokenManager, carts *CartService) *AuthService {
	return &AuthService{users: users, tokens: tokens, carts: carts}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error) {
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Username: req.Username,
		Password: hashedPassword,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(user.Identity())
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: *user}, nil
}

// Login verifies the credentials and issues a token. Guest cart state sent
// with the request is merged into the user's cart; a failed merge is logged
// and does not fail the login.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil {
		log.Printf("Error verifying password for user %d: %v", user.ID, err)
		return nil, ErrInvalidCredentials
	}
	if !valid {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.Identity())
	if err != nil {
		return nil, err
	}

	resp := &models.LoginResponse{Token: token, User: *user}

	if req.GuestCartID == "" && len(req.GuestCart) == 0 {
		return resp, nil
	}

	result, err := s.carts.MergeGuest(ctx, user.ID, req.GuestCartID, ToCartLines(req.GuestCart))
	if err != nil {
		log.Printf("Error merging guest cart for user %d: %v", user.ID, err)
		return resp, nil
	}
	resp.MergedItems = result.Merged

	view, err := s.carts.View(ctx, user.ID)
	if err != nil {
		log.Printf("Error loading cart for user %d: %v", user.ID, err)
		return resp, nil
	}
	resp.Cart = view
	return resp, nil
}

func ToCartLines(reqs []models.CartLineRequest) []cart.Line {
	lines := make([]cart.Line, 0, len(reqs))
	for _, r := range reqs {
		lines = append(lines, cart.Line{MenuItemID: r.MenuItemID, Quantity: r.Quantity})
	}
	return lines
}
