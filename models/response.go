package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type LoginResponse struct {
	Token       string    `json:"token"`
	User        User      `json:"user"`
	MergedItems int       `json:"merged_items"`
	Cart        *CartView `json:"cart,omitempty"`
}

type DashboardData struct {
	MenuItemsCount  int `json:"menu_items_count"`
	PromotionsCount int `json:"promotions_count"`
	UsersCount      int `json:"users_count"`
}
