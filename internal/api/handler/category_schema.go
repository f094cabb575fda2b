package handler

import "github.com/shopsmith/ecommerce-api/internal/core/domain"

type categoryRequest struct {
	Name        string `json:"name"        validate:"required,min=2,max=64"`
	Description string `json:"description" validate:"max=512"`
}

type categoryResponse struct {
	Category *domain.Category `json:"category"`
}

type categoryListResponse struct {
	Data []*domain.Category `json:"data"`
}

type categoryProductsResponse struct {
	Category *domain.Category  `json:"category"`
	Data     []*domain.Product `json:"data"`
}
