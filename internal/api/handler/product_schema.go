package handler

import "github.com/shopsmith/ecommerce-api/internal/core/domain"

type createProductRequest struct {
	Name        string  `json:"name"        validate:"required,min=2,max=128"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Stock       int     `json:"stock"       validate:"gte=0"`
	ImageURL    string  `json:"image_url"   validate:"omitempty,url"`
	CategoryID  string  `json:"category_id" validate:"required"`
}

// updateProductRequest carries the same fields as creation; updates are full
// replacements except the image, which is kept when omitted.
type updateProductRequest struct {
	Name        string  `json:"name"        validate:"required,min=2,max=128"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Stock       int     `json:"stock"       validate:"gte=0"`
	ImageURL    string  `json:"image_url"   validate:"omitempty,url"`
	CategoryID  string  `json:"category_id" validate:"required"`
}

type productResponse struct {
	Product *domain.Product `json:"product"`
}

type productListResponse struct {
	Data []*domain.Product `json:"data"`
}
