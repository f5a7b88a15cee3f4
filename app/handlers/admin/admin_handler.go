package admin

import (
	"github.com/go-playground/validator/v10"
	"github.com/mehdiben7/tiwashop/app/repositories"
	"github.com/mehdiben7/tiwashop/app/services"
	"github.com/unrolled/render"
)

type AdminHandler struct {
	productRepo repositories.ProductRepositoryImpl
	orderRepo   repositories.OrderRepository
	storage     *services.StorageService
	render      *render.Render
	validator   *validator.Validate
}

func NewAdminHandler(
	productRepo repositories.ProductRepositoryImpl,
	orderRepo repositories.OrderRepository,
	storage *services.StorageService,
	r *render.Render,
	v *validator.Validate,
) *AdminHandler {
	return &AdminHandler{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		storage:     storage,
		render:      r,
		validator:   v,
	}
}
