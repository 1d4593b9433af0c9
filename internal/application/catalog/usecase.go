package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

// searchLimit máximo de resultados de búsqueda de productos.
const searchLimit = 10

// UseCase casos de uso CRUD del catálogo: productos y servicios.
// Stock aquí solo se fija por alta o actualización administrativa; las ventas
// lo mutan vía el motor de pedidos.
type UseCase struct {
	products repository.ProductRepository
	services repository.ServiceRepository
}

// NewUseCase construye el caso de uso del catálogo.
func NewUseCase(products repository.ProductRepository, services repository.ServiceRepository) *UseCase {
	return &UseCase{products: products, services: services}
}

// CreateProduct crea un producto. El stock inicial no puede ser negativo.
func (uc *UseCase) CreateProduct(ctx context.Context, in dto.CreateProductInput) (*entity.Product, error) {
	if in.Name == "" || in.Price < 0 || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:        entity.ID(uuid.New().String()),
		Name:      in.Name,
		Price:     in.Price,
		Stock:     in.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct obtiene un producto por ID.
func (uc *UseCase) GetProduct(ctx context.Context, id entity.ID) (*entity.Product, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// ListProducts lista todos los productos.
func (uc *UseCase) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	return uc.products.List(ctx)
}

// SearchProducts busca productos por texto (máximo 10 resultados).
func (uc *UseCase) SearchProducts(ctx context.Context, text string) ([]*entity.Product, error) {
	if text == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.products.Search(ctx, text, searchLimit)
}

// UpdateProduct aplica una actualización parcial. El stock resultante no puede ser negativo.
func (uc *UseCase) UpdateProduct(ctx context.Context, id entity.ID, in dto.UpdateProductInput) (*entity.Product, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	product.UpdatedAt = time.Now()
	if err := uc.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct elimina un producto por ID.
func (uc *UseCase) DeleteProduct(ctx context.Context, id entity.ID) (*dto.DeletePayload, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.products.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto.DeletePayload{ID: id.String(), Message: "Producto eliminado"}, nil
}

// CreateService crea un servicio.
func (uc *UseCase) CreateService(ctx context.Context, in dto.CreateServiceInput) (*entity.Service, error) {
	if in.Name == "" || in.Price < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	service := &entity.Service{
		ID:          entity.ID(uuid.New().String()),
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.services.Create(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

// GetService obtiene un servicio por ID.
func (uc *UseCase) GetService(ctx context.Context, id entity.ID) (*entity.Service, error) {
	service, err := uc.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	return service, nil
}

// ListServices lista todos los servicios.
func (uc *UseCase) ListServices(ctx context.Context) ([]*entity.Service, error) {
	return uc.services.List(ctx)
}

// UpdateService aplica una actualización parcial al servicio.
func (uc *UseCase) UpdateService(ctx context.Context, id entity.ID, in dto.UpdateServiceInput) (*entity.Service, error) {
	service, err := uc.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		service.Name = *in.Name
	}
	if in.Description != nil {
		service.Description = *in.Description
	}
	if in.Category != nil {
		service.Category = *in.Category
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, domain.ErrInvalidInput
		}
		service.Price = *in.Price
	}
	service.UpdatedAt = time.Now()
	if err := uc.services.Update(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

// DeleteService elimina un servicio por ID.
func (uc *UseCase) DeleteService(ctx context.Context, id entity.ID) (*dto.DeletePayload, error) {
	service, err := uc.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.services.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto.DeletePayload{ID: id.String(), Message: "Servicio eliminado"}, nil
}
