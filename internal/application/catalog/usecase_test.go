package catalog_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-ventas/internal/application/catalog"
	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
)

// fakeProductRepo repositorio de productos en memoria para tests.
type fakeProductRepo struct {
	products map[entity.ID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[entity.ID]*entity.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id entity.ID) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id entity.ID) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) Search(_ context.Context, text string, limit int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if len(out) == limit {
			break
		}
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(text)) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ReserveStock(_ context.Context, _ entity.ID, _ int) error { return nil }
func (r *fakeProductRepo) ReleaseStock(_ context.Context, _ entity.ID, _ int) error { return nil }

// fakeServiceRepo repositorio de servicios en memoria para tests.
type fakeServiceRepo struct {
	services map[entity.ID]*entity.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: make(map[entity.ID]*entity.Service)}
}

func (r *fakeServiceRepo) Create(_ context.Context, s *entity.Service) error {
	cp := *s
	r.services[s.ID] = &cp
	return nil
}

func (r *fakeServiceRepo) GetByID(_ context.Context, id entity.ID) (*entity.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeServiceRepo) Update(_ context.Context, s *entity.Service) error {
	if _, ok := r.services[s.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *s
	r.services[s.ID] = &cp
	return nil
}

func (r *fakeServiceRepo) List(_ context.Context) ([]*entity.Service, error) {
	var out []*entity.Service
	for _, s := range r.services {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeServiceRepo) Delete(_ context.Context, id entity.ID) error {
	if _, ok := r.services[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.services, id)
	return nil
}

func newUseCase() *catalog.UseCase {
	return catalog.NewUseCase(newFakeProductRepo(), newFakeServiceRepo())
}

func TestCreateProduct_AsignaIDYFechas(t *testing.T) {
	uc := newUseCase()

	product, err := uc.CreateProduct(context.Background(), dto.CreateProductInput{
		Name: "Monitor", Price: 250.5, Stock: 10,
	})
	require.NoError(t, err)

	assert.False(t, product.ID.IsZero())
	assert.Equal(t, "Monitor", product.Name)
	assert.Equal(t, 10, product.Stock)
	assert.False(t, product.CreatedAt.IsZero())
}

func TestCreateProduct_StockNegativo_Falla(t *testing.T) {
	uc := newUseCase()

	_, err := uc.CreateProduct(context.Background(), dto.CreateProductInput{
		Name: "Monitor", Price: 250, Stock: -1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateProduct(context.Background(), dto.CreateProductInput{
		Name: "", Price: 250, Stock: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateProduct_ParcialYValidaStock(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	product, err := uc.CreateProduct(ctx, dto.CreateProductInput{Name: "Monitor", Price: 250, Stock: 10})
	require.NoError(t, err)

	nuevoPrecio := 199.99
	updated, err := uc.UpdateProduct(ctx, product.ID, dto.UpdateProductInput{Price: &nuevoPrecio})
	require.NoError(t, err)
	assert.Equal(t, 199.99, updated.Price)
	assert.Equal(t, "Monitor", updated.Name, "los campos no enviados no cambian")
	assert.Equal(t, 10, updated.Stock)

	negativo := -5
	_, err = uc.UpdateProduct(ctx, product.ID, dto.UpdateProductInput{Stock: &negativo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetProduct_Inexistente_NotFound(t *testing.T) {
	uc := newUseCase()

	_, err := uc.GetProduct(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSearchProducts_TextoVacio_Falla(t *testing.T) {
	uc := newUseCase()

	_, err := uc.SearchProducts(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSearchProducts_EncuentraPorNombre(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	_, err := uc.CreateProduct(ctx, dto.CreateProductInput{Name: "Monitor Curvo", Price: 300, Stock: 3})
	require.NoError(t, err)
	_, err = uc.CreateProduct(ctx, dto.CreateProductInput{Name: "Teclado", Price: 40, Stock: 8})
	require.NoError(t, err)

	found, err := uc.SearchProducts(ctx, "monitor")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Monitor Curvo", found[0].Name)
}

func TestDeleteProduct_RetornaPayload(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	product, err := uc.CreateProduct(ctx, dto.CreateProductInput{Name: "Monitor", Price: 250, Stock: 10})
	require.NoError(t, err)

	payload, err := uc.DeleteProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID.String(), payload.ID)
	assert.Equal(t, "Producto eliminado", payload.Message)

	_, err = uc.GetProduct(ctx, product.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.DeleteProduct(ctx, product.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestServicio_CicloCompleto(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	service, err := uc.CreateService(ctx, dto.CreateServiceInput{
		Name: "Instalación", Description: "Instalación en sitio", Category: "soporte", Price: 80,
	})
	require.NoError(t, err)
	assert.False(t, service.ID.IsZero())

	nuevaCategoria := "campo"
	updated, err := uc.UpdateService(ctx, service.ID, dto.UpdateServiceInput{Category: &nuevaCategoria})
	require.NoError(t, err)
	assert.Equal(t, "campo", updated.Category)
	assert.Equal(t, "Instalación", updated.Name)

	payload, err := uc.DeleteService(ctx, service.ID)
	require.NoError(t, err)
	assert.Equal(t, "Servicio eliminado", payload.Message)

	_, err = uc.GetService(ctx, service.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateService_PrecioNegativo_Falla(t *testing.T) {
	uc := newUseCase()

	_, err := uc.CreateService(context.Background(), dto.CreateServiceInput{Name: "Instalación", Price: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
