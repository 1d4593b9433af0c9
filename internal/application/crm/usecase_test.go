package crm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-ventas/internal/application/crm"
	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
)

// fakeClientRepo repositorio de clientes en memoria para tests.
type fakeClientRepo struct {
	clients map[entity.ID]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[entity.ID]*entity.Client)}
}

func (r *fakeClientRepo) Create(_ context.Context, client *entity.Client) error {
	for _, c := range r.clients {
		if c.Email == client.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *client
	r.clients[client.ID] = &cp
	return nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id entity.ID) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) GetByEmail(_ context.Context, email string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) Update(_ context.Context, client *entity.Client) error {
	if _, ok := r.clients[client.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *client
	r.clients[client.ID] = &cp
	return nil
}

func (r *fakeClientRepo) List(_ context.Context) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.clients {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeClientRepo) ListByOwner(_ context.Context, ownerID entity.ID) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.clients {
		if c.OwnerID.Equal(ownerID) {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeClientRepo) Delete(_ context.Context, id entity.ID) error {
	if _, ok := r.clients[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.clients, id)
	return nil
}

var (
	vendedora = entity.Caller{ID: "seller-1", Email: "ana@ejemplo.com", Name: "Ana"}
	intruso   = entity.Caller{ID: "seller-2", Email: "otro@ejemplo.com", Name: "Otro"}
	anonimo   = entity.Caller{}
)

func TestCreateClient_AsignaDueno(t *testing.T) {
	uc := crm.NewUseCase(newFakeClientRepo())

	client, err := uc.CreateClient(context.Background(), vendedora, dto.CreateClientInput{
		Name: "Luis", Surname: "Pérez", Company: "ACME", Email: "luis@acme.com",
	})
	require.NoError(t, err)
	assert.True(t, client.OwnerID.Equal(vendedora.ID), "el caller queda como dueño del cliente")
}

func TestCreateClient_Anonimo_Falla(t *testing.T) {
	uc := crm.NewUseCase(newFakeClientRepo())

	_, err := uc.CreateClient(context.Background(), anonimo, dto.CreateClientInput{
		Name: "Luis", Email: "luis@acme.com",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestCreateClient_EmailDuplicado_Falla(t *testing.T) {
	uc := crm.NewUseCase(newFakeClientRepo())
	ctx := context.Background()

	_, err := uc.CreateClient(ctx, vendedora, dto.CreateClientInput{Name: "Luis", Email: "luis@acme.com"})
	require.NoError(t, err)

	_, err = uc.CreateClient(ctx, intruso, dto.CreateClientInput{Name: "Luis Dos", Email: "luis@acme.com"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestGetClient_SoloElDuenoPuedeVerlo(t *testing.T) {
	uc := crm.NewUseCase(newFakeClientRepo())
	ctx := context.Background()

	client, err := uc.CreateClient(ctx, vendedora, dto.CreateClientInput{Name: "Luis", Email: "luis@acme.com"})
	require.NoError(t, err)

	// El dueño lo ve
	got, err := uc.GetClient(ctx, vendedora, client.ID)
	require.NoError(t, err)
	assert.Equal(t, client.ID, got.ID)

	// Cualquier otro recibe Forbidden, incluso anónimo
	_, err = uc.GetClient(ctx, intruso, client.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = uc.GetClient(ctx, anonimo, client.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGetClient_Inexistente_NotFound(t *testing.T) {
	uc := crm.NewUseCase(newFakeClientRepo())

	_, err := uc.GetClient(context.Background(), vendedora, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateClient_IntrusoRecibeForbidden(t *testing.T) {
	uc := crm.NewUseCase(newFakeClientRepo())
	ctx := context.Background()

	client, err := uc.CreateClient(ctx, vendedora, dto.CreateClientInput{Name: "Luis", Email: "luis@acme.com"})
	require.NoError(t, err)

	nuevoNombre := "Luis Alberto"
	_, err = uc.UpdateClient(ctx, intruso, client.ID, dto.UpdateClientInput{Name: &nuevoNombre})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// El dueño sí puede, y la actualización es parcial
	updated, err := uc.UpdateClient(ctx, vendedora, client.ID, dto.UpdateClientInput{Name: &nuevoNombre})
	require.NoError(t, err)
	assert.Equal(t, "Luis Alberto", updated.Name)
	assert.Equal(t, "luis@acme.com", updated.Email, "los campos no enviados no cambian")
	assert.True(t, updated.OwnerID.Equal(vendedora.ID), "el dueño es inmutable")
}

func TestDeleteClient_SoloElDueno(t *testing.T) {
	uc := crm.NewUseCase(newFakeClientRepo())
	ctx := context.Background()

	client, err := uc.CreateClient(ctx, vendedora, dto.CreateClientInput{Name: "Luis", Email: "luis@acme.com"})
	require.NoError(t, err)

	_, err = uc.DeleteClient(ctx, intruso, client.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	payload, err := uc.DeleteClient(ctx, vendedora, client.ID)
	require.NoError(t, err)
	assert.Equal(t, client.ID.String(), payload.ID)

	_, err = uc.GetClient(ctx, vendedora, client.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListClientsForSeller_FiltraPorDueno(t *testing.T) {
	uc := crm.NewUseCase(newFakeClientRepo())
	ctx := context.Background()

	_, err := uc.CreateClient(ctx, vendedora, dto.CreateClientInput{Name: "Luis", Email: "luis@acme.com"})
	require.NoError(t, err)
	_, err = uc.CreateClient(ctx, intruso, dto.CreateClientInput{Name: "Marta", Email: "marta@acme.com"})
	require.NoError(t, err)

	list, err := uc.ListClientsForSeller(ctx, vendedora)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "luis@acme.com", list[0].Email)

	_, err = uc.ListClientsForSeller(ctx, anonimo)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
