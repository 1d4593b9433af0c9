package crm

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
)

// UseCase casos de uso de clientes. Cada cliente pertenece a exactamente un
// vendedor; leerlo, editarlo o borrarlo exige ser el dueño.
type UseCase struct {
	clients repository.ClientRepository
}

// NewUseCase construye el caso de uso de clientes.
func NewUseCase(clients repository.ClientRepository) *UseCase {
	return &UseCase{clients: clients}
}

// CreateClient registra un cliente asignando al caller como dueño.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *UseCase) CreateClient(ctx context.Context, caller entity.Caller, in dto.CreateClientInput) (*entity.Client, error) {
	if caller.IsAnonymous() {
		return nil, domain.ErrInvalidToken
	}
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if in.Name == "" || email == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.clients.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	now := time.Now()
	client := &entity.Client{
		ID:        entity.ID(uuid.New().String()),
		Name:      in.Name,
		Surname:   in.Surname,
		Company:   in.Company,
		Email:     email,
		Phone:     in.Phone,
		OwnerID:   caller.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.clients.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetClient obtiene un cliente por ID. Solo puede verlo su dueño.
func (uc *UseCase) GetClient(ctx context.Context, caller entity.Caller, id entity.ID) (*entity.Client, error) {
	client, err := uc.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if err := domain.RequireOwner(client.OwnerID, caller); err != nil {
		return nil, err
	}
	return client, nil
}

// ListClients lista todos los clientes.
func (uc *UseCase) ListClients(ctx context.Context) ([]*entity.Client, error) {
	return uc.clients.List(ctx)
}

// ListClientsForSeller lista los clientes del caller.
func (uc *UseCase) ListClientsForSeller(ctx context.Context, caller entity.Caller) ([]*entity.Client, error) {
	if caller.IsAnonymous() {
		return nil, domain.ErrInvalidToken
	}
	return uc.clients.ListByOwner(ctx, caller.ID)
}

// UpdateClient aplica una actualización parcial. Solo el dueño puede editar;
// un cambio de email vuelve a validar unicidad. OwnerID es inmutable.
func (uc *UseCase) UpdateClient(ctx context.Context, caller entity.Caller, id entity.ID, in dto.UpdateClientInput) (*entity.Client, error) {
	client, err := uc.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if err := domain.RequireOwner(client.OwnerID, caller); err != nil {
		return nil, err
	}
	if in.Name != nil {
		client.Name = *in.Name
	}
	if in.Surname != nil {
		client.Surname = *in.Surname
	}
	if in.Company != nil {
		client.Company = *in.Company
	}
	if in.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*in.Email))
		if email != client.Email {
			existing, err := uc.clients.GetByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.ErrEmailAlreadyExists
			}
			client.Email = email
		}
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	client.UpdatedAt = time.Now()
	if err := uc.clients.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// DeleteClient elimina un cliente. Solo el dueño puede borrarlo.
func (uc *UseCase) DeleteClient(ctx context.Context, caller entity.Caller, id entity.ID) (*dto.DeletePayload, error) {
	client, err := uc.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if err := domain.RequireOwner(client.OwnerID, caller); err != nil {
		return nil, err
	}
	if err := uc.clients.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto.DeletePayload{ID: id.String(), Message: "Cliente eliminado"}, nil
}
