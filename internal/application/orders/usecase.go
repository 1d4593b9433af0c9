package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
	"github.com/tu-usuario/crm-ventas/internal/domain/repository"
	"github.com/tu-usuario/crm-ventas/pkg/logger"
)

// UseCase motor de pedidos: valida pertenencia del cliente, reserva stock
// línea a línea con decremento condicional y persiste el pedido.
//
// La reserva de cada línea es una única operación condicional en el store
// (stock >= cantidad), así que dos pedidos concurrentes sobre el mismo
// producto nunca dejan existencia negativa: exactamente uno gana. Si una
// línea posterior falla, las reservas previas se liberan (compensación).
type UseCase struct {
	orders   repository.OrderRepository
	clients  repository.ClientRepository
	products repository.ProductRepository
	log      *logger.Logger
}

// NewUseCase construye el motor de pedidos.
func NewUseCase(orders repository.OrderRepository, clients repository.ClientRepository, products repository.ProductRepository, log *logger.Logger) *UseCase {
	return &UseCase{orders: orders, clients: clients, products: products, log: log}
}

// PlaceOrder crea un pedido para un cliente del caller.
func (uc *UseCase) PlaceOrder(ctx context.Context, caller entity.Caller, in dto.PlaceOrderInput) (*entity.Order, error) {
	if caller.IsAnonymous() {
		return nil, domain.ErrInvalidToken
	}
	if len(in.LineItems) == 0 {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.OrderPending
	}
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}

	client, err := uc.clients.GetByID(ctx, entity.ID(in.ClientID))
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("cliente %s: %w", in.ClientID, domain.ErrNotFound)
	}
	if err := domain.RequireOwner(client.OwnerID, caller); err != nil {
		return nil, err
	}

	items := toLineItems(in.LineItems)
	if err := uc.reserveLineItems(ctx, items); err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.Order{
		ID:        entity.ID(uuid.New().String()),
		ClientID:  client.ID,
		OwnerID:   caller.ID,
		LineItems: items,
		Total:     in.Total,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.orders.Create(ctx, order); err != nil {
		// El pedido no quedó escrito: devolver las reservas.
		uc.releaseLineItems(ctx, items)
		return nil, err
	}
	return order, nil
}

// UpdateOrder aplica una actualización parcial a un pedido existente.
// Revalida la pertenencia del pedido y de su cliente; si vienen líneas
// nuevas, cada una reserva stock igual que en PlaceOrder.
func (uc *UseCase) UpdateOrder(ctx context.Context, caller entity.Caller, id entity.ID, in dto.UpdateOrderInput) (*entity.Order, error) {
	if caller.IsAnonymous() {
		return nil, domain.ErrInvalidToken
	}
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("pedido %s: %w", id, domain.ErrNotFound)
	}
	if err := domain.RequireOwner(order.OwnerID, caller); err != nil {
		return nil, err
	}

	clientID := order.ClientID
	if in.ClientID != nil {
		clientID = entity.ID(*in.ClientID)
	}
	client, err := uc.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("cliente %s: %w", clientID, domain.ErrNotFound)
	}
	if err := domain.RequireOwner(client.OwnerID, caller); err != nil {
		return nil, err
	}

	if in.Status != nil && !entity.ValidOrderStatus(*in.Status) {
		return nil, domain.ErrInvalidInput
	}

	var reserved []entity.LineItem
	if len(in.LineItems) > 0 {
		items := toLineItems(in.LineItems)
		if err := uc.reserveLineItems(ctx, items); err != nil {
			return nil, err
		}
		reserved = items
		order.LineItems = items
	}
	order.ClientID = clientID
	if in.Total != nil {
		order.Total = *in.Total
	}
	if in.Status != nil {
		order.Status = *in.Status
	}
	order.UpdatedAt = time.Now()
	if err := uc.orders.Update(ctx, order); err != nil {
		// La actualización no quedó escrita: devolver las reservas nuevas.
		uc.releaseLineItems(ctx, reserved)
		return nil, err
	}
	return order, nil
}

// DeleteOrder elimina un pedido del caller. La existencia reservada no se
// restituye, igual que el comportamiento histórico del sistema.
func (uc *UseCase) DeleteOrder(ctx context.Context, caller entity.Caller, id entity.ID) (*dto.DeletePayload, error) {
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("pedido %s: %w", id, domain.ErrNotFound)
	}
	if err := domain.RequireOwner(order.OwnerID, caller); err != nil {
		return nil, err
	}
	if err := uc.orders.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto.DeletePayload{ID: id.String(), Message: "Pedido eliminado"}, nil
}

// GetOrder obtiene un pedido por ID. Solo puede verlo el vendedor que lo creó.
func (uc *UseCase) GetOrder(ctx context.Context, caller entity.Caller, id entity.ID) (*entity.Order, error) {
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if err := domain.RequireOwner(order.OwnerID, caller); err != nil {
		return nil, err
	}
	return order, nil
}

// ListOrders lista todos los pedidos.
func (uc *UseCase) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	return uc.orders.List(ctx)
}

// ListOrdersForSeller lista los pedidos del caller.
func (uc *UseCase) ListOrdersForSeller(ctx context.Context, caller entity.Caller) ([]*entity.Order, error) {
	if caller.IsAnonymous() {
		return nil, domain.ErrInvalidToken
	}
	return uc.orders.ListByOwner(ctx, caller.ID)
}

// ListOrdersByStatus lista los pedidos del caller con el estado dado.
func (uc *UseCase) ListOrdersByStatus(ctx context.Context, caller entity.Caller, status string) ([]*entity.Order, error) {
	if caller.IsAnonymous() {
		return nil, domain.ErrInvalidToken
	}
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	return uc.orders.ListByOwnerAndStatus(ctx, caller.ID, status)
}

// TopClients devuelve los 10 clientes con mayor total en pedidos completados.
func (uc *UseCase) TopClients(ctx context.Context) ([]*repository.ClientRanking, error) {
	return uc.orders.TopClients(ctx)
}

// TopSellers devuelve los 10 vendedores con mayor total en pedidos completados.
func (uc *UseCase) TopSellers(ctx context.Context) ([]*repository.SellerRanking, error) {
	return uc.orders.TopSellers(ctx)
}

// reserveLineItems reserva stock línea a línea en el orden del input.
// Si una línea falla, libera todas las reservas previas antes de retornar.
func (uc *UseCase) reserveLineItems(ctx context.Context, items []entity.LineItem) error {
	var reserved []entity.LineItem
	for _, item := range items {
		if item.ProductID.IsZero() || item.Quantity <= 0 {
			uc.releaseLineItems(ctx, reserved)
			return domain.ErrInvalidInput
		}
		if err := uc.products.ReserveStock(ctx, item.ProductID, item.Quantity); err != nil {
			uc.releaseLineItems(ctx, reserved)
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("producto %s: %w", item.ProductID, domain.ErrNotFound)
			}
			return err
		}
		reserved = append(reserved, item)
	}
	return nil
}

// releaseLineItems devuelve las reservas indicadas. Un fallo al liberar se
// registra y no interrumpe el resto de la compensación.
func (uc *UseCase) releaseLineItems(ctx context.Context, items []entity.LineItem) {
	for _, item := range items {
		if err := uc.products.ReleaseStock(ctx, item.ProductID, item.Quantity); err != nil {
			uc.log.Error().Err(err).
				Str("productId", item.ProductID.String()).
				Int("quantity", item.Quantity).
				Msg("no se pudo liberar la reserva de stock")
		}
	}
}

func toLineItems(in []dto.LineItemInput) []entity.LineItem {
	items := make([]entity.LineItem, 0, len(in))
	for _, li := range in {
		items = append(items, entity.LineItem{
			ProductID: entity.ID(li.ProductID),
			Quantity:  li.Quantity,
		})
	}
	return items
}
