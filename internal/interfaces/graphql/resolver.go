package graphql

import (
	"fmt"

	"github.com/graphql-go/graphql"
	"github.com/mitchellh/mapstructure"

	"github.com/tu-usuario/crm-ventas/internal/application/auth"
	"github.com/tu-usuario/crm-ventas/internal/application/catalog"
	"github.com/tu-usuario/crm-ventas/internal/application/crm"
	"github.com/tu-usuario/crm-ventas/internal/application/dto"
	"github.com/tu-usuario/crm-ventas/internal/application/orders"
	"github.com/tu-usuario/crm-ventas/internal/domain"
	"github.com/tu-usuario/crm-ventas/internal/domain/entity"
)

// Resolver adapta las operaciones GraphQL a los casos de uso: decodifica
// argumentos, extrae el caller del contexto y delega. Sin lógica de negocio.
type Resolver struct {
	Auth    *auth.UseCase
	Catalog *catalog.UseCase
	CRM     *crm.UseCase
	Orders  *orders.UseCase
}

// decodeInput mapea el argumento "input" (map de graphql-go) a un DTO tipado.
func decodeInput(src, dst interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dst,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(src); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func argID(p graphql.ResolveParams) entity.ID {
	id, _ := p.Args["id"].(string)
	return entity.ID(id)
}

// ── Queries ──────────────────────────────────────────────────────────────────

// getUser devuelve la identidad del token verificado, sin tocar la base.
func (r *Resolver) getUser(p graphql.ResolveParams) (interface{}, error) {
	caller := CallerFromContext(p.Context)
	if caller.IsAnonymous() {
		return nil, domain.ErrInvalidToken
	}
	return &entity.User{
		ID:      caller.ID,
		Name:    caller.Name,
		Surname: caller.Surname,
		Email:   caller.Email,
	}, nil
}

func (r *Resolver) listProducts(p graphql.ResolveParams) (interface{}, error) {
	return r.Catalog.ListProducts(p.Context)
}

func (r *Resolver) getProduct(p graphql.ResolveParams) (interface{}, error) {
	return r.Catalog.GetProduct(p.Context, argID(p))
}

func (r *Resolver) searchProduct(p graphql.ResolveParams) (interface{}, error) {
	text, _ := p.Args["text"].(string)
	return r.Catalog.SearchProducts(p.Context, text)
}

func (r *Resolver) listServices(p graphql.ResolveParams) (interface{}, error) {
	return r.Catalog.ListServices(p.Context)
}

func (r *Resolver) getService(p graphql.ResolveParams) (interface{}, error) {
	return r.Catalog.GetService(p.Context, argID(p))
}

func (r *Resolver) listClients(p graphql.ResolveParams) (interface{}, error) {
	return r.CRM.ListClients(p.Context)
}

func (r *Resolver) listClientsForSeller(p graphql.ResolveParams) (interface{}, error) {
	return r.CRM.ListClientsForSeller(p.Context, CallerFromContext(p.Context))
}

func (r *Resolver) getClient(p graphql.ResolveParams) (interface{}, error) {
	return r.CRM.GetClient(p.Context, CallerFromContext(p.Context), argID(p))
}

func (r *Resolver) listOrders(p graphql.ResolveParams) (interface{}, error) {
	return r.Orders.ListOrders(p.Context)
}

func (r *Resolver) listOrdersForSeller(p graphql.ResolveParams) (interface{}, error) {
	return r.Orders.ListOrdersForSeller(p.Context, CallerFromContext(p.Context))
}

func (r *Resolver) getOrder(p graphql.ResolveParams) (interface{}, error) {
	return r.Orders.GetOrder(p.Context, CallerFromContext(p.Context), argID(p))
}

func (r *Resolver) listOrdersByStatus(p graphql.ResolveParams) (interface{}, error) {
	status, _ := p.Args["status"].(string)
	return r.Orders.ListOrdersByStatus(p.Context, CallerFromContext(p.Context), status)
}

func (r *Resolver) topClients(p graphql.ResolveParams) (interface{}, error) {
	return r.Orders.TopClients(p.Context)
}

func (r *Resolver) topSellers(p graphql.ResolveParams) (interface{}, error) {
	return r.Orders.TopSellers(p.Context)
}

// ── Mutations ────────────────────────────────────────────────────────────────

func (r *Resolver) registerUser(p graphql.ResolveParams) (interface{}, error) {
	var in dto.RegisterUserInput
	if err := decodeInput(p.Args["input"], &in); err != nil {
		return nil, err
	}
	return r.Auth.RegisterUser(p.Context, in)
}

func (r *Resolver) authenticateUser(p graphql.ResolveParams) (interface{}, error) {
	var in dto.AuthenticateInput
	if err := decodeInput(p.Args["input"], &in); err != nil {
		return nil, err
	}
	return r.Auth.Authenticate(p.Context, in)
}

func (r *Resolver) createProduct(p graphql.ResolveParams) (interface{}, error) {
	var in dto.CreateProductInput
	if err := decodeInput(p.Args["input"], &in); err != nil {
		return nil, err
	}
	return r.Catalog.CreateProduct(p.Context, in)
}

func (r *Resolver) updateProduct(p graphql.ResolveParams) (interface{}, error) {
	var in dto.UpdateProductInput
	if err := decodeInput(p.Args["input"], &in); err != nil {
		return nil, err
	}
	return r.Catalog.UpdateProduct(p.Context, argID(p), in)
}

func (r *Resolver) deleteProduct(p graphql.ResolveParams) (interface{}, error) {
	return r.Catalog.DeleteProduct(p.Context, argID(p))
}

func (r *Resolver) createService(p graphql.ResolveParams) (interface{}, error) {
	var in dto.CreateServiceInput
	if err := decodeInput(p.Args["input"], &in); err != nil {
		return nil, err
	}
	return r.Catalog.CreateService(p.Context, in)
}

func (r *Resolver) updateService(p graphql.ResolveParams) (interface{}, error) {
	var in dto.UpdateServiceInput
	if err := decodeInput(p.Args["input"], &in); err != nil {
		return nil, err
	}
	return r.Catalog.UpdateService(p.Context, argID(p), in)
}

func (r *Resolver) deleteService(p graphql.ResolveParams) (interface{}, error) {
	return r.Catalog.DeleteService(p.Context, argID(p))
}

func (r *Resolver) createClient(p graphql.ResolveParams) (interface{}, error) {
	var in dto.CreateClientInput
	if err := decodeInput(p.Args["input"], &in); err != nil {
		return nil, err
	}
	return r.CRM.CreateClient(p.Context, CallerFromContext(p.Context), in)
}

func (r *Resolver) updateClient(p graphql.ResolveParams) (interface{}, error) {
	var in dto.UpdateClientInput
	if err := decodeInput(p.Args["input"], &in); err != nil {
		return nil, err
	}
	return r.CRM.UpdateClient(p.Context, CallerFromContext(p.Context), argID(p), in)
}

func (r *Resolver) deleteClient(p graphql.ResolveParams) (interface{}, error) {
	return r.CRM.DeleteClient(p.Context, CallerFromContext(p.Context), argID(p))
}

func (r *Resolver) placeOrder(p graphql.ResolveParams) (interface{}, error) {
	var in dto.PlaceOrderInput
	if err := decodeInput(p.Args["input"], &in); err != nil {
		return nil, err
	}
	return r.Orders.PlaceOrder(p.Context, CallerFromContext(p.Context), in)
}

func (r *Resolver) updateOrder(p graphql.ResolveParams) (interface{}, error) {
	var in dto.UpdateOrderInput
	if err := decodeInput(p.Args["input"], &in); err != nil {
		return nil, err
	}
	return r.Orders.UpdateOrder(p.Context, CallerFromContext(p.Context), argID(p), in)
}

func (r *Resolver) deleteOrder(p graphql.ResolveParams) (interface{}, error) {
	return r.Orders.DeleteOrder(p.Context, CallerFromContext(p.Context), argID(p))
}
