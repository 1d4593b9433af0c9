package graphql

import "github.com/graphql-go/graphql"

// NewSchema arma el esquema completo: nombre de operación → resolver.
// La ejecución (parseo, validación, coerción de argumentos) la hace graphql-go.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	idArg := graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"getUser": &graphql.Field{
				Type:    userType,
				Resolve: r.getUser,
			},
			"listProducts": &graphql.Field{
				Type:    graphql.NewList(productType),
				Resolve: r.listProducts,
			},
			"getProduct": &graphql.Field{
				Type:    productType,
				Args:    idArg,
				Resolve: r.getProduct,
			},
			"searchProduct": &graphql.Field{
				Type: graphql.NewList(productType),
				Args: graphql.FieldConfigArgument{
					"text": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.searchProduct,
			},
			"listServices": &graphql.Field{
				Type:    graphql.NewList(serviceType),
				Resolve: r.listServices,
			},
			"getService": &graphql.Field{
				Type:    serviceType,
				Args:    idArg,
				Resolve: r.getService,
			},
			"listClients": &graphql.Field{
				Type:    graphql.NewList(clientType),
				Resolve: r.listClients,
			},
			"listClientsForSeller": &graphql.Field{
				Type:    graphql.NewList(clientType),
				Resolve: r.listClientsForSeller,
			},
			"getClient": &graphql.Field{
				Type:    clientType,
				Args:    idArg,
				Resolve: r.getClient,
			},
			"listOrders": &graphql.Field{
				Type:    graphql.NewList(orderType),
				Resolve: r.listOrders,
			},
			"listOrdersForSeller": &graphql.Field{
				Type:    graphql.NewList(orderType),
				Resolve: r.listOrdersForSeller,
			},
			"getOrder": &graphql.Field{
				Type:    orderType,
				Args:    idArg,
				Resolve: r.getOrder,
			},
			"listOrdersByStatus": &graphql.Field{
				Type: graphql.NewList(orderType),
				Args: graphql.FieldConfigArgument{
					"status": &graphql.ArgumentConfig{Type: graphql.NewNonNull(orderStatusEnum)},
				},
				Resolve: r.listOrdersByStatus,
			},
			"topClients": &graphql.Field{
				Type:    graphql.NewList(topClientType),
				Resolve: r.topClients,
			},
			"topSellers": &graphql.Field{
				Type:    graphql.NewList(topSellerType),
				Resolve: r.topSellers,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"registerUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(userInput)},
				},
				Resolve: r.registerUser,
			},
			"authenticateUser": &graphql.Field{
				Type: tokenType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(authInput)},
				},
				Resolve: r.authenticateUser,
			},
			"createProduct": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(productInput)},
				},
				Resolve: r.createProduct,
			},
			"updateProduct": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(productUpdateInput)},
				},
				Resolve: r.updateProduct,
			},
			"deleteProduct": &graphql.Field{
				Type:    deletePayloadType,
				Args:    idArg,
				Resolve: r.deleteProduct,
			},
			"createService": &graphql.Field{
				Type: serviceType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(serviceInput)},
				},
				Resolve: r.createService,
			},
			"updateService": &graphql.Field{
				Type: serviceType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(serviceUpdateInput)},
				},
				Resolve: r.updateService,
			},
			"deleteService": &graphql.Field{
				Type:    deletePayloadType,
				Args:    idArg,
				Resolve: r.deleteService,
			},
			"createClient": &graphql.Field{
				Type: clientType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(clientInput)},
				},
				Resolve: r.createClient,
			},
			"updateClient": &graphql.Field{
				Type: clientType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(clientUpdateInput)},
				},
				Resolve: r.updateClient,
			},
			"deleteClient": &graphql.Field{
				Type:    deletePayloadType,
				Args:    idArg,
				Resolve: r.deleteClient,
			},
			"placeOrder": &graphql.Field{
				Type: orderType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(orderInput)},
				},
				Resolve: r.placeOrder,
			},
			"updateOrder": &graphql.Field{
				Type: orderType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(orderUpdateInput)},
				},
				Resolve: r.updateOrder,
			},
			"deleteOrder": &graphql.Field{
				Type:    deletePayloadType,
				Args:    idArg,
				Resolve: r.deleteOrder,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
