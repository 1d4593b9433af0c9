package graphql

import "github.com/graphql-go/graphql"

// Tipos de salida del esquema. Los resolvers por defecto de graphql-go
// resuelven contra los tags json de las entidades del dominio.

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":      &graphql.Field{Type: graphql.String},
		"surname":   &graphql.Field{Type: graphql.String},
		"email":     &graphql.Field{Type: graphql.String},
		"createdAt": &graphql.Field{Type: graphql.DateTime},
	},
})

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":      &graphql.Field{Type: graphql.String},
		"price":     &graphql.Field{Type: graphql.Float},
		"stock":     &graphql.Field{Type: graphql.Int},
		"createdAt": &graphql.Field{Type: graphql.DateTime},
	},
})

var serviceType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Service",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":        &graphql.Field{Type: graphql.String},
		"description": &graphql.Field{Type: graphql.String},
		"category":    &graphql.Field{Type: graphql.String},
		"price":       &graphql.Field{Type: graphql.Float},
		"createdAt":   &graphql.Field{Type: graphql.DateTime},
	},
})

var clientType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Client",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":      &graphql.Field{Type: graphql.String},
		"surname":   &graphql.Field{Type: graphql.String},
		"company":   &graphql.Field{Type: graphql.String},
		"email":     &graphql.Field{Type: graphql.String},
		"phone":     &graphql.Field{Type: graphql.String},
		"ownerId":   &graphql.Field{Type: graphql.ID},
		"createdAt": &graphql.Field{Type: graphql.DateTime},
	},
})

var orderStatusEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "OrderStatus",
	Values: graphql.EnumValueConfigMap{
		"PENDING":   &graphql.EnumValueConfig{Value: "PENDING"},
		"COMPLETED": &graphql.EnumValueConfig{Value: "COMPLETED"},
		"CANCELLED": &graphql.EnumValueConfig{Value: "CANCELLED"},
	},
})

var lineItemType = graphql.NewObject(graphql.ObjectConfig{
	Name: "LineItem",
	Fields: graphql.Fields{
		"productId": &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"quantity":  &graphql.Field{Type: graphql.Int},
	},
})

var orderType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Order",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"clientId":  &graphql.Field{Type: graphql.ID},
		"ownerId":   &graphql.Field{Type: graphql.ID},
		"lineItems": &graphql.Field{Type: graphql.NewList(lineItemType)},
		"total":     &graphql.Field{Type: graphql.Float},
		"status":    &graphql.Field{Type: orderStatusEnum},
		"createdAt": &graphql.Field{Type: graphql.DateTime},
	},
})

var tokenType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Token",
	Fields: graphql.Fields{
		"token": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var deletePayloadType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DeletePayload",
	Fields: graphql.Fields{
		"id":      &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"message": &graphql.Field{Type: graphql.String},
	},
})

var topClientType = graphql.NewObject(graphql.ObjectConfig{
	Name: "TopClient",
	Fields: graphql.Fields{
		"total":  &graphql.Field{Type: graphql.Float},
		"client": &graphql.Field{Type: clientType},
	},
})

var topSellerType = graphql.NewObject(graphql.ObjectConfig{
	Name: "TopSeller",
	Fields: graphql.Fields{
		"total":  &graphql.Field{Type: graphql.Float},
		"seller": &graphql.Field{Type: userType},
	},
})
