package graphql

import "github.com/graphql-go/graphql"

// Tipos de entrada del esquema. Los de actualización dejan todo opcional
// (actualización parcial); los de creación exigen los campos obligatorios.

var userInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UserInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"surname":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var authInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "AuthInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var productInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProductInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"price": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		"stock": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var productUpdateInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ProductUpdateInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"price": &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"stock": &graphql.InputObjectFieldConfig{Type: graphql.Int},
	},
})

var serviceInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ServiceInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"category":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"price":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
	},
})

var serviceUpdateInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ServiceUpdateInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":        &graphql.InputObjectFieldConfig{Type: graphql.String},
		"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"category":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"price":       &graphql.InputObjectFieldConfig{Type: graphql.Float},
	},
})

var clientInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ClientInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"surname": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"company": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"email":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"phone":   &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var clientUpdateInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ClientUpdateInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"surname": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"company": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"email":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"phone":   &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var lineItemInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "LineItemInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"productId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"quantity":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var orderInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "OrderInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"clientId":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"lineItems": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(lineItemInput)))},
		"total":     &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"status":    &graphql.InputObjectFieldConfig{Type: orderStatusEnum},
	},
})

var orderUpdateInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "OrderUpdateInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"clientId":  &graphql.InputObjectFieldConfig{Type: graphql.ID},
		"lineItems": &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(lineItemInput))},
		"total":     &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"status":    &graphql.InputObjectFieldConfig{Type: orderStatusEnum},
	},
})
