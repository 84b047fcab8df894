// Package docs registers the Swagger 2.0 description of the REST API with
// swag, so echo-swagger can serve it under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/customers": {
            "get": {"tags": ["customers"], "summary": "List customers", "responses": {"200": {"description": "OK"}}},
            "post": {
                "tags": ["customers"], "summary": "Register a customer",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCustomerRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input"}, "409": {"description": "Email already registered"}}
            }
        },
        "/customers/{id}": {
            "get": {"tags": ["customers"], "summary": "Get a customer", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
        },
        "/customers/{id}/orders": {
            "get": {"tags": ["customers"], "summary": "List orders of a customer", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
        },
        "/couriers": {
            "get": {
                "tags": ["couriers"], "summary": "List couriers",
                "parameters": [{"in": "query", "name": "available", "type": "boolean"}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["couriers"], "summary": "Register a bike, car or drone courier",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCourierRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input"}}
            }
        },
        "/couriers/match": {
            "get": {
                "tags": ["couriers"], "summary": "First available courier able to carry a weight",
                "parameters": [{"in": "query", "name": "weight_kg", "type": "number", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "No courier available"}}
            }
        },
        "/couriers/{id}": {
            "get": {"tags": ["couriers"], "summary": "Get a courier", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
        },
        "/couriers/{id}/deliveries": {
            "get": {"tags": ["couriers"], "summary": "List deliveries of a courier", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK"}}}
        },
        "/orders": {
            "get": {"tags": ["orders"], "summary": "List orders", "responses": {"200": {"description": "OK"}}},
            "post": {
                "tags": ["orders"], "summary": "Create an order",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CreateOrderRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input"}, "404": {"description": "Unknown customer"}, "422": {"description": "Too many items"}}
            }
        },
        "/orders/active": {
            "get": {"tags": ["orders"], "summary": "List orders neither delivered nor cancelled", "responses": {"200": {"description": "OK"}}}
        },
        "/orders/{id}": {
            "get": {"tags": ["orders"], "summary": "Get an order", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
        },
        "/orders/{id}/deliveries": {
            "get": {"tags": ["orders"], "summary": "List deliveries of an order", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK"}}}
        },
        "/orders/{id}/clone": {
            "post": {"tags": ["orders"], "summary": "Copy an order into a new Created order", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"201": {"description": "Created"}, "404": {"description": "Not found"}}}
        },
        "/orders/{id}/{action}": {
            "post": {
                "tags": ["orders"], "summary": "Move an order through its lifecycle",
                "parameters": [
                    {"$ref": "#/parameters/id"},
                    {"in": "path", "name": "action", "type": "string", "required": true, "enum": ["confirm", "process", "ready", "dispatch", "deliver", "cancel"]}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}, "409": {"description": "Transition not allowed"}}
            }
        },
        "/deliveries": {
            "get": {"tags": ["deliveries"], "summary": "List deliveries", "responses": {"200": {"description": "OK"}}},
            "post": {
                "tags": ["deliveries"], "summary": "Assign a courier to a ready order",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/AssignCourierRequest"}}],
                "responses": {"201": {"description": "Created"}, "404": {"description": "Unknown order or courier"}, "409": {"description": "Order not ready"}, "422": {"description": "Courier cannot take the order"}}
            }
        },
        "/deliveries/active": {
            "get": {"tags": ["deliveries"], "summary": "List active deliveries", "responses": {"200": {"description": "OK"}}}
        },
        "/deliveries/auto": {
            "post": {"tags": ["deliveries"], "summary": "Assign the oldest ready order", "responses": {"201": {"description": "Created"}, "204": {"description": "No ready order"}, "409": {"description": "No courier available"}}}
        },
        "/deliveries/{id}": {
            "get": {"tags": ["deliveries"], "summary": "Get a delivery", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
        },
        "/deliveries/{id}/{action}": {
            "post": {
                "tags": ["deliveries"], "summary": "Move a delivery through its lifecycle",
                "parameters": [
                    {"$ref": "#/parameters/id"},
                    {"in": "path", "name": "action", "type": "string", "required": true, "enum": ["pickup", "transit", "deliver", "fail"]}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}, "409": {"description": "Transition not allowed"}}
            }
        },
        "/config": {
            "get": {"tags": ["config"], "summary": "Current business settings", "responses": {"200": {"description": "OK"}}},
            "put": {
                "tags": ["config"], "summary": "Change business settings",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateSettingsRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid settings"}}
            }
        }
    },
    "parameters": {
        "id": {"in": "path", "name": "id", "type": "string", "format": "uuid", "required": true}
    },
    "definitions": {
        "Address": {
            "type": "object",
            "required": ["street", "city", "postal_code", "country"],
            "properties": {
                "street": {"type": "string"}, "city": {"type": "string"},
                "postal_code": {"type": "string"}, "country": {"type": "string"}
            }
        },
        "CreateCustomerRequest": {
            "type": "object",
            "required": ["name", "email", "phone", "address"],
            "properties": {
                "name": {"type": "string"}, "email": {"type": "string"}, "phone": {"type": "string"},
                "address": {"$ref": "#/definitions/Address"}
            }
        },
        "CreateCourierRequest": {
            "type": "object",
            "required": ["name", "phone", "vehicle"],
            "properties": {
                "name": {"type": "string"}, "phone": {"type": "string"},
                "vehicle": {"type": "string", "enum": ["bike", "car", "drone"]},
                "license_plate": {"type": "string"},
                "max_flight_range_km": {"type": "number"}
            }
        },
        "OrderItem": {
            "type": "object",
            "required": ["product_name", "quantity", "unit_price", "weight_kg"],
            "properties": {
                "product_name": {"type": "string"}, "quantity": {"type": "integer"},
                "unit_price": {"type": "number"}, "weight_kg": {"type": "number"}
            }
        },
        "CreateOrderRequest": {
            "type": "object",
            "required": ["customer_id", "items"],
            "properties": {
                "customer_id": {"type": "string", "format": "uuid"},
                "priority": {"type": "string", "enum": ["economy", "normal", "express"]},
                "delivery_notes": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/OrderItem"}}
            }
        },
        "AssignCourierRequest": {
            "type": "object",
            "required": ["order_id", "courier_id", "distance_km"],
            "properties": {
                "order_id": {"type": "string", "format": "uuid"},
                "courier_id": {"type": "string", "format": "uuid"},
                "distance_km": {"type": "number"}
            }
        },
        "UpdateSettingsRequest": {
            "type": "object",
            "properties": {
                "max_delivery_distance_km": {"type": "number"},
                "default_currency": {"type": "string"},
                "max_order_items": {"type": "integer"},
                "system_name": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Delivery Management API",
	Description:      "Customers, couriers, orders and deliveries.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
