// Package docs はswaggerドキュメントを登録する（ハンドラのswagコメントと揃えて手で更新する）
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "ログイン（JWT発行）",
                "parameters": [
                    {"description": "email, password", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.LoginOutput"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "会員登録",
                "parameters": [
                    {"description": "email, password, fullName?, phone?, address?", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.RegisterUserOutput"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/orders": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "自分の注文履歴（最新50件）",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/usecase.OrderOutput"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/orders/checkout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "チェックアウト",
                "parameters": [
                    {"type": "string", "description": "same key returns the same order", "name": "Idempotency-Key", "in": "header"},
                    {"description": "cart lines, coupon, receiver", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.checkoutRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/usecase.CheckoutOutput"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/orders/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "自分の注文詳細",
                "parameters": [
                    {"type": "integer", "description": "order id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/usecase.OrderOutput"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "商品一覧",
                "parameters": [
                    {"type": "string", "description": "name keyword", "name": "q", "in": "query"},
                    {"type": "string", "description": "category slugs (comma separated or repeated)", "name": "cats", "in": "query"},
                    {"type": "integer", "description": "min price (thousand VND)", "name": "minK", "in": "query"},
                    {"type": "integer", "description": "max price (thousand VND)", "name": "maxK", "in": "query"},
                    {"type": "string", "description": "price-asc | price-desc | name-asc | name-desc | default", "name": "sort", "in": "query"},
                    {"type": "integer", "description": "page (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "page size (default 12, max 100)", "name": "per", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/usecase.ProductListOutput"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/products/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "商品詳細（バリアント込み）",
                "parameters": [
                    {"type": "integer", "description": "product id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/usecase.ProductDetailOutput"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "auth.LoginOutput": {
            "type": "object",
            "properties": {"token": {"type": "string"}}
        },
        "auth.RegisterUserOutput": {
            "type": "object",
            "properties": {"userId": {"type": "integer"}}
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "error": {"type": "string"}}
        },
        "handler.cartItemRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "priceK": {"type": "integer"},
                "qty": {"type": "integer"},
                "variantId": {"type": "integer"}
            }
        },
        "handler.checkoutRequest": {
            "type": "object",
            "properties": {
                "coupon": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/handler.cartItemRequest"}},
                "receiverAddress": {"type": "string"},
                "receiverName": {"type": "string"},
                "receiverPhone": {"type": "string"}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.registerRequest": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "email": {"type": "string"},
                "fullName": {"type": "string"},
                "password": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "usecase.CatalogItem": {
            "type": "object",
            "properties": {
                "cat": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "oldK": {"type": "integer"},
                "priceK": {"type": "integer"},
                "rating": {"type": "number"},
                "stock": {"type": "integer"}
            }
        },
        "usecase.CheckoutOutput": {
            "type": "object",
            "properties": {"orderId": {"type": "integer"}, "totalVnd": {"type": "integer"}}
        },
        "usecase.OrderItemOutput": {
            "type": "object",
            "properties": {
                "attributes": {"type": "string"},
                "lineTotal": {"type": "integer"},
                "name": {"type": "string"},
                "qty": {"type": "integer"},
                "unitPrice": {"type": "integer"},
                "variantId": {"type": "integer"}
            }
        },
        "usecase.OrderOutput": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "discount": {"type": "integer"},
                "id": {"type": "integer"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/usecase.OrderItemOutput"}},
                "receiverAddress": {"type": "string"},
                "receiverName": {"type": "string"},
                "receiverPhone": {"type": "string"},
                "shippingFee": {"type": "integer"},
                "status": {"type": "string"},
                "subtotal": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "usecase.ProductDetailOutput": {
            "type": "object",
            "properties": {
                "cat": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "variants": {"type": "array", "items": {"$ref": "#/definitions/usecase.VariantOutput"}}
            }
        },
        "usecase.ProductListOutput": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/usecase.CatalogItem"}},
                "total": {"type": "integer"}
            }
        },
        "usecase.VariantOutput": {
            "type": "object",
            "properties": {
                "color": {"type": "string"},
                "id": {"type": "integer"},
                "priceK": {"type": "integer"},
                "size": {"type": "string"},
                "sku": {"type": "string"},
                "stock": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Fashion Store API",
	Description:      "Catalog, auth and checkout API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
