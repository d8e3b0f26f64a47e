// Package docs registers the OpenAPI document served by the swagger UI.
// Keep it in step with the handler annotations in internal/handler.
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
        "/config": {
            "get": {
                "description": "Returns the running configuration without secrets",
                "produces": ["application/json"],
                "tags": ["config"],
                "summary": "Get configuration",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/config.PublicConfig"}}
                }
            }
        },
        "/rpc/health": {
            "get": {
                "description": "Fetches the latest blockhash from the configured Solana RPC",
                "produces": ["application/json"],
                "tags": ["rpc"],
                "summary": "Test RPC connection",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.HealthResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/wallets": {
            "get": {
                "description": "Lists stored wallets in the order they were added",
                "produces": ["application/json"],
                "tags": ["wallets"],
                "summary": "List wallets",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.WalletResponse"}}}
                }
            }
        },
        "/wallets/create": {
            "post": {
                "description": "Generates a new Solana wallet and stores it sealed. The private key is returned only in this response.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["wallets"],
                "summary": "Create new wallet",
                "parameters": [
                    {"description": "Optional label", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/model.CreateWalletRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.CreateWalletResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/wallets/import": {
            "post": {
                "description": "Imports a base58 private key (64-byte Solana keypair) and stores it sealed",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["wallets"],
                "summary": "Import wallet",
                "parameters": [
                    {"description": "Private key and optional label", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.ImportWalletRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.WalletResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/wallets/{pubkey}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["wallets"],
                "summary": "Get wallet",
                "parameters": [
                    {"type": "string", "description": "Wallet address", "name": "pubkey", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.WalletResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/wallets/{pubkey}/balance": {
            "get": {
                "description": "Gets SOL balance of a stored wallet",
                "produces": ["application/json"],
                "tags": ["wallets"],
                "summary": "Get wallet balance",
                "parameters": [
                    {"type": "string", "description": "Wallet address", "name": "pubkey", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.BalanceResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/wallets/{pubkey}/sign": {
            "post": {
                "description": "Signs a message (base64) with the stored wallet. Returns a base58 ed25519 signature.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["wallets"],
                "summary": "Sign message",
                "parameters": [
                    {"type": "string", "description": "Wallet address", "name": "pubkey", "in": "path", "required": true},
                    {"description": "Message", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.SignRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.SignResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "config.PublicConfig": {
            "type": "object",
            "properties": {
                "databasePath": {"type": "string"},
                "heliusApiKeySet": {"type": "boolean"},
                "logLevel": {"type": "string"},
                "port": {"type": "string"},
                "rpcTimeout": {"type": "string"},
                "solanaRpcUrl": {"type": "string"}
            }
        },
        "model.BalanceResponse": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "sol": {"type": "string"}
            }
        },
        "model.CreateWalletRequest": {
            "type": "object",
            "properties": {
                "label": {"type": "string"}
            }
        },
        "model.CreateWalletResponse": {
            "type": "object",
            "properties": {
                "QR": {"type": "string"},
                "address": {"type": "string"},
                "privateKey": {"type": "string"}
            }
        },
        "model.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "model.HealthResponse": {
            "type": "object",
            "properties": {
                "blockhash": {"type": "string"},
                "lastValidBlockHeight": {"type": "integer"}
            }
        },
        "model.ImportWalletRequest": {
            "type": "object",
            "properties": {
                "label": {"type": "string"},
                "privateKey": {"type": "string"}
            }
        },
        "model.SignRequest": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "format": "byte"}
            }
        },
        "model.SignResponse": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "signature": {"type": "string"}
            }
        },
        "model.WalletResponse": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "createdAt": {"type": "string"},
                "label": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Sentinel API",
	Description:      "Local custody of Solana wallet keys",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
