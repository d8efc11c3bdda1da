// Package docs registers the OpenAPI document served at /swagger-doc.json.
// Keep it in step with the godoc annotations on the handlers.
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
        "/auth/check-email": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Check whether an email is registered",
                "parameters": [
                    {"type": "string", "description": "Email", "name": "email", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CheckEmailResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}
                }
            }
        },
        "/auth/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign up",
                "parameters": [
                    {"description": "New user", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.DataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}
                }
            }
        },
        "/auth/user/{email}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Get a user by email",
                "parameters": [
                    {"type": "string", "description": "Email", "name": "email", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DataResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}
                }
            }
        },
        "/debug/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["debug"],
                "summary": "List all users (debug)",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListUsersResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CheckEmailResponse": {
            "type": "object",
            "properties": {"exists": {"type": "boolean"}}
        },
        "dto.DataResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/dto.UserResponse"}}
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {"status": {"type": "string"}, "timestamp": {"type": "string"}}
        },
        "dto.ListUsersResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "users": {"type": "array", "items": {"$ref": "#/definitions/dto.UserResponse"}}
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "dto.SignupRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {"email": {"type": "string"}, "name": {"type": "string"}, "password": {"type": "string"}}
        },
        "dto.UserResponse": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "User Directory API",
	Description:      "In-memory signup/login backend for client development.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
