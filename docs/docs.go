// Package docs holds the generated OpenAPI definition served at /swagger/*.
// Regenerate with: swag init -g cmd/server/main.go -o docs
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
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Authenticate and open a session",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Close the session",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/me": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current account",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/suppliers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "List suppliers",
                "parameters": [
                    {"type": "boolean", "name": "showDeleted", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "Create a supplier",
                "responses": {"201": {"description": "Created"}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "Update a supplier",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "consumes": ["application/json"],
                "tags": ["records"],
                "summary": "Soft or hard delete a supplier",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            },
            "patch": {
                "consumes": ["application/json"],
                "tags": ["records"],
                "summary": "Restore a soft-deleted supplier",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/hotels": {
            "get": {
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "List hotels",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["records"],
                "summary": "Create a hotel",
                "responses": {"201": {"description": "Created"}}
            },
            "put": {
                "tags": ["records"],
                "summary": "Update a hotel",
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["records"],
                "summary": "Soft or hard delete a hotel",
                "responses": {"200": {"description": "OK"}}
            },
            "patch": {
                "tags": ["records"],
                "summary": "Restore a soft-deleted hotel",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/payments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "List payments",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["records"],
                "summary": "Create a payment",
                "responses": {"201": {"description": "Created"}}
            },
            "put": {
                "tags": ["records"],
                "summary": "Update a payment",
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["records"],
                "summary": "Soft or hard delete a payment",
                "responses": {"200": {"description": "OK"}}
            },
            "patch": {
                "tags": ["records"],
                "summary": "Restore a soft-deleted payment",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List accounts",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            },
            "post": {
                "tags": ["users"],
                "summary": "Create an account",
                "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}
            },
            "put": {
                "tags": ["users"],
                "summary": "Update an account",
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["users"],
                "summary": "Soft or hard delete an account",
                "responses": {"200": {"description": "OK"}}
            },
            "patch": {
                "tags": ["users"],
                "summary": "Restore an account",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/activity-logs": {
            "get": {
                "produces": ["application/json"],
                "tags": ["activity"],
                "summary": "List activity log entries, newest first",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "tags": ["activity"],
                "summary": "Append an activity log entry",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/ai-chat": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["assistant"],
                "summary": "Ask the assistant a question",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/export/payments": {
            "get": {
                "produces": ["application/octet-stream"],
                "tags": ["transfer"],
                "summary": "Export payments",
                "parameters": [
                    {"type": "string", "name": "format", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/import/{target}": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["transfer"],
                "summary": "Import suppliers or hotels",
                "parameters": [
                    {"type": "string", "name": "target", "in": "path", "required": true},
                    {"type": "file", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health/ready": {
            "get": {
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Isplate API",
	Description:      "Back-office record management for payments to hospitality suppliers and hotels.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
