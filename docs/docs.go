// Package docs registers the OpenAPI document served at /docs/. It follows
// the layout `swag init -g cmd/server/main.go` writes, so running that
// command replaces it; keep it in step with the handler annotations until then.
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
        "/api/generate-plan": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Sends the grade, subject and topic to the text-generation provider and stores the returned plan verbatim.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Plans"],
                "summary": "Generate a lesson plan",
                "parameters": [
                    {
                        "description": "Plan parameters",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.GeneratePlanRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.GeneratePlanResponse"}},
                    "400": {"description": "Missing required fields for plan generation.", "schema": {"$ref": "#/definitions/utils.Envelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.Envelope"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/utils.Envelope"}},
                    "500": {"description": "Failed to generate lesson plan.", "schema": {"$ref": "#/definitions/utils.Envelope"}}
                }
            }
        },
        "/api/login": {
            "post": {
                "description": "Verifies credentials, sets the session cookie and returns the token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Log in",
                "parameters": [
                    {
                        "description": "Email and password",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.Credentials"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AuthResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.Envelope"}},
                    "401": {"description": "Invalid credentials.", "schema": {"$ref": "#/definitions/utils.Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.Envelope"}}
                }
            }
        },
        "/api/logout": {
            "post": {
                "description": "Clears the session cookie. Bearer-token clients drop their token.",
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Log out",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Envelope"}}
                }
            }
        },
        "/api/plans/history": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Newest first, without plan content. An optional userId must match the session.",
                "produces": ["application/json"],
                "tags": ["Plans"],
                "summary": "List the session user's plans",
                "parameters": [
                    {"type": "integer", "description": "User ID (must match the session)", "name": "userId", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HistoryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.Envelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.Envelope"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/utils.Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.Envelope"}}
                }
            }
        },
        "/api/plans/{planId}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Plans"],
                "summary": "Fetch a single plan",
                "parameters": [
                    {"type": "integer", "description": "Plan ID", "name": "planId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PlanResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.Envelope"}},
                    "404": {"description": "Lesson plan not found.", "schema": {"$ref": "#/definitions/utils.Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.Envelope"}}
                }
            }
        },
        "/api/plans/{planId}/export": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Archives the plan in object storage and returns a download link valid for 15 minutes.",
                "produces": ["application/json"],
                "tags": ["Plans"],
                "summary": "Export a plan as a text document",
                "parameters": [
                    {"type": "integer", "description": "Plan ID", "name": "planId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ExportResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.Envelope"}},
                    "503": {"description": "Plan export is not configured.", "schema": {"$ref": "#/definitions/utils.Envelope"}}
                }
            }
        },
        "/api/register": {
            "post": {
                "description": "Creates a user and returns its id with a session token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Register a new teacher account",
                "parameters": [
                    {
                        "description": "Email and password",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.Credentials"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.AuthResponse"}},
                    "400": {"description": "Email and password are required.", "schema": {"$ref": "#/definitions/utils.Envelope"}},
                    "409": {"description": "Email already in use.", "schema": {"$ref": "#/definitions/utils.Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.Envelope"}}
                }
            }
        },
        "/api/templates": {
            "get": {
                "description": "Fixed catalog of example grade, subject and topic combinations. No session needed.",
                "produces": ["application/json"],
                "tags": ["Templates"],
                "summary": "List plan templates",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TemplatesResponse"}}
                }
            }
        },
        "/api/test-db": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Check the database connection",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.Envelope"}}
                }
            }
        }
    },
    "definitions": {
        "dto.AuthResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "userId": {"type": "integer"},
                "token": {"type": "string"},
                "expiresAt": {"type": "string"}
            }
        },
        "dto.Credentials": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.ExportResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "url": {"type": "string"},
                "expiresAt": {"type": "string"}
            }
        },
        "dto.GeneratePlanRequest": {
            "type": "object",
            "properties": {
                "userId": {"type": "integer"},
                "grade": {"type": "string"},
                "subject": {"type": "string"},
                "topic": {"type": "string"}
            }
        },
        "dto.GeneratePlanResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "plan": {"type": "string"},
                "planId": {"type": "integer"},
                "createdAt": {"type": "string"}
            }
        },
        "dto.HistoryResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "history": {"type": "array", "items": {"$ref": "#/definitions/models.PlanSummary"}}
            }
        },
        "dto.PlanResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "plan": {"$ref": "#/definitions/models.LessonPlan"}
            }
        },
        "dto.TemplatesResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "templates": {"type": "array", "items": {"$ref": "#/definitions/models.Template"}}
            }
        },
        "models.LessonPlan": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "grade": {"type": "string"},
                "subject": {"type": "string"},
                "topic": {"type": "string"},
                "plan_content": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "models.PlanSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "grade": {"type": "string"},
                "subject": {"type": "string"},
                "topic": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "models.Template": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "grade": {"type": "string"},
                "subject": {"type": "string"},
                "topic": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "utils.Envelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"}
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
	Title:            "Lesson Plan Generator API",
	Description:      "Generates DepEd-style daily lesson logs for teachers and keeps each teacher's plan history.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
